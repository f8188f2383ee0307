package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file leaves the defaults in place.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	var cfg AppConfig
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 17080
	}
	if cfg.Sessions.Capacity == 0 {
		cfg.Sessions.Capacity = 256
	}
	if cfg.Data.SchedulePath == "" {
		cfg.Data.SchedulePath = "data/schedule.csv"
	}
	if cfg.Data.RulesPath == "" {
		cfg.Data.RulesPath = "data/rules.yml"
	}
	if cfg.Data.IntentModelPath == "" {
		cfg.Data.IntentModelPath = "data/intent_model.gob"
	}
	if cfg.Data.IntentPhrasesPath == "" {
		cfg.Data.IntentPhrasesPath = "data/intents.yml"
	}
	if cfg.Data.ReviewsDBPath == "" {
		cfg.Data.ReviewsDBPath = "data/reviews.db"
	}
}
