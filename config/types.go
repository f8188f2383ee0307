package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// DataConfig points at the reference data files loaded at startup.
// Each file is optional; a missing file degrades only the feature
// backed by it.
type DataConfig struct {
	SchedulePath      string `yaml:"schedule" validate:"omitempty"`
	RulesPath         string `yaml:"rules" validate:"omitempty"`
	IntentModelPath   string `yaml:"intentModel" validate:"omitempty"`
	IntentPhrasesPath string `yaml:"intentPhrases" validate:"omitempty"`
	ReviewsDBPath     string `yaml:"reviewsDB" validate:"omitempty"`
}

// SessionConfig bounds the in-memory conversation context store.
type SessionConfig struct {
	Capacity int `yaml:"capacity" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig  `yaml:"server"`
	Data     DataConfig    `yaml:"data"`
	Sessions SessionConfig `yaml:"sessions"`
}
