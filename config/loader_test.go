package config

import (
	"os"
	"testing"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.Server.Port != 17080 {
		t.Errorf("port = %d, want default 17080", Config.Server.Port)
	}
	if Config.Sessions.Capacity != 256 {
		t.Errorf("capacity = %d, want default 256", Config.Sessions.Capacity)
	}
	if Config.Data.SchedulePath != "data/schedule.csv" {
		t.Errorf("schedule path = %s", Config.Data.SchedulePath)
	}
}

func TestLoadAppConfig_File(t *testing.T) {
	t.Chdir(t.TempDir())

	yml := "server:\n  port: 9090\ndata:\n  schedule: custom.csv\n"
	if err := os.WriteFile("config.yml", []byte(yml), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", Config.Server.Port)
	}
	if Config.Data.SchedulePath != "custom.csv" {
		t.Errorf("schedule path = %s, want custom.csv", Config.Data.SchedulePath)
	}
	// Unset fields still get defaults.
	if Config.Data.RulesPath != "data/rules.yml" {
		t.Errorf("rules path = %s", Config.Data.RulesPath)
	}
}

func TestLoadAppConfig_InvalidPort(t *testing.T) {
	t.Chdir(t.TempDir())

	yml := "server:\n  port: -1\n"
	if err := os.WriteFile("config.yml", []byte(yml), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if err := LoadAppConfig(); err == nil {
		t.Error("negative port should fail validation")
	}
}
