// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A missing config file is not an error: every field has a usable default
// so the assistant can run on the bundled reference data.
package config
