package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig holds defaults read from the optional YAML config file. Every
// field sits below environment variables and flags in precedence.
type fileConfig struct {
	Width   *int    `yaml:"width"`
	Height  *int    `yaml:"height"`
	Footer  *bool   `yaml:"footer"`
	Trace   *bool   `yaml:"trace"`
	Verbose *bool   `yaml:"verbose"`
	LogFile *string `yaml:"log_file"`
}

func defaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "rdct", "config.yaml")
}

// loadFileConfig reads the config file at path. A missing or unreadable
// file simply yields no defaults; a malformed one is ignored the same way
// so a broken config can never prevent startup.
func loadFileConfig(path string) fileConfig {
	var fc fileConfig
	if path == "" {
		return fc
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}
	}
	return fc
}

func (f fileConfig) intOr(key string, fallback int) int {
	switch key {
	case "width":
		if f.Width != nil {
			return *f.Width
		}
	case "height":
		if f.Height != nil {
			return *f.Height
		}
	}
	return fallback
}

func (f fileConfig) boolOr(key string, fallback bool) bool {
	switch key {
	case "footer":
		if f.Footer != nil {
			return *f.Footer
		}
	case "trace":
		if f.Trace != nil {
			return *f.Trace
		}
	case "verbose":
		if f.Verbose != nil {
			return *f.Verbose
		}
	}
	return fallback
}

func (f fileConfig) stringOr(key, fallback string) string {
	if key == "log_file" && f.LogFile != nil {
		return *f.LogFile
	}
	return fallback
}
