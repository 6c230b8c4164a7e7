package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds process-wide settings, read once at startup. There is no
// server-side Gemini key: the credential arrives with every request.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Gemini struct {
		Model string `yaml:"model"`
	} `yaml:"gemini"`

	Google struct {
		ClientId string `yaml:"clientId"`
	} `yaml:"google"`

	Upload struct {
		MaxSizeMB int `yaml:"maxSizeMb"`
	} `yaml:"upload"`

	Cors struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`
}

// LoadConfig reads the configuration file, then applies environment
// overrides and defaults. A missing file is fine; everything has a default.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.Gemini.Model = model
	}
	if clientId := os.Getenv("GOOGLE_CLIENT_ID"); clientId != "" {
		cfg.Google.ClientId = clientId
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash"
	}
	if cfg.Upload.MaxSizeMB == 0 {
		cfg.Upload.MaxSizeMB = 16
	}
	if len(cfg.Cors.Origins) == 0 {
		cfg.Cors.Origins = []string{"http://localhost:5173", "http://localhost:3000"}
	}

	return &cfg, nil
}

// MaxUploadBytes is the upload ceiling, enforced before body parsing.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxSizeMB) << 20
}
