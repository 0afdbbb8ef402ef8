package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultProviderName is used when the config file does not exist yet.
const DefaultProviderName = "gemini"

type Config struct {
	App       AppConfig                 `json:"app"`
	Providers map[string]ProviderConfig `json:"providers"`
	Memory    MemoryConfig              `json:"memory"`
}

type AppConfig struct {
	Name      string `json:"name"`
	Workspace string `json:"workspace"`
}

type ProviderConfig struct {
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url,omitempty"`
	Enabled bool   `json:"enabled"`
}

type MemoryConfig struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

// DefaultPath returns ~/.yojana/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".yojana", "config.json"), nil
}

// LoadConfig reads a config file. A missing file is not an error: it yields
// a default config so the API key can still come from the environment.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	if cfg.Providers == nil {
		cfg.Providers = map[string]ProviderConfig{}
	}
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// Save writes the config back, creating the parent directory if needed.
// The file is 0600 because it holds API credentials.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// GetDefaultProvider returns the first enabled provider, preferring gemini
// when several are enabled.
func (c *Config) GetDefaultProvider() (string, ProviderConfig) {
	if p, ok := c.Providers[DefaultProviderName]; ok && p.Enabled {
		return DefaultProviderName, p
	}
	for name, p := range c.Providers {
		if p.Enabled {
			return name, p
		}
	}
	return "", ProviderConfig{}
}

func defaultConfig() *Config {
	cfg := &Config{
		App: AppConfig{Name: "yojana"},
		Providers: map[string]ProviderConfig{
			DefaultProviderName: {Enabled: true},
		},
		Memory: MemoryConfig{Type: "sqlite", Path: "yojana.db"},
	}
	applyEnvOverrides(cfg)
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return
	}
	p := cfg.Providers[DefaultProviderName]
	if p.APIKey == "" {
		p.APIKey = key
		p.Enabled = true
		cfg.Providers[DefaultProviderName] = p
	}
}
