package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// TokenEnv is the environment variable holding the API bearer token.
const TokenEnv = "BROKERBOOKS_API_TOKEN"

// Config represents the top-level brokerbooks.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	API      APIConfig      `yaml:"api"`
	Cache    CacheConfig    `yaml:"cache"`
	Cash     CashConfig     `yaml:"cash"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// APIConfig locates the persistence backend.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// CacheConfig controls the offline snapshot store.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// CashConfig names the cash/bank account codes offered for vouchers.
type CashConfig struct {
	AccountCodes []string `yaml:"account_codes"`
}

// Load reads a brokerbooks.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, baseURL string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		API:      APIConfig{BaseURL: baseURL},
		Cache:    CacheConfig{Path: ".brokerbooks-cache/snapshot.db"},
		Cash: CashConfig{
			AccountCodes: []string{"1010", "1020"},
		},
	}
}

// Token loads the API bearer token from the environment, reading a .env
// file first when one exists. An empty token is not an error here; calls
// that need one fail at the backend.
func Token() string {
	_ = godotenv.Load()
	return os.Getenv(TokenEnv)
}
