package config

import (
	"fmt"
	"time"

	"github.com/aymanalhattami/deepseek-go-client/deepseek"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration.
type Config struct {
	BaseURL              string   `toml:"base_url" mapstructure:"base_url"`
	Token                string   `toml:"token" mapstructure:"token"`
	Model                string   `toml:"model" mapstructure:"model"`
	TimeoutSeconds       int      `toml:"timeout_seconds" mapstructure:"timeout_seconds"`
	Temperature          float64  `toml:"temperature" mapstructure:"temperature"`
	PromptDirs           []string `toml:"prompt_dirs" mapstructure:"prompt_dirs"`
	SessionRetentionDays int      `toml:"session_retention_days" mapstructure:"session_retention_days"`
}

// NewDefaultConfig returns a new Config with default values. The token
// defaults to an environment variable reference that is expanded on load.
func NewDefaultConfig(promptDir string) *Config {
	return &Config{
		BaseURL:              deepseek.DefaultBaseURL,
		Token:                "$DEEPSEEK_API_KEY",
		Model:                deepseek.ModelChat,
		TimeoutSeconds:       int(deepseek.DefaultTimeout / time.Second),
		Temperature:          deepseek.TemperatureGeneralConversation,
		PromptDirs:           []string{promptDir},
		SessionRetentionDays: 30,
	}
}

// LoadConfig loads configuration from viper, expands environment variable
// references in token and base URL, and resolves prompt directories to
// absolute paths.
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	config.Token = expandEnvVar(config.Token)
	config.BaseURL = expandEnvVar(config.BaseURL)

	for i, promptDir := range config.PromptDirs {
		absPath, err := ResolvePath(promptDir)
		if err != nil {
			return nil, fmt.Errorf("error resolving prompt directory path '%s': %v", promptDir, err)
		}
		config.PromptDirs[i] = absPath
	}

	return config, nil
}

// GetToken returns the API token, failing with a configuration hint when it
// is empty.
func (c *Config) GetToken() (string, error) {
	if c.Token == "" {
		return "", fmt.Errorf("API token is not configured. Set it in the config file (token) or environment variable (DEEPSEEK_API_KEY)")
	}
	return c.Token, nil
}

// GetBaseURL returns the configured base URL, falling back to the default.
func (c *Config) GetBaseURL() string {
	if c.BaseURL == "" {
		return deepseek.DefaultBaseURL
	}
	return c.BaseURL
}

// Timeout returns the configured request timeout.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return deepseek.DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
