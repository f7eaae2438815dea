// Package config provides configuration management for the dashboard.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ankitrawat448/stock-analysis-agent/internal/models"
)

// Config holds all application configuration.
type Config struct {
	Dashboard   DashboardConfig `mapstructure:"dashboard"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Agent       AgentConfig     `mapstructure:"agent"`
	Credentials Credentials     `mapstructure:"-"` // Loaded separately
}

// DashboardConfig holds dashboard behavior configuration.
type DashboardConfig struct {
	DefaultPeriod string `mapstructure:"default_period"`
	ListenAddr    string `mapstructure:"listen_addr"`
	NewsEnabled   bool   `mapstructure:"news_enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// AgentConfig holds news agent configuration.
type AgentConfig struct {
	Model         string `mapstructure:"model"`
	BaseURL       string `mapstructure:"base_url"`
	MaxNewsItems  int    `mapstructure:"max_news_items"`
	NewsWindowDay int    `mapstructure:"news_window_days"`
}

// Credentials holds API credentials.
type Credentials struct {
	Groq   GroqCredentials   `mapstructure:"groq"`
	Tavily TavilyCredentials `mapstructure:"tavily"`
}

// GroqCredentials holds the Groq API credentials used by the LLM client.
type GroqCredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// TavilyCredentials holds Tavily web-search API credentials.
type TavilyCredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/stockdash"
	}
	return filepath.Join(home, ".config", "stockdash")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("dashboard.default_period", string(models.DefaultPeriod))
	v.SetDefault("dashboard.listen_addr", ":8501")
	v.SetDefault("dashboard.news_enabled", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
	v.SetDefault("agent.model", "llama3-70b-8192")
	v.SetDefault("agent.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("agent.max_news_items", 5)
	v.SetDefault("agent.news_window_days", 7)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if terr := createTemplateConfig(configDir); terr != nil {
				return terr
			}
			// Fall through with defaults after writing the template.
			return v.Unmarshal(target)
		}
		return err
	}

	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Keys may still arrive via environment variables.
			return createTemplateCredentials(configDir)
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.Credentials.Groq.APIKey = v
	}
	if v := os.Getenv("TAVILY_API_KEY"); v != "" {
		cfg.Credentials.Tavily.APIKey = v
	}
	if v := os.Getenv("STOCKDASH_ADDR"); v != "" {
		cfg.Dashboard.ListenAddr = v
	}
	if v := os.Getenv("STOCKDASH_MODEL"); v != "" {
		cfg.Agent.Model = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := models.ParsePeriod(c.Dashboard.DefaultPeriod); err != nil {
		return fmt.Errorf("dashboard.default_period: %w", err)
	}
	if c.Dashboard.ListenAddr == "" {
		return fmt.Errorf("dashboard.listen_addr must not be empty")
	}
	if c.Agent.MaxNewsItems < 1 {
		return fmt.Errorf("agent.max_news_items must be at least 1")
	}
	if c.Agent.NewsWindowDay < 1 {
		return fmt.Errorf("agent.news_window_days must be at least 1")
	}
	return nil
}

// NewsConfigured reports whether the news agent has the credentials it needs.
func (c *Config) NewsConfigured() bool {
	return c.Dashboard.NewsEnabled && c.Credentials.Groq.APIKey != ""
}
