package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Stock Dashboard Configuration

[dashboard]
# Default historical price period: 1mo, 3mo, 6mo, 1y, 2y
default_period = "1y"
# Address the dashboard server listens on
listen_addr = ":8501"
# Enable AI news summaries (requires a Groq API key)
news_enabled = true

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to console
console = true
# Log to rotating file under the config directory
file = true

[agent]
# LLM model used for news summaries
model = "llama3-70b-8192"
# OpenAI-compatible API endpoint
base_url = "https://api.groq.com/openai/v1"
# Maximum web search results fed to the summarizer
max_news_items = 5
# How many days of news the summary covers
news_window_days = 7
`

const credentialsTemplate = `# Stock Dashboard Credentials
# WARNING: Keep this file secure! Do not commit to version control.

[groq]
api_key = ""

[tavily]
api_key = ""
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}

func createTemplateCredentials(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "credentials.toml")
	// Use restricted permissions for credentials file
	if err := os.WriteFile(path, []byte(credentialsTemplate), 0600); err != nil {
		return fmt.Errorf("writing credentials template: %w", err)
	}

	return nil
}
