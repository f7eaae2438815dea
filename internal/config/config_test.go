package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesTemplates(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Defaults survive the template round.
	if cfg.Dashboard.DefaultPeriod != "1y" {
		t.Errorf("default_period = %q", cfg.Dashboard.DefaultPeriod)
	}
	if cfg.Dashboard.ListenAddr != ":8501" {
		t.Errorf("listen_addr = %q", cfg.Dashboard.ListenAddr)
	}
	if cfg.Agent.Model != "llama3-70b-8192" {
		t.Errorf("model = %q", cfg.Agent.Model)
	}

	for _, name := range []string{"config.toml", "credentials.toml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("template %s not written: %v", name, err)
		}
	}

	info, err := os.Stat(filepath.Join(dir, "credentials.toml"))
	if err == nil && info.Mode().Perm() != 0o600 {
		t.Errorf("credentials.toml mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `[dashboard]
default_period = "6mo"
listen_addr = ":9000"
news_enabled = false

[agent]
max_news_items = 3
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	creds := `[groq]
api_key = "gsk-from-file"
`
	if err := os.WriteFile(filepath.Join(dir, "credentials.toml"), []byte(creds), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Dashboard.DefaultPeriod != "6mo" {
		t.Errorf("default_period = %q", cfg.Dashboard.DefaultPeriod)
	}
	if cfg.Dashboard.ListenAddr != ":9000" {
		t.Errorf("listen_addr = %q", cfg.Dashboard.ListenAddr)
	}
	if cfg.Dashboard.NewsEnabled {
		t.Error("news_enabled should be false")
	}
	if cfg.Agent.MaxNewsItems != 3 {
		t.Errorf("max_news_items = %d", cfg.Agent.MaxNewsItems)
	}
	// Unset keys keep their defaults.
	if cfg.Agent.NewsWindowDay != 7 {
		t.Errorf("news_window_days = %d, want default 7", cfg.Agent.NewsWindowDay)
	}
	if cfg.Credentials.Groq.APIKey != "gsk-from-file" {
		t.Errorf("groq key = %q", cfg.Credentials.Groq.APIKey)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GROQ_API_KEY", "gsk-from-env")
	t.Setenv("STOCKDASH_ADDR", ":7777")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Credentials.Groq.APIKey != "gsk-from-env" {
		t.Errorf("groq key = %q", cfg.Credentials.Groq.APIKey)
	}
	if cfg.Dashboard.ListenAddr != ":7777" {
		t.Errorf("listen_addr = %q", cfg.Dashboard.ListenAddr)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Dashboard.DefaultPeriod = "1y"
	cfg.Dashboard.ListenAddr = ":8501"
	cfg.Agent.MaxNewsItems = 5
	cfg.Agent.NewsWindowDay = 7
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := *cfg
	bad.Dashboard.DefaultPeriod = "forever"
	if err := bad.Validate(); err == nil {
		t.Error("invalid period accepted")
	}

	bad = *cfg
	bad.Agent.MaxNewsItems = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero max_news_items accepted")
	}
}

func TestNewsConfigured(t *testing.T) {
	cfg := &Config{}
	cfg.Dashboard.NewsEnabled = true
	if cfg.NewsConfigured() {
		t.Error("configured without an api key")
	}
	cfg.Credentials.Groq.APIKey = "gsk"
	if !cfg.NewsConfigured() {
		t.Error("not configured despite key and enabled flag")
	}
	cfg.Dashboard.NewsEnabled = false
	if cfg.NewsConfigured() {
		t.Error("configured despite disabled flag")
	}
}
