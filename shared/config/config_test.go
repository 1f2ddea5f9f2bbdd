package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"YOUTUBE_API_KEY", "SERPAPI_API_KEY", "SERPAPI_KEY",
		"GEMINI_API_KEY", "EMAIL_USERNAME", "EMAIL_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.YouTube.MaxResults != 8 {
		t.Errorf("YouTube.MaxResults = %d, want 8", cfg.YouTube.MaxResults)
	}
	if cfg.Instagram.Limit != 6 {
		t.Errorf("Instagram.Limit = %d, want 6", cfg.Instagram.Limit)
	}
	if cfg.Instagram.SearchURL != "https://serpapi.com/search.json" {
		t.Errorf("Instagram.SearchURL = %s", cfg.Instagram.SearchURL)
	}
	if cfg.Research.DefaultDepth != "Standard Analysis" {
		t.Errorf("Research.DefaultDepth = %s", cfg.Research.DefaultDepth)
	}
	if cfg.Server.Port != 8090 {
		t.Errorf("Server.Port = %d, want 8090", cfg.Server.Port)
	}
	if cfg.Monitoring.HealthPort != 8080 {
		t.Errorf("Monitoring.HealthPort = %d, want 8080", cfg.Monitoring.HealthPort)
	}
	if cfg.Watch.Schedule == "" {
		t.Error("Watch.Schedule not defaulted")
	}
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("SERPAPI_KEY", "serp-key")
	t.Setenv("GEMINI_API_KEY", "gem-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.YouTube.APIKey != "yt-key" {
		t.Errorf("YouTube.APIKey = %s", cfg.YouTube.APIKey)
	}
	if cfg.Instagram.SerpAPIKey != "serp-key" {
		t.Errorf("Instagram.SerpAPIKey = %s (SERPAPI_KEY fallback)", cfg.Instagram.SerpAPIKey)
	}
	if cfg.Research.GeminiAPIKey != "gem-key" {
		t.Errorf("Research.GeminiAPIKey = %s", cfg.Research.GeminiAPIKey)
	}
}

func TestLoadFileValuesWinOverEnv(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, `
youtube:
  api_key: file-key
  max_results: 5
instagram:
  limit: 3
`)
	t.Setenv("YOUTUBE_API_KEY", "env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.YouTube.APIKey != "file-key" {
		t.Errorf("YouTube.APIKey = %s, want file-key", cfg.YouTube.APIKey)
	}
	if cfg.YouTube.MaxResults != 5 {
		t.Errorf("YouTube.MaxResults = %d, want 5", cfg.YouTube.MaxResults)
	}
	if cfg.Instagram.Limit != 3 {
		t.Errorf("Instagram.Limit = %d, want 3", cfg.Instagram.Limit)
	}
}

func TestLoadClampsResultBounds(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, `
youtube:
  max_results: 50
instagram:
  limit: 100
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.YouTube.MaxResults != 20 {
		t.Errorf("YouTube.MaxResults = %d, want clamped to 20", cfg.YouTube.MaxResults)
	}
	if cfg.Instagram.Limit != 12 {
		t.Errorf("Instagram.Limit = %d, want clamped to 12", cfg.Instagram.Limit)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "youtube: [not a mapping")

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadDoesNotRequireCredentials(t *testing.T) {
	// A missing credential degrades one platform at request time, it must
	// not fail startup.
	clearEnv(t)
	writeConfigFile(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed without credentials: %v", err)
	}
	if cfg.YouTube.APIKey != "" || cfg.Research.GeminiAPIKey != "" {
		t.Error("expected empty credentials")
	}
}

func TestValidateWatch(t *testing.T) {
	base := func() *Config {
		return &Config{
			Watch: WatchConfig{Topics: []string{"ai trends"}},
			Email: EmailConfig{
				SMTPServer: "smtp.test.com",
				Username:   "user",
				Password:   "pass",
			},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		if err := base().ValidateWatch(); err != nil {
			t.Errorf("ValidateWatch failed: %v", err)
		}
	})

	t.Run("NoTopics", func(t *testing.T) {
		cfg := base()
		cfg.Watch.Topics = nil
		if err := cfg.ValidateWatch(); err == nil {
			t.Error("Expected error for missing topics")
		}
	})

	t.Run("NoEmailCredentials", func(t *testing.T) {
		cfg := base()
		cfg.Email.Password = ""
		if err := cfg.ValidateWatch(); err == nil {
			t.Error("Expected error for missing email password")
		}
	})

	t.Run("NoSMTPServer", func(t *testing.T) {
		cfg := base()
		cfg.Email.SMTPServer = ""
		if err := cfg.ValidateWatch(); err == nil {
			t.Error("Expected error for missing SMTP server")
		}
	})
}
