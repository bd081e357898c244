package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.CatalogSize != 50 {
		t.Errorf("CatalogSize = %d, want 50", cfg.CatalogSize)
	}
	if cfg.InterpretTimeout != 10*time.Second {
		t.Errorf("InterpretTimeout = %s, want 10s", cfg.InterpretTimeout)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %s, want 30m", cfg.SessionTTL)
	}
	if cfg.InterpreterEnabled() && cfg.OpenAIAPIKey == "" {
		t.Error("interpreter reported enabled without an API key")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_SIZE", "200")
	t.Setenv("INTERPRET_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.CatalogSize != 200 {
		t.Errorf("CatalogSize = %d, want 200", cfg.CatalogSize)
	}
	if cfg.InterpretTimeout != 3*time.Second {
		t.Errorf("InterpretTimeout = %s, want 3s", cfg.InterpretTimeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if !cfg.InterpreterEnabled() {
		t.Error("interpreter should be enabled when an API key is set")
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("CATALOG_SIZE", "plenty")
	t.Setenv("SESSION_TTL", "soonish")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CatalogSize != 50 {
		t.Errorf("CatalogSize = %d, want the default 50", cfg.CatalogSize)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %s, want the default 30m", cfg.SessionTTL)
	}
}

func TestLoad_MissingEnvFileIsAnError(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.env"); err == nil {
		t.Error("expected an error for an explicit missing env file")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:             "8080",
		CatalogSize:      50,
		InterpretTimeout: time.Second,
		SessionTTL:       time.Minute,
		SessionCapacity:  10,
		MaxPerPage:       100,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"zero catalog size without path", func(c *Config) { c.CatalogSize = 0 }},
		{"zero interpret timeout", func(c *Config) { c.InterpretTimeout = 0 }},
		{"zero session ttl", func(c *Config) { c.SessionTTL = 0 }},
		{"zero session capacity", func(c *Config) { c.SessionCapacity = 0 }},
		{"zero max per page", func(c *Config) { c.MaxPerPage = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
