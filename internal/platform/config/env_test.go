package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Locale  string `env:"TEST_LOCALE" envDefault:"en-US"`
	Retries int    `env:"TEST_RETRIES" envDefault:"3"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Locale != "en-US" || cfg.Retries != 3 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TEST_LOCALE", "fr-FR")
	t.Setenv("YOGA_STUDIO_TEST_LOCALE", "pt-BR")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", cfg.Locale)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("YOGA_STUDIO_TEST_RETRIES", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
