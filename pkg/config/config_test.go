package config

import (
	"os"
	"path/filepath"
	"testing"
)

const valid = `
environment: test
server:
  port: 8080
data:
  path: testdata/rates.csv
  tenors: ["3M", "6M"]
  floating_tenor: "3M"
schedule:
  exclude_trailing: 4
`

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(write(t, valid))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.FloatingTenor != "3M" {
		t.Fatalf("unexpected floating tenor %q", cfg.Data.FloatingTenor)
	}
	if cfg.Schedule.ExcludeTrailing != 4 {
		t.Fatalf("unexpected exclusion %d", cfg.Schedule.ExcludeTrailing)
	}
}

func TestValidateFloatingTenorMembership(t *testing.T) {
	body := `
environment: test
data:
  path: testdata/rates.csv
  tenors: ["3M", "6M"]
  floating_tenor: "12M"
`
	if _, err := Load(write(t, body)); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("RATES_PATH", "/tmp/other.csv")
	t.Setenv("REDIS_ADDR", "cache:6380")

	cfg, err := LoadWithEnv(write(t, valid))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.Path != "/tmp/other.csv" {
		t.Fatalf("env override not applied: %q", cfg.Data.Path)
	}
	if !cfg.Cache.Redis.Enabled || cfg.Cache.Redis.Host != "cache" || cfg.Cache.Redis.Port != 6380 {
		t.Fatalf("redis override not applied: %+v", cfg.Cache.Redis)
	}
}
