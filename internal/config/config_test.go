package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv("APP_PORT", "")
	t.Setenv("DATA_SOURCE", "")

	cfg := Load()

	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q, want 8080", cfg.AppPort)
	}
	if cfg.DataSource != "sample" {
		t.Errorf("DataSource = %q, want sample", cfg.DataSource)
	}
	if cfg.ElasticIndex != "attractions" {
		t.Errorf("ElasticIndex = %q, want attractions", cfg.ElasticIndex)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATA_SOURCE", "csv")
	t.Setenv("DATASET_PATH", "/data/poi.csv")

	cfg := Load()

	if cfg.AppPort != "9090" {
		t.Errorf("AppPort = %q, want 9090", cfg.AppPort)
	}
	if cfg.DataSource != "csv" {
		t.Errorf("DataSource = %q, want csv", cfg.DataSource)
	}
	if cfg.DatasetPath != "/data/poi.csv" {
		t.Errorf("DatasetPath = %q, want /data/poi.csv", cfg.DatasetPath)
	}
}

func TestLoadYAMLOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "appPort: \"7070\"\ndataSource: postgres\npostgresHost: db.internal\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_PORT", "6543")

	cfg := Load()

	if cfg.AppPort != "7070" {
		t.Errorf("AppPort = %q, want YAML value 7070", cfg.AppPort)
	}
	if cfg.DataSource != "postgres" {
		t.Errorf("DataSource = %q, want postgres", cfg.DataSource)
	}
	if cfg.PostgresHost != "db.internal" {
		t.Errorf("PostgresHost = %q, want db.internal", cfg.PostgresHost)
	}
	// Поля, отсутствующие в YAML, сохраняют значения из окружения.
	if cfg.PostgresPort != "6543" {
		t.Errorf("PostgresPort = %q, want env value 6543", cfg.PostgresPort)
	}
}

func TestLoadBrokenYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":::not yaml"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv("APP_PORT", "9090")

	cfg := Load()
	if cfg.AppPort != "9090" {
		t.Errorf("AppPort = %q, want env fallback 9090", cfg.AppPort)
	}
}
