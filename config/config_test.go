package config

import (
	"strconv"
	"testing"
	"time"
)

var allVars = []string{
	"SERVER_PORT", "JWT_SECRET_KEY", "STORE_DRIVER", "DATABASE_URL", "STATE_FILE",
	"SIMULATION_SEED", "SEASON_LABEL", "CATALOG_FILE", "NATS_URL", "NATS_SUBJECT_PREFIX",
	"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME",
	"R2_PUBLIC_BASE_URL", "CORS_ALLOWED_ORIGINS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range allVars {
		t.Setenv(v, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/league")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerPort != 8080 || cfg.StoreDriver != StoreDriverPostgres || cfg.NATSSubjectPrefix != "league" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SeasonLabel != strconv.Itoa(time.Now().Year()) {
		t.Errorf("season label: %q", cfg.SeasonLabel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("cors origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadMemoryDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("STATE_FILE", "/tmp/state.json")
	t.Setenv("SIMULATION_SEED", "42")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDriver != StoreDriverMemory || cfg.StateFile != "/tmp/state.json" || cfg.SimulationSeed != 42 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("cors origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]map[string]string{
		"missing secret":   {"DATABASE_URL": "x"},
		"missing database": {"JWT_SECRET_KEY": "s"},
		"bad port":         {"JWT_SECRET_KEY": "s", "DATABASE_URL": "x", "SERVER_PORT": "http"},
		"port range":       {"JWT_SECRET_KEY": "s", "DATABASE_URL": "x", "SERVER_PORT": "70000"},
		"unknown driver":   {"JWT_SECRET_KEY": "s", "STORE_DRIVER": "sqlite"},
		"bad seed":         {"JWT_SECRET_KEY": "s", "STORE_DRIVER": "memory", "SIMULATION_SEED": "-1"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
