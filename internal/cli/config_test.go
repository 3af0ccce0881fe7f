package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[experiment]
min_nodes = 3
max_nodes = 7
certainty = 0.95
min_trials = 500
seed = 7

[store]
kind = "mongo"
uri = "mongodb://db:27017"
database = "campaigns"

[cache]
kind = "redis"
addr = "redis:6379"
db = 2
ttl = "48h"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Experiment.MinNodes != 3 || cfg.Experiment.MaxNodes != 7 {
		t.Errorf("node bounds = %d..%d", cfg.Experiment.MinNodes, cfg.Experiment.MaxNodes)
	}
	if cfg.Experiment.Seed != 7 || cfg.Experiment.MinTrials != 500 {
		t.Errorf("seed = %d, trials = %d", cfg.Experiment.Seed, cfg.Experiment.MinTrials)
	}
	if cfg.Store.Kind != "mongo" || cfg.Store.URI != "mongodb://db:27017" || cfg.Store.Database != "campaigns" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Cache.Kind != "redis" || cfg.Cache.Addr != "redis:6379" || cfg.Cache.DB != 2 {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 48*time.Hour {
		t.Errorf("ttl = %s", cfg.Cache.TTL.Duration)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[experiment]
max_nodes = 9
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.Experiment.MinNodes != def.Experiment.MinNodes {
		t.Errorf("min_nodes = %d, want default %d", cfg.Experiment.MinNodes, def.Experiment.MinNodes)
	}
	if cfg.Experiment.MaxNodes != 9 {
		t.Errorf("max_nodes = %d", cfg.Experiment.MaxNodes)
	}
	if cfg.Store.Kind != "memory" || cfg.Cache.Kind != "none" {
		t.Errorf("store = %q, cache = %q", cfg.Store.Kind, cfg.Cache.Kind)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[experiment]
min_nodes = 2
max_trials = 10
`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadConfigBadDuration(t *testing.T) {
	path := writeConfig(t, `
[cache]
kind = "file"
ttl = "soon"
`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("bad duration accepted")
	}
}

func TestDefaultConfigIsRunnable(t *testing.T) {
	if err := DefaultConfig().experimentConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
