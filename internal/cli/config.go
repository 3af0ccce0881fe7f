package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/traversalgroup/pkg/experiment"
)

// Config is the TOML configuration for the run command.
//
// Example:
//
//	[experiment]
//	min_nodes = 2
//	max_nodes = 6
//	certainty = 0.99
//	min_trials = 100000
//	seed = 42
//
//	[store]
//	kind = "mongo"
//	uri = "mongodb://localhost:27017"
//	database = "traversalgroup"
//
//	[cache]
//	kind = "redis"
//	addr = "localhost:6379"
//	ttl = "720h"
type Config struct {
	Experiment ExperimentConfig `toml:"experiment"`
	Store      StoreConfig      `toml:"store"`
	Cache      CacheConfig      `toml:"cache"`
}

// ExperimentConfig mirrors experiment.Config in TOML form.
type ExperimentConfig struct {
	MinNodes  int     `toml:"min_nodes"`
	MaxNodes  int     `toml:"max_nodes"`
	Certainty float64 `toml:"certainty"`
	MinTrials int     `toml:"min_trials"`
	Seed      uint64  `toml:"seed"`
}

// StoreConfig selects where trial records go.
type StoreConfig struct {
	Kind     string `toml:"kind"` // memory or mongo
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// CacheConfig selects the shared group-closure cache.
type CacheConfig struct {
	Kind     string   `toml:"kind"` // none, file, or redis
	Dir      string   `toml:"dir"`
	Addr     string   `toml:"addr"`
	Password string   `toml:"password"`
	DB       int      `toml:"db"`
	TTL      duration `toml:"ttl"`
}

// duration wraps time.Duration so TOML values like "720h" parse directly.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// an in-memory store, no closure cache, and a small reproducible campaign.
func DefaultConfig() Config {
	return Config{
		Experiment: ExperimentConfig{
			MinNodes:  2,
			MaxNodes:  6,
			Certainty: 0.99,
			MinTrials: 10000,
		},
		Store: StoreConfig{Kind: "memory"},
		Cache: CacheConfig{Kind: "none"},
	}
}

// LoadConfig reads a TOML config file on top of the defaults. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("config file %s does not exist", path)
		}
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0], path)
	}
	return cfg, nil
}

// experimentConfig converts the TOML section to the library's config type.
func (c Config) experimentConfig() experiment.Config {
	return experiment.Config{
		MinNodes:  c.Experiment.MinNodes,
		MaxNodes:  c.Experiment.MaxNodes,
		Certainty: c.Experiment.Certainty,
		MinTrials: c.Experiment.MinTrials,
		Seed:      c.Experiment.Seed,
	}
}
