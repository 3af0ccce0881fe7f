package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/traversalgroup/pkg/cache"
	"github.com/matzehuels/traversalgroup/pkg/experiment"
	"github.com/matzehuels/traversalgroup/pkg/observability"
)

// runOpts holds the command-line flags for the run command.
// Flags override the corresponding config file settings.
type runOpts struct {
	config string // config file path
	trials int    // override min_trials
	seed   uint64 // override seed
	plain  bool   // disable the live display
}

// newRunCmd creates the run command, which samples random connected graphs
// and records the groups their traversals generate.
func newRunCmd() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a traversal-group sampling campaign",
		Long: `Run a sampling campaign: draw random connected graphs, traverse them
from random node subsets, compute the generated groups, and persist
graphs, permutations, groups, classes, and trials to the configured store.

Without a config file the campaign runs against an in-memory store, which
is only useful for smoke tests. See "traversalgroup run --help" for the
config format.

Example config:

  [experiment]
  min_nodes = 2
  max_nodes = 6
  certainty = 0.99
  min_trials = 100000

  [store]
  kind = "mongo"
  uri = "mongodb://localhost:27017"

  [cache]
  kind = "file"
  ttl = "720h"`,
		RunE: func(c *cobra.Command, args []string) error {
			return runExperiment(c.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file")
	cmd.Flags().IntVar(&opts.trials, "trials", 0, "override the configured minimum trial count")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "override the configured random seed")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "log progress instead of showing the live display")

	return cmd
}

func runExperiment(ctx context.Context, opts runOpts) error {
	logger := loggerFromContext(ctx)

	cfg := DefaultConfig()
	if opts.config != "" {
		var err error
		cfg, err = LoadConfig(opts.config)
		if err != nil {
			return err
		}
	}
	if opts.trials > 0 {
		cfg.Experiment.MinTrials = opts.trials
	}
	if opts.seed != 0 {
		cfg.Experiment.Seed = opts.seed
	}

	store, err := newStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warn("closing store", "err", err)
		}
	}()

	groups, groupStore, err := newGroupCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	if groupStore != nil {
		defer func() {
			if err := groupStore.Close(); err != nil {
				logger.Warn("closing group cache", "err", err)
			}
		}()
	}

	e, err := experiment.New(cfg.experimentConfig(), store, groups, logger)
	if err != nil {
		return err
	}

	logger.Info("starting campaign",
		"min_nodes", cfg.Experiment.MinNodes,
		"max_nodes", cfg.Experiment.MaxNodes,
		"min_trials", cfg.Experiment.MinTrials,
		"store", cfg.Store.Kind,
		"cache", cfg.Cache.Kind)

	if opts.plain {
		return runPlain(ctx, e, logger)
	}
	return runWithDisplay(ctx, e, cfg.Experiment.MinTrials)
}

// runPlain drives the experiment with log-based progress only.
func runPlain(ctx context.Context, e *experiment.Experiment, logger *log.Logger) error {
	prog := newProgress(logger)
	trials, err := e.Run(ctx)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Completed %d trials", trials))
	return nil
}

// runWithDisplay drives the experiment behind a live bubbletea display.
// The experiment runs in its own goroutine and reports through hooks.
func runWithDisplay(ctx context.Context, e *experiment.Experiment, minTrials int) error {
	defer observability.Reset()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newRunModel(cancel, minTrials), tea.WithContext(ctx))
	observability.SetExperimentHooks(&teaHooks{program: program})

	go func() {
		trials, err := e.Run(runCtx)
		program.Send(runDoneMsg{trials: trials, err: err})
	}()

	final, err := program.Run()
	cancel()
	if err != nil {
		// A killed program usually means the outer context was cancelled.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	result := final.(runModel).result
	if result.err != nil {
		printError("Campaign failed after %d trials: %v", result.trials, result.err)
		return result.err
	}
	printSuccess("Completed %d trials", result.trials)
	return nil
}

// newStore builds the configured trial store.
func newStore(ctx context.Context, cfg StoreConfig) (experiment.Store, error) {
	switch cfg.Kind {
	case "", "memory":
		return experiment.NewMemoryStore(), nil
	case "mongo":
		return experiment.NewMongoStore(ctx, experiment.MongoOptions{
			URI:      cfg.URI,
			Database: cfg.Database,
		})
	default:
		return nil, fmt.Errorf("unknown store kind %q (want memory or mongo)", cfg.Kind)
	}
}

// newGroupCache builds the configured closure cache, or nil when disabled.
// The returned store must be closed by the caller.
func newGroupCache(ctx context.Context, cfg CacheConfig) (*experiment.GroupCache, cache.Store, error) {
	switch cfg.Kind {
	case "", "none":
		return nil, nil, nil
	case "file":
		dir := cfg.Dir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve cache dir: %w", err)
			}
			dir = filepath.Join(base, "traversalgroup")
		}
		store, err := cache.NewFileStore(dir)
		if err != nil {
			return nil, nil, err
		}
		return experiment.NewGroupCache(store, cfg.TTL.Duration), store, nil
	case "redis":
		store, err := cache.NewRedisStore(ctx, cache.RedisOptions{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return experiment.NewGroupCache(store, cfg.TTL.Duration), store, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache kind %q (want none, file, or redis)", cfg.Kind)
	}
}
