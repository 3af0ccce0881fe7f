package experiment

import (
	"context"
	"io"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/traversalgroup/pkg/codec"
	apperrors "github.com/matzehuels/traversalgroup/pkg/errors"
	"github.com/matzehuels/traversalgroup/pkg/observability"
)

func testConfig() Config {
	return Config{
		MinNodes:  2,
		MaxNodes:  4,
		Certainty: 0.9,
		MinTrials: 1000,
		Seed:      42,
	}
}

func testExperiment(t *testing.T, store Store) *Experiment {
	t.Helper()
	e, err := New(testConfig(), store, nil, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"min nodes too small", func(c *Config) { c.MinNodes = 1 }},
		{"max below min", func(c *Config) { c.MaxNodes = 1 }},
		{"min nodes beyond table", func(c *Config) { c.MinNodes = 99; c.MaxNodes = 99 }},
		{"certainty zero", func(c *Config) { c.Certainty = 0 }},
		{"certainty one", func(c *Config) { c.Certainty = 1 }},
		{"no trials", func(c *Config) { c.MinTrials = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
	if err := testConfig().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestNodeDistribution(t *testing.T) {
	e := testExperiment(t, NewMemoryStore())

	if len(e.dist) != 3 {
		t.Fatalf("distribution over %d sizes, want 3", len(e.dist))
	}
	sum := 0.0
	for i, d := range e.dist {
		if d <= 0 {
			t.Errorf("dist[%d] = %g, want positive", i, d)
		}
		sum += d
	}
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf("distribution sums to %g, want 1", sum)
	}
	// Larger sizes must be exponentially more likely.
	for i := 1; i < len(e.dist); i++ {
		if e.dist[i] <= e.dist[i-1] {
			t.Errorf("dist[%d] = %g not above dist[%d] = %g", i, e.dist[i], i-1, e.dist[i-1])
		}
	}
}

func TestNodeDistributionSingleSize(t *testing.T) {
	cfg := testConfig()
	cfg.MaxNodes = cfg.MinNodes
	e, err := New(cfg, NewMemoryStore(), nil, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if len(e.dist) != 1 || e.dist[0] != 1 {
		t.Errorf("dist = %v, want [1]", e.dist)
	}
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	if got := pick(rng, []float64{1, 0, 0}); got != 0 {
		t.Errorf("pick with all mass on 0 = %d", got)
	}
	if got := pick(rng, []float64{0, 0, 1}); got != 2 {
		t.Errorf("pick with all mass on 2 = %d", got)
	}
	// Numerical shortfall lands on the last index.
	if got := pick(rng, []float64{0, 0, 0}); got != 2 {
		t.Errorf("pick with empty mass = %d, want last index", got)
	}
}

func TestRunTrialWritesCoherentRecords(t *testing.T) {
	store := NewMemoryStore()
	e := testExperiment(t, store)

	if err := e.runTrial(context.Background(), 3); err != nil {
		t.Fatal(err)
	}

	graphs := store.Graphs()
	if len(graphs) != 1 {
		t.Fatalf("stored %d graphs, want 1", len(graphs))
	}
	if graphs[0].Nodes != 3 {
		t.Errorf("graph record has %d nodes, want 3", graphs[0].Nodes)
	}

	// One trial per traversal method, each referencing stored records.
	trials := store.Trials()
	if len(trials) != 2 {
		t.Fatalf("stored %d trials, want 2", len(trials))
	}
	methods := map[string]bool{}
	groups := map[string]string{}
	for _, rec := range store.Groups() {
		groups[rec.Repr] = rec.Class
	}
	classes := map[string]int{}
	for _, rec := range store.Classes() {
		classes[rec.Repr] = rec.Size
	}
	for _, trial := range trials {
		methods[trial.Method] = true
		if trial.Graph != graphs[0].ID {
			t.Errorf("trial references graph %s, want %s", trial.Graph, graphs[0].ID)
		}
		class, ok := groups[trial.Group]
		if !ok {
			t.Fatalf("trial references unknown group %s", trial.Group)
		}
		if _, ok := classes[class]; !ok {
			t.Errorf("group references unknown class %s", class)
		}
		if trial.ID == "" || trial.Timestamp.IsZero() {
			t.Error("trial is missing its ID or timestamp")
		}
	}
	if !methods["bfs"] || !methods["dfs"] {
		t.Errorf("methods recorded: %v, want bfs and dfs", methods)
	}

	// Every stored group decodes and its element ranks are stored.
	perms := map[string]bool{}
	for _, rec := range store.Permutations() {
		perms[rec.ID] = true
	}
	for repr := range groups {
		group, err := codec.DecodeGroup(repr, 3)
		if err != nil {
			t.Fatalf("group %s does not decode: %v", repr, err)
		}
		for _, p := range group.Elements() {
			rank, err := codec.EncodePermutation(p)
			if err != nil {
				t.Fatal(err)
			}
			if !perms[rank.String()] {
				t.Errorf("element rank %s of group %s not stored", rank, repr)
			}
		}
	}

	// Histogram counts of each class sum to the class size.
	byClass := map[string]int{}
	for _, entry := range store.Histograms() {
		byClass[entry.Class] += entry.Count
	}
	for repr, size := range classes {
		if byClass[repr] != size {
			t.Errorf("class %s histogram sums to %d, want %d", repr, byClass[repr], size)
		}
	}
}

func TestRunTrialIdempotentForKnownGroups(t *testing.T) {
	store := NewMemoryStore()
	e := testExperiment(t, store)

	for i := 0; i < 5; i++ {
		if err := e.runTrial(context.Background(), 2); err != nil {
			t.Fatal(err)
		}
	}
	if got := len(store.Trials()); got != 10 {
		t.Errorf("stored %d trials, want 10", got)
	}
	// Two nodes admit very few groups; repeats must not duplicate them.
	if got := len(store.Groups()); got > 3 {
		t.Errorf("stored %d groups for 2-node graphs", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	e := testExperiment(t, NewMemoryStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	trials, err := e.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if trials != 0 {
		t.Errorf("trials = %d, want 0", trials)
	}
}

func TestRunReportsTrials(t *testing.T) {
	defer observability.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	observability.SetExperimentHooks(&cancelAfter{n: 3, cancel: cancel})

	e := testExperiment(t, NewMemoryStore())
	trials, err := e.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if trials < 3 {
		t.Errorf("trials = %d, want at least 3", trials)
	}
}

type cancelAfter struct {
	n      int
	done   int
	cancel context.CancelFunc
}

func (c *cancelAfter) OnTrialStart(int, int) {}

func (c *cancelAfter) OnTrialComplete(int, time.Duration, error) {
	c.done++
	if c.done >= c.n {
		c.cancel()
	}
}
