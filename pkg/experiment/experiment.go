// Package experiment drives the data collection campaign: sample random
// connected graphs, traverse them from random node subsets, compute the
// groups those traversals generate, and persist everything through a
// Store.
package experiment

import (
	"context"
	"math"
	"math/big"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/traversalgroup/pkg/codec"
	apperrors "github.com/matzehuels/traversalgroup/pkg/errors"
	"github.com/matzehuels/traversalgroup/pkg/graph"
	"github.com/matzehuels/traversalgroup/pkg/observability"
	"github.com/matzehuels/traversalgroup/pkg/perm"
)

// Config controls a data collection run.
type Config struct {
	// MinNodes and MaxNodes bound the sampled graph sizes, inclusive.
	MinNodes int
	MaxNodes int

	// Certainty is the target probability that, over MinTrials trials,
	// every (connected graph, nonempty node subset) pair of MinNodes nodes
	// gets sampled at least once. It shapes the size distribution.
	Certainty float64

	// MinTrials is the trial count the campaign is designed around.
	// Cancelling a run before reaching it logs a warning.
	MinTrials int

	// Seed fixes the random stream for reproducible runs; zero seeds from
	// the current time.
	Seed uint64
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.MinNodes < 2 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "min nodes must be at least 2, got %d", c.MinNodes)
	}
	if c.MaxNodes < c.MinNodes {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "max nodes %d below min nodes %d", c.MaxNodes, c.MinNodes)
	}
	if graph.NumConnectedGraphs(c.MinNodes) == nil {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "min nodes %d beyond the connected-graph table", c.MinNodes)
	}
	if c.Certainty <= 0 || c.Certainty >= 1 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "certainty must be in (0, 1), got %g", c.Certainty)
	}
	if c.MinTrials < 1 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "min trials must be positive, got %d", c.MinTrials)
	}
	return nil
}

// Experiment runs trials and persists their results.
type Experiment struct {
	cfg    Config
	store  Store
	groups *GroupCache // optional
	rng    *rand.Rand
	logger *log.Logger
	dist   []float64
	sizes  []int
}

// New builds an Experiment. The group cache and logger may be nil.
func New(cfg Config, store Store, groups *GroupCache, logger *log.Logger) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	e := &Experiment{
		cfg:    cfg,
		store:  store,
		groups: groups,
		rng:    rand.New(rand.NewPCG(seed, 0)),
		logger: logger,
	}
	e.dist = e.nodeDistribution()
	for n := cfg.MinNodes; n <= cfg.MaxNodes; n++ {
		e.sizes = append(e.sizes, n)
	}
	return e, nil
}

// Run executes trials until the context is cancelled, returning the number
// completed. Trial errors abort the run; cancellation before MinTrials
// logs a warning but is not an error.
func (e *Experiment) Run(ctx context.Context) (int, error) {
	hooks := observability.Experiment()
	trials := 0
	for {
		select {
		case <-ctx.Done():
			if trials < e.cfg.MinTrials {
				e.logger.Warn("stopping before the configured minimum",
					"trials", trials, "min_trials", e.cfg.MinTrials)
			}
			return trials, nil
		default:
		}

		size := e.sizes[pick(e.rng, e.dist)]
		hooks.OnTrialStart(trials+1, size)
		started := time.Now()
		err := e.runTrial(ctx, size)
		hooks.OnTrialComplete(trials+1, time.Since(started), err)
		if err != nil {
			return trials, err
		}
		trials++
		e.logger.Debug("trial complete", "trial", trials, "nodes", size)
	}
}

// runTrial samples one graph and records its traversal groups for every
// method.
func (e *Experiment) runTrial(ctx context.Context, size int) error {
	nodes := make([]int, size)
	for i := range nodes {
		nodes[i] = i + 1
	}
	g := graph.RandomConnectedGraph(e.rng, nodes)

	graphID, err := codec.EncodeGraph(g)
	if err != nil {
		return err
	}
	if err := e.store.EnsureGraph(ctx, GraphRecord{
		ID:    graphID.String(),
		Nodes: g.Len(),
		Edges: g.NumEdges(),
	}); err != nil {
		return err
	}

	starting, nodeEncoding := graph.RandomSubsequence(e.rng, g.Nodes())
	for _, method := range graph.Methods() {
		group, err := e.traversalGroup(ctx, g, method, starting)
		if err != nil {
			return err
		}
		repr, err := e.recordGroup(ctx, group)
		if err != nil {
			return err
		}
		if err := e.store.AddTrial(ctx, TrialRecord{
			ID:        uuid.NewString(),
			Graph:     graphID.String(),
			Nodes:     nodeEncoding.String(),
			Method:    method.String(),
			Group:     repr,
			Timestamp: time.Now().UTC(),
		}); err != nil {
			return err
		}
	}
	return nil
}

// traversalGroup computes the group generated by traversing g from each
// starting node. An empty starting set generates the trivial group.
func (e *Experiment) traversalGroup(ctx context.Context, g *graph.Graph, method graph.Method, starting []int) (*perm.Group, error) {
	if len(starting) == 0 {
		return perm.NewGroup(perm.Identity(g.Len())), nil
	}
	gens := make([]*perm.Permutation, 0, len(starting))
	for _, start := range starting {
		order, err := g.Traverse(method, start)
		if err != nil {
			return nil, err
		}
		gens = append(gens, perm.FromSequence(order))
	}
	if e.groups != nil {
		return e.groups.Closure(ctx, gens, g.Len())
	}
	return perm.Closure(gens)
}

// recordGroup persists a group and its supporting records, returning the
// group's canonical representation. Known groups only get the lookup.
func (e *Experiment) recordGroup(ctx context.Context, group *perm.Group) (string, error) {
	repr, err := codec.EncodeGroup(group)
	if err != nil {
		return "", err
	}
	known, err := e.store.HasGroup(ctx, repr)
	if err != nil {
		return "", err
	}
	if known {
		return repr, nil
	}

	for _, p := range group.Elements() {
		rank, err := codec.EncodePermutation(p)
		if err != nil {
			return "", err
		}
		decomp, err := codec.EncodeSequence(perm.NewCycleCount(p).Profile())
		if err != nil {
			return "", err
		}
		if err := e.store.EnsurePermutation(ctx, PermutationRecord{
			ID:          rank.String(),
			CycleDecomp: decomp.String(),
		}); err != nil {
			return "", err
		}
	}

	fingerprint := group.Fingerprint()
	classRepr, err := codec.EncodeGroupClass(fingerprint)
	if err != nil {
		return "", err
	}
	created, err := e.store.EnsureGroupClass(ctx, GroupClassRecord{
		Repr: classRepr,
		Size: group.Len(),
	})
	if err != nil {
		return "", err
	}
	if created {
		entries := make([]HistogramEntry, 0, len(fingerprint))
		for _, tally := range fingerprint {
			decomp, err := codec.EncodeSequence(tally.Profile)
			if err != nil {
				return "", err
			}
			entries = append(entries, HistogramEntry{
				Class:  classRepr,
				Decomp: decomp.String(),
				Count:  tally.Count,
			})
		}
		if err := e.store.AddHistogram(ctx, entries); err != nil {
			return "", err
		}
	}

	if err := e.store.SaveGroup(ctx, GroupRecord{Repr: repr, Class: classRepr}); err != nil {
		return "", err
	}
	return repr, nil
}

// nodeDistribution shapes the graph-size distribution so that, with the
// configured certainty, MinTrials trials cover every (connected graph,
// nonempty subset) pair of the smallest size at least once, while larger
// sizes get exponentially more probability to keep pace with the growth
// of the number of connected graphs.
func (e *Experiment) nodeDistribution() []float64 {
	m := e.cfg.MaxNodes - e.cfg.MinNodes + 1
	if m == 1 {
		return []float64{1}
	}

	connected, _ := new(big.Float).SetInt(graph.NumConnectedGraphs(e.cfg.MinNodes)).Float64()
	pairs := connected * float64((uint64(1)<<e.cfg.MinNodes)-1)
	p := 1.0 / pairs

	// Sampling one fixed pair is geometric; k attempts reach it with
	// probability 1-(1-p)^k, so k = log(1-certainty)/log(1-p) attempts
	// suffice at the configured certainty.
	k := 1.0
	if p < 1 {
		k = math.Ceil(math.Log(1-e.cfg.Certainty) / math.Log(1-p))
	}
	q := k / float64(e.cfg.MinTrials)

	// The sizes get probabilities q, qc, qc², ...; summing to 1 means c is
	// a root greater than one of c^m - c/q + (1/q - 1), found by bisection
	// (1 itself is always a root).
	c, ok := growthRoot(m, q)
	if !ok {
		uniform := make([]float64, m)
		for i := range uniform {
			uniform[i] = 1.0 / float64(m)
		}
		e.logger.Warn("size distribution has no exponential solution, using uniform",
			"base_probability", q)
		return uniform
	}

	dist := make([]float64, m)
	for i := range dist {
		dist[i] = q * math.Pow(c, float64(i))
	}
	return dist
}

// growthRoot finds the real root greater than 1 of c^m - c/q + (1/q - 1),
// if any.
func growthRoot(m int, q float64) (float64, bool) {
	f := func(c float64) float64 {
		return math.Pow(c, float64(m)) - c/q + (1/q - 1)
	}
	lo := 1 + 1e-9
	if f(lo) >= 0 {
		// The polynomial leaves 1 upward: no root above it.
		return 0, false
	}
	hi := 2.0
	for f(hi) < 0 {
		hi *= 2
		if hi > 1e9 {
			return 0, false
		}
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, true
}

// pick draws an index from a discrete distribution. Probabilities lost to
// floating point round toward the last index.
func pick(rng *rand.Rand, dist []float64) int {
	choice := rng.Float64()
	sum := 0.0
	for i, d := range dist {
		sum += d
		if choice < sum {
			return i
		}
	}
	return len(dist) - 1
}
