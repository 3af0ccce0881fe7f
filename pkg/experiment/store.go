package experiment

import (
	"context"
	"sync"
	"time"
)

// GraphRecord describes one sampled graph, keyed by its codec encoding in
// decimal form.
type GraphRecord struct {
	ID    string `bson:"_id" json:"id"`
	Nodes int    `bson:"nodes" json:"nodes"`
	Edges int    `bson:"edges" json:"edges"`
}

// PermutationRecord describes one group element, keyed by its factorial
// rank. CycleDecomp is the Gödel encoding of the element's cycle profile.
type PermutationRecord struct {
	ID          string `bson:"_id" json:"id"`
	CycleDecomp string `bson:"cycle_decomp" json:"cycle_decomp"`
}

// GroupRecord describes one traversal group, keyed by the sorted JSON
// array of its elements' ranks. Class refers to a GroupClassRecord.
type GroupRecord struct {
	Repr  string `bson:"_id" json:"repr"`
	Class string `bson:"class" json:"class"`
}

// GroupClassRecord describes an isomorphism-class proxy shared by every
// group with the same cycle-profile fingerprint.
type GroupClassRecord struct {
	Repr string `bson:"_id" json:"repr"`
	Size int    `bson:"size" json:"size"`
}

// HistogramEntry is one row of a group class's fingerprint: how many
// elements share the Gödel-encoded cycle profile Decomp.
type HistogramEntry struct {
	Class  string `bson:"class" json:"class"`
	Decomp string `bson:"decomp" json:"decomp"`
	Count  int    `bson:"count" json:"count"`
}

// TrialRecord ties one sampled graph, node subset, and traversal method
// to the group they generated.
type TrialRecord struct {
	ID        string    `bson:"_id" json:"id"`
	Graph     string    `bson:"graph" json:"graph"`
	Nodes     string    `bson:"nodes" json:"nodes"`
	Method    string    `bson:"method" json:"method"`
	Group     string    `bson:"group" json:"group"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Store persists experiment results. Ensure methods are idempotent:
// writing a record that already exists is a no-op.
type Store interface {
	EnsureGraph(ctx context.Context, rec GraphRecord) error
	HasGroup(ctx context.Context, repr string) (bool, error)
	SaveGroup(ctx context.Context, rec GroupRecord) error
	EnsurePermutation(ctx context.Context, rec PermutationRecord) error
	// EnsureGroupClass reports whether the class was newly created, so the
	// caller knows to write its histogram exactly once.
	EnsureGroupClass(ctx context.Context, rec GroupClassRecord) (created bool, err error)
	AddHistogram(ctx context.Context, entries []HistogramEntry) error
	AddTrial(ctx context.Context, rec TrialRecord) error
	Close(ctx context.Context) error
}

// MemoryStore is an in-memory Store for tests and offline runs.
type MemoryStore struct {
	mu         sync.Mutex
	graphs     map[string]GraphRecord
	groups     map[string]GroupRecord
	perms      map[string]PermutationRecord
	classes    map[string]GroupClassRecord
	histograms []HistogramEntry
	trials     []TrialRecord
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		graphs:  make(map[string]GraphRecord),
		groups:  make(map[string]GroupRecord),
		perms:   make(map[string]PermutationRecord),
		classes: make(map[string]GroupClassRecord),
	}
}

func (s *MemoryStore) EnsureGraph(_ context.Context, rec GraphRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.graphs[rec.ID]; !ok {
		s.graphs[rec.ID] = rec
	}
	return nil
}

func (s *MemoryStore) HasGroup(_ context.Context, repr string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.groups[repr]
	return ok, nil
}

func (s *MemoryStore) SaveGroup(_ context.Context, rec GroupRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[rec.Repr] = rec
	return nil
}

func (s *MemoryStore) EnsurePermutation(_ context.Context, rec PermutationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.perms[rec.ID]; !ok {
		s.perms[rec.ID] = rec
	}
	return nil
}

func (s *MemoryStore) EnsureGroupClass(_ context.Context, rec GroupClassRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.classes[rec.Repr]; ok {
		return false, nil
	}
	s.classes[rec.Repr] = rec
	return true, nil
}

func (s *MemoryStore) AddHistogram(_ context.Context, entries []HistogramEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.histograms = append(s.histograms, entries...)
	return nil
}

func (s *MemoryStore) AddTrial(_ context.Context, rec TrialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trials = append(s.trials, rec)
	return nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

// Graphs returns a copy of the stored graph records.
func (s *MemoryStore) Graphs() []GraphRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]GraphRecord, 0, len(s.graphs))
	for _, rec := range s.graphs {
		out = append(out, rec)
	}
	return out
}

// Groups returns a copy of the stored group records.
func (s *MemoryStore) Groups() []GroupRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]GroupRecord, 0, len(s.groups))
	for _, rec := range s.groups {
		out = append(out, rec)
	}
	return out
}

// Permutations returns a copy of the stored permutation records.
func (s *MemoryStore) Permutations() []PermutationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PermutationRecord, 0, len(s.perms))
	for _, rec := range s.perms {
		out = append(out, rec)
	}
	return out
}

// Classes returns a copy of the stored group class records.
func (s *MemoryStore) Classes() []GroupClassRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]GroupClassRecord, 0, len(s.classes))
	for _, rec := range s.classes {
		out = append(out, rec)
	}
	return out
}

// Histograms returns a copy of the stored histogram entries.
func (s *MemoryStore) Histograms() []HistogramEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]HistogramEntry(nil), s.histograms...)
}

// Trials returns a copy of the stored trial records.
func (s *MemoryStore) Trials() []TrialRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TrialRecord(nil), s.trials...)
}

var _ Store = (*MemoryStore)(nil)
