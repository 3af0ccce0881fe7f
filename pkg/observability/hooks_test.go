package observability

import (
	"testing"
	"time"
)

type countingCacheHooks struct {
	hits, misses, inserts, evicts int
}

func (c *countingCacheHooks) OnHit(string)    { c.hits++ }
func (c *countingCacheHooks) OnMiss(string)   { c.misses++ }
func (c *countingCacheHooks) OnInsert(string) { c.inserts++ }
func (c *countingCacheHooks) OnEvict(string)  { c.evicts++ }

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	h := &countingCacheHooks{}
	SetCacheHooks(h)

	Cache().OnHit("a")
	Cache().OnMiss("b")
	Cache().OnMiss("c")
	Cache().OnInsert("c")
	Cache().OnEvict("a")

	if h.hits != 1 || h.misses != 2 || h.inserts != 1 || h.evicts != 1 {
		t.Errorf("unexpected counts: %+v", h)
	}
}

func TestSetNilKeepsDefaults(t *testing.T) {
	defer Reset()

	SetCacheHooks(nil)
	SetClosureHooks(nil)
	SetExperimentHooks(nil)

	// No-op hooks should be in place and safe to call.
	Cache().OnHit("x")
	Closure().OnRound(1, 2)
	Closure().OnComplete(6, time.Millisecond)
	Experiment().OnTrialStart(1, 4)
	Experiment().OnTrialComplete(1, time.Millisecond, nil)
}

type countingClosureHooks struct {
	rounds, completes int
}

func (c *countingClosureHooks) OnRound(int, int)              { c.rounds++ }
func (c *countingClosureHooks) OnComplete(int, time.Duration) { c.completes++ }

func TestReset(t *testing.T) {
	h := &countingClosureHooks{}
	SetClosureHooks(h)
	Reset()

	Closure().OnRound(1, 1)
	if h.rounds != 0 {
		t.Error("Reset did not restore no-op closure hooks")
	}
}
