// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about cache behavior, group closure progress,
// and experiment trials.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the algebra and cache packages free of any logging or metrics
// imports while still letting the CLI surface progress.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    observability.SetClosureHooks(&myClosureHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from the bounded cache.
type CacheHooks interface {
	// OnHit records a lookup that found a live entry.
	OnHit(key string)

	// OnMiss records a lookup for an absent key.
	OnMiss(key string)

	// OnInsert records a new entry being stored.
	OnInsert(key string)

	// OnEvict records an entry pushed out to make room at capacity.
	OnEvict(key string)
}

// =============================================================================
// Closure Hooks
// =============================================================================

// ClosureHooks receives events from group closure computation.
type ClosureHooks interface {
	// OnRound records one saturation round and how many new elements it added.
	OnRound(round, added int)

	// OnComplete records a finished closure with the final group order.
	OnComplete(order int, duration time.Duration)
}

// =============================================================================
// Experiment Hooks
// =============================================================================

// ExperimentHooks receives events from the trial driver.
type ExperimentHooks interface {
	// OnTrialStart records the beginning of a trial on a graph of the given size.
	OnTrialStart(trial, graphSize int)

	// OnTrialComplete records a finished trial.
	OnTrialComplete(trial int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnHit(string)    {}
func (NoopCacheHooks) OnMiss(string)   {}
func (NoopCacheHooks) OnInsert(string) {}
func (NoopCacheHooks) OnEvict(string)  {}

// NoopClosureHooks is a no-op implementation of ClosureHooks.
type NoopClosureHooks struct{}

func (NoopClosureHooks) OnRound(int, int)              {}
func (NoopClosureHooks) OnComplete(int, time.Duration) {}

// NoopExperimentHooks is a no-op implementation of ExperimentHooks.
type NoopExperimentHooks struct{}

func (NoopExperimentHooks) OnTrialStart(int, int)                     {}
func (NoopExperimentHooks) OnTrialComplete(int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	closureHooks    ClosureHooks    = NoopClosureHooks{}
	experimentHooks ExperimentHooks = NoopExperimentHooks{}
	hooksMu         sync.RWMutex
)

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetClosureHooks registers custom closure hooks.
// This should be called once at application startup before any closures run.
func SetClosureHooks(h ClosureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		closureHooks = h
	}
}

// SetExperimentHooks registers custom experiment hooks.
// This should be called once at application startup before trials run.
func SetExperimentHooks(h ExperimentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		experimentHooks = h
	}
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Closure returns the registered closure hooks.
func Closure() ClosureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return closureHooks
}

// Experiment returns the registered experiment hooks.
func Experiment() ExperimentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return experimentHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	cacheHooks = NoopCacheHooks{}
	closureHooks = NoopClosureHooks{}
	experimentHooks = NoopExperimentHooks{}
}
