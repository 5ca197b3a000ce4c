// Package observability provides hooks for logging and metrics.
//
// Library packages never log directly. They report entity lifecycle events
// through the hooks registered here, and the application decides what to do
// with them (the plotkit CLI logs them at debug level).
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetModelHooks(&myModelHooks{})
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... build plots
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Models().OnCreate("Plot", id)
package observability

import (
	"sync"
)

// =============================================================================
// Model Hooks
// =============================================================================

// ModelHooks receives events from entity construction and mutation.
type ModelHooks interface {
	// OnCreate records a constructed entity.
	OnCreate(class, id string)

	// OnChange records a reactive attribute write.
	OnChange(class, id, attr string)

	// OnLink records a non-reactive back-reference write on the entity
	// identified by class and id, pointing at targetID.
	OnLink(class, id, attr, targetID string)

	// OnUnlink records removal of a back-reference.
	OnUnlink(class, id, attr, targetID string)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout helpers.
type LayoutHooks interface {
	// OnLayoutBuilt records a finished container.
	OnLayoutBuilt(kind string, children int)

	// OnToolsMerged records tools collected into a shared grid toolbar.
	OnToolsMerged(plots, tools int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopModelHooks is a no-op implementation of ModelHooks.
type NoopModelHooks struct{}

func (NoopModelHooks) OnCreate(string, string)                 {}
func (NoopModelHooks) OnChange(string, string, string)         {}
func (NoopModelHooks) OnLink(string, string, string, string)   {}
func (NoopModelHooks) OnUnlink(string, string, string, string) {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutBuilt(string, int) {}
func (NoopLayoutHooks) OnToolsMerged(int, int)    {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	modelHooks  ModelHooks  = NoopModelHooks{}
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetModelHooks registers custom model hooks.
// This should be called once at application startup before any entity is built.
func SetModelHooks(h ModelHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		modelHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Models returns the registered model hooks.
func Models() ModelHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return modelHooks
}

// Layouts returns the registered layout hooks.
func Layouts() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	modelHooks = NoopModelHooks{}
	layoutHooks = NoopLayoutHooks{}
}
