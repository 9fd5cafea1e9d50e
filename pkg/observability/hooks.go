// Package observability provides hooks for metrics, tracing and logging of
// render invocations.
//
// The package keeps gplot free of any particular observability backend.
// Consumers register hooks at startup; the render package reports events:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
//	observability.Render().OnInvokeStart(ctx, runID, mode)
//	// ... run gnuplot ...
//	observability.Render().OnInvokeComplete(ctx, runID, mode, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the render dispatcher.
type RenderHooks interface {
	// OnCompile records a compiled program for a render mode.
	OnCompile(ctx context.Context, runID, mode string, series, size int)

	// OnInvokeStart records the start of an engine invocation.
	OnInvokeStart(ctx context.Context, runID, mode string)

	// OnInvokeComplete records the end of an engine invocation.
	OnInvokeComplete(ctx context.Context, runID, mode string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnCompile(context.Context, string, string, int, int) {}
func (NoopRenderHooks) OnInvokeStart(context.Context, string, string) {}
func (NoopRenderHooks) OnInvokeComplete(context.Context, string, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any render.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
