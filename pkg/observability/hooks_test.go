package observability

import (
	"context"
	"testing"
	"time"
)

type countingHooks struct {
	compiles, starts, completes int
}

func (h *countingHooks) OnCompile(context.Context, string, string, int, int) { h.compiles++ }
func (h *countingHooks) OnInvokeStart(context.Context, string, string) { h.starts++ }
func (h *countingHooks) OnInvokeComplete(context.Context, string, string, time.Duration, error) {
	h.completes++
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Errorf("Render() = %T, want NoopRenderHooks", Render())
	}
	// Must not panic.
	ctx := context.Background()
	Render().OnCompile(ctx, "id", "file", 1, 10)
	Render().OnInvokeStart(ctx, "id", "file")
	Render().OnInvokeComplete(ctx, "id", "file", time.Second, nil)
}

func TestSetRenderHooks(t *testing.T) {
	defer Reset()

	h := &countingHooks{}
	SetRenderHooks(h)
	ctx := context.Background()
	Render().OnCompile(ctx, "id", "interactive", 2, 100)
	Render().OnInvokeStart(ctx, "id", "interactive")
	Render().OnInvokeComplete(ctx, "id", "interactive", time.Millisecond, nil)

	if h.compiles != 1 || h.starts != 1 || h.completes != 1 {
		t.Errorf("hooks = %+v, want one call each", h)
	}

	SetRenderHooks(nil)
	if Render() != RenderHooks(h) {
		t.Error("SetRenderHooks(nil) should keep the registered hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore no-op hooks")
	}
}
