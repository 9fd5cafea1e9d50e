package render

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/gplot/pkg/engine"
	"github.com/matzehuels/gplot/pkg/figure"
	"github.com/matzehuels/gplot/pkg/observability"
	"github.com/matzehuels/gplot/pkg/platform"
)

// Program compiles fig for target without running anything.
func Program(fig *figure.Figure, target Target) (string, error) {
	return fig.Compile(target.Preamble(fig.Font(), fig.FontSize())...)
}

// Renderer sends compiled figures to an engine runner.
type Renderer struct {
	runner engine.Runner
	logger *log.Logger
	viewer platform.Viewer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for invocation events.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithViewer overrides the host's default interactive viewer.
func WithViewer(v platform.Viewer) Option {
	return func(r *Renderer) {
		if v != "" {
			r.viewer = v
		}
	}
}

// New creates a Renderer. A nil runner selects gnuplot from PATH.
func New(runner engine.Runner, opts ...Option) *Renderer {
	if runner == nil {
		runner = engine.NewGnuplot()
	}
	r := &Renderer{
		runner: runner,
		logger: log.New(io.Discard),
		viewer: platform.DefaultViewer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Viewer returns the viewer used by Show.
func (r *Renderer) Viewer() platform.Viewer { return r.viewer }

// Show displays fig in a persistent viewer window and returns the program
// that was run. The figure timeout does not apply.
func (r *Renderer) Show(ctx context.Context, fig *figure.Figure) (string, error) {
	return r.Render(ctx, fig, Interactive(r.viewer))
}

// Save exports fig to a file and returns the program that was run. The run
// is bounded by the figure timeout when one is set.
func (r *Renderer) Save(ctx context.Context, fig *figure.Figure, filename, format string) (string, error) {
	target, err := File(filename, format)
	if err != nil {
		return "", err
	}
	return r.Render(ctx, fig, target)
}

// Render compiles fig for target and runs it.
func (r *Renderer) Render(ctx context.Context, fig *figure.Figure, target Target) (string, error) {
	prog, err := Program(fig, target)
	if err != nil {
		return "", err
	}

	runID := uuid.NewString()
	mode := string(target.Mode())
	hooks := observability.Render()
	hooks.OnCompile(ctx, runID, mode, fig.SeriesCount(), len(prog))

	inv := engine.Invocation{Program: prog}
	if target.Mode() == ModeInteractive {
		inv.Persist = true
	} else {
		inv.Timeout = fig.Timeout()
	}

	r.logger.Debug("invoking gnuplot", "run", runID, "mode", mode, "terminal", target.TerminalName(), "bytes", len(prog))
	hooks.OnInvokeStart(ctx, runID, mode)

	start := time.Now()
	res, err := r.runner.Run(ctx, inv)
	elapsed := time.Since(start)
	hooks.OnInvokeComplete(ctx, runID, mode, elapsed, err)
	if err != nil {
		r.logger.Debug("gnuplot failed", "run", runID, "error", err)
		return prog, err
	}

	if msg := strings.TrimSpace(res.Stderr); msg != "" {
		r.logger.Warn("gnuplot reported", "run", runID, "stderr", msg)
	}
	r.logger.Debug("gnuplot finished", "run", runID, "elapsed", elapsed.Round(time.Millisecond))
	return prog, nil
}
