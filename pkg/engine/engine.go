// Package engine runs gnuplot as a subordinate process.
//
// A [Runner] executes one compiled program per call and waits for the
// process to finish. [Gnuplot] is the os/exec implementation: it passes the
// program with "-e", adds "-p" for interactive invocations so the viewer
// outlives the process, and captures stdout and stderr. A non-zero exit
// status surfaces the captured stderr verbatim as a PROCESS_ERROR.
package engine

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"time"

	"github.com/matzehuels/gplot/pkg/errors"
)

// DefaultExecutable is the gnuplot binary looked up on PATH.
const DefaultExecutable = "gnuplot"

// waitDelay bounds how long a timed-out run waits for its output pipes after
// the process is killed. Helpers spawned by gnuplot may hold them open.
const waitDelay = time.Second

// Invocation describes one engine run.
type Invocation struct {
	Program string        // compiled command program
	Persist bool          // keep interactive windows open after exit
	Timeout time.Duration // zero means no limit
}

// Result holds the captured process output.
type Result struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner executes compiled programs.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (Result, error)
}

// Gnuplot runs programs through a gnuplot executable.
type Gnuplot struct {
	executable string
	env        []string
}

// Option configures a Gnuplot runner.
type Option func(*Gnuplot)

// WithExecutable overrides the binary name or path.
func WithExecutable(path string) Option {
	return func(g *Gnuplot) {
		if path != "" {
			g.executable = path
		}
	}
}

// WithEnv appends environment variables ("KEY=value") to the process
// environment.
func WithEnv(env ...string) Option {
	return func(g *Gnuplot) { g.env = append(g.env, env...) }
}

// NewGnuplot creates a runner for the gnuplot binary on PATH.
func NewGnuplot(opts ...Option) *Gnuplot {
	g := &Gnuplot{executable: DefaultExecutable}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Executable returns the configured binary name or path.
func (g *Gnuplot) Executable() string { return g.executable }

// Args returns the command-line arguments for inv.
func Args(inv Invocation) []string {
	if inv.Persist {
		return []string{"-p", "-e", inv.Program}
	}
	return []string{"-e", inv.Program}
}

// Run starts gnuplot with inv and waits for it to exit.
func (g *Gnuplot) Run(ctx context.Context, inv Invocation) (Result, error) {
	path, err := exec.LookPath(g.executable)
	if err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeEngineNotFound, err,
			"%s not found. Install with:\n  macOS:  brew install gnuplot\n  Linux:  apt install gnuplot", g.executable)
	}

	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, path, Args(inv)...)
	if inv.Timeout > 0 {
		cmd.WaitDelay = waitDelay
	}
	if len(g.env) > 0 {
		cmd.Env = append(cmd.Environ(), g.env...)
	}

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	start := time.Now()
	err = cmd.Run()
	res := Result{Stdout: out.String(), Stderr: errBuf.String(), Duration: time.Since(start)}

	if stderrors.Is(err, exec.ErrWaitDelay) && ctx.Err() == nil {
		// gnuplot exited cleanly but a helper kept the output pipes open.
		err = nil
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if stderrors.Is(ctxErr, context.DeadlineExceeded) {
				return res, errors.Wrap(errors.ErrCodeTimeout, ctxErr, "%s did not finish within %s", g.executable, inv.Timeout)
			}
			return res, ctxErr
		}
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return res, errors.Wrap(errors.ErrCodeProcess, err, "%s", res.Stderr)
		}
		return res, errors.Wrap(errors.ErrCodeProcess, err, "run %s", g.executable)
	}
	return res, nil
}

// Ensure Gnuplot implements Runner.
var _ Runner = (*Gnuplot)(nil)
