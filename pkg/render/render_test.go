package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/gplot/pkg/engine"
	"github.com/matzehuels/gplot/pkg/errors"
	"github.com/matzehuels/gplot/pkg/figure"
	"github.com/matzehuels/gplot/pkg/observability"
	"github.com/matzehuels/gplot/pkg/platform"
)

type fakeRunner struct {
	calls  []engine.Invocation
	stderr string
	err    error
}

func (r *fakeRunner) Run(_ context.Context, inv engine.Invocation) (engine.Result, error) {
	r.calls = append(r.calls, inv)
	return engine.Result{Stderr: r.stderr}, r.err
}

func testFigure(t *testing.T, opts ...figure.Option) *figure.Figure {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mydata.dat")
	if err := os.WriteFile(path, []byte("0 0 0\n1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fig := figure.New(opts...)
	if err := fig.SetDataSource(path); err != nil {
		t.Fatalf("SetDataSource: %v", err)
	}
	if err := fig.AddXY(0, 1); err != nil {
		t.Fatalf("AddXY: %v", err)
	}
	return fig
}

func TestFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		format   string
		wantPath string
		wantFmt  Format
		wantTerm string
	}{
		{"extension selects format", "plot.svg", "", "plot.svg", FormatSVG, "svg enhanced"},
		{"format appended", "plot", "pdf", "plot.pdf", FormatPDF, "pdfcairo"},
		{"default png", "plot", "", "plot.png", FormatPNG, "pngcairo"},
		{"explicit format wins", "plot.png", "pdf", "plot.pdf", FormatPDF, "pdfcairo"},
		{"extension case-insensitive", "Plot.SVG", "", "Plot.svg", FormatSVG, "svg enhanced"},
		{"format case-insensitive", "plot", " PNG ", "plot.png", FormatPNG, "pngcairo"},
		{"unknown extension kept", "run.v2", "", "run.v2.png", FormatPNG, "pngcairo"},
		{"empty name", "", "", "myfigure.png", FormatPNG, "pngcairo"},
		{"nested path", filepath.Join("out", "fig.pdf"), "", filepath.Join("out", "fig.pdf"), FormatPDF, "pdfcairo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := File(tt.filename, tt.format)
			if err != nil {
				t.Fatalf("File(%q, %q): %v", tt.filename, tt.format, err)
			}
			if target.Mode() != ModeFile {
				t.Errorf("Mode() = %v, want file", target.Mode())
			}
			if target.Path() != tt.wantPath {
				t.Errorf("Path() = %q, want %q", target.Path(), tt.wantPath)
			}
			if target.Format() != tt.wantFmt {
				t.Errorf("Format() = %q, want %q", target.Format(), tt.wantFmt)
			}
			if target.TerminalName() != tt.wantTerm {
				t.Errorf("TerminalName() = %q, want %q", target.TerminalName(), tt.wantTerm)
			}
		})
	}
}

func TestFileRejects(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		format   string
		code     errors.Code
	}{
		{"unsupported format", "x", "bmp", errors.ErrCodeUnsupportedFormat},
		{"control character", "bad\nname", "", errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := File(tt.filename, tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("File(%q, %q) error = %v, want %s", tt.filename, tt.format, err, tt.code)
			}
		})
	}
}

func TestUnsupportedFormatIsPrecondition(t *testing.T) {
	_, err := File("x", "bmp")
	if !errors.IsKind(err, errors.KindPrecondition) {
		t.Errorf("error kind = %v, want precondition", errors.GetCode(err).Kind())
	}
}

func TestUnsupportedFormatListsFormats(t *testing.T) {
	if got, want := FormatList(), "pdf, png, svg"; got != want {
		t.Errorf("FormatList() = %q, want %q", got, want)
	}
	_, err := File("x", "bmp")
	if err == nil || !strings.Contains(err.Error(), "supported: "+FormatList()) {
		t.Errorf("File error = %v, want the supported format list", err)
	}
}

func TestPreamble(t *testing.T) {
	target, err := File("plot.svg", "")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		target Target
		font   string
		size   int
		want   []string
	}{
		{"file with font", target, "Helvetica", 14,
			[]string{`set terminal svg enhanced font "Helvetica,14"`, `set output "plot.svg"`}},
		{"file without size", target, "Helvetica", 0,
			[]string{`set terminal svg enhanced`, `set output "plot.svg"`}},
		{"interactive", Interactive(platform.Qt), "Times", 10,
			[]string{`set terminal qt font "Times,10"`}},
		{"interactive without font", Interactive(platform.X11), "", 12,
			[]string{`set terminal x11`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := tt.target.Preamble(tt.font, tt.size)
			if len(ds) != len(tt.want) {
				t.Fatalf("Preamble() has %d directives, want %d", len(ds), len(tt.want))
			}
			for i, d := range ds {
				if got := d.Directive(); got != tt.want[i] {
					t.Errorf("directive %d = %q, want %q", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestProgram(t *testing.T) {
	fig := testFigure(t)
	target, err := File("plot.svg", "")
	if err != nil {
		t.Fatal(err)
	}
	prog, err := Program(fig, target)
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	if !strings.HasPrefix(prog, `set terminal svg enhanced font "Helvetica,14";set output "plot.svg";set style line 1`) {
		t.Errorf("program should start with the preamble, got %q", prog)
	}
	if !strings.Contains(prog, ";plot ") || !strings.HasSuffix(prog, ";") {
		t.Errorf("program should end with the plot statement, got %q", prog)
	}
	if fig.Phase() != figure.PhaseCompiled {
		t.Errorf("Phase() = %v, want compiled", fig.Phase())
	}
}

func TestSave(t *testing.T) {
	runner := &fakeRunner{}
	fig := testFigure(t, figure.WithTimeout(3*time.Second))
	r := New(runner)

	prog, err := r.Save(context.Background(), fig, "plot", "pdf")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("runner called %d times, want 1", len(runner.calls))
	}
	inv := runner.calls[0]
	if inv.Persist {
		t.Error("file export should not persist")
	}
	if inv.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", inv.Timeout)
	}
	if inv.Program != prog {
		t.Error("Save should return the program it ran")
	}
	if !strings.Contains(prog, `set terminal pdfcairo font "Helvetica,14";set output "plot.pdf";`) {
		t.Errorf("program = %q, want pdf preamble", prog)
	}
}

func TestSaveUnsupportedFormatSpawnsNothing(t *testing.T) {
	runner := &fakeRunner{}
	r := New(runner)
	_, err := r.Save(context.Background(), testFigure(t), "x", "bmp")
	if !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
		t.Errorf("Save error = %v, want UNSUPPORTED_FORMAT", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("runner called %d times, want 0", len(runner.calls))
	}
}

func TestSaveWithoutSeriesSpawnsNothing(t *testing.T) {
	runner := &fakeRunner{}
	r := New(runner)
	_, err := r.Save(context.Background(), figure.New(), "plot", "png")
	if !errors.Is(err, errors.ErrCodeNoSeries) {
		t.Errorf("Save error = %v, want NO_SERIES", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("runner called %d times, want 0", len(runner.calls))
	}
}

func TestShow(t *testing.T) {
	runner := &fakeRunner{}
	fig := testFigure(t, figure.WithTimeout(time.Second))
	r := New(runner, WithViewer(platform.Wxt))

	prog, err := r.Show(context.Background(), fig)
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	inv := runner.calls[0]
	if !inv.Persist {
		t.Error("interactive run should persist")
	}
	if inv.Timeout != 0 {
		t.Errorf("interactive run Timeout = %v, want none", inv.Timeout)
	}
	if !strings.HasPrefix(prog, `set terminal wxt font "Helvetica,14";set style line`) {
		t.Errorf("program = %q, want wxt terminal and no output", prog)
	}
}

func TestRunnerErrorIsReturned(t *testing.T) {
	runner := &fakeRunner{err: errors.New(errors.ErrCodeProcess, "line 0: undefined variable: foo")}
	r := New(runner)
	prog, err := r.Save(context.Background(), testFigure(t), "plot", "")
	if !errors.Is(err, errors.ErrCodeProcess) {
		t.Errorf("Save error = %v, want PROCESS_ERROR", err)
	}
	if errors.UserMessage(err) != "line 0: undefined variable: foo" {
		t.Errorf("UserMessage = %q, want stderr verbatim", errors.UserMessage(err))
	}
	if prog == "" {
		t.Error("Save should return the program even on failure")
	}
}

type recordingHooks struct {
	observability.NoopRenderHooks
	ids   []string
	modes []string
	errs  []error
}

func (h *recordingHooks) OnInvokeStart(_ context.Context, runID, mode string) {
	h.ids = append(h.ids, runID)
	h.modes = append(h.modes, mode)
}

func (h *recordingHooks) OnInvokeComplete(_ context.Context, runID, _ string, _ time.Duration, err error) {
	h.ids = append(h.ids, runID)
	h.errs = append(h.errs, err)
}

func TestHooks(t *testing.T) {
	defer observability.Reset()
	h := &recordingHooks{}
	observability.SetRenderHooks(h)

	r := New(&fakeRunner{}, WithViewer(platform.X11))
	if _, err := r.Show(context.Background(), testFigure(t)); err != nil {
		t.Fatal(err)
	}
	if len(h.ids) != 2 || h.ids[0] == "" || h.ids[0] != h.ids[1] {
		t.Errorf("run ids = %v, want one shared non-empty id", h.ids)
	}
	if len(h.modes) != 1 || h.modes[0] != string(ModeInteractive) {
		t.Errorf("modes = %v, want [interactive]", h.modes)
	}
	if len(h.errs) != 1 || h.errs[0] != nil {
		t.Errorf("errs = %v, want [nil]", h.errs)
	}
}

func TestNewDefaults(t *testing.T) {
	r := New(nil)
	if _, ok := r.runner.(*engine.Gnuplot); !ok {
		t.Errorf("default runner = %T, want *engine.Gnuplot", r.runner)
	}
	if r.Viewer() == "" {
		t.Error("default viewer should be resolved")
	}
}
