package figure

import (
	"strings"
	"time"

	"github.com/matzehuels/gplot/pkg/dataset"
	"github.com/matzehuels/gplot/pkg/script"
)

// Phase is the build state of a figure.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseComposing
	PhaseCompiled
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseComposing:
		return "composing"
	case PhaseCompiled:
		return "compiled"
	default:
		return "unknown"
	}
}

// seriesKind records which series mode a figure is in.
type seriesKind int

const (
	kindNone seriesKind = iota
	kindXY
	kindImage
)

func (k seriesKind) String() string {
	switch k {
	case kindXY:
		return "xy"
	case kindImage:
		return "image"
	default:
		return "none"
	}
}

// Range is a closed axis interval with Min <= Max.
type Range struct {
	Min, Max float64
}

// Summarizer reports the observed value extent of a data source. Image
// series call it before compiling their color scale.
type Summarizer func(dataset.Source) (dataset.Summary, error)

// Figure is the per-plot aggregate of configuration, series and compiled
// segments. The zero value is not usable; call [New].
type Figure struct {
	title    string
	labels   [2]string
	ranges   [2]*Range
	font     string
	fontSize int
	source   *dataset.Source
	timeout  time.Duration

	useDefaultStyle bool
	summarize       Summarizer

	config []script.Directive
	user   []script.Directive
	plot   []script.Clause
	count  int
	phase  Phase
	kind   seriesKind
}

// Option configures a Figure at construction.
type Option func(*Figure)

// WithDefaultStyle keeps gnuplot's own line styles and fonts instead of the
// built-in palette.
func WithDefaultStyle(use bool) Option {
	return func(f *Figure) { f.useDefaultStyle = use }
}

// WithTimeout bounds file exports. Non-positive values leave it unset.
func WithTimeout(d time.Duration) Option {
	return func(f *Figure) { f.SetTimeout(d) }
}

// WithSummarizer replaces the statistics collaborator used by image series.
func WithSummarizer(s Summarizer) Option {
	return func(f *Figure) {
		if s != nil {
			f.summarize = s
		}
	}
}

// New creates an empty figure.
func New(opts ...Option) *Figure {
	f := &Figure{
		summarize: dataset.Source.Summary,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Phase returns the build state.
func (f *Figure) Phase() Phase { return f.phase }

// SeriesCount returns the number of series added since construction or the
// last Clear.
func (f *Figure) SeriesCount() int { return f.count }

// Clear drops every segment and series and resets title, labels and fonts.
// Axis ranges, the data source, the timeout and the style choice are kept.
func (f *Figure) Clear() {
	f.config = nil
	f.user = nil
	f.plot = nil
	f.count = 0
	f.phase = PhaseEmpty
	f.kind = kindNone
	f.font = ""
	f.fontSize = 0
	f.title = ""
	f.labels = [2]string{}
}

// Segments holds the rendered text of the three program segments.
type Segments struct {
	Config string
	User   string
	Plot   string
}

// Segments renders the current segments without compiling. The plot
// segment is the comma-joined clause list without the "plot" keyword.
func (f *Figure) Segments() Segments {
	return Segments{
		Config: script.Render(f.config...),
		User:   script.Render(f.user...),
		Plot:   f.plotText(),
	}
}

func (f *Figure) plotText() string {
	parts := make([]string, 0, len(f.plot))
	for _, c := range f.plot {
		parts = append(parts, c.Clause())
	}
	return strings.Join(parts, ", ")
}
