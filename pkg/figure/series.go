package figure

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/gplot/pkg/errors"
	"github.com/matzehuels/gplot/pkg/script"
	"github.com/matzehuels/gplot/pkg/style"
)

// Label offsets keep axis labels close to the tics.
const (
	xLabelOffset = "0,0.5"
	yLabelOffset = "1.25,0"
)

// autoLabelPrefix names series added without a label.
const autoLabelPrefix = "Data "

// Marks selects how a series without error bars is drawn.
type Marks = script.Marks

const (
	LinesPoints = script.LinesPoints
	Lines       = script.Lines
	Points      = script.Points
)

type seriesOpts struct {
	xErr, yErr     int
	hasXErr        bool
	hasYErr        bool
	label          string
	xScale, yScale float64
	marks          Marks
}

// SeriesOption configures an XY series.
type SeriesOption func(*seriesOpts)

// WithXError draws horizontal error bars from the 0-based column col.
func WithXError(col int) SeriesOption {
	return func(o *seriesOpts) { o.xErr, o.hasXErr = col, true }
}

// WithYError draws vertical error bars from the 0-based column col.
func WithYError(col int) SeriesOption {
	return func(o *seriesOpts) { o.yErr, o.hasYErr = col, true }
}

// WithLabel sets the legend entry. Blank labels fall back to "Data N".
func WithLabel(label string) SeriesOption {
	return func(o *seriesOpts) { o.label = label }
}

// WithXScale multiplies the x column by s.
func WithXScale(s float64) SeriesOption {
	return func(o *seriesOpts) { o.xScale = s }
}

// WithYScale multiplies the y column by s.
func WithYScale(s float64) SeriesOption {
	return func(o *seriesOpts) { o.yScale = s }
}

// WithMarks selects lines, points or both. Series with error bars always
// echo as dashed lines with points.
func WithMarks(m Marks) SeriesOption {
	return func(o *seriesOpts) { o.marks = m }
}

// AddXY appends a series plotting the 0-based column y against column x of
// the data source.
//
// The first series since construction or Clear snapshots the configuration
// into the config segment. The series count only advances when the series
// was appended.
func (f *Figure) AddXY(x, y int, opts ...SeriesOption) error {
	o := seriesOpts{
		xErr:   script.NoColumn,
		yErr:   script.NoColumn,
		xScale: 1,
		yScale: 1,
		marks:  LinesPoints,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if f.kind == kindImage {
		return errors.New(errors.ErrCodeModeConflict, "cannot add an xy series to an image figure; call Clear first")
	}
	if f.source == nil {
		return errors.New(errors.ErrCodePrecondition, "no data source set")
	}
	if err := validateSeries(x, y, o); err != nil {
		return err
	}

	if f.phase == PhaseEmpty {
		f.config = f.snapshotXY()
	}

	primary := style.Primary(f.count)
	label := o.label
	if strings.TrimSpace(label) == "" {
		label = f.nextAutoLabel()
	}

	clause := script.XYClause{
		File:   f.source.Path,
		X:      x,
		Y:      y,
		XErr:   o.xErr,
		YErr:   o.yErr,
		XScale: o.xScale,
		YScale: o.yScale,
		Style:  primary,
		Marks:  o.marks,
		Title:  label,
	}
	if clause.HasErrors() {
		bars := clause
		bars.Style = style.ErrorBar(f.count)

		echo := clause
		echo.XErr, echo.YErr = script.NoColumn, script.NoColumn
		echo.Marks = LinesPoints
		echo.Dashed = true

		f.plot = append(f.plot, bars, echo)
	} else {
		f.plot = append(f.plot, clause)
	}

	f.count++
	f.phase = PhaseComposing
	f.kind = kindXY
	return nil
}

func validateSeries(x, y int, o seriesOpts) error {
	if err := errors.ValidateColumn("x", x); err != nil {
		return err
	}
	if err := errors.ValidateColumn("y", y); err != nil {
		return err
	}
	if o.hasXErr {
		if err := errors.ValidateColumn("x error", o.xErr); err != nil {
			return err
		}
	}
	if o.hasYErr {
		if err := errors.ValidateColumn("y error", o.yErr); err != nil {
			return err
		}
	}
	for _, s := range []float64{o.xScale, o.yScale} {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return errors.New(errors.ErrCodeInvalidValue, "scale must be finite, got %v", s)
		}
	}
	switch o.marks {
	case LinesPoints, Lines, Points:
	default:
		return errors.New(errors.ErrCodeInvalidValue, "unknown marks %q", string(o.marks))
	}
	return nil
}

// snapshotXY builds the config segment of an XY figure from the current
// settings. It applies the palette and default font first unless the
// figure keeps gnuplot's default style.
func (f *Figure) snapshotXY() []script.Directive {
	var ds []script.Directive
	ds = f.applyStyle(ds)
	if f.title != "" {
		ds = append(ds, script.Title{Text: f.title})
	}
	if r := f.ranges[axisX]; r != nil {
		ds = append(ds, script.AxisRange{Axis: script.X, Min: r.Min, Max: r.Max})
	}
	if r := f.ranges[axisY]; r != nil {
		ds = append(ds, script.AxisRange{Axis: script.Y, Min: r.Min, Max: r.Max})
	}
	return f.appendLabels(ds)
}

func (f *Figure) applyStyle(ds []script.Directive) []script.Directive {
	if f.useDefaultStyle {
		return ds
	}
	for _, d := range style.Table() {
		ds = append(ds, script.StyleLine{Descriptor: d})
	}
	if f.font == "" {
		f.font = style.DefaultFont
	}
	if f.fontSize == 0 {
		f.fontSize = style.DefaultFontSize
	}
	return ds
}

func (f *Figure) appendLabels(ds []script.Directive) []script.Directive {
	if l := f.labels[axisX]; l != "" {
		ds = append(ds, script.AxisLabel{Axis: script.X, Text: l, Offset: xLabelOffset})
	}
	if l := f.labels[axisY]; l != "" {
		ds = append(ds, script.AxisLabel{Axis: script.Y, Text: l, Offset: yLabelOffset})
	}
	return ds
}

// nextAutoLabel returns the lowest "Data N" not yet used as a title in the
// plot segment.
func (f *Figure) nextAutoLabel() string {
	text := f.plotText()
	for n := 1; ; n++ {
		label := autoLabelPrefix + strconv.Itoa(n)
		if !strings.Contains(text, " title "+script.Quote(label)) {
			return label
		}
	}
}

// AddUserPlot appends caller-written plot text as a clause. Surrounding
// terminators and commas and a leading "plot" or "replot" keyword are
// stripped.
func (f *Figure) AddUserPlot(cmd string) error {
	text := strings.Trim(strings.TrimSpace(cmd), ";,")
	text = strings.TrimSpace(text)
	for _, kw := range []string{"plot ", "replot "} {
		if strings.HasPrefix(text, kw) {
			text = strings.TrimSpace(strings.TrimPrefix(text, kw))
			break
		}
	}
	text = strings.TrimSpace(strings.Trim(text, ";,"))
	if text == "" {
		return errors.New(errors.ErrCodeInvalidInput, "plot command is empty")
	}
	f.plot = append(f.plot, script.RawClause{Text: text})
	return nil
}

// AddUserCommand appends a raw statement to the user segment, which is
// emitted after the config segment and before the plot statement.
func (f *Figure) AddUserCommand(cmd string) error {
	raw := script.Raw{Text: cmd}
	if raw.Directive() == "" {
		return errors.New(errors.ErrCodeInvalidInput, "command is empty")
	}
	f.user = append(f.user, raw)
	return nil
}
