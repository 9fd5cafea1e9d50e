package figure

import (
	"math"
	"strings"
	"time"

	"github.com/matzehuels/gplot/pkg/dataset"
	"github.com/matzehuels/gplot/pkg/errors"
)

const (
	axisX = 0
	axisY = 1
)

// normText maps whitespace-only text to the unset value.
func normText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// Title returns the figure title, or "" when unset.
func (f *Figure) Title() string { return f.title }

// SetTitle sets the title. Whitespace-only text unsets it.
func (f *Figure) SetTitle(title string) { f.title = normText(title) }

// XLabel returns the x axis label, or "" when unset.
func (f *Figure) XLabel() string { return f.labels[axisX] }

// YLabel returns the y axis label, or "" when unset.
func (f *Figure) YLabel() string { return f.labels[axisY] }

// SetXLabel sets the x axis label. Whitespace-only text unsets it.
func (f *Figure) SetXLabel(label string) { f.labels[axisX] = normText(label) }

// SetYLabel sets the y axis label. Whitespace-only text unsets it.
func (f *Figure) SetYLabel(label string) { f.labels[axisY] = normText(label) }

// AxisLabels returns the x and y labels.
func (f *Figure) AxisLabels() [2]string { return f.labels }

// SetAxisLabels sets both labels from exactly two values, x first.
func (f *Figure) SetAxisLabels(labels []string) error {
	if len(labels) != 2 {
		return errors.New(errors.ErrCodeInvalidArity, "axis labels need exactly 2 values ([]string), got %d", len(labels))
	}
	f.labels = [2]string{normText(labels[0]), normText(labels[1])}
	return nil
}

// XRange returns the x axis range and whether it is set.
func (f *Figure) XRange() (Range, bool) { return f.axisRange(axisX) }

// YRange returns the y axis range and whether it is set.
func (f *Figure) YRange() (Range, bool) { return f.axisRange(axisY) }

func (f *Figure) axisRange(axis int) (Range, bool) {
	if f.ranges[axis] == nil {
		return Range{}, false
	}
	return *f.ranges[axis], true
}

// SetXRange sets the x axis range from exactly two values in any order.
func (f *Figure) SetXRange(bounds ...float64) error {
	r, err := newRange("x", bounds)
	if err != nil {
		return err
	}
	f.ranges[axisX] = &r
	return nil
}

// SetYRange sets the y axis range from exactly two values in any order.
func (f *Figure) SetYRange(bounds ...float64) error {
	r, err := newRange("y", bounds)
	if err != nil {
		return err
	}
	f.ranges[axisY] = &r
	return nil
}

// SetAxisRanges sets the ranges of the first len(ranges) axes, x first.
// Nothing is stored unless every element is valid.
func (f *Figure) SetAxisRanges(ranges [][]float64) error {
	if len(ranges) > 2 {
		return errors.New(errors.ErrCodeInvalidArity, "axis ranges cover at most 2 axes, got %d", len(ranges))
	}
	parsed := make([]Range, len(ranges))
	for i, bounds := range ranges {
		r, err := newRange([]string{"x", "y"}[i], bounds)
		if err != nil {
			return err
		}
		parsed[i] = r
	}
	for i := range parsed {
		f.ranges[i] = &parsed[i]
	}
	return nil
}

func newRange(axis string, bounds []float64) (Range, error) {
	if len(bounds) != 2 {
		return Range{}, errors.New(errors.ErrCodeInvalidArity, "%s axis range needs exactly 2 values, got %d", axis, len(bounds))
	}
	for _, b := range bounds {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return Range{}, errors.New(errors.ErrCodeInvalidValue, "%s axis range bound must be finite, got %v", axis, b)
		}
	}
	return Range{Min: min(bounds[0], bounds[1]), Max: max(bounds[0], bounds[1])}, nil
}

// Font returns the font family, or "" when unset.
func (f *Figure) Font() string { return f.font }

// SetFont sets the font family, trimmed.
func (f *Figure) SetFont(name string) { f.font = strings.TrimSpace(name) }

// FontSize returns the font size, or 0 when unset.
func (f *Figure) FontSize() int { return f.fontSize }

// SetFontSize sets a positive font size.
func (f *Figure) SetFontSize(size int) error {
	if size <= 0 {
		return errors.New(errors.ErrCodeInvalidValue, "font size must be a positive integer, got %d", size)
	}
	f.fontSize = size
	return nil
}

// Timeout returns the export timeout, or 0 when unset.
func (f *Figure) Timeout() time.Duration { return f.timeout }

// SetTimeout sets the export timeout. Unlike the other setters it never
// fails: zero or negative durations unset the timeout.
func (f *Figure) SetTimeout(d time.Duration) {
	if d > 0 {
		f.timeout = d
		return
	}
	f.timeout = 0
}

// UseDefaultStyle reports whether gnuplot's own styles are kept.
func (f *Figure) UseDefaultStyle() bool { return f.useDefaultStyle }

// SetUseDefaultStyle chooses between gnuplot's styles and the built-in
// palette. It takes effect at the next config snapshot.
func (f *Figure) SetUseDefaultStyle(use bool) { f.useDefaultStyle = use }

// DataSource returns the data source and whether one is set.
func (f *Figure) DataSource() (dataset.Source, bool) {
	if f.source == nil {
		return dataset.Source{}, false
	}
	return *f.source, true
}

// SetDataSource validates path with [dataset.Open] and stores it. On error
// the previous data source is kept.
func (f *Figure) SetDataSource(path string) error {
	src, err := dataset.Open(path)
	if err != nil {
		return err
	}
	f.source = &src
	return nil
}
