package figure

import (
	"math"
	"strings"

	"github.com/matzehuels/gplot/pkg/errors"
	"github.com/matzehuels/gplot/pkg/script"
)

const (
	colorbarFormat      = "%.0s%c"
	colorbarLabelOffset = "1,0"
)

type imageOpts struct {
	percentile *Range
	colorbar   *Range
	label      string
}

// ImageOption configures an image series.
type ImageOption func(*imageOpts)

// WithPercentileRange scales the observed data minimum by lo and maximum by
// hi to form the color range. It takes precedence over WithColorbarRange.
func WithPercentileRange(lo, hi float64) ImageOption {
	return func(o *imageOpts) { o.percentile = &Range{Min: lo, Max: hi} }
}

// WithColorbarRange fixes the color range to [lo:hi].
func WithColorbarRange(lo, hi float64) ImageOption {
	return func(o *imageOpts) { o.colorbar = &Range{Min: lo, Max: hi} }
}

// WithColorbarLabel labels the color bar.
func WithColorbarLabel(label string) ImageOption {
	return func(o *imageOpts) { o.label = normText(label) }
}

// AddImage renders the data source as a matrix image spanning the x and y
// axis ranges. Both ranges must be set.
//
// The config segment is rebuilt from scratch on every call and any earlier
// image clause is replaced, so the plot holds exactly one image.
func (f *Figure) AddImage(opts ...ImageOption) error {
	var o imageOpts
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.validate(); err != nil {
		return err
	}
	if f.kind == kindXY {
		return errors.New(errors.ErrCodeModeConflict, "cannot add an image series to an xy figure; call Clear first")
	}
	if f.source == nil {
		return errors.New(errors.ErrCodePrecondition, "no data source set")
	}
	xr, yr := f.ranges[axisX], f.ranges[axisY]
	if xr == nil || yr == nil {
		var missing []string
		if xr == nil {
			missing = append(missing, "x")
		}
		if yr == nil {
			missing = append(missing, "y")
		}
		return errors.New(errors.ErrCodePrecondition, "image series needs both axis ranges; %s range not set", strings.Join(missing, " and "))
	}

	cb, err := f.colorRange(o)
	if err != nil {
		return err
	}

	var ds []script.Directive
	ds = f.applyStyle(ds)
	if f.title != "" {
		ds = append(ds, script.Title{Text: f.title})
	}
	ds = f.appendLabels(ds)
	ds = append(ds,
		script.Stats{File: f.source.Path},
		script.AxisRange{Axis: script.CB, Min: cb.Min, Max: cb.Max},
		script.Format{Axis: script.CB, Spec: colorbarFormat},
		script.AxisRange{Axis: script.X, Min: xr.Min, Max: xr.Max},
		script.AxisRange{Axis: script.Y, Min: yr.Min, Max: yr.Max},
		script.Tics{Axis: script.X},
		script.Tics{Axis: script.Y},
		script.SizeRatio{Ratio: -1},
	)
	if o.label != "" {
		ds = append(ds, script.AxisLabel{Axis: script.CB, Text: o.label, Offset: colorbarLabelOffset})
	}

	clause := script.ImageClause{
		File: f.source.Path,
		XMin: xr.Min, XMax: xr.Max,
		YMin: yr.Min, YMax: yr.Max,
	}
	plot := make([]script.Clause, 0, len(f.plot)+1)
	for _, c := range f.plot {
		if _, ok := c.(script.ImageClause); !ok {
			plot = append(plot, c)
		}
	}

	f.config = ds
	f.plot = append(plot, clause)
	f.count = 1
	f.phase = PhaseComposing
	f.kind = kindImage
	return nil
}

func (o imageOpts) validate() error {
	ranges := []struct {
		name string
		r    *Range
	}{{"percentile", o.percentile}, {"colorbar", o.colorbar}}
	for _, nr := range ranges {
		if nr.r == nil {
			continue
		}
		for _, b := range []float64{nr.r.Min, nr.r.Max} {
			if math.IsNaN(b) || math.IsInf(b, 0) {
				return errors.New(errors.ErrCodeInvalidValue, "%s range bound must be finite, got %v", nr.name, b)
			}
		}
	}
	return nil
}

// colorRange picks the color scale: percentile multipliers on the observed
// extent, then an explicit range, then the raw observed extent.
func (f *Figure) colorRange(o imageOpts) (Range, error) {
	if o.colorbar != nil && o.percentile == nil {
		return Range{Min: o.colorbar.Min, Max: o.colorbar.Max}, nil
	}
	sum, err := f.summarize(*f.source)
	if err != nil {
		return Range{}, err
	}
	if o.percentile != nil {
		return Range{Min: o.percentile.Min * sum.Min, Max: o.percentile.Max * sum.Max}, nil
	}
	return Range{Min: sum.Min, Max: sum.Max}, nil
}
