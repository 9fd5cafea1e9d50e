package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gplot/pkg/figure"
)

// figureOpts holds the configuration flags shared by plot and image.
type figureOpts struct {
	title        string        // figure title
	xlabel       string        // x axis label
	ylabel       string        // y axis label
	xrange       string        // x axis range as "A:B"
	yrange       string        // y axis range as "A:B"
	font         string        // terminal font family
	fontSize     int           // terminal font size in points
	timeout      time.Duration // bound on file exports
	defaultStyle bool          // keep gnuplot's own styles
	commands     []string      // raw statements before the plot
}

func (o *figureOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.title, "title", "", "figure title")
	f.StringVar(&o.xlabel, "xlabel", "", "x axis label")
	f.StringVar(&o.ylabel, "ylabel", "", "y axis label")
	f.StringVar(&o.xrange, "xrange", "", "x axis range as MIN:MAX")
	f.StringVar(&o.yrange, "yrange", "", "y axis range as MIN:MAX")
	f.StringVar(&o.font, "font", "", "terminal font family (default Helvetica unless --default-style)")
	f.IntVar(&o.fontSize, "font-size", 0, "terminal font size in points (default 14 unless --default-style)")
	f.DurationVar(&o.timeout, "timeout", 0, "abort file exports after this long (e.g. 10s)")
	f.BoolVar(&o.defaultStyle, "default-style", false, "use gnuplot's default line styles and fonts")
	f.StringArrayVar(&o.commands, "cmd", nil, "raw gnuplot statement run before the plot (repeatable)")
}

// newFigure creates a figure for data and applies the configuration flags.
func (o *figureOpts) newFigure(data string) (*figure.Figure, error) {
	fig := figure.New(figure.WithDefaultStyle(o.defaultStyle), figure.WithTimeout(o.timeout))
	if err := fig.SetDataSource(data); err != nil {
		return nil, err
	}
	if err := applyRange(o.xrange, fig.SetXRange); err != nil {
		return nil, fmt.Errorf("--xrange: %w", err)
	}
	if err := applyRange(o.yrange, fig.SetYRange); err != nil {
		return nil, fmt.Errorf("--yrange: %w", err)
	}
	fig.SetTitle(o.title)
	fig.SetXLabel(o.xlabel)
	fig.SetYLabel(o.ylabel)
	if o.font != "" {
		fig.SetFont(o.font)
	}
	if o.fontSize != 0 {
		if err := fig.SetFontSize(o.fontSize); err != nil {
			return nil, fmt.Errorf("--font-size: %w", err)
		}
	}
	for _, c := range o.commands {
		if err := fig.AddUserCommand(c); err != nil {
			return nil, fmt.Errorf("--cmd: %w", err)
		}
	}
	return fig, nil
}

func applyRange(s string, set func(...float64) error) error {
	if s == "" {
		return nil
	}
	bounds, err := parsePair(s)
	if err != nil {
		return err
	}
	return set(bounds...)
}

// parsePair parses "A:B" into two numbers.
func parsePair(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range %q (want MIN:MAX)", s)
	}
	out := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %q is not a number", s, p)
		}
		out[i] = v
	}
	return out, nil
}
