package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gplot/pkg/figfile"
	"github.com/matzehuels/gplot/pkg/figure"
	"github.com/matzehuels/gplot/pkg/script"
)

// plotOpts holds the command-line flags for the plot command.
type plotOpts struct {
	figureOpts
	outputOpts
	series []string // series specs X:Y[:XERR[:YERR]][=LABEL]
	plots  []string // raw plot clauses
	xscale float64  // multiplier for every x column
	yscale float64  // multiplier for every y column
	with   string   // marks for series without error bars
}

// seriesSpec is a parsed --series value. Columns are 0-based.
type seriesSpec struct {
	x, y       int
	xErr, yErr int
	label      string
}

// plotCommand creates the plot command for XY series.
//
// Without --series the second column is plotted against the first.
func (c *CLI) plotCommand() *cobra.Command {
	opts := plotOpts{xscale: 1, yscale: 1}

	cmd := &cobra.Command{
		Use:   "plot DATA",
		Short: "Plot columns of a data file",
		Long: `Plot columns of a whitespace-delimited data file as XY series.

Series are given as X:Y[:XERR[:YERR]][=LABEL] with 0-based column indices.
Use "-" for XERR to draw only vertical error bars. Series without a label
are numbered "Data 1", "Data 2", ...`,
		Example: `  gplot plot results.dat
  gplot plot results.dat -s 0:1=signal -s 0:2:-:3=fit --xlabel time -o fit.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fig, err := opts.build(args[0])
			if err != nil {
				return err
			}
			return c.dispatch(cmd.Context(), cmd.OutOrStdout(), fig, &opts.outputOpts)
		},
	}

	opts.figureOpts.register(cmd)
	opts.outputOpts.register(cmd)
	cmd.Flags().StringArrayVarP(&opts.series, "series", "s", nil, "series X:Y[:XERR[:YERR]][=LABEL] (repeatable, default 0:1)")
	cmd.Flags().StringArrayVar(&opts.plots, "plot", nil, "raw gnuplot plot clause appended to the plot (repeatable)")
	cmd.Flags().Float64Var(&opts.xscale, "xscale", opts.xscale, "multiply every x column by this factor")
	cmd.Flags().Float64Var(&opts.yscale, "yscale", opts.yscale, "multiply every y column by this factor")
	cmd.Flags().StringVar(&opts.with, "with", "", "series style: linespoints (default), lines, points")

	return cmd
}

// build assembles the figure from the flags.
func (o *plotOpts) build(data string) (*figure.Figure, error) {
	fig, err := o.newFigure(data)
	if err != nil {
		return nil, err
	}
	marks, err := figfile.ParseMarks(o.with)
	if err != nil {
		return nil, fmt.Errorf("--with: %w", err)
	}

	specs := o.series
	if len(specs) == 0 && len(o.plots) == 0 {
		specs = []string{"0:1"}
	}
	for _, raw := range specs {
		s, err := parseSeries(raw)
		if err != nil {
			return nil, err
		}
		seriesOpts := []figure.SeriesOption{
			figure.WithLabel(s.label),
			figure.WithXScale(o.xscale),
			figure.WithYScale(o.yscale),
			figure.WithMarks(marks),
		}
		if s.xErr != script.NoColumn {
			seriesOpts = append(seriesOpts, figure.WithXError(s.xErr))
		}
		if s.yErr != script.NoColumn {
			seriesOpts = append(seriesOpts, figure.WithYError(s.yErr))
		}
		if err := fig.AddXY(s.x, s.y, seriesOpts...); err != nil {
			return nil, fmt.Errorf("series %q: %w", raw, err)
		}
	}
	for _, p := range o.plots {
		if err := fig.AddUserPlot(p); err != nil {
			return nil, fmt.Errorf("--plot: %w", err)
		}
	}
	return fig, nil
}

// parseSeries parses X:Y[:XERR[:YERR]][=LABEL].
func parseSeries(s string) (seriesSpec, error) {
	spec := seriesSpec{xErr: script.NoColumn, yErr: script.NoColumn}

	cols := s
	if i := strings.Index(s, "="); i >= 0 {
		cols, spec.label = s[:i], s[i+1:]
	}
	parts := strings.Split(cols, ":")
	if len(parts) < 2 || len(parts) > 4 {
		return spec, fmt.Errorf("invalid series %q (want X:Y[:XERR[:YERR]][=LABEL])", s)
	}

	fields := []*int{&spec.x, &spec.y, &spec.xErr, &spec.yErr}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i >= 2 && (p == "-" || p == "") {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return spec, fmt.Errorf("invalid series %q: column %q is not an integer", s, p)
		}
		if i >= 2 && n < 0 {
			return spec, fmt.Errorf("invalid series %q: error column %d must be non-negative (use - to omit)", s, n)
		}
		*fields[i] = n
	}
	return spec, nil
}
