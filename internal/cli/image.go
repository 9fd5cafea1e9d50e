package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gplot/pkg/figure"
)

// imageOpts holds the command-line flags for the image command.
type imageOpts struct {
	figureOpts
	outputOpts
	percentile string // multipliers on the observed min and max, "LO:HI"
	cbrange    string // fixed color range, "MIN:MAX"
	cblabel    string // color bar label
}

// imageCommand creates the image command for matrix data.
func (c *CLI) imageCommand() *cobra.Command {
	var opts imageOpts

	cmd := &cobra.Command{
		Use:   "image DATA",
		Short: "Render a matrix data file as an image",
		Long: `Render a matrix data file as an image spanning the x and y ranges.

Both --xrange and --yrange are required. The color range defaults to the
observed data extent; --percentile scales that extent and takes precedence
over a fixed --cbrange.`,
		Example: `  gplot image detector.dat --xrange 0:10 --yrange 0:5 --percentile 0:0.8 -o detector.png`,
		Args:    cobra.ExactArgs(1),
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
	cmd.Flags().StringVar(&opts.percentile, "percentile", "", "color range as multipliers LO:HI of the data min and max")
	cmd.Flags().StringVar(&opts.cbrange, "cbrange", "", "fixed color range MIN:MAX")
	cmd.Flags().StringVar(&opts.cblabel, "cblabel", "", "color bar label")

	return cmd
}

// build assembles the image figure from the flags.
func (o *imageOpts) build(data string) (*figure.Figure, error) {
	fig, err := o.newFigure(data)
	if err != nil {
		return nil, err
	}

	var imgOpts []figure.ImageOption
	if o.percentile != "" {
		p, err := parsePair(o.percentile)
		if err != nil {
			return nil, fmt.Errorf("--percentile: %w", err)
		}
		imgOpts = append(imgOpts, figure.WithPercentileRange(p[0], p[1]))
	}
	if o.cbrange != "" {
		r, err := parsePair(o.cbrange)
		if err != nil {
			return nil, fmt.Errorf("--cbrange: %w", err)
		}
		imgOpts = append(imgOpts, figure.WithColorbarRange(r[0], r[1]))
	}
	if o.cblabel != "" {
		imgOpts = append(imgOpts, figure.WithColorbarLabel(o.cblabel))
	}

	if err := fig.AddImage(imgOpts...); err != nil {
		return nil, err
	}
	return fig, nil
}
