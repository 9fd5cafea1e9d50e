package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gplot/pkg/figure"
	"github.com/matzehuels/gplot/pkg/platform"
	"github.com/matzehuels/gplot/pkg/render"
)

// outputOpts holds the flags that choose where a figure goes.
type outputOpts struct {
	output   string // output file; selects file export
	format   string // export format: pdf, png, svg
	terminal string // interactive terminal override
	dryRun   bool   // print the program instead of running it
}

func (o *outputOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "export to this file instead of opening a viewer")
	f.StringVarP(&o.format, "format", "f", "",
		fmt.Sprintf("export format: %s (default %s)", render.FormatList(), render.DefaultFormat))
	f.StringVar(&o.terminal, "terminal", "", "interactive terminal (default from $GNUTERM or the OS)")
	f.BoolVar(&o.dryRun, "dry-run", false, "print the gnuplot program and exit")
}

// exports reports whether the flags select a file export.
func (o *outputOpts) exports() bool {
	return o.output != "" || o.format != ""
}

// target resolves the render target. Interactive targets fall back to the
// renderer's viewer.
func (o *outputOpts) target(r *render.Renderer) (render.Target, error) {
	if o.exports() {
		return render.File(o.output, o.format)
	}
	viewer := r.Viewer()
	if o.terminal != "" {
		viewer = platform.Viewer(o.terminal)
	}
	return render.Interactive(viewer), nil
}

// dispatch compiles fig and prints it, shows it or saves it.
func (c *CLI) dispatch(ctx context.Context, out io.Writer, fig *figure.Figure, o *outputOpts) error {
	r := c.newRenderer(ctx)
	target, err := o.target(r)
	if err != nil {
		return err
	}

	if o.dryRun {
		prog, err := render.Program(fig, target)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, prog)
		return err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if target.Mode() == render.ModeInteractive {
		printInfo("Opening %s viewer", target.Viewer())
		if _, err := r.Render(ctx, fig, target); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Sent figure to %s", target.Viewer()))
		return nil
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", target.Path()))
	spinner.Start()
	if _, err := r.Render(ctx, fig, target); err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Saved %s figure", target.Format()))
	printFile(target.Path())
	prog.done("Rendered " + target.Path())
	return nil
}
