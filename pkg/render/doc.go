// Package render dispatches compiled figures to gnuplot.
//
// # Overview
//
// A [Target] describes where a figure goes: an interactive viewer window or
// a file in one of the supported formats. The target contributes the program
// preamble (terminal and output directives); the figure contributes the rest.
//
//	target, err := render.File("plot.svg", "")
//	program, err := render.Program(fig, target)
//
// # Renderer
//
// [Renderer] ties a target to an [engine.Runner]:
//
//	r := render.New(engine.NewGnuplot(), render.WithLogger(logger))
//	_, err := r.Show(ctx, fig)                    // persistent viewer, no timeout
//	_, err = r.Save(ctx, fig, "results", "pdf")   // results.pdf, bounded by fig.Timeout()
//
// Interactive invocations pass "-p" so the window outlives gnuplot and
// ignore the figure timeout. File exports run with the figure timeout; the
// caller's context cancels both.
//
// # Formats
//
// File names with a recognized extension (pdf, png, svg) select the format
// and have the extension stripped before the chosen one is appended. An
// explicit format argument wins over the extension. Anything else is
// rejected with UNSUPPORTED_FORMAT before any process is started.
//
// [engine.Runner]: github.com/matzehuels/gplot/pkg/engine.Runner
package render
