// Package pkg provides the core libraries of gplot, a figure builder that
// drives gnuplot.
//
// # Overview
//
// gplot accumulates figure configuration and data series across repeated
// calls and compiles them into one gnuplot command program, which is then
// run as a subordinate process to show the figure in a viewer window or
// export it to a file. The pkg directory is organized into three areas:
//
//  1. Composition - [style], [script], [figure]
//  2. Dispatch - [render], [engine], [platform]
//  3. Inputs - [dataset], [figfile]
//
// # Architecture
//
// The typical data flow through gplot:
//
//	data file / spreadsheet / TOML description
//	         ↓
//	    [dataset] package (validate, summarize, import)
//	         ↓
//	    [figure] package (configuration, series, phases)
//	         ↓
//	    [script] package (typed directives, one serializer)
//	         ↓
//	    [render] package (terminal and output preamble)
//	         ↓
//	    [engine] package (gnuplot -e / -p -e)
//
// # Quick Start
//
// Plot two columns with error bars and export a PDF:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/gplot/pkg/engine"
//	    "github.com/matzehuels/gplot/pkg/figure"
//	    "github.com/matzehuels/gplot/pkg/render"
//	)
//
//	fig := figure.New(figure.WithTimeout(10 * time.Second))
//	if err := fig.SetDataSource("results.dat"); err != nil {
//	    return err
//	}
//	fig.SetTitle("Throughput")
//	_ = fig.AddXY(0, 1, figure.WithYError(2), figure.WithLabel("run A"))
//
//	r := render.New(engine.NewGnuplot())
//	program, err := r.Save(context.Background(), fig, "throughput", "pdf")
//
// # Main Packages
//
// [style] - The fixed six-entry line style palette and the style index
// arithmetic (primary 2n+1, error bars 2n+2).
//
// [script] - gnuplot directives and plot clauses as typed records, rendered
// by a single serializer that handles quoting and terminators.
//
// [figure] - The per-plot aggregate: validated setters, XY and image series,
// the Empty → Composing → Compiled phase machine and the compiler.
//
// [render] - Render targets (interactive viewer or pdf/png/svg file) and the
// dispatcher that hands compiled programs to an engine runner.
//
// [engine] - gnuplot process invocation with stderr capture and timeouts.
//
// [platform] - Default interactive terminal per operating system.
//
// [dataset] - Data source validation, min/max/mean summaries and spreadsheet
// import.
//
// [figfile] - Figure descriptions in TOML.
//
// ## Infrastructure
//
// [errors] - Coded errors grouped into validation, resource, precondition,
// process and internal kinds.
//
// [observability] - Hooks for metrics and tracing of render invocations.
//
// [buildinfo] - Version information set through ldflags.
//
// [style]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/style
// [script]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/script
// [figure]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/figure
// [render]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/render
// [engine]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/engine
// [platform]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/platform
// [dataset]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/dataset
// [figfile]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/figfile
// [errors]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/gplot/pkg/buildinfo
package pkg
