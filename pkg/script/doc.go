// Package script models a gnuplot command program as a list of typed
// directive records and renders it with a single serializer.
//
// # Overview
//
// A program is an ordered slice of [Directive] values. Each directive knows
// how to print itself without a statement terminator; [Render] joins them and
// appends the ";" terminator to every statement. The [Plot] directive holds
// an ordered list of [Clause] values that are joined by ", " so the plot
// statement can never carry empty, leading or trailing commas.
//
//	prog := script.Render(
//	    script.Terminal{Name: "pngcairo", Font: "Helvetica", FontSize: 14},
//	    script.Output{Path: "plot.png"},
//	    script.Title{Text: "T"},
//	    script.Plot{Clauses: []script.Clause{
//	        script.XYClause{
//	            File: "d.dat", X: 1, Y: 2, XScale: 1, YScale: 1,
//	            XErr: script.NoColumn, YErr: script.NoColumn,
//	            Style: 1, Marks: script.LinesPoints, Title: "A",
//	        },
//	    }},
//	)
//
// Text arguments are quoted with [Quote], which applies gnuplot's
// double-quote escaping. Numbers are printed with [Num].
//
// The package does not check gnuplot's grammar: [Raw] and [RawClause]
// carry caller text through unchanged apart from terminator trimming.
package script
