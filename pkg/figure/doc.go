// Package figure accumulates plot configuration and series across repeated
// calls and compiles them into a single gnuplot program.
//
// # Overview
//
// A [Figure] holds three ordered segments:
//
//   - the config segment: style, title, range and label directives
//   - the user segment: raw statements added with [Figure.AddUserCommand]
//   - the plot segment: one clause per series, joined by ", "
//
// [Figure.Compile] concatenates a caller-supplied preamble (the terminal and
// output directives chosen by the render package), the config segment, the
// user segment and the plot statement. Compiling does not change what a
// later compile produces, so the same figure can be shown and then saved.
//
// # Phases
//
// A figure starts in [PhaseEmpty]. The first series added moves it to
// [PhaseComposing] and snapshots the current configuration into the config
// segment; settings changed afterwards do not reach the program until
// [Figure.Clear] is called. [Figure.Compile] moves it to [PhaseCompiled];
// adding another series moves it back to [PhaseComposing].
//
// # Series
//
// XY series consume style indices two at a time: the n-th series (0-based)
// draws with style 2n+1, and its error bars, if any, with 2n+2. Series
// without an explicit label get the lowest unused "Data N" label. Series with
// error bars render the bars without a legend entry followed by a dashed
// line+point echo that carries the label.
//
// Image series render a matrix data file as a color map. They require both
// axis ranges and cannot be mixed with XY series on the same figure.
//
//	fig := figure.New()
//	if err := fig.SetDataSource("mydata.dat"); err != nil {
//	    return err
//	}
//	fig.SetTitle("My fancy plot")
//	fig.SetXLabel("angle (rad)")
//	_ = fig.AddXY(0, 1, figure.WithYError(5), figure.WithLabel("sin"))
//	_ = fig.AddXY(0, 2)
//	prog, err := fig.Compile(script.Terminal{Name: "pngcairo"}, script.Output{Path: "out.png"})
//
// A Figure is not safe for concurrent use.
package figure
