package script_test

import (
	"fmt"

	"github.com/matzehuels/gplot/pkg/script"
)

func ExampleRender() {
	prog := script.Render(
		script.Terminal{Name: "pngcairo", Font: "Helvetica", FontSize: 14},
		script.Output{Path: "plot.png"},
		script.Title{Text: `say "hi"`},
		script.Plot{Clauses: []script.Clause{
			script.XYClause{
				File: "d.dat", X: 1, Y: 2, XScale: 1, YScale: 2,
				XErr: script.NoColumn, YErr: script.NoColumn,
				Style: 1, Marks: script.LinesPoints, Title: "A",
			},
			script.RawClause{Text: "x**2"},
		}},
	)
	fmt.Println(prog)
	// Output:
	// set terminal pngcairo font "Helvetica,14";set output "plot.png";set title "say \"hi\"";plot "d.dat" u ($2*1):($3*2) w lp ls 1 title "A", x**2;
}
