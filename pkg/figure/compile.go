package figure

import (
	"github.com/matzehuels/gplot/pkg/errors"
	"github.com/matzehuels/gplot/pkg/script"
)

// Program returns the directive list of the full program: preamble, config
// segment, user segment and plot statement, in that order.
func (f *Figure) Program(preamble ...script.Directive) ([]script.Directive, error) {
	if len(f.plot) == 0 {
		return nil, errors.New(errors.ErrCodeNoSeries, "figure has no series to plot")
	}
	ds := make([]script.Directive, 0, len(preamble)+len(f.config)+len(f.user)+1)
	ds = append(ds, preamble...)
	ds = append(ds, f.config...)
	ds = append(ds, f.user...)
	ds = append(ds, script.Plot{Clauses: append([]script.Clause(nil), f.plot...)})
	return ds, nil
}

// Compile renders the full program text. The preamble is usually the
// terminal and output directives of a render target.
//
// Compiling twice without intervening changes yields identical text.
func (f *Figure) Compile(preamble ...script.Directive) (string, error) {
	ds, err := f.Program(preamble...)
	if err != nil {
		return "", err
	}
	if f.phase == PhaseComposing {
		f.phase = PhaseCompiled
	}
	return script.Render(ds...), nil
}
