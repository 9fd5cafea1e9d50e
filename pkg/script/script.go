package script

import (
	"strconv"
	"strings"

	"github.com/matzehuels/gplot/pkg/style"
)

// Directive is one statement of a gnuplot program.
type Directive interface {
	// Directive returns the statement text without the ";" terminator.
	Directive() string
}

// Render serializes directives in order, terminating each with ";".
// Directives that render to blank text are skipped.
func Render(ds ...Directive) string {
	var b strings.Builder
	for _, d := range ds {
		text := d.Directive()
		if strings.TrimSpace(text) == "" {
			continue
		}
		b.WriteString(text)
		b.WriteByte(';')
	}
	return b.String()
}

// Quote returns s as a gnuplot double-quoted string.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Num formats a float with the shortest representation that round-trips.
func Num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Axis names a plot axis.
type Axis string

const (
	X  Axis = "x"
	Y  Axis = "y"
	CB Axis = "cb"
)

// Terminal selects the output device. Font is only emitted when both the
// family and a positive size are known.
type Terminal struct {
	Name     string
	Font     string
	FontSize int
}

func (t Terminal) Directive() string {
	if t.Font != "" && t.FontSize > 0 {
		return "set terminal " + t.Name + " font " + Quote(t.Font+","+strconv.Itoa(t.FontSize))
	}
	return "set terminal " + t.Name
}

// Output redirects the terminal to a file.
type Output struct{ Path string }

func (o Output) Directive() string { return "set output " + Quote(o.Path) }

// StyleLine defines a line style from the palette.
type StyleLine struct{ style.Descriptor }

func (s StyleLine) Directive() string {
	return "set style line " + strconv.Itoa(s.Index) +
		" lw " + Num(s.Width) +
		" pt " + strconv.Itoa(s.PointType) +
		" ps " + Num(s.PointSize) +
		" lc rgb " + Quote(s.Color)
}

// Title sets the figure title.
type Title struct{ Text string }

func (t Title) Directive() string { return "set title " + Quote(t.Text) }

// AxisRange fixes an axis range.
type AxisRange struct {
	Axis     Axis
	Min, Max float64
}

func (r AxisRange) Directive() string {
	return "set " + string(r.Axis) + "range [" + Num(r.Min) + ":" + Num(r.Max) + "]"
}

// AxisLabel labels an axis. Offset is emitted verbatim when set.
type AxisLabel struct {
	Axis   Axis
	Text   string
	Offset string
}

func (l AxisLabel) Directive() string {
	s := "set " + string(l.Axis) + "label " + Quote(l.Text)
	if l.Offset != "" {
		s += " offset " + l.Offset
	}
	return s
}

// Stats runs gnuplot's statistics pass over a matrix file so STATS_size_x
// and STATS_size_y are defined for the image clause.
type Stats struct{ File string }

func (s Stats) Directive() string {
	return "stats " + Quote(s.File) + " matrix u 3 nooutput"
}

// Format sets the tic label format of an axis.
type Format struct {
	Axis Axis
	Spec string
}

func (f Format) Directive() string { return "set format " + string(f.Axis) + " " + Quote(f.Spec) }

// Tics places an axis' tics outside without mirroring.
type Tics struct{ Axis Axis }

func (t Tics) Directive() string { return "set " + string(t.Axis) + "tics nomirror out" }

// SizeRatio sets the plot aspect ratio; -1 means 1:1 in data units.
type SizeRatio struct{ Ratio float64 }

func (s SizeRatio) Directive() string { return "set size ratio " + Num(s.Ratio) }

// Raw is caller-supplied text passed through unchanged apart from
// surrounding whitespace and trailing terminators.
type Raw struct{ Text string }

func (r Raw) Directive() string {
	return strings.TrimRight(strings.TrimSpace(r.Text), "; \t")
}

// Plot is the single plot statement of a program.
type Plot struct{ Clauses []Clause }

func (p Plot) Directive() string {
	parts := make([]string, 0, len(p.Clauses))
	for _, c := range p.Clauses {
		if text := c.Clause(); text != "" {
			parts = append(parts, text)
		}
	}
	return "plot " + strings.Join(parts, ", ")
}
