package script

import (
	"strconv"
	"strings"
)

// Clause is one comma-separated element of the plot statement.
type Clause interface {
	Clause() string
}

// Marks selects how an XY series is drawn.
type Marks string

const (
	LinesPoints Marks = "lp"
	Lines       Marks = "l"
	Points      Marks = ""
)

// NoColumn marks an absent error column.
const NoColumn = -1

// dashType is the dash pattern of the legend echo drawn over error bars.
const dashType = 3

// XYClause plots column Y against column X of File.
//
// Columns are 0-based here and rendered 1-based. When XErr or YErr is set
// the clause draws error bars without a legend entry; Dashed draws the
// line+point echo that carries the title for such series.
type XYClause struct {
	File           string
	X, Y           int
	XErr, YErr     int
	XScale, YScale float64
	Style          int
	Marks          Marks
	Dashed         bool
	Title          string
}

// HasErrors reports whether the clause draws error bars.
func (c XYClause) HasErrors() bool {
	return c.XErr != NoColumn || c.YErr != NoColumn
}

func (c XYClause) Clause() string {
	var b strings.Builder
	b.WriteString(Quote(c.File))
	b.WriteString(" u (")
	b.WriteString(column(c.X, c.XScale))
	b.WriteString("):(")
	b.WriteString(column(c.Y, c.YScale))
	b.WriteByte(')')

	if c.HasErrors() {
		var with string
		switch {
		case c.XErr != NoColumn && c.YErr != NoColumn:
			b.WriteString(":" + strconv.Itoa(c.XErr+1) + ":" + strconv.Itoa(c.YErr+1))
			with = "xyerrorbars"
		case c.XErr != NoColumn:
			b.WriteString(":" + strconv.Itoa(c.XErr+1))
			with = "xerrorbars"
		default:
			b.WriteString(":" + strconv.Itoa(c.YErr+1))
			with = "yerrorbars"
		}
		b.WriteString(" w " + with + " ls " + strconv.Itoa(c.Style) + " pt -1 notitle")
		return b.String()
	}

	if c.Marks != Points {
		b.WriteString(" w " + string(c.Marks))
	}
	b.WriteString(" ls " + strconv.Itoa(c.Style))
	if c.Dashed {
		b.WriteString(" dt " + strconv.Itoa(dashType))
	}
	b.WriteString(" title " + Quote(c.Title))
	return b.String()
}

func column(col int, scale float64) string {
	return "$" + strconv.Itoa(col+1) + "*" + Num(scale)
}

// ImageClause draws a matrix file as an image, mapping matrix indices onto
// the given axis ranges. It relies on a preceding [Stats] directive.
type ImageClause struct {
	File       string
	XMin, XMax float64
	YMin, YMax float64
}

func (c ImageClause) Clause() string {
	x := "(($1*(" + Num(c.XMax) + "-" + Num(c.XMin) + ")/(STATS_size_x-1))+" + Num(c.XMin) + ")"
	y := "(($2*(" + Num(c.YMax) + "-" + Num(c.YMin) + ")/(STATS_size_y-1))+" + Num(c.YMin) + ")"
	return Quote(c.File) + " u " + x + ":" + y + ":3 matrix w image title \"\""
}

// RawClause is caller-supplied plot text.
type RawClause struct{ Text string }

func (c RawClause) Clause() string { return c.Text }
