// Package style defines the fixed line-style palette applied to figures that
// do not use gnuplot's own default styling.
//
// The palette holds six descriptors with 1-based indices. Series consume
// indices two at a time (a primary line and an error-bar companion), so the
// palette repeats its colors in a deterministic way across series.
package style

// Descriptor is an immutable line-style definition.
type Descriptor struct {
	Index     int     // 1-based style index referenced by "ls N"
	Width     float64 // line width
	PointType int     // gnuplot point type
	PointSize float64 // point size multiplier
	Color     string  // "#rrggbb"
}

// Default font applied together with the palette when the caller has not
// chosen one.
const (
	DefaultFont     = "Helvetica"
	DefaultFontSize = 14
)

var palette = [...]Descriptor{
	{Index: 1, Width: 2, PointType: 7, PointSize: 0.7, Color: "#1f17f4"},
	{Index: 2, Width: 2, PointType: 5, PointSize: 0.7, Color: "#ffa40e"},
	{Index: 3, Width: 2, PointType: 9, PointSize: 0.7, Color: "#ff3487"},
	{Index: 4, Width: 2, PointType: 11, PointSize: 0.7, Color: "#008b00"},
	{Index: 5, Width: 2, PointType: 13, PointSize: 0.7, Color: "#17becf"},
	{Index: 6, Width: 2, PointType: 15, PointSize: 0.7, Color: "#850085"},
}

// Table returns the default palette in index order.
// The returned slice is a copy.
func Table() []Descriptor {
	out := make([]Descriptor, len(palette))
	copy(out, palette[:])
	return out
}

// Primary returns the style index of the n-th series (0-based).
func Primary(n int) int { return 2*n + 1 }

// ErrorBar returns the style index used for the error bars of the n-th series.
func ErrorBar(n int) int { return Primary(n) + 1 }
