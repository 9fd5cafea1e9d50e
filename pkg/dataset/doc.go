// Package dataset validates and summarizes the tabular text files gnuplot
// reads its data from.
//
// A data file holds whitespace-separated columns. Lines starting with "#"
// are comments; blank lines separate data blocks. [Open] checks a file at
// assignment time so that a figure never references a missing or empty data
// source:
//
//	src, err := dataset.Open("mydata.dat")
//	if errors.Is(err, errors.ErrCodeFileNotFound) { ... }
//
// [Source.Summary] and [Source.ColumnSummary] report the observed extent of
// the numeric values, which the image mode uses for its color scale.
//
// [ImportXLSX] converts one sheet of a spreadsheet into such a file.
package dataset
