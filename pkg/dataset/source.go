package dataset

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/matzehuels/gplot/pkg/errors"
)

// CommentPrefix starts a comment line in a data file.
const CommentPrefix = "#"

// Source is a validated reference to a data file.
type Source struct {
	Path    string // file path as given by the caller
	Columns int    // field count of the first data line
}

// Summary describes the numeric values observed in a data source.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

// Open validates path as a data source. It fails with FILE_NOT_FOUND when
// the file does not exist and with EMPTY_DATA when no non-comment line
// carries at least one field.
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Source{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "data source %q does not exist", path)
	}
	if err != nil {
		return Source{}, errors.Wrap(errors.ErrCodeUnreadableData, err, "open data source %q", path)
	}
	defer f.Close()

	cols := 0
	err = scanRecords(f, func(fields []string) bool {
		cols = len(fields)
		return false
	})
	if err != nil {
		return Source{}, errors.Wrap(errors.ErrCodeUnreadableData, err, "read data source %q", path)
	}
	if cols < 1 {
		return Source{}, errors.New(errors.ErrCodeEmptyData, "0 columns detected in data source %q", path)
	}
	return Source{Path: path, Columns: cols}, nil
}

// Summary returns min, max and mean over every finite numeric field in the
// file. This matches how gnuplot's matrix mode sees an image file.
func (s Source) Summary() (Summary, error) {
	return s.summarize(func(fields []string) []string { return fields })
}

// ColumnSummary returns min, max and mean over the 0-based column col.
// Lines too short to hold the column are skipped.
func (s Source) ColumnSummary(col int) (Summary, error) {
	if err := errors.ValidateColumn("summary", col); err != nil {
		return Summary{}, err
	}
	return s.summarize(func(fields []string) []string {
		if col >= len(fields) {
			return nil
		}
		return fields[col : col+1]
	})
}

func (s Source) summarize(pick func([]string) []string) (Summary, error) {
	f, err := os.Open(s.Path)
	if os.IsNotExist(err) {
		return Summary{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "data source %q does not exist", s.Path)
	}
	if err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeUnreadableData, err, "open data source %q", s.Path)
	}
	defer f.Close()

	var values stats.Float64Data
	err = scanRecords(f, func(fields []string) bool {
		for _, field := range pick(fields) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			values = append(values, v)
		}
		return true
	})
	if err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeUnreadableData, err, "read data source %q", s.Path)
	}
	if len(values) == 0 {
		return Summary{}, errors.New(errors.ErrCodeEmptyData, "no numeric values in data source %q", s.Path)
	}

	lo, err := values.Min()
	if err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "min of %q", s.Path)
	}
	hi, err := values.Max()
	if err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "max of %q", s.Path)
	}
	mean, err := values.Mean()
	if err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "mean of %q", s.Path)
	}
	return Summary{Min: lo, Max: hi, Mean: mean, Count: values.Len()}, nil
}

// scanRecords calls fn with the fields of every data line until fn returns
// false. Comment and blank lines are skipped.
func scanRecords(r io.Reader, fn func(fields []string) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], CommentPrefix) {
			continue
		}
		if !fn(fields) {
			break
		}
	}
	return sc.Err()
}
