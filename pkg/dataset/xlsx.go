package dataset

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/gplot/pkg/errors"
)

// missingValue is written for empty cells; gnuplot treats it as undefined.
const missingValue = "NaN"

// ImportXLSX converts one sheet of the spreadsheet at src into a
// whitespace-delimited data file at dst and opens the result.
//
// An empty sheet name selects the first sheet. An empty dst writes next to
// src with a ".dat" extension. Rows that contain non-numeric cells are
// written as comments, so a header row survives as documentation. Short
// rows are padded with NaN to the widest row.
func ImportXLSX(src, sheet, dst string) (Source, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return Source{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "spreadsheet %q does not exist", src)
	}

	f, err := excelize.OpenFile(src)
	if err != nil {
		return Source{}, errors.Wrap(errors.ErrCodeUnreadableData, err, "open spreadsheet %q", src)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Source{}, errors.Wrap(errors.ErrCodeUnreadableData, err, "read sheet %q of %q", sheet, src)
	}

	if dst == "" {
		dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".dat"
	}
	if err := errors.ValidateOutputPath(dst); err != nil {
		return Source{}, err
	}
	if err := writeRows(dst, src, sheet, rows); err != nil {
		return Source{}, err
	}
	return Open(dst)
}

func writeRows(dst, src, sheet string, rows [][]string) error {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %q", dst)
	}
	w := bufio.NewWriter(out)

	w.WriteString(CommentPrefix + " imported from " + filepath.Base(src) + " [" + sheet + "]\n")
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		if !isNumeric(row) {
			w.WriteString(CommentPrefix + " " + strings.Join(row, " ") + "\n")
			continue
		}
		cells := make([]string, width)
		for i := range cells {
			cells[i] = missingValue
			if i < len(row) && strings.TrimSpace(row[i]) != "" {
				cells[i] = strings.TrimSpace(row[i])
			}
		}
		w.WriteString(strings.Join(cells, " ") + "\n")
	}

	if err := w.Flush(); err != nil {
		out.Close()
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %q", dst)
	}
	return out.Close()
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func isNumeric(row []string) bool {
	for _, c := range row {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			return false
		}
	}
	return true
}
