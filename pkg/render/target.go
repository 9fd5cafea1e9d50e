package render

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/gplot/pkg/errors"
	"github.com/matzehuels/gplot/pkg/platform"
	"github.com/matzehuels/gplot/pkg/script"
)

// Mode is the render mode of a target.
type Mode string

const (
	ModeInteractive Mode = "interactive"
	ModeFile        Mode = "file"
)

// Format is a file export format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// DefaultFormat is used when neither the file name nor the caller names one.
const DefaultFormat = FormatPNG

// DefaultFileName is used when the caller passes an empty file name.
const DefaultFileName = "myfigure"

var terminals = map[Format]string{
	FormatPDF: "pdfcairo",
	FormatPNG: "pngcairo",
	FormatSVG: "svg enhanced",
}

// Formats returns the supported export formats.
func Formats() []Format {
	return []Format{FormatPDF, FormatPNG, FormatSVG}
}

// FormatList returns the supported export formats as a comma-separated list.
func FormatList() string {
	names := make([]string, 0, len(terminals))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// ParseFormat normalizes a format name. It reports false for unsupported
// names.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	_, ok := terminals[f]
	return f, ok
}

// Target is a resolved render destination.
type Target struct {
	mode   Mode
	viewer platform.Viewer
	format Format
	path   string
}

// Interactive targets a viewer window.
func Interactive(viewer platform.Viewer) Target {
	return Target{mode: ModeInteractive, viewer: viewer}
}

// File targets an output file. See the package documentation for how the
// format is chosen.
func File(filename, format string) (Target, error) {
	name := filename
	if strings.TrimSpace(name) == "" {
		name = DefaultFileName
	}

	base := name
	var chosen Format
	if ext := filepath.Ext(name); ext != "" {
		if f, ok := ParseFormat(strings.TrimPrefix(ext, ".")); ok {
			chosen = f
			base = strings.TrimSuffix(name, ext)
		}
	}

	if strings.TrimSpace(format) != "" {
		f, ok := ParseFormat(format)
		if !ok {
			return Target{}, errors.New(errors.ErrCodeUnsupportedFormat,
				"unsupported format %q (supported: %s)", format, FormatList())
		}
		chosen = f
	}
	if chosen == "" {
		chosen = DefaultFormat
	}

	path := base + "." + string(chosen)
	if err := errors.ValidateOutputPath(path); err != nil {
		return Target{}, err
	}
	return Target{mode: ModeFile, format: chosen, path: path}, nil
}

// Mode returns the render mode.
func (t Target) Mode() Mode { return t.mode }

// Viewer returns the viewer of an interactive target.
func (t Target) Viewer() platform.Viewer { return t.viewer }

// Format returns the export format of a file target.
func (t Target) Format() Format { return t.format }

// Path returns the output path of a file target.
func (t Target) Path() string { return t.path }

// TerminalName returns the gnuplot terminal type for the target.
func (t Target) TerminalName() string {
	if t.mode == ModeFile {
		return terminals[t.format]
	}
	return string(t.viewer)
}

// Preamble returns the terminal declaration, annotated with the font when
// both family and size are known, followed by the output directive for
// file targets.
func (t Target) Preamble(font string, fontSize int) []script.Directive {
	ds := []script.Directive{script.Terminal{Name: t.TerminalName(), Font: font, FontSize: fontSize}}
	if t.mode == ModeFile {
		ds = append(ds, script.Output{Path: t.path})
	}
	return ds
}
