// Package figfile reads figure descriptions from TOML files.
//
// A description names a data source, the figure configuration and either a
// list of XY series or one image series:
//
//	data = "results.dat"
//	title = "Throughput"
//	xlabel = "time [s]"
//	xrange = [0, 10]
//	timeout = 5.0
//
//	[[series]]
//	x = 0
//	y = 1
//	yerr = 2
//	label = "run A"
//
//	[output]
//	file = "throughput.pdf"
//
// Relative data and output paths are resolved against the directory of the
// description file. An [output] table without a file name exports to the
// default file name in the working directory. Keys that do not map to any field are reported in [File.Undecoded]
// so callers can warn about typos.
package figfile

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gplot/pkg/errors"
	"github.com/matzehuels/gplot/pkg/figure"
)

// File is a decoded figure description.
type File struct {
	Data         string    `toml:"data"`
	Title        string    `toml:"title"`
	XLabel       string    `toml:"xlabel"`
	YLabel       string    `toml:"ylabel"`
	XRange       []float64 `toml:"xrange"`
	YRange       []float64 `toml:"yrange"`
	Font         string    `toml:"font"`
	FontSize     int       `toml:"font_size"`
	Timeout      float64   `toml:"timeout"` // seconds
	DefaultStyle bool      `toml:"default_style"`
	Commands     []string  `toml:"commands"`
	Plots        []string  `toml:"plots"`
	Series       []Series  `toml:"series"`
	Image        *Image    `toml:"image"`
	Output       *Output   `toml:"output"`

	// Undecoded lists keys present in the input that no field consumed.
	Undecoded []string `toml:"-"`

	dir string
}

// Series is one [[series]] table.
type Series struct {
	X      int      `toml:"x"`
	Y      int      `toml:"y"`
	XErr   *int     `toml:"xerr"`
	YErr   *int     `toml:"yerr"`
	Label  string   `toml:"label"`
	XScale *float64 `toml:"xscale"`
	YScale *float64 `toml:"yscale"`
	With   string   `toml:"with"`
}

// Image is the [image] table.
type Image struct {
	Percentile []float64 `toml:"percentile"`
	CBRange    []float64 `toml:"cbrange"`
	CBLabel    string    `toml:"cblabel"`
}

// Output is the [output] table. An absent table means interactive display.
type Output struct {
	File   string `toml:"file"`
	Format string `toml:"format"`
}

// Load reads and decodes the description at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "figure file %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeUnreadableData, err, "open figure file %s", path)
	}
	defer fh.Close()
	return Decode(fh, filepath.Dir(path))
}

// Decode reads a description from r. Relative data and output paths are
// resolved against dir.
func Decode(r io.Reader, dir string) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode figure file")
	}
	for _, key := range md.Undecoded() {
		f.Undecoded = append(f.Undecoded, key.String())
	}
	f.dir = dir
	return &f, nil
}

// DataPath returns the data source path resolved against the description's
// directory.
func (f *File) DataPath() string { return f.resolve(f.Data) }

// OutputPath returns the [output] file name resolved against the
// description's directory. It is empty when no file is named.
func (f *File) OutputPath() string {
	if f.Output == nil {
		return ""
	}
	return f.resolve(f.Output.File)
}

func (f *File) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || f.dir == "" {
		return p
	}
	return filepath.Join(f.dir, p)
}

// Figure builds a new figure from the description.
func (f *File) Figure(opts ...figure.Option) (*figure.Figure, error) {
	fig := figure.New(opts...)
	if err := f.Apply(fig); err != nil {
		return nil, err
	}
	return fig, nil
}

// Apply replays the description onto fig: data source, style choice,
// configuration, user commands, then series.
func (f *File) Apply(fig *figure.Figure) error {
	if f.Data == "" {
		return errors.New(errors.ErrCodeInvalidInput, "figure file has no data source")
	}
	if len(f.Series) > 0 && f.Image != nil {
		return errors.New(errors.ErrCodeModeConflict, "figure file mixes [[series]] and [image]")
	}
	if err := fig.SetDataSource(f.DataPath()); err != nil {
		return err
	}
	fig.SetUseDefaultStyle(f.DefaultStyle)

	if f.XRange != nil {
		if err := fig.SetXRange(f.XRange...); err != nil {
			return err
		}
	}
	if f.YRange != nil {
		if err := fig.SetYRange(f.YRange...); err != nil {
			return err
		}
	}
	fig.SetTitle(f.Title)
	fig.SetXLabel(f.XLabel)
	fig.SetYLabel(f.YLabel)
	if f.Font != "" {
		fig.SetFont(f.Font)
	}
	if f.FontSize != 0 {
		if err := fig.SetFontSize(f.FontSize); err != nil {
			return err
		}
	}
	if f.Timeout > 0 {
		fig.SetTimeout(time.Duration(f.Timeout * float64(time.Second)))
	}

	for _, cmd := range f.Commands {
		if err := fig.AddUserCommand(cmd); err != nil {
			return err
		}
	}
	for i, s := range f.Series {
		opts, err := s.options()
		if err != nil {
			return errors.Wrap(errors.GetCode(err), err, "series %d", i+1)
		}
		if err := fig.AddXY(s.X, s.Y, opts...); err != nil {
			return err
		}
	}
	for _, p := range f.Plots {
		if err := fig.AddUserPlot(p); err != nil {
			return err
		}
	}
	if f.Image != nil {
		opts, err := f.Image.options()
		if err != nil {
			return err
		}
		if err := fig.AddImage(opts...); err != nil {
			return err
		}
	}
	return nil
}

func (s Series) options() ([]figure.SeriesOption, error) {
	var opts []figure.SeriesOption
	if s.XErr != nil {
		opts = append(opts, figure.WithXError(*s.XErr))
	}
	if s.YErr != nil {
		opts = append(opts, figure.WithYError(*s.YErr))
	}
	if s.Label != "" {
		opts = append(opts, figure.WithLabel(s.Label))
	}
	if s.XScale != nil {
		opts = append(opts, figure.WithXScale(*s.XScale))
	}
	if s.YScale != nil {
		opts = append(opts, figure.WithYScale(*s.YScale))
	}
	if s.With != "" {
		m, err := ParseMarks(s.With)
		if err != nil {
			return nil, err
		}
		opts = append(opts, figure.WithMarks(m))
	}
	return opts, nil
}

func (im Image) options() ([]figure.ImageOption, error) {
	var opts []figure.ImageOption
	if im.Percentile != nil {
		if len(im.Percentile) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidArity, "image percentile needs 2 values, got %d", len(im.Percentile))
		}
		opts = append(opts, figure.WithPercentileRange(im.Percentile[0], im.Percentile[1]))
	}
	if im.CBRange != nil {
		if len(im.CBRange) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidArity, "image cbrange needs 2 values, got %d", len(im.CBRange))
		}
		opts = append(opts, figure.WithColorbarRange(im.CBRange[0], im.CBRange[1]))
	}
	if im.CBLabel != "" {
		opts = append(opts, figure.WithColorbarLabel(im.CBLabel))
	}
	return opts, nil
}

// ParseMarks maps a plot style name to series marks. It accepts gnuplot's
// long names and abbreviations.
func ParseMarks(s string) (figure.Marks, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linespoints", "lp", "":
		return figure.LinesPoints, nil
	case "lines", "l":
		return figure.Lines, nil
	case "points", "p":
		return figure.Points, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidValue, "unknown plot style %q (want linespoints, lines or points)", s)
	}
}
