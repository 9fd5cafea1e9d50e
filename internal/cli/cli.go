package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gplot/pkg/buildinfo"
	"github.com/matzehuels/gplot/pkg/engine"
	"github.com/matzehuels/gplot/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "gplot"

	// envExecutable overrides the gnuplot binary.
	envExecutable = "GPLOT_GNUPLOT"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	runner engine.Runner
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		runner: engine.NewGnuplot(engine.WithExecutable(os.Getenv(envExecutable))),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "gplot builds gnuplot figures from data files",
		Long: `gplot is a CLI tool for plotting whitespace-delimited data files with gnuplot.
It composes a complete gnuplot program from flags or a TOML figure file and either
opens it in a viewer window or exports it to PDF, PNG or SVG.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.plotCommand())
	root.AddCommand(c.imageCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Renderer Factory
// =============================================================================

// newRenderer creates a render dispatcher bound to the CLI's engine runner.
func (c *CLI) newRenderer(ctx context.Context) *render.Renderer {
	return render.New(c.runner, render.WithLogger(loggerFromContext(ctx)))
}
