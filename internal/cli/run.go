package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gplot/pkg/figfile"
	"github.com/matzehuels/gplot/pkg/render"
)

// runCommand creates the run command for TOML figure descriptions.
//
// An [output] table in the file selects a file export; --output and --format
// override it. A relative [output] file is resolved against the directory of
// the description, like the data path.
func (c *CLI) runCommand() *cobra.Command {
	var opts outputOpts

	cmd := &cobra.Command{
		Use:   "run FIGURE.toml",
		Short: "Build a figure from a TOML description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			desc, err := figfile.Load(args[0])
			if err != nil {
				return err
			}
			if len(desc.Undecoded) > 0 {
				printWarning("Ignoring unknown keys in %s: %s", args[0], strings.Join(desc.Undecoded, ", "))
			}
			logger.Debug("loaded figure file", "path", args[0], "data", desc.DataPath(), "series", len(desc.Series))

			fig, err := desc.Figure()
			if err != nil {
				return err
			}

			if desc.Output != nil && !opts.exports() {
				opts.output = desc.OutputPath()
				opts.format = desc.Output.Format
				if opts.output == "" && opts.format == "" {
					opts.output = render.DefaultFileName
				}
			}
			return c.dispatch(ctx, cmd.OutOrStdout(), fig, &opts)
		},
	}

	opts.register(cmd)
	return cmd
}
