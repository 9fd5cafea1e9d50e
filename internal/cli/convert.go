package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gplot/pkg/dataset"
)

// convertCommand creates the convert command for spreadsheet import.
func (c *CLI) convertCommand() *cobra.Command {
	var sheet, output string

	cmd := &cobra.Command{
		Use:   "convert BOOK.xlsx",
		Short: "Convert a spreadsheet sheet into a data file",
		Long: `Convert one sheet of an .xlsx workbook into a whitespace-delimited data file.

Header and other non-numeric rows become comments; short rows are padded
with NaN. The output defaults to the workbook name with a .dat extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			src, err := dataset.ImportXLSX(args[0], sheet, output)
			if err != nil {
				return fmt.Errorf("convert %s: %w", args[0], err)
			}
			sum, err := src.Summary()
			if err != nil {
				return err
			}

			printSuccess("Converted %s", args[0])
			printFile(src.Path)
			printSummary(src.Columns, sum)
			printNextStep("Plot it", "gplot plot "+src.Path)
			prog.done("Imported " + src.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name (default: first sheet)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output data file (default: BOOK.dat)")

	return cmd
}
