/*
PURPOSE:
  Defines the 'batch' subcommand.
  Converts a file (or stdin) of "<operation> <value>" lines.

REQUIREMENTS:
  User-specified:
  - Convert many values at once.
  - specific flags for overrides.

  Implementation-discovered:
  - Apply flag overrides to the loaded config.
  - "-" means stdin.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config (via root setup)

ERROR HANDLING:
  - Returns error if input cannot be opened or the engine run fails.
  - A run with failed lines still reports them as a non-zero exit.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Config (root) -> Override -> Engine.Run.

USAGE:
  roman-converter batch -i values.txt -o ./out

RELATED FILES:
  - internal/cli/root.go
  - internal/engine/runner.go
*/

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/roman-converter/internal/engine"
)

var (
	inputOverride  string
	outputOverride string
	stopOnError    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert many values from a file or stdin",
	Long: `Reads one conversion per line in the form "<operation> <value>",
where operation is intToRoman or romanToInt. Blank lines and lines starting
with '#' are ignored.

Every result, including failures, is written to a CSV file and a JSON Lines
file in the output directory. Failed lines do not stop the run unless
--stop-on-error is set.`,
	Example: `  # Convert a file, results in ./out
  roman-converter batch -i values.txt -o ./out

  # Read from stdin and abort on the first bad line
  printf 'intToRoman 37\nromanToInt MMXXIV\n' | roman-converter batch --stop-on-error`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *loaded

		// Overrides
		if inputOverride != "" {
			cfg.InputFile = inputOverride
		}
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if stopOnError {
			cfg.StopOnError = true
		}

		var in io.Reader = cmd.InOrStdin()
		if cfg.InputFile != "-" {
			f, err := os.Open(cfg.InputFile)
			if err != nil {
				return fmt.Errorf("failed to open input file: %w", err)
			}
			defer f.Close()
			in = f
		}

		sum, err := engine.Run(&cfg, in)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d converted, %d failed\n", sum.Succeeded, sum.Failed)
		if sum.Failed > 0 {
			return fmt.Errorf("%d of %d conversions failed", sum.Failed, sum.Total)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&inputOverride, "input", "i", "", "Input file with one \"<operation> <value>\" per line (- for stdin)")
	batchCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for results (CSV/JSON)")
	batchCmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Abort on the first failed conversion")
}
