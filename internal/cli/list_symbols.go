/*
PURPOSE:
  Defines the 'list-symbols' subcommand.
  Prints the seven numeral letters and their values.

ARCHITECTURE INTEGRATION:
  - Calls: internal/roman.Symbols()

USAGE:
  roman-converter list-symbols
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/roman-converter/internal/roman"
)

var listSymbolsCmd = &cobra.Command{
	Use:   "list-symbols",
	Short: "List Roman numeral symbols and their values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range roman.Symbols() {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d\n", s, s.Value())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listSymbolsCmd)
}
