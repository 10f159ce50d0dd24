package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/roman-converter/internal/convert"
	"github.com/daryltucker/roman-converter/internal/output"
)

var intToRomanCmd = newConvertCmd(convert.OpIntToRoman,
	"Convert a non-negative integer to a Roman numeral",
	"  roman-converter intToRoman 3497   # Result: MMMCDXCVII")

var romanToIntCmd = newConvertCmd(convert.OpRomanToInt,
	"Convert a Roman numeral to an integer",
	"  roman-converter romanToInt cv     # Result: 105")

func newConvertCmd(op convert.Operation, short, example string) *cobra.Command {
	return &cobra.Command{
		Use:     string(op) + " <value>",
		Short:   short,
		Example: example,
		Args:    exactlyOneValue,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := convert.Run(op, args[0])
			if err != nil {
				return err
			}
			output.Logger.Debug("Converted", "operation", op, "input", args[0], "output", out)
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", loaded.ResultPrefix, out)
			return nil
		},
	}
}

func exactlyOneValue(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("missing value for %s", cmd.Name())
	}
	return fmt.Errorf("%s takes exactly one value, got %d", cmd.Name(), len(args))
}

func init() {
	rootCmd.AddCommand(intToRomanCmd, romanToIntCmd)
}
