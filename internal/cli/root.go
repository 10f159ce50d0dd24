/*
PURPOSE:
  Defines the root Cobra command for the roman-converter CLI.
  Handles global flags, config loading and logger setup.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface: <operation> <value>.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Root without arguments is an error, not a help screen (non-zero exit).

ARCHITECTURE INTEGRATION:
  - Called by: cmd/roman-converter/main.go
  - Calls: Child commands (intToRoman, romanToInt, batch, list-symbols)

ERROR HANDLING:
  - Errors are silenced here and returned to main.go, which prints them
    once and sets the exit code.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Config is loaded once in PersistentPreRunE and shared through `loaded`.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/roman-converter/main.go
  - internal/config/config.go
*/

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/roman-converter/internal/config"
	"github.com/daryltucker/roman-converter/internal/convert"
	"github.com/daryltucker/roman-converter/internal/output"
)

// ErrMissingOperation is returned when no operation is given.
var ErrMissingOperation = errors.New("missing operation")

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile   string
	logLevel  string
	logFormat string

	// loaded is the effective configuration for the running command.
	loaded *config.Config

	rootCmd = &cobra.Command{
		Use:   "roman-converter",
		Short: "Convert between integers and Roman numerals",
		Long: `Converts decimal integers to canonical Roman numerals and back.

Operations:
  intToRoman <integer>   e.g. 3497 -> MMMCDXCVII
  romanToInt <numeral>   e.g. cv -> 105 (case-insensitive)`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("%w: expected %s or %s", ErrMissingOperation, convert.OpIntToRoman, convert.OpRomanToInt)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if err := output.Configure(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	output.Logger.Debug("Configuration loaded", "config", cfgFile, "log_level", cfg.LogLevel)

	loaded = cfg
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./roman.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
}
