// Package main provides the resource-mapper CLI.
//
// resource-mapper flattens nested provider resources into the typed attribute
// rows used by the resources store:
//   - validate checks a YAML mapping file
//   - transform flattens a JSON file of resources into import envelopes
//   - providers lists the built-in provider mappings
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFormatJSON    = "json"
	logFormatConsole = "console"
)

var (
	verbose   bool
	logFormat string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "resource-mapper",
	Short: "Flatten provider resources into typed attribute rows",
	Long: `resource-mapper walks nested provider resources alongside a mapping tree
and emits flat resources: scalar fields plus string, number, boolean,
date-time and reference attribute rows.

Mappings come either from a built-in provider (see "providers") or from a
YAML mapping file (see "validate").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logFormat, verbose)
		if err != nil {
			return err
		}

		logger = l

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logFormatConsole, "Log format: json or console")

	rootCmd.AddCommand(validateCmd, transformCmd, providersCmd)
}

// newLogger builds a stderr logger. Data problems are logged at warn and
// info, so info is the default level.
func newLogger(format string, debug bool) (*zap.Logger, error) {
	var config zap.Config

	switch format {
	case logFormatJSON:
		config = zap.NewProductionConfig()
	case logFormatConsole:
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		config.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown log format %q (expected %s or %s)", format, logFormatJSON, logFormatConsole)
	}

	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return l, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
