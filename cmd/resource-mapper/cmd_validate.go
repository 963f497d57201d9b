package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resource-mapper/internal/diagnostic"
	"resource-mapper/internal/mapping"
	"resource-mapper/internal/providers"
)

var validateConfig string

var validateCmd = &cobra.Command{
	Use:   "validate --config mapping.yaml",
	Short: "Check a YAML mapping file",
	Long: `Loads and compiles a mapping file, printing every diagnostic found.
Transforms registered by the built-in providers may be referenced.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateConfig, "config", "c", "", "Path to the YAML mapping file")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	mf, err := mapping.LoadFile(validateConfig)
	if err != nil {
		return err
	}

	tree, diags := mapping.Compile(mf, providers.Registry())

	out := cmd.OutOrStdout()
	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
		for _, d := range group {
			fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
		}
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("%s: %d error(s)", validateConfig, len(diags.Errors))
	}

	logger.Debug("Mapping file is valid",
		zap.String("config", validateConfig),
		zap.String("provider", mf.Provider),
		zap.Int("entries", len(tree)))
	fmt.Fprintf(out, "%s: ok (%d top-level entries)\n", validateConfig, len(tree))

	return nil
}
