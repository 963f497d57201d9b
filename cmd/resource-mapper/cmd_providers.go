package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resource-mapper/internal/providers"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List built-in provider mappings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range providers.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	},
}
