package cmd

import (
	"github.com/gitwrap/gitwrap/core"
	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/spf13/cobra"
)

var yearCmd = &cobra.Command{
	Use:   "year",
	Short: "Generate a year-in-code report for the authenticated user",
	Long: `Generate a year-in-code report for the authenticated user.

Aggregates push activity, work/life balance, commit-message persona,
dependency profile, and the most forgotten repository for a calendar year.

Examples:

  # Report on the current year
  gitwrap year

  # Report on a specific year as JSON
  gitwrap year --year 2025 --output json

  # Write a CSV report to a file
  gitwrap year --output csv --output-file wrapped.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		if err := core.ExecuteWrapped(cmd.Context(), cfg, client); err != nil {
			contract.LogFatal("could not build your year in code", err)
		}
	},
}
