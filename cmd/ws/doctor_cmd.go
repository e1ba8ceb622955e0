package main

import (
	"github.com/spf13/cobra"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Short:   "Run the workstation verification report",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Run the bootstrap repo's workstation verification script
(scripts/verify_workstation.sh) and stream its report.

The script's exit status becomes ws's exit status. If the script is
missing, ws exits with status 2 without running anything.`,
		Example: `  ws doctor                       # Verify this workstation
  ws --root ~/src/bootstrap doctor  # Use another bootstrap checkout`,
		RunE: func(c *cobra.Command, args []string) error {
			return runDoctor(c.Context(), a)
		},
	}
}
