package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(a *app) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check backend health",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if detailed {
				report, err := a.health.Detailed(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Overall: %s\n", report.OverallStatus)
				for _, check := range report.HealthChecks {
					fmt.Fprintf(out, "  %-12s %s", check.Component, check.Status)
					if check.Details != "" {
						fmt.Fprintf(out, "  (%s)", check.Details)
					}
					fmt.Fprintln(out)
				}
				return nil
			}

			report, err := a.health.Basic(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s  version %s (%s)\n", report.Status, report.Version, report.Environment)
			return nil
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "per-component health report")

	return cmd
}
