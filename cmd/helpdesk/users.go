package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helpdeskhq/helpdesk-go/pkg/helpdesk"
)

func newUsersCmd(a *app) *cobra.Command {
	var role int

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			var filter *helpdesk.UserRole
			if role > 0 {
				r := helpdesk.UserRole(role)
				filter = &r
			}

			users, err := a.users.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderUserList(users))
			return nil
		},
	}

	cmd.Flags().IntVar(&role, "role", 0, "filter by role (1=customer 2=agent 3=admin)")

	return cmd
}
