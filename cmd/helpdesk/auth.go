package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helpdeskhq/helpdesk-go/pkg/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				var err error
				email, err = prompt(cmd, "Email: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				var err error
				password, err = prompt(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			if err := a.manager.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			if user := a.manager.User(); user != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.FullName, user.Role)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Logged in")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted if omitted)")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.manager.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.manager.State() != session.StateAuthenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			user := a.manager.User()
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Logged in (identity not verified yet)")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", user.FullName, user.Email)
			fmt.Fprintf(out, "Role: %s\n", user.Role)
			if user.Company != "" {
				fmt.Fprintf(out, "Company: %s\n", user.Company)
			}
			return nil
		},
	}
}

func prompt(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("%s must not be empty", strings.TrimSuffix(strings.TrimSpace(label), ":"))
	}
	return value, nil
}
