package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/helpdeskhq/helpdesk-go/pkg/helpdesk"
)

func newTicketsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Browse and manage tickets",
	}

	cmd.AddCommand(
		newTicketsListCmd(a),
		newTicketsShowCmd(a),
		newTicketsCreateCmd(a),
	)

	return cmd
}

func newTicketsListCmd(a *app) *cobra.Command {
	var (
		status    int
		search    string
		mine      bool
		escalated bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			var filters helpdesk.TicketFilters
			if status > 0 {
				s := helpdesk.TicketStatus(status)
				filters.Status = &s
			}
			filters.Search = search
			if escalated {
				filters.IncludeEscalated = &escalated
			}
			if mine {
				user := a.manager.User()
				if user == nil {
					return fmt.Errorf("identity not available, cannot filter by owner")
				}
				switch user.Role {
				case helpdesk.RoleCustomer:
					filters.CustomerID = &user.ID
				default:
					filters.AgentID = &user.ID
				}
			}

			tickets, err := a.tickets.List(cmd.Context(), filters)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTicketList(tickets))
			return nil
		},
	}

	cmd.Flags().IntVar(&status, "status", 0, "filter by status (1=new 2=in-progress 3=resolved 4=closed)")
	cmd.Flags().StringVar(&search, "search", "", "free-text search")
	cmd.Flags().BoolVar(&mine, "mine", false, "only tickets I own")
	cmd.Flags().BoolVar(&escalated, "escalated", false, "include escalated tickets")

	return cmd
}

func newTicketsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a ticket with comments and triage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("ticket id must be a number: %q", args[0])
			}

			ticket, err := a.tickets.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTicket(ticket))
			return nil
		},
	}
}

func newTicketsCreateCmd(a *app) *cobra.Command {
	var (
		title       string
		description string
		categoryID  int
		blocking    int
		affected    int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			user := a.manager.User()
			if user == nil {
				return fmt.Errorf("identity not available, cannot open a ticket")
			}

			payload := helpdesk.CreateTicket{
				Title:       title,
				Description: description,
				CustomerID:  user.ID,
				BusinessImpact: helpdesk.BusinessImpact{
					BlockingLevel: helpdesk.BlockingLevel(blocking),
					AffectedUsers: helpdesk.AffectedUsers(affected),
				},
			}
			if categoryID > 0 {
				payload.CategoryID = &categoryID
			}

			ticket, err := a.tickets.Create(cmd.Context(), payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (#%d)\n", ticket.TicketNumber, ticket.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "ticket title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "problem description")
	cmd.Flags().IntVar(&categoryID, "category", 0, "category id")
	cmd.Flags().IntVar(&blocking, "blocking", int(helpdesk.BlockingNone), "blocking level (1-4)")
	cmd.Flags().IntVar(&affected, "affected", int(helpdesk.AffectedJustMe), "affected users (1-4)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
