package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/helpdeskhq/helpdesk-go/pkg/helpdesk"
)

// Badge palettes mirror the product's ticket board: cool colors for calm
// states, hot colors for urgent ones.
var (
	badgeBase = lipgloss.NewStyle().Padding(0, 1).Bold(true)

	statusStyles = map[helpdesk.TicketStatus]lipgloss.Style{
		helpdesk.StatusNew:        badgeBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("27")),
		helpdesk.StatusInProgress: badgeBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")),
		helpdesk.StatusResolved:   badgeBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28")),
		helpdesk.StatusClosed:     badgeBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("240")),
	}

	priorityStyles = map[helpdesk.Priority]lipgloss.Style{
		helpdesk.PriorityLow:      badgeBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("240")),
		helpdesk.PriorityMedium:   badgeBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")),
		helpdesk.PriorityHigh:     badgeBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("208")),
		helpdesk.PriorityCritical: badgeBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("196")),
	}

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func statusBadge(s helpdesk.TicketStatus) string {
	style, ok := statusStyles[s]
	if !ok {
		style = badgeBase
	}
	return style.Render(s.String())
}

func priorityBadge(p helpdesk.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		style = badgeBase
	}
	return style.Render(p.String())
}

// renderTicketRow is one line of the listing: id, number, badges, title,
// assignee.
func renderTicketRow(t helpdesk.Ticket) string {
	assignee := dimStyle.Render("unassigned")
	if t.AssignedAgent != nil {
		assignee = t.AssignedAgent.FullName
	}
	return fmt.Sprintf("%-5d %-12s %s %s  %s  %s",
		t.ID, t.TicketNumber, statusBadge(t.Status), priorityBadge(t.Priority), t.Title, assignee)
}

func renderTicketList(tickets []helpdesk.Ticket) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Tickets"))
	b.WriteString("\n")
	for _, t := range tickets {
		b.WriteString(renderTicketRow(t))
		b.WriteString("\n")
	}
	if len(tickets) == 0 {
		b.WriteString(dimStyle.Render("no tickets"))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTicket(t helpdesk.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render(t.TicketNumber), t.Title)
	fmt.Fprintf(&b, "%s %s\n\n", statusBadge(t.Status), priorityBadge(t.Priority))
	fmt.Fprintf(&b, "Customer:  %s <%s>\n", t.Customer.FullName, t.Customer.Email)
	if t.AssignedAgent != nil {
		fmt.Fprintf(&b, "Agent:     %s\n", t.AssignedAgent.FullName)
	}
	if t.Category != nil {
		fmt.Fprintf(&b, "Category:  %s\n", t.Category.Name)
	}
	fmt.Fprintf(&b, "Created:   %s\n", t.CreatedAt.Local().Format(time.RFC1123))
	if t.DueDate != nil {
		fmt.Fprintf(&b, "Due:       %s\n", t.DueDate.Local().Format(time.RFC1123))
	}
	fmt.Fprintf(&b, "\n%s\n", t.Description)

	if t.AIAnalysis != nil {
		fmt.Fprintf(&b, "\n%s\n", headerStyle.Render("Triage"))
		fmt.Fprintf(&b, "Category %s (%.0f%%), sentiment %.2f\n",
			t.AIAnalysis.Category, t.AIAnalysis.CategoryConfidence*100, t.AIAnalysis.Sentiment)
		if len(t.AIAnalysis.Keywords) > 0 {
			fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(t.AIAnalysis.Keywords, ", "))
		}
	}

	if len(t.Comments) > 0 {
		fmt.Fprintf(&b, "\n%s\n", headerStyle.Render("Comments"))
		for _, c := range t.Comments {
			marker := ""
			if c.IsInternal {
				marker = dimStyle.Render(" [internal]")
			}
			fmt.Fprintf(&b, "%s%s — %s\n  %s\n",
				c.User.FullName, marker, c.CreatedAt.Local().Format(time.RFC822), c.CommentText)
		}
	}
	return b.String()
}

func renderUserList(users []helpdesk.User) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Users"))
	b.WriteString("\n")
	for _, u := range users {
		active := ""
		if !u.IsActive {
			active = dimStyle.Render(" (inactive)")
		}
		fmt.Fprintf(&b, "%-5d %-10s %s <%s>%s\n", u.ID, u.Role, u.FullName, u.Email, active)
	}
	return b.String()
}

func renderCategoryTree(categories []helpdesk.Category, depth int) string {
	var b strings.Builder
	indent := strings.Repeat("  ", depth)
	for _, c := range categories {
		fmt.Fprintf(&b, "%s%d  %s\n", indent, c.ID, c.Name)
		if len(c.SubCategories) > 0 {
			b.WriteString(renderCategoryTree(c.SubCategories, depth+1))
		}
	}
	return b.String()
}
