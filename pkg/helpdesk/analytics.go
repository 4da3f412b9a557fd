package helpdesk

import (
	"context"
	"time"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

// DashboardOverview is the aggregate picture for the dashboard screen.
type DashboardOverview struct {
	TotalTickets   int `json:"totalTickets"`
	OpenTickets    int `json:"openTickets"`
	ResolvedToday  int `json:"resolvedToday"`
	OverdueTickets int `json:"overdueTickets"`
	TicketsByStatus []struct {
		Status TicketStatus `json:"status"`
		Count  int          `json:"count"`
	} `json:"ticketsByStatus"`
	TicketsByPriority []struct {
		Priority Priority `json:"priority"`
		Count    int      `json:"count"`
	} `json:"ticketsByPriority"`
	TicketsByCategory []struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	} `json:"ticketsByCategory"`
	AgentWorkload []struct {
		AgentName        string `json:"agentName"`
		AssignedTickets  int    `json:"assignedTickets"`
		ResolvedThisWeek int    `json:"resolvedThisWeek"`
	} `json:"agentWorkload"`
	TicketTrends []struct {
		Date       string `json:"date"`
		Created    int    `json:"created"`
		Resolved   int    `json:"resolved"`
		InProgress int    `json:"inProgress"`
	} `json:"ticketTrends"`
	AIInsightsSummary []struct {
		InsightType   string  `json:"insightType"`
		Count         int     `json:"count"`
		AvgConfidence float64 `json:"avgConfidence"`
	} `json:"aiInsightsSummary"`
}

// AgentPerformance summarizes one agent's throughput and quality.
type AgentPerformance struct {
	AgentID   int    `json:"agentId"`
	AgentName string `json:"agentName"`
	Email     string `json:"email"`
	Skills    []struct {
		Name             string `json:"name"`
		ProficiencyLevel int    `json:"proficiencyLevel"`
	} `json:"skills"`
	TotalAssigned             int       `json:"totalAssigned"`
	CurrentlyAssigned         int       `json:"currentlyAssigned"`
	ResolvedTotal             int       `json:"resolvedTotal"`
	ResolvedThisMonth         int       `json:"resolvedThisMonth"`
	AvgResolutionTimeHours    float64   `json:"avgResolutionTimeHours"`
	CustomerSatisfactionScore float64   `json:"customerSatisfactionScore"`
	LastActivity              time.Time `json:"lastActivity"`
	IsActive                  bool      `json:"isActive"`
}

// CustomerInsights summarizes one customer's ticket history.
type CustomerInsights struct {
	CustomerID         int    `json:"customerId"`
	CustomerName       string `json:"customerName"`
	Email              string `json:"email"`
	TotalTickets       int    `json:"totalTickets"`
	OpenTickets        int    `json:"openTickets"`
	ResolvedTickets    int    `json:"resolvedTickets"`
	MostUsedCategories []struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	} `json:"mostUsedCategories"`
	AvgPriorityLevel float64   `json:"avgPriorityLevel"`
	LastTicketDate   string    `json:"lastTicketDate"`
	OverallSentiment float64   `json:"overallSentiment"`
	JoinDate         time.Time `json:"joinDate"`
}

// AnalyticsService wraps the reporting endpoints.
type AnalyticsService struct {
	client *apiclient.Client
}

// NewAnalyticsService creates the analytics API wrapper.
func NewAnalyticsService(client *apiclient.Client) *AnalyticsService {
	return &AnalyticsService{client: client}
}

// Dashboard returns the aggregate dashboard numbers.
func (s *AnalyticsService) Dashboard(ctx context.Context) (DashboardOverview, error) {
	return apiclient.Call[DashboardOverview](ctx, s.client, apiclient.Request{
		Path: "/analytics/dashboard",
	})
}

// AgentPerformance returns per-agent throughput stats.
func (s *AnalyticsService) AgentPerformance(ctx context.Context) ([]AgentPerformance, error) {
	return apiclient.Call[[]AgentPerformance](ctx, s.client, apiclient.Request{
		Path: "/analytics/agent-performance",
	})
}

// CustomerInsights returns per-customer history summaries.
func (s *AnalyticsService) CustomerInsights(ctx context.Context) ([]CustomerInsights, error) {
	return apiclient.Call[[]CustomerInsights](ctx, s.client, apiclient.Request{
		Path: "/analytics/customer-insights",
	})
}
