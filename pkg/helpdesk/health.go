package helpdesk

import (
	"context"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

// BasicHealth is the liveness summary.
type BasicHealth struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// DetailedHealth is the per-component health report.
type DetailedHealth struct {
	OverallStatus string `json:"overallStatus"`
	Timestamp     string `json:"timestamp"`
	HealthChecks  []struct {
		Component string `json:"component"`
		Status    string `json:"status"`
		Details   string `json:"details,omitempty"`
	} `json:"healthChecks"`
	SystemInfo struct {
		MachineName    string `json:"machineName"`
		OSVersion      string `json:"osVersion"`
		ProcessorCount int    `json:"processorCount"`
		RuntimeVersion string `json:"dotNetVersion"`
	} `json:"systemInfo"`
}

// DatabaseInfo is a snapshot of backend data volumes.
type DatabaseInfo struct {
	UserCount       int `json:"userCount"`
	TicketCount     int `json:"ticketCount"`
	CategoryCount   int `json:"categoryCount"`
	TicketsByStatus []struct {
		Status TicketStatus `json:"status"`
		Count  int          `json:"count"`
	} `json:"ticketsByStatus"`
	TicketsByPriority []struct {
		Priority Priority `json:"priority"`
		Count    int      `json:"count"`
	} `json:"ticketsByPriority"`
	UsersByRole []struct {
		Role  UserRole `json:"role"`
		Count int      `json:"count"`
	} `json:"usersByRole"`
	RecentTickets []struct {
		ID           int          `json:"id"`
		TicketNumber string       `json:"ticketNumber"`
		Title        string       `json:"title"`
		Status       TicketStatus `json:"status"`
	} `json:"recentTickets"`
	RecentComments []struct {
		ID             int    `json:"id"`
		TicketID       int    `json:"ticketId"`
		CommentPreview string `json:"commentPreview"`
	} `json:"recentComments"`
}

// HealthService wraps the health endpoints.
type HealthService struct {
	client *apiclient.Client
}

// NewHealthService creates the health API wrapper.
func NewHealthService(client *apiclient.Client) *HealthService {
	return &HealthService{client: client}
}

// Basic returns the liveness summary.
func (s *HealthService) Basic(ctx context.Context) (BasicHealth, error) {
	return apiclient.Call[BasicHealth](ctx, s.client, apiclient.Request{
		Path: "/health",
	})
}

// Detailed returns per-component checks and host info.
func (s *HealthService) Detailed(ctx context.Context) (DetailedHealth, error) {
	return apiclient.Call[DetailedHealth](ctx, s.client, apiclient.Request{
		Path: "/health/detailed",
	})
}

// Database returns data-volume statistics.
func (s *HealthService) Database(ctx context.Context) (DatabaseInfo, error) {
	return apiclient.Call[DatabaseInfo](ctx, s.client, apiclient.Request{
		Path: "/health/database",
	})
}
