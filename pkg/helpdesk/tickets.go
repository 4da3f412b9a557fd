package helpdesk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

// TicketService wraps the ticket endpoints.
type TicketService struct {
	client *apiclient.Client
}

// NewTicketService creates the ticket API wrapper.
func NewTicketService(client *apiclient.Client) *TicketService {
	return &TicketService{client: client}
}

// List returns tickets matching the filters. Unset filter fields are omitted
// from the query string entirely.
func (s *TicketService) List(ctx context.Context, filters TicketFilters) ([]Ticket, error) {
	params := map[string]any{}
	if filters.Status != nil {
		params["status"] = int(*filters.Status)
	}
	if filters.CustomerID != nil {
		params["customerId"] = *filters.CustomerID
	}
	if filters.AgentID != nil {
		params["agentId"] = *filters.AgentID
	}
	if filters.Search != "" {
		params["search"] = filters.Search
	}
	if filters.IncludeEscalated != nil {
		params["includeEscalated"] = *filters.IncludeEscalated
	}

	return apiclient.Call[[]Ticket](ctx, s.client, apiclient.Request{
		Path:   "/tickets",
		Params: params,
	})
}

// Get fetches a single ticket with its relations.
func (s *TicketService) Get(ctx context.Context, id int) (Ticket, error) {
	return apiclient.Call[Ticket](ctx, s.client, apiclient.Request{
		Path: fmt.Sprintf("/tickets/%d", id),
	})
}

// Create opens a new ticket.
func (s *TicketService) Create(ctx context.Context, payload CreateTicket) (Ticket, error) {
	return apiclient.Call[Ticket](ctx, s.client, apiclient.Request{
		Path:   "/tickets",
		Method: http.MethodPost,
		Body:   payload,
	})
}

// UpdateStatus moves a ticket to a new lifecycle state. The acting user goes
// in the query, the bare status value in the body, matching the backend's
// binding.
func (s *TicketService) UpdateStatus(ctx context.Context, id int, status TicketStatus, userID int) (Ticket, error) {
	return apiclient.Call[Ticket](ctx, s.client, apiclient.Request{
		Path:   fmt.Sprintf("/tickets/%d/status", id),
		Method: http.MethodPut,
		Body:   int(status),
		Params: map[string]any{"userId": userID},
	})
}

// Assign hands a ticket to an agent.
func (s *TicketService) Assign(ctx context.Context, id, agentID, assignedByUserID int) (Ticket, error) {
	return apiclient.Call[Ticket](ctx, s.client, apiclient.Request{
		Path:   fmt.Sprintf("/tickets/%d/assign", id),
		Method: http.MethodPut,
		Body:   agentID,
		Params: map[string]any{"assignedByUserId": assignedByUserID},
	})
}

// AddComment appends a comment to a ticket.
func (s *TicketService) AddComment(ctx context.Context, id int, payload AddComment, userID int) (Comment, error) {
	return apiclient.Call[Comment](ctx, s.client, apiclient.Request{
		Path:   fmt.Sprintf("/tickets/%d/comments", id),
		Method: http.MethodPost,
		Body:   payload,
		Params: map[string]any{"userId": userID},
	})
}

// SuggestAgent asks the backend for the best agent for a ticket.
func (s *TicketService) SuggestAgent(ctx context.Context, id int) (User, error) {
	return apiclient.Call[User](ctx, s.client, apiclient.Request{
		Path: fmt.Sprintf("/tickets/%d/suggest-agent", id),
	})
}
