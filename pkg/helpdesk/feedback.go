package helpdesk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

// CreateFeedback is the payload for rating a resolved ticket.
type CreateFeedback struct {
	TicketID   int    `json:"ticketId"`
	CustomerID int    `json:"customerId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// FeedbackService wraps the feedback endpoints.
type FeedbackService struct {
	client *apiclient.Client
}

// NewFeedbackService creates the feedback API wrapper.
func NewFeedbackService(client *apiclient.Client) *FeedbackService {
	return &FeedbackService{client: client}
}

// Create records a rating for a resolved ticket.
func (s *FeedbackService) Create(ctx context.Context, payload CreateFeedback) (Feedback, error) {
	return apiclient.Call[Feedback](ctx, s.client, apiclient.Request{
		Path:   "/feedback",
		Method: http.MethodPost,
		Body:   payload,
	})
}

// ByTicket returns the feedback for a ticket, or nil when none exists yet.
func (s *FeedbackService) ByTicket(ctx context.Context, ticketID int) (*Feedback, error) {
	return apiclient.Call[*Feedback](ctx, s.client, apiclient.Request{
		Path: fmt.Sprintf("/feedback/ticket/%d", ticketID),
	})
}

// List returns all feedback records.
func (s *FeedbackService) List(ctx context.Context) ([]Feedback, error) {
	return apiclient.Call[[]Feedback](ctx, s.client, apiclient.Request{
		Path: "/feedback",
	})
}
