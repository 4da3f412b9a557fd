package helpdesk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

// CategorizeRequest asks the AI to pick a category for free-form text.
type CategorizeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategorizeResponse is the predicted category with confidence.
type CategorizeResponse struct {
	CategoryID   int     `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Confidence   float64 `json:"confidence"`
}

// SuggestResponseRequest asks for a draft reply to a customer message.
type SuggestResponseRequest struct {
	TicketContent   string `json:"ticketContent"`
	CustomerMessage string `json:"customerMessage"`
}

// SuggestResponseResult carries the drafted reply.
type SuggestResponseResult struct {
	SuggestedResponse string  `json:"suggestedResponse"`
	Confidence        float64 `json:"confidence"`
}

// AgentSuggestion names the agent the AI would route a ticket to.
type AgentSuggestion struct {
	AgentID    int     `json:"agentId"`
	AgentName  string  `json:"agentName"`
	Confidence float64 `json:"confidence"`
}

// TicketInsight is one AI observation about a ticket.
type TicketInsight struct {
	Sentiment          float64 `json:"sentiment"`
	CategoryPrediction struct {
		CategoryID   int     `json:"categoryId"`
		CategoryName string  `json:"categoryName"`
		Confidence   float64 `json:"confidence"`
	} `json:"categoryPrediction"`
	PriorityPrediction string `json:"priorityPrediction"`
}

// TicketAnalysis is the full-text AI analysis of a ticket.
type TicketAnalysis struct {
	Analysis   string  `json:"analysis"`
	Confidence float64 `json:"confidence"`
}

// AIService wraps the machine-triage endpoints.
type AIService struct {
	client *apiclient.Client
}

// NewAIService creates the AI API wrapper.
func NewAIService(client *apiclient.Client) *AIService {
	return &AIService{client: client}
}

// Categorize predicts a category for ticket text.
func (s *AIService) Categorize(ctx context.Context, req CategorizeRequest) (CategorizeResponse, error) {
	return apiclient.Call[CategorizeResponse](ctx, s.client, apiclient.Request{
		Path:   "/ai/categorize",
		Method: http.MethodPost,
		Body:   req,
	})
}

// SuggestResponse drafts a reply to the customer.
func (s *AIService) SuggestResponse(ctx context.Context, req SuggestResponseRequest) (SuggestResponseResult, error) {
	return apiclient.Call[SuggestResponseResult](ctx, s.client, apiclient.Request{
		Path:   "/ai/suggest-response",
		Method: http.MethodPost,
		Body:   req,
	})
}

// SuggestAgent recommends a routing target for a ticket.
func (s *AIService) SuggestAgent(ctx context.Context, ticketID int) (AgentSuggestion, error) {
	return apiclient.Call[AgentSuggestion](ctx, s.client, apiclient.Request{
		Path:   fmt.Sprintf("/ai/suggest-agent/%d", ticketID),
		Method: http.MethodPost,
	})
}

// Insights returns stored AI observations for a ticket.
func (s *AIService) Insights(ctx context.Context, ticketID int) ([]TicketInsight, error) {
	return apiclient.Call[[]TicketInsight](ctx, s.client, apiclient.Request{
		Path: fmt.Sprintf("/ai/insights/%d", ticketID),
	})
}

// AnalyzeTicket runs a fresh analysis of a ticket.
func (s *AIService) AnalyzeTicket(ctx context.Context, ticketID int) (TicketAnalysis, error) {
	return apiclient.Call[TicketAnalysis](ctx, s.client, apiclient.Request{
		Path:   fmt.Sprintf("/ai/analyze-ticket/%d", ticketID),
		Method: http.MethodPost,
	})
}
