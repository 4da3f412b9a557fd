package helpdesk

import (
	"context"
	"net/http"
	"time"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

// AdvancedSearch is the rich ticket search payload. Zero fields are omitted
// from the request body.
type AdvancedSearch struct {
	Keywords        string        `json:"keywords,omitempty"`
	Status          *TicketStatus `json:"status,omitempty"`
	Priority        *Priority     `json:"priority,omitempty"`
	CategoryID      *int          `json:"categoryId,omitempty"`
	AssignedAgentID *int          `json:"assignedAgentId,omitempty"`
	CustomerID      *int          `json:"customerId,omitempty"`
	CreatedAfter    *time.Time    `json:"createdAfter,omitempty"`
	CreatedBefore   *time.Time    `json:"createdBefore,omitempty"`
	HasAttachments  *bool         `json:"hasAttachments,omitempty"`
	Tags            []string      `json:"tags,omitempty"`
	SortBy          string        `json:"sortBy,omitempty"`
	SortDescending  bool          `json:"sortDescending,omitempty"`
	PageNumber      int           `json:"pageNumber,omitempty"`
	PageSize        int           `json:"pageSize,omitempty"`
}

// SearchResults is one page of advanced search hits.
type SearchResults struct {
	TotalCount int      `json:"totalCount"`
	PageNumber int      `json:"pageNumber"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
	Tickets    []Ticket `json:"tickets"`
}

// Suggestions feeds search-as-you-type completion.
type Suggestions struct {
	TicketNumbers []struct {
		TicketNumber string `json:"ticketNumber"`
		Title        string `json:"title"`
	} `json:"ticketNumbers"`
	CustomerNames []struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	} `json:"customerNames"`
	Categories []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
	Tags []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color,omitempty"`
	} `json:"tags"`
}

// SearchService wraps the advanced search endpoints.
type SearchService struct {
	client *apiclient.Client
}

// NewSearchService creates the search API wrapper.
func NewSearchService(client *apiclient.Client) *SearchService {
	return &SearchService{client: client}
}

// Tickets runs an advanced search and returns one page of results.
func (s *SearchService) Tickets(ctx context.Context, query AdvancedSearch) (SearchResults, error) {
	return apiclient.Call[SearchResults](ctx, s.client, apiclient.Request{
		Path:   "/advancedsearch/tickets",
		Method: http.MethodPost,
		Body:   query,
	})
}

// SuggestionsFor returns completion candidates for a partial term.
func (s *SearchService) SuggestionsFor(ctx context.Context, term string) (Suggestions, error) {
	return apiclient.Call[Suggestions](ctx, s.client, apiclient.Request{
		Path:   "/advancedsearch/suggestions",
		Params: map[string]any{"term": term},
	})
}
