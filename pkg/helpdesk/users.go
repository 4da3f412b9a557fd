package helpdesk

import (
	"context"
	"fmt"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

// UserService wraps the user administration endpoints.
type UserService struct {
	client *apiclient.Client
}

// NewUserService creates the user API wrapper.
func NewUserService(client *apiclient.Client) *UserService {
	return &UserService{client: client}
}

// List returns users, optionally filtered by role.
func (s *UserService) List(ctx context.Context, role *UserRole) ([]User, error) {
	params := map[string]any{}
	if role != nil {
		params["role"] = int(*role)
	}

	return apiclient.Call[[]User](ctx, s.client, apiclient.Request{
		Path:   "/users",
		Params: params,
	})
}

// Get fetches one user by id.
func (s *UserService) Get(ctx context.Context, id int) (User, error) {
	return apiclient.Call[User](ctx, s.client, apiclient.Request{
		Path: fmt.Sprintf("/users/%d", id),
	})
}

// AvailableAgents returns agents with capacity for new assignments.
func (s *UserService) AvailableAgents(ctx context.Context) ([]User, error) {
	return apiclient.Call[[]User](ctx, s.client, apiclient.Request{
		Path: "/users/agents/available",
	})
}
