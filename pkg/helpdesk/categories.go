package helpdesk

import (
	"context"
	"fmt"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

// CategoryService wraps the category endpoints.
type CategoryService struct {
	client *apiclient.Client
}

// NewCategoryService creates the category API wrapper.
func NewCategoryService(client *apiclient.Client) *CategoryService {
	return &CategoryService{client: client}
}

// List returns categories as a flat collection.
func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	return apiclient.Call[[]Category](ctx, s.client, apiclient.Request{
		Path: "/categories",
	})
}

// Hierarchy returns root categories with their subtrees populated.
func (s *CategoryService) Hierarchy(ctx context.Context) ([]Category, error) {
	return apiclient.Call[[]Category](ctx, s.client, apiclient.Request{
		Path: "/categories/hierarchy",
	})
}

// Get fetches one category by id.
func (s *CategoryService) Get(ctx context.Context, id int) (Category, error) {
	return apiclient.Call[Category](ctx, s.client, apiclient.Request{
		Path: fmt.Sprintf("/categories/%d", id),
	})
}
