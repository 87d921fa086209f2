package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// CategoryService wraps the categories resource. The listing includes
// global categories, which carry no owning user.
type CategoryService struct {
	client   *Client
	identity Identity
}

// NewCategoryService creates the category resource client.
func NewCategoryService(client *Client, identity Identity) *CategoryService {
	return &CategoryService{client: client, identity: identity}
}

// GetAll lists the user's categories plus global ones.
func (s *CategoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	return s.list(ctx, nil)
}

// GetByKind lists categories of one kind.
func (s *CategoryService) GetByKind(ctx context.Context, kind model.CategoryKind) ([]model.Category, error) {
	q := url.Values{}
	q.Set("type", string(kind))
	return s.list(ctx, q)
}

func (s *CategoryService) list(ctx context.Context, query url.Values) ([]model.Category, error) {
	userID, err := s.identity.UserID()
	if err != nil {
		return nil, err
	}

	var out []model.Category
	if err := s.client.get(ctx, fmt.Sprintf("/categories/%d", userID), query, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Category{}
	}
	return out, nil
}

// GetByID fetches a single category.
func (s *CategoryService) GetByID(ctx context.Context, id string) (model.Category, error) {
	var out model.Category
	err := s.client.get(ctx, "/categories/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Create adds a category.
func (s *CategoryService) Create(ctx context.Context, data model.CreateCategory) (model.Category, error) {
	var out model.Category
	err := s.client.post(ctx, "/categories", data, &out)
	return out, err
}

// Update modifies a category.
func (s *CategoryService) Update(ctx context.Context, id string, data model.UpdateCategory) (model.Category, error) {
	var out model.Category
	err := s.client.put(ctx, "/categories/"+url.PathEscape(id), data, &out)
	return out, err
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/categories/"+url.PathEscape(id))
}
