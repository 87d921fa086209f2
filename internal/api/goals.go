package api

import (
	"context"
	"net/url"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// GoalService wraps the savings goals resource.
type GoalService struct {
	client *Client
}

// NewGoalService creates the goal resource client.
func NewGoalService(client *Client) *GoalService {
	return &GoalService{client: client}
}

// GetAll lists goals.
func (s *GoalService) GetAll(ctx context.Context) ([]model.Goal, error) {
	var out []model.Goal
	if err := s.client.get(ctx, "/goals", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Goal{}
	}
	return out, nil
}

// GetByID fetches a single goal.
func (s *GoalService) GetByID(ctx context.Context, id string) (model.Goal, error) {
	var out model.Goal
	err := s.client.get(ctx, "/goals/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Create adds a goal.
func (s *GoalService) Create(ctx context.Context, data model.CreateGoal) (model.Goal, error) {
	var out model.Goal
	err := s.client.post(ctx, "/goals", data, &out)
	return out, err
}

// Update modifies a goal.
func (s *GoalService) Update(ctx context.Context, id string, data model.UpdateGoal) (model.Goal, error) {
	var out model.Goal
	err := s.client.put(ctx, "/goals/"+url.PathEscape(id), data, &out)
	return out, err
}

// UpdateProgress adds a contribution toward a goal.
func (s *GoalService) UpdateProgress(ctx context.Context, id string, amount float64) (model.Goal, error) {
	body := struct {
		Amount float64 `json:"amount"`
	}{Amount: amount}

	var out model.Goal
	err := s.client.patch(ctx, "/goals/"+url.PathEscape(id)+"/progress", body, &out)
	return out, err
}

// Delete removes a goal.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/goals/"+url.PathEscape(id))
}
