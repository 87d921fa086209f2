package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// BudgetService wraps the budgets resource. All list reads pass through
// model.NormalizeBudgets because this endpoint has shipped several
// payload shapes over time.
type BudgetService struct {
	client   *Client
	identity Identity
}

// NewBudgetService creates the budget resource client.
func NewBudgetService(client *Client, identity Identity) *BudgetService {
	return &BudgetService{client: client, identity: identity}
}

// GetAll lists budgets.
func (s *BudgetService) GetAll(ctx context.Context) ([]model.Budget, error) {
	return s.listNormalized(ctx, "/budgets", nil)
}

// GetOverall fetches the user's overall budget summary.
func (s *BudgetService) GetOverall(ctx context.Context) ([]model.Budget, error) {
	userID, err := s.identity.UserID()
	if err != nil {
		return nil, err
	}
	return s.listNormalized(ctx, fmt.Sprintf("/budgets/overall/%d", userID), nil)
}

// GetCurrentMonth lists budgets whose range covers the current month.
func (s *BudgetService) GetCurrentMonth(ctx context.Context) ([]model.Budget, error) {
	now := time.Now()
	start := model.NewDate(now.Year(), now.Month(), 1)
	end := model.NewDate(now.Year(), now.Month()+1, 0)

	q := url.Values{}
	q.Set("startDate", start.String())
	q.Set("endDate", end.String())
	return s.listNormalized(ctx, "/budgets", q)
}

func (s *BudgetService) listNormalized(ctx context.Context, path string, query url.Values) ([]model.Budget, error) {
	var raw json.RawMessage
	if err := s.client.get(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	return model.NormalizeBudgets(raw)
}

// GetByID fetches a single budget.
func (s *BudgetService) GetByID(ctx context.Context, id string) (model.Budget, error) {
	var raw json.RawMessage
	if err := s.client.get(ctx, "/budgets/"+url.PathEscape(id), nil, &raw); err != nil {
		return model.Budget{}, err
	}

	budgets, err := model.NormalizeBudgets(raw)
	if err != nil {
		return model.Budget{}, err
	}
	if len(budgets) == 0 {
		return model.Budget{}, fmt.Errorf("budget %s: empty response", id)
	}
	return budgets[0], nil
}

// GetSpending fetches the backend-computed spending summary for one budget.
func (s *BudgetService) GetSpending(ctx context.Context, id string) (model.BudgetSpending, error) {
	var out model.BudgetSpending
	err := s.client.get(ctx, "/budgets/"+url.PathEscape(id)+"/spending", nil, &out)
	return out, err
}

// Create adds a budget.
func (s *BudgetService) Create(ctx context.Context, data model.CreateBudget) (model.Budget, error) {
	var out model.Budget
	err := s.client.post(ctx, "/budgets", data, &out)
	return out, err
}

// Update modifies a budget.
func (s *BudgetService) Update(ctx context.Context, id string, data model.UpdateBudget) (model.Budget, error) {
	var out model.Budget
	err := s.client.put(ctx, "/budgets/"+url.PathEscape(id), data, &out)
	return out, err
}

// Delete removes a budget.
func (s *BudgetService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/budgets/"+url.PathEscape(id))
}
