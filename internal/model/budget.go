package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
)

// Budget is a spending limit for a category over a date range. Spent is
// backend-computed; the client only derives display values from it.
type Budget struct {
	ID        FlexID  `json:"id"`
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Spent     float64 `json:"spent"`
	StartDate Date    `json:"startDate"`
	EndDate   Date    `json:"endDate"`
}

// CreateBudget is the payload for creating a budget.
type CreateBudget struct {
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	StartDate Date    `json:"startDate"`
	EndDate   Date    `json:"endDate"`
}

// UpdateBudget carries the mutable budget fields.
type UpdateBudget struct {
	Category  *string  `json:"category,omitempty"`
	Limit     *float64 `json:"limit,omitempty"`
	StartDate *Date    `json:"startDate,omitempty"`
	EndDate   *Date    `json:"endDate,omitempty"`
}

// BudgetSpending is the backend's per-budget spending summary.
type BudgetSpending struct {
	BudgetID   FlexID  `json:"budgetId"`
	Category   string  `json:"category"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// budgetPayload captures every field-name variant the budget endpoints
// have been observed to emit.
type budgetPayload struct {
	ID           FlexID   `json:"id"`
	Category     string   `json:"category"`
	Limit        *float64 `json:"limit"`
	Amount       *float64 `json:"amount"`
	Spent        *float64 `json:"spent"`
	Current      *float64 `json:"current"`
	StartDate    *Date    `json:"startDate"`
	StartDateAlt *Date    `json:"start_date"`
	EndDate      *Date    `json:"endDate"`
	EndDateAlt   *Date    `json:"end_date"`
}

// NormalizeBudgets maps every observed budget response variant onto the
// canonical Budget shape: the endpoint may return a single object or an
// array, and older revisions use amount/current/start_date in place of
// limit/spent/startDate. Null or empty payloads become an empty list.
// Anything outside this variant set fails with ErrParse instead of
// being silently coerced.
func NormalizeBudgets(data []byte) ([]Budget, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Budget{}, nil
	}

	var elems []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, fmt.Errorf("%w: budget list: %v", common.ErrParse, err)
		}
	case '{':
		elems = []json.RawMessage{trimmed}
	default:
		return nil, fmt.Errorf("%w: budget payload is neither object nor array", common.ErrParse)
	}

	budgets := make([]Budget, 0, len(elems))
	for _, elem := range elems {
		var p budgetPayload
		dec := json.NewDecoder(bytes.NewReader(elem))
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("%w: budget entry: %v", common.ErrParse, err)
		}
		budgets = append(budgets, p.canonical())
	}

	return budgets, nil
}

func (p budgetPayload) canonical() Budget {
	b := Budget{
		ID:        p.ID,
		Category:  p.Category,
		StartDate: Today(),
		EndDate:   Today(),
	}

	switch {
	case p.Limit != nil:
		b.Limit = *p.Limit
	case p.Amount != nil:
		b.Limit = *p.Amount
	}

	switch {
	case p.Spent != nil:
		b.Spent = *p.Spent
	case p.Current != nil:
		b.Spent = *p.Current
	}

	switch {
	case p.StartDate != nil && !p.StartDate.IsZero():
		b.StartDate = *p.StartDate
	case p.StartDateAlt != nil && !p.StartDateAlt.IsZero():
		b.StartDate = *p.StartDateAlt
	}

	switch {
	case p.EndDate != nil && !p.EndDate.IsZero():
		b.EndDate = *p.EndDate
	case p.EndDateAlt != nil && !p.EndDateAlt.IsZero():
		b.EndDate = *p.EndDateAlt
	}

	return b
}
