package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// TransactionService wraps the transactions resource.
type TransactionService struct {
	client   *Client
	identity Identity
}

// NewTransactionService creates the transaction resource client.
func NewTransactionService(client *Client, identity Identity) *TransactionService {
	return &TransactionService{client: client, identity: identity}
}

// GetAll lists the authenticated user's transactions.
func (s *TransactionService) GetAll(ctx context.Context) ([]model.Transaction, error) {
	return s.list(ctx, nil)
}

// GetByDateRange lists transactions within [start, end].
func (s *TransactionService) GetByDateRange(ctx context.Context, start, end model.Date) ([]model.Transaction, error) {
	q := url.Values{}
	q.Set("startDate", start.String())
	q.Set("endDate", end.String())
	return s.list(ctx, q)
}

// GetByKind lists transactions of one kind.
func (s *TransactionService) GetByKind(ctx context.Context, kind model.TransactionKind) ([]model.Transaction, error) {
	q := url.Values{}
	q.Set("type", strings.ToUpper(string(kind)))
	return s.list(ctx, q)
}

func (s *TransactionService) list(ctx context.Context, query url.Values) ([]model.Transaction, error) {
	userID, err := s.identity.UserID()
	if err != nil {
		return nil, err
	}

	var out []model.Transaction
	if err := s.client.get(ctx, fmt.Sprintf("/transactions/%d", userID), query, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Transaction{}
	}
	return out, nil
}

// GetByID fetches a single transaction.
func (s *TransactionService) GetByID(ctx context.Context, id string) (model.Transaction, error) {
	var out model.Transaction
	err := s.client.get(ctx, "/transactions/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Create records a new transaction, stamping the session's user id.
func (s *TransactionService) Create(ctx context.Context, data model.CreateTransaction) (model.Transaction, error) {
	userID, err := s.identity.UserID()
	if err != nil {
		return model.Transaction{}, err
	}
	data.UserID = userID

	var out model.Transaction
	err = s.client.post(ctx, "/transactions", data, &out)
	return out, err
}

// Update modifies an existing transaction.
func (s *TransactionService) Update(ctx context.Context, id string, data model.UpdateTransaction) (model.Transaction, error) {
	var out model.Transaction
	err := s.client.put(ctx, "/transactions/"+url.PathEscape(id), data, &out)
	return out, err
}

// Delete removes a transaction.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/transactions/"+url.PathEscape(id))
}
