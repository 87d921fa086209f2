package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// AccountService wraps the accounts resource.
type AccountService struct {
	client   *Client
	identity Identity
}

// NewAccountService creates the account resource client.
func NewAccountService(client *Client, identity Identity) *AccountService {
	return &AccountService{client: client, identity: identity}
}

// GetAll lists the authenticated user's accounts.
func (s *AccountService) GetAll(ctx context.Context) ([]model.Account, error) {
	userID, err := s.identity.UserID()
	if err != nil {
		return nil, err
	}

	var out []model.Account
	if err := s.client.get(ctx, fmt.Sprintf("/accounts/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Account{}
	}
	return out, nil
}

// GetByID fetches a single account.
func (s *AccountService) GetByID(ctx context.Context, id string) (model.Account, error) {
	var out model.Account
	err := s.client.get(ctx, "/accounts/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Create adds an account, stamping the session's user id.
func (s *AccountService) Create(ctx context.Context, data model.CreateAccount) (model.Account, error) {
	userID, err := s.identity.UserID()
	if err != nil {
		return model.Account{}, err
	}
	data.UserID = userID

	var out model.Account
	err = s.client.post(ctx, "/accounts", data, &out)
	return out, err
}

// Update modifies an account. Balance-only updates go through the
// backend's dedicated balance route.
func (s *AccountService) Update(ctx context.Context, id string, data model.UpdateAccount) (model.Account, error) {
	var out model.Account

	if data.Balance != nil && data.Name == nil && data.Type == nil {
		body := struct {
			AccountID  string  `json:"account_id"`
			NewBalance float64 `json:"new_balance"`
		}{AccountID: id, NewBalance: *data.Balance}
		err := s.client.put(ctx, "/accounts/balance", body, &out)
		return out, err
	}

	err := s.client.put(ctx, "/accounts/"+url.PathEscape(id), data, &out)
	return out, err
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/accounts/"+url.PathEscape(id))
}
