package model

// Account is a balance-holding account. Balances are backend
// authoritative: the client never adjusts them locally when recording
// transactions, it refetches after the mutation settles.
type Account struct {
	ID      FlexID      `json:"id"`
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance float64     `json:"balance"`
}

// CreateAccount is the payload for creating an account.
type CreateAccount struct {
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance float64     `json:"balance"`
	UserID  int64       `json:"user_id,omitempty"`
}

// UpdateAccount carries the mutable account fields; nil pointers are
// omitted from the request body.
type UpdateAccount struct {
	Name    *string      `json:"name,omitempty"`
	Type    *AccountType `json:"type,omitempty"`
	Balance *float64     `json:"balance,omitempty"`
}
