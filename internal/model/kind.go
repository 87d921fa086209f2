// Package model defines the canonical entities consumed from the backend
// and the normalization applied at the ingestion boundary.
package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
)

// TransactionKind classifies a transaction's effect on aggregates.
type TransactionKind string

const (
	// KindIncome adds to the income total.
	KindIncome TransactionKind = "income"
	// KindExpense adds to the expense total.
	KindExpense TransactionKind = "expense"
	// KindSavings is excluded from both income and expense totals.
	KindSavings TransactionKind = "savings"
	// KindBill is excluded from both income and expense totals.
	KindBill TransactionKind = "bill"
)

// ParseTransactionKind maps the backend's historical case variants
// ("INCOME", "income", "Income") onto one canonical kind. This is the
// single normalization point; callers never compare raw strings.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return KindIncome, nil
	case "expense":
		return KindExpense, nil
	case "savings":
		return KindSavings, nil
	case "bill":
		return KindBill, nil
	default:
		return "", fmt.Errorf("%w: transaction kind %q", common.ErrParse, s)
	}
}

// UnmarshalJSON normalizes the kind at decode time.
func (k *TransactionKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: transaction kind: %v", common.ErrParse, err)
	}
	kind, err := ParseTransactionKind(raw)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// MarshalJSON emits the backend's canonical uppercase form.
func (k TransactionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(string(k)))
}

// CategoryKind indicates whether a category is for income or expenses.
type CategoryKind string

const (
	// CategoryIncome marks income categories.
	CategoryIncome CategoryKind = "INCOME"
	// CategoryExpense marks expense categories.
	CategoryExpense CategoryKind = "EXPENSE"
)

// ParseCategoryKind normalizes a category kind string.
func ParseCategoryKind(s string) (CategoryKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INCOME":
		return CategoryIncome, nil
	case "EXPENSE":
		return CategoryExpense, nil
	default:
		return "", fmt.Errorf("%w: category kind %q", common.ErrParse, s)
	}
}

// UnmarshalJSON normalizes the category kind at decode time.
func (k *CategoryKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: category kind: %v", common.ErrParse, err)
	}
	kind, err := ParseCategoryKind(raw)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// AccountType is the account bucket shown in the accounts view.
type AccountType string

// Valid account types.
const (
	AccountCash  AccountType = "Cash"
	AccountBank  AccountType = "Bank"
	AccountCard  AccountType = "Card"
	AccountOther AccountType = "Other"
)

// ParseAccountType normalizes an account type string; anything outside
// the known set becomes AccountOther.
func ParseAccountType(s string) AccountType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return AccountCash
	case "bank":
		return AccountBank
	case "card":
		return AccountCard
	default:
		return AccountOther
	}
}

// Priority ranks insight and nudge entries for display ordering.
type Priority string

// Priority levels, highest first.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank for a priority; unknown values sort last.
func (p Priority) Rank() int {
	switch Priority(strings.ToLower(string(p))) {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}
