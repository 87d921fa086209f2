package model

// Category labels transactions for budgeting and breakdowns. A category
// with no owning user is global and visible to every user.
type Category struct {
	ID     FlexID       `json:"id"`
	Name   string       `json:"name"`
	Kind   CategoryKind `json:"type"`
	UserID *int64       `json:"user_id,omitempty"`
}

// IsGlobal reports whether the category is shared across all users.
func (c Category) IsGlobal() bool {
	return c.UserID == nil
}

// CreateCategory is the payload for creating a category.
type CreateCategory struct {
	Name string       `json:"name"`
	Kind CategoryKind `json:"type"`
}

// UpdateCategory carries the mutable category fields.
type UpdateCategory struct {
	Name *string       `json:"name,omitempty"`
	Kind *CategoryKind `json:"type,omitempty"`
}

// Default category names offered when a fresh user has none yet.
var (
	DefaultIncomeCategories = []string{
		"Salary",
		"Business",
		"Freelance",
		"Investment",
		"Bonus",
		"Other Income",
	}

	DefaultExpenseCategories = []string{
		"Food",
		"Transport",
		"Shopping",
		"Entertainment",
		"Bills",
		"Healthcare",
		"Education",
		"Rent",
		"Groceries",
		"Utilities",
		"Travel",
		"Other Expense",
	}
)
