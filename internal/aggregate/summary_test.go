package aggregate

import (
	"testing"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(kind model.TransactionKind, amount float64, categoryID, category string) model.Transaction {
	return model.Transaction{
		Kind:       kind,
		Amount:     amount,
		CategoryID: model.FlexID(categoryID),
		Category:   category,
	}
}

func TestTotals(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.KindIncome, 1000, "", ""),
		tx(model.KindExpense, 400, "", "Food"),
	}
	accounts := []model.Account{{Balance: 5000}}

	assert.Equal(t, 1000.0, TotalIncome(transactions))
	assert.Equal(t, 400.0, TotalExpenses(transactions))
	assert.Equal(t, 5000.0, TotalBalance(accounts))

	breakdown := ExpenseBreakdown(transactions, nil, TopCategories)
	require.Len(t, breakdown, 1)
	assert.Equal(t, CategoryAmount{Name: "Food", Amount: 400}, breakdown[0])
}

func TestTotalsExcludeSavingsAndBills(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.KindIncome, 100, "", ""),
		tx(model.KindExpense, 40, "", ""),
		tx(model.KindSavings, 500, "", ""),
		tx(model.KindBill, 75, "", ""),
	}

	assert.Equal(t, 100.0, TotalIncome(transactions))
	assert.Equal(t, 40.0, TotalExpenses(transactions))
}

func TestNetEqualsSignedSum(t *testing.T) {
	// For lists containing only income/expense kinds, income minus
	// expenses must equal the signed sum of all transactions.
	transactions := []model.Transaction{
		tx(model.KindIncome, 755, "", ""),
		tx(model.KindIncome, 8000, "", ""),
		tx(model.KindExpense, 1500, "", ""),
		tx(model.KindExpense, 5500, "", ""),
	}

	var signed float64
	for _, tr := range transactions {
		if tr.Kind == model.KindIncome {
			signed += tr.Amount
		} else {
			signed -= tr.Amount
		}
	}

	assert.Equal(t, signed, TotalIncome(transactions)-TotalExpenses(transactions))
}

func TestExpenseBreakdownResolution(t *testing.T) {
	categories := []model.Category{
		{ID: "10", Name: "Food", Kind: model.CategoryExpense},
		{ID: "11", Name: "Travel", Kind: model.CategoryExpense},
	}

	tests := []struct {
		name string
		txs  []model.Transaction
		want []CategoryAmount
	}{
		{
			name: "id lookup",
			txs:  []model.Transaction{tx(model.KindExpense, 100, "10", "")},
			want: []CategoryAmount{{Name: "Food", Amount: 100}},
		},
		{
			name: "inline category fallback",
			txs:  []model.Transaction{tx(model.KindExpense, 50, "", "Groceries")},
			want: []CategoryAmount{{Name: "Groceries", Amount: 50}},
		},
		{
			name: "unknown id groups as uncategorized",
			txs:  []model.Transaction{tx(model.KindExpense, 25, "404", "Groceries")},
			want: []CategoryAmount{{Name: UncategorizedLabel, Amount: 25}},
		},
		{
			name: "neither reference resolves",
			txs:  []model.Transaction{tx(model.KindExpense, 10, "", "")},
			want: []CategoryAmount{{Name: UncategorizedLabel, Amount: 10}},
		},
		{
			name: "income excluded",
			txs: []model.Transaction{
				tx(model.KindIncome, 900, "10", ""),
				tx(model.KindExpense, 30, "11", ""),
			},
			want: []CategoryAmount{{Name: "Travel", Amount: 30}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpenseBreakdown(tt.txs, categories, TopCategories)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpenseBreakdownIDAndInlineAgree(t *testing.T) {
	// Regression guard: both historical conventions must resolve to the
	// same group when the id and the inline string are consistent.
	categories := []model.Category{{ID: "10", Name: "Food", Kind: model.CategoryExpense}}

	byID := ExpenseBreakdown([]model.Transaction{tx(model.KindExpense, 100, "10", "Food")}, categories, 5)
	byName := ExpenseBreakdown([]model.Transaction{tx(model.KindExpense, 100, "", "Food")}, categories, 5)

	assert.Equal(t, byID, byName)
}

func TestExpenseBreakdownOrderingAndTruncation(t *testing.T) {
	txs := []model.Transaction{
		tx(model.KindExpense, 10, "", "A"),
		tx(model.KindExpense, 30, "", "B"),
		tx(model.KindExpense, 30, "", "C"),
		tx(model.KindExpense, 20, "", "D"),
		tx(model.KindExpense, 5, "", "E"),
		tx(model.KindExpense, 1, "", "F"),
	}

	got := ExpenseBreakdown(txs, nil, 5)
	require.Len(t, got, 5)

	// Descending by amount; B before C because B was encountered first.
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "C", got[1].Name)
	assert.Equal(t, "D", got[2].Name)
	assert.Equal(t, "A", got[3].Name)
	assert.Equal(t, "E", got[4].Name)
}

func TestExpenseBreakdownSumsToTotal(t *testing.T) {
	txs := []model.Transaction{
		tx(model.KindExpense, 12.5, "", "A"),
		tx(model.KindExpense, 30, "", "B"),
		tx(model.KindExpense, 7.25, "", "A"),
		tx(model.KindIncome, 999, "", ""),
	}

	got := ExpenseBreakdown(txs, nil, 10)
	var sum float64
	for _, g := range got {
		sum += g.Amount
	}
	assert.InDelta(t, TotalExpenses(txs), sum, 1e-9,
		"groups must sum to the expense total when topN covers all categories")
}

func TestAggregationIsIdempotent(t *testing.T) {
	txs := []model.Transaction{
		tx(model.KindExpense, 12.5, "", "A"),
		tx(model.KindIncome, 30, "", ""),
		tx(model.KindExpense, 7, "", "B"),
	}
	categories := []model.Category{{ID: "1", Name: "A"}}

	first := ExpenseBreakdown(txs, categories, 5)
	second := ExpenseBreakdown(txs, categories, 5)
	assert.Equal(t, first, second)
	assert.Equal(t, TotalIncome(txs), TotalIncome(txs))
	assert.Equal(t, TotalExpenses(txs), TotalExpenses(txs))
}

func TestEmptyInputs(t *testing.T) {
	assert.Zero(t, TotalIncome(nil))
	assert.Zero(t, TotalExpenses(nil))
	assert.Zero(t, TotalBalance(nil))
	assert.Empty(t, ExpenseBreakdown(nil, nil, 5))
}
