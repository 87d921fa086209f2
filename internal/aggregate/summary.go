// Package aggregate derives dashboard display values from raw resource
// snapshots. Every function here is pure and synchronous: the same
// inputs always produce the same outputs, with no hidden state.
package aggregate

import (
	"sort"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// UncategorizedLabel groups expenses whose category cannot be resolved.
const UncategorizedLabel = "Uncategorized"

// TopCategories is the breakdown size shown on the dashboard.
const TopCategories = 5

// TotalIncome sums the amounts of income transactions. Savings and bill
// kinds are excluded by definition, not treated as income.
func TotalIncome(transactions []model.Transaction) float64 {
	var total float64
	for _, tx := range transactions {
		if tx.Kind == model.KindIncome {
			total += tx.Amount
		}
	}
	return total
}

// TotalExpenses sums the amounts of expense transactions.
func TotalExpenses(transactions []model.Transaction) float64 {
	var total float64
	for _, tx := range transactions {
		if tx.Kind == model.KindExpense {
			total += tx.Amount
		}
	}
	return total
}

// TotalBalance sums account balances.
func TotalBalance(accounts []model.Account) float64 {
	var total float64
	for _, acc := range accounts {
		total += acc.Balance
	}
	return total
}

// CategoryAmount is one bar of the expense breakdown chart.
type CategoryAmount struct {
	Name   string
	Amount float64
}

// CategoryNames builds the id-to-name lookup used to resolve
// transaction category references.
func CategoryNames(categories []model.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID.String()] = cat.Name
	}
	return names
}

// ExpenseBreakdown groups expense transactions by category name and
// returns the topN largest groups, descending by amount. A category id
// is resolved through the lookup first; payloads carrying only an
// inline category string fall back to it, and anything unresolvable is
// grouped under UncategorizedLabel. Ties keep first-encountered order.
func ExpenseBreakdown(transactions []model.Transaction, categories []model.Category, topN int) []CategoryAmount {
	names := CategoryNames(categories)

	sums := make(map[string]float64)
	order := make([]string, 0)
	for _, tx := range transactions {
		if tx.Kind != model.KindExpense {
			continue
		}
		name := resolveCategory(tx, names)
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += tx.Amount
	}

	breakdown := make([]CategoryAmount, 0, len(order))
	for _, name := range order {
		breakdown = append(breakdown, CategoryAmount{Name: name, Amount: sums[name]})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount > breakdown[j].Amount
	})

	if topN >= 0 && len(breakdown) > topN {
		breakdown = breakdown[:topN]
	}
	return breakdown
}

func resolveCategory(tx model.Transaction, names map[string]string) string {
	if id := tx.CategoryID.String(); id != "" {
		if name, ok := names[id]; ok {
			return name
		}
		return UncategorizedLabel
	}
	if tx.Category != "" {
		return tx.Category
	}
	return UncategorizedLabel
}
