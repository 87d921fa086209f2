package aggregate

import (
	"sort"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// Display counts for insight widgets.
const (
	NudgeDisplayCount   = 3
	InsightDisplayCount = 5
)

// SortByPriority orders a slice by urgency rank (high, medium, low)
// without disturbing the relative order of equal-priority entries.
func SortByPriority[T any](items []T, priority func(T) model.Priority) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priority(sorted[i]).Rank() < priority(sorted[j]).Rank()
	})
	return sorted
}

// Truncate limits a list to the widget's display count. A negative
// count means no limit.
func Truncate[T any](items []T, count int) []T {
	if count < 0 || len(items) <= count {
		return items
	}
	return items[:count]
}
