package aggregate

import (
	"testing"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSortByPriorityStable(t *testing.T) {
	nudges := []model.BehaviorNudge{
		{Message: "low-1", Urgency: model.PriorityLow},
		{Message: "med-1", Urgency: model.PriorityMedium},
		{Message: "high-1", Urgency: model.PriorityHigh},
		{Message: "med-2", Urgency: model.PriorityMedium},
		{Message: "high-2", Urgency: model.PriorityHigh},
	}

	sorted := SortByPriority(nudges, func(n model.BehaviorNudge) model.Priority { return n.Urgency })

	got := make([]string, len(sorted))
	for i, n := range sorted {
		got[i] = n.Message
	}
	assert.Equal(t, []string{"high-1", "high-2", "med-1", "med-2", "low-1"}, got)

	// Input untouched.
	assert.Equal(t, "low-1", nudges[0].Message)
}

func TestTruncate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3}, Truncate(items, NudgeDisplayCount))
	assert.Equal(t, items, Truncate(items, InsightDisplayCount))
	assert.Equal(t, items, Truncate(items, 10))
	assert.Equal(t, items, Truncate(items, -1))
	assert.Empty(t, Truncate(items, 0))
}
