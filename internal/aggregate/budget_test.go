package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetPercentUsed(t *testing.T) {
	tests := []struct {
		name  string
		spent float64
		limit float64
		want  int
	}{
		{name: "half used", spent: 500, limit: 1000, want: 50},
		{name: "exactly at limit", spent: 1000, limit: 1000, want: 100},
		{name: "over limit clamps to 100", spent: 1200, limit: 1000, want: 100},
		{name: "nothing spent", spent: 0, limit: 1000, want: 0},
		{name: "zero limit guarded", spent: 500, limit: 0, want: 0},
		{name: "negative limit guarded", spent: 500, limit: -10, want: 0},
		{name: "rounds to nearest", spent: 333, limit: 1000, want: 33},
		{name: "rounds half up", spent: 335, limit: 1000, want: 34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetPercentUsed(tt.spent, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestBudgetPercentUsedMonotonic(t *testing.T) {
	prev := 0
	for spent := 0.0; spent <= 2000; spent += 50 {
		got := BudgetPercentUsed(spent, 1000)
		assert.GreaterOrEqual(t, got, prev, "percent used must not decrease as spent grows")
		prev = got
	}
}

func TestBudgetExceededState(t *testing.T) {
	// Overspent budget: bar clamps at 100 while the raw ratio keeps the
	// true magnitude for the exceeded banner.
	assert.Equal(t, 100, BudgetPercentUsed(1200, 1000))
	assert.True(t, IsOverBudget(1200, 1000))
	assert.InDelta(t, 1.2, BudgetRatio(1200, 1000), 1e-9)

	assert.False(t, IsOverBudget(900, 1000))
	assert.False(t, math.IsNaN(BudgetRatio(100, 0)))
	assert.False(t, math.IsInf(BudgetRatio(100, 0), 1))
}

func TestIsApproachingLimit(t *testing.T) {
	tests := []struct {
		name  string
		spent float64
		limit float64
		want  bool
	}{
		{name: "below threshold", spent: 890, limit: 1000, want: false},
		{name: "at threshold", spent: 900, limit: 1000, want: true},
		{name: "at limit", spent: 1000, limit: 1000, want: true},
		{name: "already exceeded", spent: 1001, limit: 1000, want: false},
		{name: "zero limit", spent: 100, limit: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsApproachingLimit(tt.spent, tt.limit))
		})
	}
}

func TestGoalProgressPercent(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    int
	}{
		{name: "partial progress", current: 41000, target: 150000, want: 27},
		{name: "complete", current: 150000, target: 150000, want: 100},
		{name: "overfunded clamps", current: 200000, target: 150000, want: 100},
		{name: "zero target guarded", current: 500, target: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GoalProgressPercent(tt.current, tt.target))
		})
	}
}

func TestGoalRatioUnclamped(t *testing.T) {
	assert.InDelta(t, 4.0/3.0, GoalRatio(200000, 150000), 1e-9)
	assert.Zero(t, GoalRatio(500, 0))
}
