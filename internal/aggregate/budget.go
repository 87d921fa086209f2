package aggregate

import "math"

// BudgetPercentUsed is the clamped, rounded percentage of a budget
// consumed, suitable for bar widths: always within [0, 100], and 0 when
// no limit is set rather than NaN or Infinity.
func BudgetPercentUsed(spent, limit float64) int {
	if limit <= 0 {
		return 0
	}
	pct := math.Round(spent / limit * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// BudgetRatio is the raw, unclamped spent/limit ratio that drives the
// exceeded and approaching-limit states. Zero limits yield 0.
func BudgetRatio(spent, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return spent / limit
}

// IsOverBudget reports whether spending exceeds the limit.
func IsOverBudget(spent, limit float64) bool {
	return spent > limit
}

// IsApproachingLimit reports whether spending is at 90% or more of the
// limit without having exceeded it.
func IsApproachingLimit(spent, limit float64) bool {
	ratio := BudgetRatio(spent, limit)
	return ratio >= 0.9 && ratio <= 1.0
}

// GoalProgressPercent is the rounded progress toward a goal target,
// clamped to 100 for rendering. A zero target reads as 0% rather than a
// computation error.
func GoalProgressPercent(current, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := math.Round(current / target * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// GoalRatio is the raw, unclamped progress ratio.
func GoalRatio(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return current / target
}
