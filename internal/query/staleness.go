package query

import "time"

// Staleness windows per resource. Primary resources change with every
// mutation and are always refetched; analytics resources are expensive
// backend computations that do not change between training runs, so
// they get windows of minutes to a week.
var stalenessWindows = map[Resource]time.Duration{
	Transactions: 0,
	Accounts:     0,
	Budgets:      0,
	Goals:        0,
	Bills:        0,
	Categories:   0,
	UserProfile:  5 * time.Minute,

	MLHealth:                5 * time.Minute,
	MLPredictions:           10 * time.Minute,
	MLInsights:              5 * time.Minute,
	MLInsightsSummary:       5 * time.Minute,
	MLHealthScore:           24 * time.Hour,
	MLHealthTrends:          24 * time.Hour,
	MLBenchmark:             7 * 24 * time.Hour,
	MLBudgetRecommendations: time.Hour,
	MLBudgetAlerts:          15 * time.Minute,
	MLBudgetOptimize:        time.Hour,
	MLSpendingHabits:        24 * time.Hour,
	MLSavingsOpportunities:  24 * time.Hour,
	MLBehaviorNudges:        time.Hour,
	MLAdvancedForecast:      30 * time.Minute,
	MLModelPerformance:      24 * time.Hour,
}

// StaleAfter returns the staleness window for a resource. Unknown
// resources are always considered stale.
func StaleAfter(resource Resource) time.Duration {
	return stalenessWindows[resource]
}

// RetryEnabled reports whether failed fetches for a resource should be
// retried. Analytics resources answer 404/400 while their models are
// not yet trained; retrying those would only repeat the same answer.
func RetryEnabled(resource Resource) bool {
	return !resource.IsAnalytics() && resource != Categories
}
