// Package query deduplicates, caches, and invalidates remote-data
// fetches keyed by resource name and parameters. It is the only layer
// that decides when cached data may be served instead of refetched.
package query

import "strings"

// Resource names every cacheable remote collection. A resource is the
// first element of every cache key and the unit of invalidation.
type Resource string

// Cacheable resources.
const (
	Transactions Resource = "transactions"
	Accounts     Resource = "accounts"
	Budgets      Resource = "budgets"
	Goals        Resource = "goals"
	Bills        Resource = "bills"
	Categories   Resource = "categories"
	UserProfile  Resource = "user-profile"

	MLHealth                Resource = "ml-health"
	MLPredictions           Resource = "ml-predictions"
	MLInsights              Resource = "ml-insights"
	MLInsightsSummary       Resource = "ml-insights-summary"
	MLHealthScore           Resource = "ml-health-score"
	MLHealthTrends          Resource = "ml-health-trends"
	MLBenchmark             Resource = "ml-benchmark"
	MLBudgetRecommendations Resource = "ml-budget-recommendations"
	MLBudgetAlerts          Resource = "ml-budget-alerts"
	MLBudgetOptimize        Resource = "ml-budget-optimize"
	MLSpendingHabits        Resource = "ml-spending-habits"
	MLSavingsOpportunities  Resource = "ml-savings-opportunities"
	MLBehaviorNudges        Resource = "ml-behavior-nudges"
	MLAdvancedForecast      Resource = "ml-advanced-forecast"
	MLModelPerformance      Resource = "ml-model-performance"
)

// mlResources is every ML prediction/insight resource; training a model
// invalidates all of them.
var mlResources = []Resource{
	MLHealth,
	MLPredictions,
	MLInsights,
	MLInsightsSummary,
	MLHealthScore,
	MLHealthTrends,
	MLBenchmark,
	MLBudgetRecommendations,
	MLBudgetAlerts,
	MLBudgetOptimize,
	MLSpendingHabits,
	MLSavingsOpportunities,
	MLBehaviorNudges,
	MLAdvancedForecast,
	MLModelPerformance,
}

// IsAnalytics reports whether a resource's absence (404/400) is a
// normal not-yet-available state rather than a failure.
func (r Resource) IsAnalytics() bool {
	return strings.HasPrefix(string(r), "ml-")
}

// Key identifies one cached query: a resource plus any parameters that
// change the result (an id, a month count, a total budget).
type Key struct {
	Resource Resource
	Params   []string
}

// NewKey builds a cache key.
func NewKey(resource Resource, params ...string) Key {
	return Key{Resource: resource, Params: params}
}

// String renders the key in its canonical storage form, e.g.
// "transactions" or "ml-budget-recommendations:5000".
func (k Key) String() string {
	if len(k.Params) == 0 {
		return string(k.Resource)
	}
	return string(k.Resource) + ":" + strings.Join(k.Params, ":")
}
