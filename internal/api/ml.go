package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// CurrentUserSentinel is the literal the ML namespace accepts in place
// of a numeric user id; the backend substitutes the authenticated user.
const CurrentUserSentinel = "me"

// MLService wraps the ML analytics namespace. Results are opaque remote
// computations; a 404 or 400 from these routes is a normal
// not-yet-available state, not a failure worth notifying about.
type MLService struct {
	client *Client
}

// NewMLService creates the ML resource client.
func NewMLService(client *Client) *MLService {
	return &MLService{client: client}
}

// Health checks whether the ML service is reachable.
func (s *MLService) Health(ctx context.Context) (model.MLHealth, error) {
	var out model.MLHealth
	err := s.client.get(ctx, "/ml/health", nil, &out)
	return out, err
}

// Train retrains the user's models.
func (s *MLService) Train(ctx context.Context) (model.MLTrainResult, error) {
	var out model.MLTrainResult
	err := s.client.post(ctx, "/ml/train", nil, &out)
	return out, err
}

// Predictions fetches the savings prediction series.
func (s *MLService) Predictions(ctx context.Context, months int) (model.MLPredictions, error) {
	q := url.Values{}
	q.Set("months", strconv.Itoa(months))

	var out model.MLPredictions
	err := s.client.get(ctx, "/ml/predictions", q, &out)
	return out, err
}

// Insights fetches generated insight entries.
func (s *MLService) Insights(ctx context.Context) (model.MLInsights, error) {
	var out model.MLInsights
	err := s.client.get(ctx, "/ml/insights", nil, &out)
	return out, err
}

// InsightsSummary fetches insight counts per type.
func (s *MLService) InsightsSummary(ctx context.Context) (model.MLInsightsSummary, error) {
	var out model.MLInsightsSummary
	err := s.client.get(ctx, "/ml/insights/summary", nil, &out)
	return out, err
}

// GoalTimeline estimates how long a savings goal will take.
func (s *MLService) GoalTimeline(ctx context.Context, req model.GoalTimelineRequest) (model.GoalTimeline, error) {
	var out model.GoalTimeline
	err := s.client.post(ctx, "/ml/goals/timeline", req, &out)
	return out, err
}

// ReversePlan computes the monthly saving a target date demands.
func (s *MLService) ReversePlan(ctx context.Context, req model.ReversePlanRequest) (model.ReversePlan, error) {
	var out model.ReversePlan
	err := s.client.post(ctx, "/ml/goals/reverse-plan", req, &out)
	return out, err
}

// AdvancedForecast fetches the multi-month expense forecast.
func (s *MLService) AdvancedForecast(ctx context.Context, months int) (model.ExpenseForecast, error) {
	body := struct {
		Months int `json:"months"`
	}{Months: months}

	var out model.ExpenseForecast
	err := s.client.post(ctx, "/ml/predictions/expense/advanced", body, &out)
	return out, err
}

// HealthScore fetches the 0-100 financial health score.
func (s *MLService) HealthScore(ctx context.Context) (model.HealthScore, error) {
	var out model.HealthScore
	err := s.client.get(ctx, "/ml/insights/health-score", nil, &out)
	return out, err
}

// HealthTrends fetches the health score series over time.
func (s *MLService) HealthTrends(ctx context.Context) (model.HealthTrends, error) {
	var out model.HealthTrends
	err := s.client.get(ctx, "/ml/insights/trends/"+CurrentUserSentinel, nil, &out)
	return out, err
}

// Benchmark compares the user's metrics with peer averages.
func (s *MLService) Benchmark(ctx context.Context) (model.Benchmark, error) {
	var out model.Benchmark
	err := s.client.get(ctx, "/ml/insights/benchmark/"+CurrentUserSentinel, nil, &out)
	return out, err
}

// BudgetRecommendations fetches 50/30/20-style allocation advice for a
// total budget.
func (s *MLService) BudgetRecommendations(ctx context.Context, totalBudget float64) (model.BudgetRecommendations, error) {
	body := struct {
		TotalBudget float64 `json:"total_budget"`
	}{TotalBudget: totalBudget}

	var out model.BudgetRecommendations
	err := s.client.post(ctx, "/ml/budget/recommend", body, &out)
	return out, err
}

// BudgetAlerts fetches current overspending alerts.
func (s *MLService) BudgetAlerts(ctx context.Context) (model.BudgetAlerts, error) {
	var out model.BudgetAlerts
	err := s.client.post(ctx, "/ml/budget/alerts", struct{}{}, &out)
	return out, err
}

// OptimizeBudget fetches reallocation suggestions.
func (s *MLService) OptimizeBudget(ctx context.Context) (model.BudgetOptimizations, error) {
	var out model.BudgetOptimizations
	err := s.client.post(ctx, "/ml/budget/optimize", struct{}{}, &out)
	return out, err
}

// SpendingHabits fetches the habit analysis.
func (s *MLService) SpendingHabits(ctx context.Context) (model.SpendingHabits, error) {
	var out model.SpendingHabits
	err := s.client.get(ctx, "/ml/recommendations/habits/"+CurrentUserSentinel, nil, &out)
	return out, err
}

// SavingsOpportunities fetches suggested ways to save.
func (s *MLService) SavingsOpportunities(ctx context.Context) (model.SavingsOpportunities, error) {
	var out model.SavingsOpportunities
	err := s.client.get(ctx, "/ml/recommendations/opportunities/"+CurrentUserSentinel, nil, &out)
	return out, err
}

// BehaviorNudges fetches short behavioral prompts.
func (s *MLService) BehaviorNudges(ctx context.Context) (model.BehaviorNudges, error) {
	var out model.BehaviorNudges
	err := s.client.get(ctx, "/ml/recommendations/nudges/"+CurrentUserSentinel, nil, &out)
	return out, err
}

// ModelPerformance fetches accuracy metrics for the trained models.
func (s *MLService) ModelPerformance(ctx context.Context) (model.ModelPerformanceReport, error) {
	var out model.ModelPerformanceReport
	err := s.client.get(ctx, "/ml/models/performance/"+CurrentUserSentinel, nil, &out)
	return out, err
}
