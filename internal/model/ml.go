package model

// Payload types for the ML analytics namespace. These are consumed as
// opaque remote results; no inference happens client-side.

// MLHealth reports whether the ML service is reachable.
type MLHealth struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MLTrainResult is the backend's answer to a training request.
type MLTrainResult struct {
	Message string `json:"message"`
	Metrics struct {
		Accuracy float64 `json:"accuracy,omitempty"`
		Loss     float64 `json:"loss,omitempty"`
	} `json:"metrics,omitempty"`
}

// MLPrediction is one month's predicted savings.
type MLPrediction struct {
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	PredictedSavings float64 `json:"predictedSavings"`
	Confidence       float64 `json:"confidence,omitempty"`
}

// MLPredictions wraps the savings prediction series.
type MLPredictions struct {
	Predictions []MLPrediction `json:"predictions"`
}

// MLInsight is a single generated insight entry.
type MLInsight struct {
	ID          FlexID   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category,omitempty"`
	Actionable  bool     `json:"actionable,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

// MLInsights wraps the insight list.
type MLInsights struct {
	Insights []MLInsight `json:"insights"`
}

// MLInsightsSummary counts insights per type.
type MLInsightsSummary struct {
	TotalInsights int `json:"totalInsights"`
	Categories    struct {
		Warnings     int `json:"warnings"`
		Suggestions  int `json:"suggestions"`
		Achievements int `json:"achievements"`
	} `json:"categories"`
	LastUpdated string `json:"lastUpdated"`
}

// GoalTimelineRequest asks how long a savings goal will take.
type GoalTimelineRequest struct {
	GoalAmount      float64 `json:"goalAmount"`
	CurrentSavings  float64 `json:"currentSavings"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
}

// GoalTimeline is the estimated path to a savings goal.
type GoalTimeline struct {
	EstimatedMonths        int      `json:"estimatedMonths"`
	EstimatedDate          string   `json:"estimatedDate"`
	MonthlySavingsRequired float64  `json:"monthlySavingsRequired"`
	Feasibility            Priority `json:"feasibility"`
	Recommendations        []string `json:"recommendations,omitempty"`
}

// ReversePlanRequest asks what monthly saving a target date demands.
type ReversePlanRequest struct {
	GoalAmount     float64 `json:"goalAmount"`
	TargetDate     Date    `json:"targetDate"`
	CurrentSavings float64 `json:"currentSavings"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
}

// ReversePlan is the backend's reverse-planned savings schedule.
type ReversePlan struct {
	RequiredMonthlySavings float64 `json:"requiredMonthlySavings"`
	SavingsRate            float64 `json:"savingsRate"`
	IsAchievable           bool    `json:"isAchievable"`
	Adjustments            struct {
		ReduceExpensesBy float64 `json:"reduceExpensesBy,omitempty"`
		IncreaseIncomeBy float64 `json:"increaseIncomeBy,omitempty"`
	} `json:"adjustments,omitempty"`
}

// HealthScore is the 0-100 financial health score with letter grade.
type HealthScore struct {
	Score                   float64  `json:"score"`
	Grade                   string   `json:"grade"`
	SavingsRateScore        float64  `json:"savings_rate_score"`
	ExpenseConsistencyScore float64  `json:"expense_consistency_score"`
	EmergencyFundScore      float64  `json:"emergency_fund_score"`
	Recommendations         []string `json:"recommendations"`
}

// HealthTrend is one point of the health score over time.
type HealthTrend struct {
	Date        string  `json:"date"`
	Score       float64 `json:"score"`
	Grade       string  `json:"grade"`
	SavingsRate float64 `json:"savings_rate"`
}

// HealthTrends wraps the health score series.
type HealthTrends struct {
	Trends      []HealthTrend `json:"trends"`
	Period      string        `json:"period"`
	Improvement float64       `json:"improvement"`
	Insights    []string      `json:"insights"`
}

// ForecastPoint is one month of the advanced expense forecast.
type ForecastPoint struct {
	Month            string  `json:"month"`
	PredictedExpense float64 `json:"predicted_expense"`
	Confidence       float64 `json:"confidence"`
	Trend            string  `json:"trend,omitempty"`
}

// ExpenseForecast is the multi-month expense forecast.
type ExpenseForecast struct {
	Predictions []ForecastPoint `json:"predictions"`
}

// BudgetRecommendation is one category allocation suggestion.
type BudgetRecommendation struct {
	Category          string  `json:"category"`
	RecommendedAmount float64 `json:"recommended_amount"`
	CurrentSpending   float64 `json:"current_spending"`
	Variance          float64 `json:"variance"`
	Reasoning         string  `json:"reasoning,omitempty"`
}

// BudgetRecommendations wraps the 50/30/20-style allocation advice.
type BudgetRecommendations struct {
	Recommendations []BudgetRecommendation `json:"recommendations"`
	TotalBudget     float64                `json:"total_budget"`
	RuleApplied     string                 `json:"rule_applied,omitempty"`
}

// BudgetAlert flags a budget near or over its limit.
type BudgetAlert struct {
	Category        string  `json:"category"`
	BudgetLimit     float64 `json:"budget_limit"`
	CurrentSpending float64 `json:"current_spending"`
	PercentageUsed  float64 `json:"percentage_used"`
	Status          string  `json:"status"`
	Message         string  `json:"message"`
}

// BudgetAlerts wraps the alert list.
type BudgetAlerts struct {
	Alerts        []BudgetAlert `json:"alerts"`
	TotalAlerts   int           `json:"total_alerts"`
	CriticalCount int           `json:"critical_count"`
}

// BudgetOptimization is one suggested reallocation.
type BudgetOptimization struct {
	Category            string  `json:"category"`
	CurrentAllocation   float64 `json:"current_allocation"`
	OptimizedAllocation float64 `json:"optimized_allocation"`
	ChangeAmount        float64 `json:"change_amount"`
	ChangePercentage    float64 `json:"change_percentage"`
	Reasoning           string  `json:"reasoning"`
}

// BudgetOptimizations wraps the reallocation suggestions.
type BudgetOptimizations struct {
	Optimizations       []BudgetOptimization `json:"optimizations"`
	TotalReallocation   float64              `json:"total_reallocation"`
	ExpectedImprovement string               `json:"expected_improvement"`
}

// SpendingHabit is one identified recurring spending pattern.
type SpendingHabit struct {
	Habit      string   `json:"habit"`
	Frequency  float64  `json:"frequency"`
	TotalCost  float64  `json:"total_cost"`
	Suggestion string   `json:"suggestion"`
	Category   string   `json:"category,omitempty"`
	Severity   Priority `json:"severity,omitempty"`
}

// SpendingHabits wraps the habit analysis.
type SpendingHabits struct {
	Habits           []SpendingHabit `json:"habits"`
	TotalIdentified  int             `json:"total_identified"`
	PotentialSavings float64         `json:"potential_savings"`
}

// SavingsOpportunity is one suggested way to save.
type SavingsOpportunity struct {
	Opportunity             string   `json:"opportunity"`
	Category                string   `json:"category"`
	PotentialMonthlySavings float64  `json:"potential_monthly_savings"`
	Difficulty              string   `json:"difficulty"`
	Impact                  Priority `json:"impact"`
	Description             string   `json:"description"`
}

// SavingsOpportunities wraps the opportunity list.
type SavingsOpportunities struct {
	Opportunities         []SavingsOpportunity `json:"opportunities"`
	TotalPotentialSavings float64              `json:"total_potential_savings"`
}

// BehaviorNudge is one short behavioral prompt.
type BehaviorNudge struct {
	Message        string   `json:"message"`
	Type           string   `json:"type"`
	Urgency        Priority `json:"urgency"`
	ActionRequired string   `json:"action_required,omitempty"`
}

// BehaviorNudges wraps the nudge list.
type BehaviorNudges struct {
	Nudges      []BehaviorNudge `json:"nudges"`
	GeneratedAt string          `json:"generated_at"`
}

// BenchmarkMetrics is one side of a peer comparison.
type BenchmarkMetrics struct {
	SavingsRate    float64 `json:"savings_rate"`
	ExpenseRatio   float64 `json:"expense_ratio"`
	MonthlySurplus float64 `json:"monthly_surplus"`
}

// Benchmark compares the user's metrics against peer averages.
type Benchmark struct {
	UserMetrics BenchmarkMetrics `json:"user_metrics"`
	PeerAverage BenchmarkMetrics `json:"peer_average"`
	Comparison  struct {
		SavingsRatePercentile  float64 `json:"savings_rate_percentile"`
		ExpenseRatioPercentile float64 `json:"expense_ratio_percentile"`
		Rank                   string  `json:"rank"`
	} `json:"comparison"`
	Insights []string `json:"insights"`
}

// ModelPerformance reports one model's accuracy metrics.
type ModelPerformance struct {
	ModelName        string  `json:"model_name"`
	Accuracy         float64 `json:"accuracy"`
	LastTrained      string  `json:"last_trained"`
	TrainingDataSize int     `json:"training_data_size"`
	PredictionsMade  int     `json:"predictions_made"`
}

// ModelPerformanceReport wraps all model metrics.
type ModelPerformanceReport struct {
	Models             []ModelPerformance `json:"models"`
	OverallPerformance struct {
		AverageAccuracy  float64 `json:"average_accuracy"`
		TotalPredictions int     `json:"total_predictions"`
	} `json:"overall_performance"`
}
