package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ahamed-hazeeb/budget-buddy/internal/aggregate"
	"github.com/ahamed-hazeeb/budget-buddy/internal/cli"
	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
	"github.com/ahamed-hazeeb/budget-buddy/internal/query"
)

func insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "ML-generated financial insights",
		RunE:  runInsightsOverview,
	}

	cmd.AddCommand(trainCmd())
	cmd.AddCommand(forecastCmd())
	cmd.AddCommand(benchmarkCmd())
	cmd.AddCommand(habitsCmd())
	cmd.AddCommand(alertsCmd())
	cmd.AddCommand(recommendCmd())
	cmd.AddCommand(optimizeCmd())
	cmd.AddCommand(modelsCmd())
	cmd.AddCommand(goalPlanCmd())

	return cmd
}

// fetchWidget runs one cached analytics fetch and renders an
// empty-state instead of failing when the backend has no data yet.
// It reports whether the widget has anything to show.
func fetchWidget[T any](ctx context.Context, app *app, key query.Key, emptyState string, fetch func(context.Context) (T, error)) (T, bool, error) {
	value, err := query.Fetch(ctx, app.queries, key, fetch)
	if err != nil {
		if cli.SuppressAnalytics(err) {
			fmt.Println(cli.SubtleStyle.Render(emptyState))
			var zero T
			return zero, false, nil
		}
		var zero T
		return zero, false, err
	}
	return value, true, nil
}

func runInsightsOverview(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := app.requireSession(); err != nil {
		return err
	}

	ctx := cmd.Context()
	userID, err := app.session.UserID()
	if err != nil {
		return err
	}
	uid := strconv.FormatInt(userID, 10)

	fmt.Println(cli.FormatTitle("Insights"))

	// Health score
	score, ok, err := fetchWidget(ctx, app, query.NewKey(query.MLHealthScore, uid),
		"Health score not available yet. Train a model with 'buddy insights train'.",
		func(ctx context.Context) (model.HealthScore, error) {
			return app.ml.HealthScore(ctx)
		})
	if err != nil {
		return app.check(err)
	}
	if ok {
		fmt.Printf("\n%s %s (%.0f/100)\n",
			cli.BoldStyle.Render("Financial health:"),
			cli.TitleStyle.UnsetMargins().Render(score.Grade), score.Score)
		for _, rec := range score.Recommendations {
			fmt.Println("  " + cli.InfoStyle.Render("• "+rec))
		}
	}

	// Prioritized insights
	insights, ok, err := fetchWidget(ctx, app, query.NewKey(query.MLInsights, uid),
		"No insights generated yet.",
		func(ctx context.Context) (model.MLInsights, error) {
			return app.ml.Insights(ctx)
		})
	if err != nil {
		return app.check(err)
	}
	if ok && len(insights.Insights) > 0 {
		fmt.Println()
		fmt.Println(cli.SubtitleStyle.Render("What stands out"))
		ranked := aggregate.SortByPriority(insights.Insights, func(i model.MLInsight) model.Priority {
			return i.Priority
		})
		for _, insight := range aggregate.Truncate(ranked, aggregate.InsightDisplayCount) {
			fmt.Printf("  [%s] %s — %s\n", insight.Priority, cli.BoldStyle.Render(insight.Title), insight.Description)
		}
	}

	// Behavior nudges
	nudges, ok, err := fetchWidget(ctx, app, query.NewKey(query.MLBehaviorNudges, uid),
		"No nudges right now.",
		func(ctx context.Context) (model.BehaviorNudges, error) {
			return app.ml.BehaviorNudges(ctx)
		})
	if err != nil {
		return app.check(err)
	}
	if ok && len(nudges.Nudges) > 0 {
		fmt.Println()
		fmt.Println(cli.SubtitleStyle.Render("Nudges"))
		ranked := aggregate.SortByPriority(nudges.Nudges, func(n model.BehaviorNudge) model.Priority {
			return n.Urgency
		})
		for _, nudge := range aggregate.Truncate(ranked, aggregate.NudgeDisplayCount) {
			fmt.Println("  " + cli.WarningStyle.Render("→ ") + nudge.Message)
		}
	}

	// Savings opportunities
	opportunities, ok, err := fetchWidget(ctx, app, query.NewKey(query.MLSavingsOpportunities, uid),
		"No savings opportunities identified yet.",
		func(ctx context.Context) (model.SavingsOpportunities, error) {
			return app.ml.SavingsOpportunities(ctx)
		})
	if err != nil {
		return app.check(err)
	}
	if ok && len(opportunities.Opportunities) > 0 {
		fmt.Println()
		fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("Savings opportunities (up to %s/mo)",
			cli.Money(opportunities.TotalPotentialSavings))))
		for _, opp := range opportunities.Opportunities {
			fmt.Printf("  %s: save %s/mo (%s)\n",
				opp.Opportunity, cli.Money(opp.PotentialMonthlySavings), opp.Difficulty)
		}
	}

	return nil
}

func trainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Train the prediction models on your data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			var result model.MLTrainResult
			err = app.queries.Mutate(cmd.Context(), query.MutateTrainModel, func(ctx context.Context) error {
				var trainErr error
				result, trainErr = app.ml.Train(ctx)
				return trainErr
			})
			if err != nil {
				return app.check(err)
			}

			message := result.Message
			if message == "" {
				message = "Model training started"
			}
			app.notifier.Success(message)
			return nil
		},
	}
}

func forecastCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast upcoming expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if months < 1 || months > 24 {
				return common.NewUserError("Months must be between 1 and 24", nil)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			userID, err := app.session.UserID()
			if err != nil {
				return err
			}

			key := query.NewKey(query.MLAdvancedForecast, strconv.FormatInt(userID, 10), strconv.Itoa(months))
			forecast, ok, err := fetchWidget(cmd.Context(), app, key,
				"Forecast not available yet. Train a model with 'buddy insights train'.",
				func(ctx context.Context) (model.ExpenseForecast, error) {
					return app.ml.AdvancedForecast(ctx, months)
				})
			if err != nil {
				return app.check(err)
			}
			if !ok {
				return nil
			}

			fmt.Println(cli.FormatTitle("Expense forecast"))
			for _, point := range forecast.Predictions {
				fmt.Printf("  %-10s %s  (%.0f%% confidence)\n",
					point.Month, cli.Money(point.PredictedExpense), point.Confidence*100)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&months, "months", "m", 6, "months to forecast")

	return cmd
}

func benchmarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "benchmark",
		Short: "Compare your finances with peers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			userID, err := app.session.UserID()
			if err != nil {
				return err
			}

			key := query.NewKey(query.MLBenchmark, strconv.FormatInt(userID, 10))
			benchmark, ok, err := fetchWidget(cmd.Context(), app, key,
				"Benchmark not available yet.",
				func(ctx context.Context) (model.Benchmark, error) {
					return app.ml.Benchmark(ctx)
				})
			if err != nil {
				return app.check(err)
			}
			if !ok {
				return nil
			}

			fmt.Println(cli.FormatTitle("Peer benchmark"))
			fmt.Printf("  Savings rate:  you %.1f%%, peers %.1f%%\n",
				benchmark.UserMetrics.SavingsRate, benchmark.PeerAverage.SavingsRate)
			fmt.Printf("  Expense ratio: you %.1f%%, peers %.1f%%\n",
				benchmark.UserMetrics.ExpenseRatio, benchmark.PeerAverage.ExpenseRatio)
			fmt.Printf("  Rank: %s\n", cli.BoldStyle.Render(benchmark.Comparison.Rank))
			for _, insight := range benchmark.Insights {
				fmt.Println("  " + cli.InfoStyle.Render("• "+insight))
			}
			return nil
		},
	}
}

func habitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "habits",
		Short: "Show identified spending habits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			userID, err := app.session.UserID()
			if err != nil {
				return err
			}

			key := query.NewKey(query.MLSpendingHabits, strconv.FormatInt(userID, 10))
			habits, ok, err := fetchWidget(cmd.Context(), app, key,
				"No spending habits identified yet.",
				func(ctx context.Context) (model.SpendingHabits, error) {
					return app.ml.SpendingHabits(ctx)
				})
			if err != nil {
				return app.check(err)
			}
			if !ok || len(habits.Habits) == 0 {
				return nil
			}

			fmt.Println(cli.FormatTitle("Spending habits"))
			for _, habit := range habits.Habits {
				fmt.Printf("  %s (%s total)\n", cli.BoldStyle.Render(habit.Habit), cli.Money(habit.TotalCost))
				if habit.Suggestion != "" {
					fmt.Println("    " + cli.SubtleStyle.Render(habit.Suggestion))
				}
			}
			if habits.PotentialSavings > 0 {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("Potential savings: %s/mo", cli.Money(habits.PotentialSavings))))
			}
			return nil
		},
	}
}

func alertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show budget alerts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			userID, err := app.session.UserID()
			if err != nil {
				return err
			}

			key := query.NewKey(query.MLBudgetAlerts, strconv.FormatInt(userID, 10))
			alerts, ok, err := fetchWidget(cmd.Context(), app, key,
				"No budget alerts.",
				func(ctx context.Context) (model.BudgetAlerts, error) {
					return app.ml.BudgetAlerts(ctx)
				})
			if err != nil {
				return app.check(err)
			}
			if !ok {
				return nil
			}

			if alerts.TotalAlerts == 0 {
				fmt.Println(cli.FormatSuccess("All budgets look healthy"))
				return nil
			}

			fmt.Println(cli.FormatTitle("Budget alerts"))
			for _, alert := range alerts.Alerts {
				line := fmt.Sprintf("%s: %s (%.0f%% used)", alert.Category, alert.Message, alert.PercentageUsed)
				if alert.Status == "critical" {
					fmt.Println("  " + cli.FormatError(line))
				} else {
					fmt.Println("  " + cli.FormatWarning(line))
				}
			}
			return nil
		},
	}
}

func recommendCmd() *cobra.Command {
	var totalBudget float64

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get budget allocation recommendations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if totalBudget <= 0 {
				return common.NewUserError("Total budget must be greater than zero", nil)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			userID, err := app.session.UserID()
			if err != nil {
				return err
			}

			key := query.NewKey(query.MLBudgetRecommendations,
				strconv.FormatInt(userID, 10), strconv.FormatFloat(totalBudget, 'f', 2, 64))
			recommendations, ok, err := fetchWidget(cmd.Context(), app, key,
				"Recommendations not available yet.",
				func(ctx context.Context) (model.BudgetRecommendations, error) {
					return app.ml.BudgetRecommendations(ctx, totalBudget)
				})
			if err != nil {
				return app.check(err)
			}
			if !ok {
				return nil
			}

			fmt.Println(cli.FormatTitle("Recommended allocation"))
			if recommendations.RuleApplied != "" {
				fmt.Println(cli.SubtitleStyle.Render("Rule: " + recommendations.RuleApplied))
			}
			for _, rec := range recommendations.Recommendations {
				fmt.Printf("  %-20s %s (now spending %s)\n",
					rec.Category, cli.Money(rec.RecommendedAmount), cli.Money(rec.CurrentSpending))
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&totalBudget, "total", "t", 0, "total monthly budget to allocate")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func optimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Suggest budget reallocations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			userID, err := app.session.UserID()
			if err != nil {
				return err
			}

			key := query.NewKey(query.MLBudgetOptimize, strconv.FormatInt(userID, 10))
			optimizations, ok, err := fetchWidget(cmd.Context(), app, key,
				"No optimization suggestions yet.",
				func(ctx context.Context) (model.BudgetOptimizations, error) {
					return app.ml.OptimizeBudget(ctx)
				})
			if err != nil {
				return app.check(err)
			}
			if !ok || len(optimizations.Optimizations) == 0 {
				return nil
			}

			fmt.Println(cli.FormatTitle("Budget optimization"))
			for _, opt := range optimizations.Optimizations {
				fmt.Printf("  %-20s %s → %s (%+.1f%%)\n",
					opt.Category, cli.Money(opt.CurrentAllocation),
					cli.Money(opt.OptimizedAllocation), opt.ChangePercentage)
				if opt.Reasoning != "" {
					fmt.Println("    " + cli.SubtleStyle.Render(opt.Reasoning))
				}
			}
			if optimizations.ExpectedImprovement != "" {
				fmt.Println(cli.FormatInfo(optimizations.ExpectedImprovement))
			}
			return nil
		},
	}
}

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Show prediction model performance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			userID, err := app.session.UserID()
			if err != nil {
				return err
			}

			key := query.NewKey(query.MLModelPerformance, strconv.FormatInt(userID, 10))
			report, ok, err := fetchWidget(cmd.Context(), app, key,
				"No trained models yet. Run 'buddy insights train' first.",
				func(ctx context.Context) (model.ModelPerformanceReport, error) {
					return app.ml.ModelPerformance(ctx)
				})
			if err != nil {
				return app.check(err)
			}
			if !ok || len(report.Models) == 0 {
				return nil
			}

			fmt.Println(cli.FormatTitle("Model performance"))
			for _, m := range report.Models {
				fmt.Printf("  %-24s %.1f%% accuracy, trained %s on %d records\n",
					m.ModelName, m.Accuracy*100, m.LastTrained, m.TrainingDataSize)
			}
			fmt.Printf("  Average accuracy: %.1f%% over %d predictions\n",
				report.OverallPerformance.AverageAccuracy*100,
				report.OverallPerformance.TotalPredictions)
			return nil
		},
	}
}

func goalPlanCmd() *cobra.Command {
	var (
		goalAmount float64
		savings    float64
		income     float64
		expenses   float64
		byDate     string
	)

	cmd := &cobra.Command{
		Use:   "goal-plan",
		Short: "Estimate a savings goal timeline",
		Long: `Estimate how long a savings goal will take at your current pace, or,
with --by, how much you need to save monthly to hit a target date.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if goalAmount <= 0 {
				return common.NewUserError("Goal amount must be greater than zero", nil)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			ctx := cmd.Context()

			if byDate != "" {
				targetDate, err := parseDateFlag(byDate)
				if err != nil {
					return err
				}

				plan, err := app.ml.ReversePlan(ctx, model.ReversePlanRequest{
					GoalAmount:     goalAmount,
					TargetDate:     targetDate,
					CurrentSavings: savings,
					MonthlyIncome:  income,
				})
				if err != nil {
					return app.check(err)
				}

				fmt.Println(cli.FormatTitle("Reverse plan"))
				fmt.Printf("  Save %s per month (%.1f%% of income)\n",
					cli.Money(plan.RequiredMonthlySavings), plan.SavingsRate)
				if !plan.IsAchievable {
					fmt.Println(cli.FormatWarning("This pace is not achievable at current income"))
					if plan.Adjustments.ReduceExpensesBy > 0 {
						fmt.Printf("  Reduce expenses by %s/mo\n", cli.Money(plan.Adjustments.ReduceExpensesBy))
					}
					if plan.Adjustments.IncreaseIncomeBy > 0 {
						fmt.Printf("  Increase income by %s/mo\n", cli.Money(plan.Adjustments.IncreaseIncomeBy))
					}
				}
				return nil
			}

			timeline, err := app.ml.GoalTimeline(ctx, model.GoalTimelineRequest{
				GoalAmount:      goalAmount,
				CurrentSavings:  savings,
				MonthlyIncome:   income,
				MonthlyExpenses: expenses,
			})
			if err != nil {
				return app.check(err)
			}

			fmt.Println(cli.FormatTitle("Goal timeline"))
			fmt.Printf("  Estimated %d months (around %s)\n", timeline.EstimatedMonths, timeline.EstimatedDate)
			fmt.Printf("  Requires %s saved per month\n", cli.Money(timeline.MonthlySavingsRequired))
			fmt.Printf("  Feasibility: %s\n", timeline.Feasibility)
			for _, rec := range timeline.Recommendations {
				fmt.Println("  " + cli.InfoStyle.Render("• "+rec))
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&goalAmount, "amount", "a", 0, "goal amount")
	cmd.Flags().Float64Var(&savings, "savings", 0, "current savings")
	cmd.Flags().Float64Var(&income, "income", 0, "monthly income")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "monthly expenses")
	cmd.Flags().StringVar(&byDate, "by", "", "target date (YYYY-MM-DD) for a reverse plan")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
