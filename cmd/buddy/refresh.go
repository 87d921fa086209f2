package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ahamed-hazeeb/budget-buddy/internal/cli"
	"github.com/ahamed-hazeeb/budget-buddy/internal/query"
)

// refreshStep warms one resource's cache. Analytics steps tolerate the
// backend having no data yet.
type refreshStep struct {
	name      string
	analytics bool
	run       func(ctx context.Context, app *app, uid string) error
}

func refreshSteps() []refreshStep {
	fetch := func(ctx context.Context, app *app, key query.Key, f func(context.Context) (any, error)) error {
		_, err := query.Fetch(ctx, app.queries, key, f)
		return err
	}

	return []refreshStep{
		{name: "transactions", run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.Transactions, uid), func(ctx context.Context) (any, error) {
				return app.transactions.GetAll(ctx)
			})
		}},
		{name: "accounts", run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.Accounts, uid), func(ctx context.Context) (any, error) {
				return app.accounts.GetAll(ctx)
			})
		}},
		{name: "budgets", run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.Budgets, uid), func(ctx context.Context) (any, error) {
				return app.budgets.GetAll(ctx)
			})
		}},
		{name: "categories", run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.Categories, uid), func(ctx context.Context) (any, error) {
				return app.categories.GetAll(ctx)
			})
		}},
		{name: "goals", run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.Goals, uid), func(ctx context.Context) (any, error) {
				return app.goals.GetAll(ctx)
			})
		}},
		{name: "bills", run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.Bills, uid), func(ctx context.Context) (any, error) {
				return app.bills.GetAll(ctx)
			})
		}},
		{name: "health score", analytics: true, run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.MLHealthScore, uid), func(ctx context.Context) (any, error) {
				return app.ml.HealthScore(ctx)
			})
		}},
		{name: "insights", analytics: true, run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.MLInsights, uid), func(ctx context.Context) (any, error) {
				return app.ml.Insights(ctx)
			})
		}},
		{name: "predictions", analytics: true, run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.MLPredictions, uid), func(ctx context.Context) (any, error) {
				return app.ml.Predictions(ctx, 6)
			})
		}},
		{name: "nudges", analytics: true, run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.MLBehaviorNudges, uid), func(ctx context.Context) (any, error) {
				return app.ml.BehaviorNudges(ctx)
			})
		}},
		{name: "alerts", analytics: true, run: func(ctx context.Context, app *app, uid string) error {
			return fetch(ctx, app, query.NewKey(query.MLBudgetAlerts, uid), func(ctx context.Context) (any, error) {
				return app.ml.BudgetAlerts(ctx)
			})
		}},
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refetch and cache every resource",
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
			uid := strconv.FormatInt(userID, 10)

			// Drop everything so each step refetches.
			if err := app.queries.Clear(); err != nil {
				return err
			}

			handler := cli.NewInterruptHandler(os.Stdout)
			ctx := handler.HandleInterrupts(cmd.Context(), true)

			steps := refreshSteps()
			bar := progressbar.NewOptions(len(steps),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Refreshing...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			var warmed, skipped int
			for _, step := range steps {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				if err := step.run(ctx, app, uid); err != nil {
					if step.analytics && cli.SuppressAnalytics(err) {
						skipped++
					} else {
						_ = bar.Clear()
						return app.check(err)
					}
				} else {
					warmed++
				}

				if err := bar.Add(1); err != nil {
					slog.Warn("Failed to advance progress bar", "error", err)
				}
			}

			if skipped > 0 {
				app.notifier.Info(fmt.Sprintf("%d analytics resources have no data yet", skipped))
			}
			app.notifier.Success(fmt.Sprintf("Refreshed %d resources", warmed))
			return nil
		},
	}
}
