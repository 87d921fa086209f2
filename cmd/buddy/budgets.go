package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahamed-hazeeb/budget-buddy/internal/aggregate"
	"github.com/ahamed-hazeeb/budget-buddy/internal/cli"
	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
	"github.com/ahamed-hazeeb/budget-buddy/internal/query"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage budgets",
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func fetchBudgets(ctx context.Context, app *app) ([]model.Budget, error) {
	userID, err := app.session.UserID()
	if err != nil {
		return nil, err
	}

	key := query.NewKey(query.Budgets, strconv.FormatInt(userID, 10))
	return query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Budget, error) {
		return app.budgets.GetAll(ctx)
	})
}

func listBudgetsCmd() *cobra.Command {
	var currentMonth bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budgets with usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			var budgets []model.Budget
			if currentMonth {
				key := query.NewKey(query.Budgets, strconv.FormatInt(userID, 10), "current-month")
				budgets, err = query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Budget, error) {
					return app.budgets.GetCurrentMonth(ctx)
				})
			} else {
				budgets, err = fetchBudgets(ctx, app)
			}
			if err != nil {
				return app.check(err)
			}

			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets found. Use 'buddy budgets add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Spent / Limit"),
				cli.TableHeaderStyle.Render("Usage"))

			for _, b := range budgets {
				percent := aggregate.BudgetRatio(b.Spent, b.Limit) * 100
				fmt.Fprintf(w, "%s\t%s\t%s / %s\t%s\n",
					b.ID, b.Category,
					cli.Money(b.Spent), cli.Money(b.Limit),
					cli.PercentBar(percent))
			}
			_ = w.Flush()

			for _, b := range budgets {
				if aggregate.IsOverBudget(b.Spent, b.Limit) {
					fmt.Println(cli.FormatWarning(fmt.Sprintf(
						"%s is over budget by %s", b.Category, cli.Money(b.Spent-b.Limit))))
				} else if aggregate.IsApproachingLimit(b.Spent, b.Limit) {
					fmt.Println(cli.FormatInfo(fmt.Sprintf(
						"%s is close to its limit (%d%% used)", b.Category,
						aggregate.BudgetPercentUsed(b.Spent, b.Limit))))
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&currentMonth, "current-month", false, "only budgets overlapping the current month")

	return cmd
}

func addBudgetCmd() *cobra.Command {
	var (
		category string
		limit    float64
		start    string
		end      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if category == "" {
				return common.NewUserError("Budget category is required", nil)
			}
			if limit <= 0 {
				return common.NewUserError("Budget limit must be greater than zero", nil)
			}

			startDate, err := parseDateFlag(start)
			if err != nil {
				return err
			}
			endDate, err := parseDateFlag(end)
			if err != nil {
				return err
			}
			if startDate.IsZero() {
				startDate = model.Today()
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			data := model.CreateBudget{
				Category:  category,
				Limit:     limit,
				StartDate: startDate,
				EndDate:   endDate,
			}

			err = app.queries.Mutate(cmd.Context(), query.MutateBudget, func(ctx context.Context) error {
				_, createErr := app.budgets.Create(ctx, data)
				return createErr
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Created %s budget of %s", category, cli.Money(limit)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "budget category")
	cmd.Flags().Float64VarP(&limit, "limit", "l", 0, "spending limit")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("limit")

	return cmd
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			err = app.queries.Mutate(cmd.Context(), query.MutateBudget, func(ctx context.Context) error {
				return app.budgets.Delete(ctx, args[0])
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Deleted budget %s", args[0]))
			return nil
		},
	}
}
