package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ahamed-hazeeb/budget-buddy/internal/aggregate"
	"github.com/ahamed-hazeeb/budget-buddy/internal/cli"
	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the financial overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			var (
				transactions []model.Transaction
				accounts     []model.Account
				categories   []model.Category
				budgets      []model.Budget
			)

			// The four panels are independent; fetch them together.
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var fetchErr error
				transactions, fetchErr = fetchTransactions(ctx, app)
				return fetchErr
			})
			g.Go(func() error {
				var fetchErr error
				accounts, fetchErr = fetchAccounts(ctx, app)
				return fetchErr
			})
			g.Go(func() error {
				var fetchErr error
				categories, fetchErr = fetchCategories(ctx, app)
				return fetchErr
			})
			g.Go(func() error {
				var fetchErr error
				budgets, fetchErr = fetchBudgets(ctx, app)
				return fetchErr
			})
			if err := g.Wait(); err != nil {
				return app.check(err)
			}

			user := app.session.User()
			if user != nil {
				fmt.Println(cli.FormatTitle("Hello, " + user.Name))
			} else {
				fmt.Println(cli.FormatTitle("Dashboard"))
			}

			renderTotals(os.Stdout, transactions, accounts)
			renderBreakdown(os.Stdout, transactions, categories)
			renderBudgetPanel(os.Stdout, budgets)

			return nil
		},
	}
}

func renderTotals(w io.Writer, transactions []model.Transaction, accounts []model.Account) {
	income := aggregate.TotalIncome(transactions)
	expenses := aggregate.TotalExpenses(transactions)

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.BoldStyle.Render("Income:   ")+cli.IncomeStyle.Render(cli.Money(income)))
	fmt.Fprintln(w, cli.BoldStyle.Render("Expenses: ")+cli.ExpenseStyle.Render(cli.Money(expenses)))
	fmt.Fprintln(w, cli.BoldStyle.Render("Net:      ")+cli.SignedMoney(income-expenses))
	fmt.Fprintln(w, cli.BoldStyle.Render("Balance:  ")+cli.SignedMoney(aggregate.TotalBalance(accounts)))
}

func renderBreakdown(w io.Writer, transactions []model.Transaction, categories []model.Category) {
	breakdown := aggregate.ExpenseBreakdown(transactions, categories, aggregate.TopCategories)
	if len(breakdown) == 0 {
		return
	}

	total := aggregate.TotalExpenses(transactions)

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.SubtitleStyle.Render("Top spending"))
	for _, entry := range breakdown {
		var share float64
		if total > 0 {
			share = entry.Amount / total * 100
		}
		fmt.Fprintf(w, "  %-20s %s %s\n", entry.Name, cli.PercentBar(share), cli.Money(entry.Amount))
	}
}

func renderBudgetPanel(w io.Writer, budgets []model.Budget) {
	if len(budgets) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.SubtitleStyle.Render("Budgets"))
	for _, b := range budgets {
		fmt.Fprintf(w, "  %-20s %s\n", b.Category, cli.PercentBar(aggregate.BudgetRatio(b.Spent, b.Limit)*100))
		if aggregate.IsOverBudget(b.Spent, b.Limit) {
			fmt.Fprintln(w, "  "+cli.FormatWarning(fmt.Sprintf("over by %s", cli.Money(b.Spent-b.Limit))))
		} else if aggregate.IsApproachingLimit(b.Spent, b.Limit) {
			fmt.Fprintln(w, "  "+cli.FormatInfo("approaching limit"))
		}
	}
}
