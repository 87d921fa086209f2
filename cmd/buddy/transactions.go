package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahamed-hazeeb/budget-buddy/internal/cli"
	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
	"github.com/ahamed-hazeeb/budget-buddy/internal/query"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

// fetchTransactions is the cached read every command shares. The key
// carries the user id plus any filters so different views never
// collide.
func fetchTransactions(ctx context.Context, app *app, params ...string) ([]model.Transaction, error) {
	userID, err := app.session.UserID()
	if err != nil {
		return nil, err
	}

	key := query.NewKey(query.Transactions, append([]string{strconv.FormatInt(userID, 10)}, params...)...)
	return query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Transaction, error) {
		return app.transactions.GetAll(ctx)
	})
}

func listTransactionsCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		kindFlag  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
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

			var transactions []model.Transaction
			switch {
			case startDate != "" || endDate != "":
				var start, end model.Date
				if start, err = parseDateFlag(startDate); err != nil {
					return err
				}
				if end, err = parseDateFlag(endDate); err != nil {
					return err
				}
				key := query.NewKey(query.Transactions, strconv.FormatInt(userID, 10), startDate, endDate)
				transactions, err = query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Transaction, error) {
					return app.transactions.GetByDateRange(ctx, start, end)
				})
			case kindFlag != "":
				var kind model.TransactionKind
				if kind, err = model.ParseTransactionKind(kindFlag); err != nil {
					return common.NewUserError(fmt.Sprintf("Unknown transaction type %q", kindFlag), err)
				}
				key := query.NewKey(query.Transactions, strconv.FormatInt(userID, 10), string(kind))
				transactions, err = query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Transaction, error) {
					return app.transactions.GetByKind(ctx, kind)
				})
			default:
				transactions, err = fetchTransactions(ctx, app)
			}
			if err != nil {
				return app.check(err)
			}

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'buddy transactions add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Date"),
				cli.TableHeaderStyle.Render("Type"),
				cli.TableHeaderStyle.Render("Amount"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Note"))

			for _, tx := range transactions {
				amount := cli.Money(tx.Amount)
				if tx.Kind == model.KindExpense {
					amount = cli.ExpenseStyle.Render(amount)
				} else if tx.Kind == model.KindIncome {
					amount = cli.IncomeStyle.Render(amount)
				}
				category := tx.Category
				if category == "" {
					category = tx.CategoryID.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					tx.ID, tx.Date, tx.Kind, amount, category, tx.Note)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&kindFlag, "type", "t", "", "filter by type (income, expense, savings, bill)")

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		amount     float64
		kindFlag   string
		date       string
		categoryID int64
		accountID  int64
		note       string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if amount <= 0 {
				return common.NewUserError("Amount must be greater than zero", nil)
			}
			kind, err := model.ParseTransactionKind(kindFlag)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("Unknown transaction type %q", kindFlag), err)
			}

			txDate := model.Today()
			if date != "" {
				if txDate, err = parseDateFlag(date); err != nil {
					return err
				}
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			data := model.CreateTransaction{
				Date:   txDate,
				Amount: amount,
				Kind:   kind,
				Note:   note,
			}
			if categoryID != 0 {
				data.CategoryID = model.NewFlexID(categoryID)
			}
			if accountID != 0 {
				data.AccountID = model.NewFlexID(accountID)
			}

			err = app.queries.Mutate(cmd.Context(), query.MutateTransaction, func(ctx context.Context) error {
				_, createErr := app.transactions.Create(ctx, data)
				return createErr
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Recorded %s %s", kind, cli.Money(amount)))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "transaction amount")
	cmd.Flags().StringVarP(&kindFlag, "type", "t", "expense", "transaction type (income, expense, savings, bill)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "category id")
	cmd.Flags().Int64Var(&accountID, "account", 0, "account id")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
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

			id := strings.TrimSpace(args[0])
			err = app.queries.Mutate(cmd.Context(), query.MutateTransaction, func(ctx context.Context) error {
				return app.transactions.Delete(ctx, id)
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Deleted transaction %s", id))
			return nil
		},
	}
}

// parseDateFlag turns a flag value into a Date, leaving the zero Date
// for an empty flag.
func parseDateFlag(value string) (model.Date, error) {
	if value == "" {
		return model.Date{}, nil
	}
	date, err := model.ParseDate(value)
	if err != nil {
		return model.Date{}, common.NewUserError(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", value), err)
	}
	return date, nil
}
