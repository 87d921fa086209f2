package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahamed-hazeeb/budget-buddy/internal/cli"
	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
	"github.com/ahamed-hazeeb/budget-buddy/internal/query"
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Manage bill reminders",
	}

	cmd.AddCommand(listBillsCmd())
	cmd.AddCommand(upcomingBillsCmd())
	cmd.AddCommand(addBillCmd())
	cmd.AddCommand(payBillCmd())
	cmd.AddCommand(deleteBillCmd())

	return cmd
}

func fetchBills(ctx context.Context, app *app) ([]model.Bill, error) {
	userID, err := app.session.UserID()
	if err != nil {
		return nil, err
	}

	key := query.NewKey(query.Bills, strconv.FormatInt(userID, 10))
	return query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Bill, error) {
		return app.bills.GetAll(ctx)
	})
}

func renderBills(bills []model.Bill) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Title"),
		cli.TableHeaderStyle.Render("Due"),
		cli.TableHeaderStyle.Render("Amount"),
		cli.TableHeaderStyle.Render("Status"))

	for _, b := range bills {
		status := cli.WarningStyle.Render("unpaid")
		if b.Paid {
			status = cli.SuccessStyle.Render("paid")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Title, b.DueDate, cli.Money(b.Amount), status)
	}
}

func listBillsCmd() *cobra.Command {
	var overdue bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills",
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

			var bills []model.Bill
			if overdue {
				key := query.NewKey(query.Bills, strconv.FormatInt(userID, 10), "overdue")
				bills, err = query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Bill, error) {
					return app.bills.GetOverdue(ctx)
				})
			} else {
				bills, err = fetchBills(ctx, app)
			}
			if err != nil {
				return app.check(err)
			}

			if len(bills) == 0 {
				fmt.Println(cli.InfoStyle.Render("No bills found. Use 'buddy bills add' to create one."))
				return nil
			}

			renderBills(bills)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overdue, "overdue", false, "only overdue unpaid bills")

	return cmd
}

func upcomingBillsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List bills due soon",
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

			key := query.NewKey(query.Bills, strconv.FormatInt(userID, 10), "upcoming", strconv.Itoa(days))
			bills, err := query.Fetch(cmd.Context(), app.queries, key, func(ctx context.Context) ([]model.Bill, error) {
				return app.bills.GetUpcoming(ctx, days)
			})
			if err != nil {
				return app.check(err)
			}

			if len(bills) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Nothing due in the next %d days.", days)))
				return nil
			}

			renderBills(bills)
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "look-ahead window in days")

	return cmd
}

func addBillCmd() *cobra.Command {
	var (
		title    string
		amount   float64
		due      string
		category string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a bill reminder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if title == "" {
				return common.NewUserError("Bill title is required", nil)
			}
			if amount <= 0 {
				return common.NewUserError("Bill amount must be greater than zero", nil)
			}

			dueDate, err := parseDateFlag(due)
			if err != nil {
				return err
			}
			if dueDate.IsZero() {
				return common.NewUserError("Due date is required", nil)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			data := model.CreateBill{
				Title:    title,
				DueDate:  dueDate,
				Amount:   amount,
				Category: category,
			}

			err = app.queries.Mutate(cmd.Context(), query.MutateBill, func(ctx context.Context) error {
				_, createErr := app.bills.Create(ctx, data)
				return createErr
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Added bill %q due %s", title, dueDate))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "bill title")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "bill amount")
	cmd.Flags().StringVarP(&due, "due", "d", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "bill category")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func payBillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark a bill as paid",
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

			var paid model.Bill
			err = app.queries.Mutate(cmd.Context(), query.MutateBill, func(ctx context.Context) error {
				var payErr error
				paid, payErr = app.bills.MarkPaid(ctx, args[0])
				return payErr
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Marked %q as paid", paid.Title))
			return nil
		},
	}
}

func deleteBillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bill",
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

			err = app.queries.Mutate(cmd.Context(), query.MutateBill, func(ctx context.Context) error {
				return app.bills.Delete(ctx, args[0])
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Deleted bill %s", args[0]))
			return nil
		},
	}
}
