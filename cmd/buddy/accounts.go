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

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(updateAccountCmd())
	cmd.AddCommand(deleteAccountCmd())

	return cmd
}

func fetchAccounts(ctx context.Context, app *app) ([]model.Account, error) {
	userID, err := app.session.UserID()
	if err != nil {
		return nil, err
	}

	key := query.NewKey(query.Accounts, strconv.FormatInt(userID, 10))
	return query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Account, error) {
		return app.accounts.GetAll(ctx)
	})
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts with balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			accounts, err := fetchAccounts(cmd.Context(), app)
			if err != nil {
				return app.check(err)
			}

			if len(accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts found. Use 'buddy accounts add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Type"),
				cli.TableHeaderStyle.Render("Balance"))

			for _, account := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					account.ID, account.Name, account.Type, cli.SignedMoney(account.Balance))
			}
			_ = w.Flush()

			fmt.Println()
			fmt.Println(cli.BoldStyle.Render("Total: ") + cli.SignedMoney(aggregate.TotalBalance(accounts)))
			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		name     string
		typeFlag string
		balance  float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return common.NewUserError("Account name is required", nil)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			data := model.CreateAccount{
				Name:    name,
				Type:    model.ParseAccountType(typeFlag),
				Balance: balance,
			}

			err = app.queries.Mutate(cmd.Context(), query.MutateAccount, func(ctx context.Context) error {
				_, createErr := app.accounts.Create(ctx, data)
				return createErr
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Created account %q", name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "account name")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "Bank", "account type (Cash, Bank, Card, Other)")
	cmd.Flags().Float64VarP(&balance, "balance", "b", 0, "opening balance")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func updateAccountCmd() *cobra.Command {
	var balance float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Set an account's balance",
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

			id := args[0]
			data := model.UpdateAccount{Balance: &balance}

			err = app.queries.Mutate(cmd.Context(), query.MutateAccount, func(ctx context.Context) error {
				_, updateErr := app.accounts.Update(ctx, id, data)
				return updateErr
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Account %s balance set to %s", id, cli.Money(balance)))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&balance, "balance", "b", 0, "new balance")
	_ = cmd.MarkFlagRequired("balance")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
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

			err = app.queries.Mutate(cmd.Context(), query.MutateAccount, func(ctx context.Context) error {
				return app.accounts.Delete(ctx, args[0])
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Deleted account %s", args[0]))
			return nil
		},
	}
}
