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

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(seedCategoriesCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func fetchCategories(ctx context.Context, app *app) ([]model.Category, error) {
	userID, err := app.session.UserID()
	if err != nil {
		return nil, err
	}

	key := query.NewKey(query.Categories, strconv.FormatInt(userID, 10))
	return query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Category, error) {
		return app.categories.GetAll(ctx)
	})
}

func listCategoriesCmd() *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
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

			var categories []model.Category
			if kindFlag != "" {
				kind, kindErr := parseCategoryKind(kindFlag)
				if kindErr != nil {
					return kindErr
				}
				key := query.NewKey(query.Categories, strconv.FormatInt(userID, 10), string(kind))
				categories, err = query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Category, error) {
					return app.categories.GetByKind(ctx, kind)
				})
			} else {
				categories, err = fetchCategories(ctx, app)
			}
			if err != nil {
				return app.check(err)
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'buddy categories seed' to create the defaults."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Type"),
				cli.TableHeaderStyle.Render("Scope"))

			for _, cat := range categories {
				scope := "mine"
				if cat.IsGlobal() {
					scope = cli.SubtleStyle.Render("global")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.ID, cat.Name, cat.Kind, scope)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "type", "t", "", "filter by type (income, expense)")

	return cmd
}

func parseCategoryKind(s string) (model.CategoryKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INCOME":
		return model.CategoryIncome, nil
	case "EXPENSE":
		return model.CategoryExpense, nil
	default:
		return "", common.NewUserError(fmt.Sprintf("Unknown category type %q, expected income or expense", s), nil)
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		name     string
		kindFlag string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return common.NewUserError("Category name is required", nil)
			}
			kind, err := parseCategoryKind(kindFlag)
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			err = app.queries.Mutate(cmd.Context(), query.MutateCategory, func(ctx context.Context) error {
				_, createErr := app.categories.Create(ctx, model.CreateCategory{Name: name, Kind: kind})
				return createErr
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Created %s category %q", strings.ToLower(string(kind)), name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "category name")
	cmd.Flags().StringVarP(&kindFlag, "type", "t", "expense", "category type (income, expense)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func seedCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default category set",
		Long:  `Create the standard income and expense categories, skipping any that already exist.`,
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
			existing, err := fetchCategories(ctx, app)
			if err != nil {
				return app.check(err)
			}

			have := make(map[string]bool, len(existing))
			for _, cat := range existing {
				have[strings.ToLower(cat.Name)] = true
			}

			var created int
			seed := func(names []string, kind model.CategoryKind) error {
				for _, name := range names {
					if have[strings.ToLower(name)] {
						continue
					}
					err := app.queries.Mutate(ctx, query.MutateCategory, func(ctx context.Context) error {
						_, createErr := app.categories.Create(ctx, model.CreateCategory{Name: name, Kind: kind})
						return createErr
					})
					if err != nil {
						return err
					}
					created++
				}
				return nil
			}

			if err := seed(model.DefaultIncomeCategories, model.CategoryIncome); err != nil {
				return app.check(err)
			}
			if err := seed(model.DefaultExpenseCategories, model.CategoryExpense); err != nil {
				return app.check(err)
			}

			if created == 0 {
				app.notifier.Info("All default categories already exist")
			} else {
				app.notifier.Success(fmt.Sprintf("Created %d categories", created))
			}
			return nil
		},
	}
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
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

			err = app.queries.Mutate(cmd.Context(), query.MutateCategory, func(ctx context.Context) error {
				return app.categories.Delete(ctx, args[0])
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Deleted category %s", args[0]))
			return nil
		},
	}
}
