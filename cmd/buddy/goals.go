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

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(contributeGoalCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func fetchGoals(ctx context.Context, app *app) ([]model.Goal, error) {
	userID, err := app.session.UserID()
	if err != nil {
		return nil, err
	}

	key := query.NewKey(query.Goals, strconv.FormatInt(userID, 10))
	return query.Fetch(ctx, app.queries, key, func(ctx context.Context) ([]model.Goal, error) {
		return app.goals.GetAll(ctx)
	})
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			goals, err := fetchGoals(cmd.Context(), app)
			if err != nil {
				return app.check(err)
			}

			if len(goals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No goals found. Use 'buddy goals add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Saved / Target"),
				cli.TableHeaderStyle.Render("Progress"),
				cli.TableHeaderStyle.Render("Target date"))

			for _, g := range goals {
				fmt.Fprintf(w, "%s\t%s\t%s / %s\t%s\t%s\n",
					g.ID, g.Name,
					cli.Money(g.CurrentAmount), cli.Money(g.TargetAmount),
					cli.PercentBar(aggregate.GoalRatio(g.CurrentAmount, g.TargetAmount)*100),
					g.TargetDate)
			}

			return nil
		},
	}
}

func addGoalCmd() *cobra.Command {
	var (
		name    string
		target  float64
		current float64
		date    string
		monthly float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return common.NewUserError("Goal name is required", nil)
			}
			if target <= 0 {
				return common.NewUserError("Target amount must be greater than zero", nil)
			}

			targetDate, err := parseDateFlag(date)
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

			data := model.CreateGoal{
				Name:                name,
				TargetAmount:        target,
				CurrentAmount:       current,
				TargetDate:          targetDate,
				MonthlyContribution: monthly,
			}

			err = app.queries.Mutate(cmd.Context(), query.MutateGoal, func(ctx context.Context) error {
				_, createErr := app.goals.Create(ctx, data)
				return createErr
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Created goal %q targeting %s", name, cli.Money(target)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "goal name")
	cmd.Flags().Float64VarP(&target, "target", "t", 0, "target amount")
	cmd.Flags().Float64Var(&current, "current", 0, "amount already saved")
	cmd.Flags().StringVarP(&date, "date", "d", "", "target date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "planned monthly contribution")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func contributeGoalCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "contribute <id>",
		Short: "Add progress to a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount <= 0 {
				return common.NewUserError("Contribution must be greater than zero", nil)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.requireSession(); err != nil {
				return err
			}

			var updated model.Goal
			err = app.queries.Mutate(cmd.Context(), query.MutateGoal, func(ctx context.Context) error {
				var progressErr error
				updated, progressErr = app.goals.UpdateProgress(ctx, args[0], amount)
				return progressErr
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("%q is now at %d%%", updated.Name,
				aggregate.GoalProgressPercent(updated.CurrentAmount, updated.TargetAmount)))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "contribution amount")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
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

			err = app.queries.Mutate(cmd.Context(), query.MutateGoal, func(ctx context.Context) error {
				return app.goals.Delete(ctx, args[0])
			})
			if err != nil {
				return app.check(err)
			}

			app.notifier.Success(fmt.Sprintf("Deleted goal %s", args[0]))
			return nil
		},
	}
}
