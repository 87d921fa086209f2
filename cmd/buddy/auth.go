package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
	"github.com/ahamed-hazeeb/budget-buddy/internal/query"
)

const minPasswordLength = 6

// validateLogin checks credentials before any network call.
func validateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return common.NewUserError("Email is required", nil)
	}
	if password == "" {
		return common.NewUserError("Password is required", nil)
	}
	return nil
}

// validateRegistration checks the registration form before any network
// call.
func validateRegistration(name, email, password, confirm string) error {
	if strings.TrimSpace(name) == "" {
		return common.NewUserError("Name is required", nil)
	}
	if strings.TrimSpace(email) == "" {
		return common.NewUserError("Email is required", nil)
	}
	if !strings.Contains(email, "@") {
		return common.NewUserError("Email address looks invalid", nil)
	}
	if len(password) < minPasswordLength {
		return common.NewUserError(fmt.Sprintf("Password must be at least %d characters", minPasswordLength), nil)
	}
	if password != confirm {
		return common.NewUserError("Passwords do not match", nil)
	}
	return nil
}

func loginCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateLogin(email, password); err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			auth, err := app.auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			if err := app.session.SaveLogin(auth); err != nil {
				return err
			}

			// A fresh login must never see the previous user's data.
			if err := app.queries.Clear(); err != nil {
				return err
			}

			app.notifier.Success(fmt.Sprintf("Logged in as %s", auth.User.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func registerCmd() *cobra.Command {
	var (
		name     string
		email    string
		password string
		confirm  string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateRegistration(name, email, password, confirm); err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			auth, err := app.auth.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}

			if err := app.session.SaveLogin(auth); err != nil {
				return err
			}
			if err := app.queries.Clear(); err != nil {
				return err
			}

			app.notifier.Success(fmt.Sprintf("Welcome, %s! Your account is ready.", auth.User.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.session.Clear(); err != nil {
				return err
			}
			if err := app.queries.Clear(); err != nil {
				return err
			}

			app.notifier.Success("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
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

			key := query.NewKey(query.UserProfile, strconv.FormatInt(userID, 10))
			profile, err := query.Fetch(cmd.Context(), app.queries, key, func(ctx context.Context) (model.User, error) {
				return app.auth.Profile(ctx)
			})
			if err != nil {
				return app.check(err)
			}

			fmt.Printf("%s <%s>\n", profile.Name, profile.Email)
			return nil
		},
	}
}
