package main

import (
	"os"

	"github.com/ahamed-hazeeb/budget-buddy/internal/api"
	"github.com/ahamed-hazeeb/budget-buddy/internal/cli"
	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
	"github.com/ahamed-hazeeb/budget-buddy/internal/config"
	"github.com/ahamed-hazeeb/budget-buddy/internal/query"
	"github.com/ahamed-hazeeb/budget-buddy/internal/session"
)

// app wires the session, the API client, and the query cache together
// for one command invocation.
type app struct {
	config   config.Config
	session  *session.Store
	guard    *session.Guard
	queries  *query.Client
	notifier cli.Notifier

	auth         *api.AuthService
	transactions *api.TransactionService
	accounts     *api.AccountService
	budgets      *api.BudgetService
	categories   *api.CategoryService
	goals        *api.GoalService
	bills        *api.BillService
	ml           *api.MLService
}

// newApp assembles the full client stack from configuration.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	storage, err := session.NewFileStorage(cfg.SessionPath)
	if err != nil {
		return nil, err
	}
	sess := session.NewStore(storage)
	notifier := cli.NewTerminalNotifier(os.Stderr)
	guard := session.NewGuard(sess, notifier)

	client := api.NewClient(cfg.BaseURL, cfg.Timeout, sess)

	cache, err := query.NewSQLiteStore(cfg.CachePath)
	if err != nil {
		return nil, err
	}

	return &app{
		config:       cfg,
		session:      sess,
		guard:        guard,
		queries:      query.NewClient(cache),
		notifier:     notifier,
		auth:         api.NewAuthService(client),
		transactions: api.NewTransactionService(client, sess),
		accounts:     api.NewAccountService(client, sess),
		budgets:      api.NewBudgetService(client, sess),
		categories:   api.NewCategoryService(client, sess),
		goals:        api.NewGoalService(client),
		bills:        api.NewBillService(client),
		ml:           api.NewMLService(client),
	}, nil
}

// Close releases the cache database.
func (a *app) Close() error {
	return a.queries.Close()
}

// requireSession fails fast when no login is stored, before any
// network traffic happens.
func (a *app) requireSession() error {
	if !a.session.Authenticated() {
		return common.ErrNoSession
	}
	return nil
}

// check routes an error through the session guard so an expired token
// triggers exactly one forced logout and one notification.
func (a *app) check(err error) error {
	if err == nil {
		return nil
	}
	return a.guard.Check(err)
}
