package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/findash/dashboard-bot/internal/log"
	"github.com/findash/dashboard-bot/internal/model"
)

// Client is the backend surface the dashboard needs. Satisfied by
// api.Client; tests substitute an in-memory fake.
type Client interface {
	FetchAccounts(ctx context.Context) ([]model.Account, error)
	FetchTransactions(ctx context.Context) ([]model.Transaction, error)
	FetchBudgets(ctx context.Context) ([]model.Budget, error)
	FetchGoals(ctx context.Context) ([]model.Goal, error)
	FetchSummary(ctx context.Context) (*model.Summary, error)
	FetchChartData(ctx context.Context) (*model.ChartData, error)

	CreateTransaction(ctx context.Context, t model.NewTransaction) error
	DeleteTransaction(ctx context.Context, id int) error
	CreateBudget(ctx context.Context, b model.NewBudget) error
	CreateAccount(ctx context.Context, a model.NewAccount) error
	UpdateAccount(ctx context.Context, id int, u model.AccountUpdate) error
	DeleteAccount(ctx context.Context, id int) error
	CreateGoal(ctx context.Context, g model.NewGoal) error
	UpdateGoalProgress(ctx context.Context, id int, p model.GoalProgress) error
	WipeData(ctx context.Context) error
}

// State of the dashboard's load cycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Snapshot is the complete set of in-memory collections as of the
// most recently completed load cycle. Collections are replaced
// wholesale per cycle; a fetch failure leaves the previous value in
// place.
type Snapshot struct {
	Accounts     []model.Account
	Transactions []model.Transaction
	Budgets      []model.Budget
	Goals        []model.Goal
	Summary      *model.Summary
	ChartData    *model.ChartData
}

// CurrentSummary returns the last fetched summary, or a recomputation
// from the transaction snapshot when no summary is available. The
// category breakdown may only be present in the fetched summary, so
// the fetched value is always preferred.
func (s *Snapshot) CurrentSummary(now time.Time) model.Summary {
	if s.Summary != nil {
		return *s.Summary
	}
	return ComputeSummary(s.Transactions, now)
}

// AccountName resolves an account id to its display name.
func (s *Snapshot) AccountName(id int) string {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a.Name
		}
	}
	return "Unknown"
}

// Dashboard owns the snapshot and orchestrates load cycles and
// user-initiated mutations. It is driven from a single update loop;
// overlapping load cycles are a documented race the original design
// accepts, so no locking is layered on top.
type Dashboard struct {
	client Client
	log    *log.Logger
	now    func() time.Time

	state State
	snap  Snapshot
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithClock overrides the time source, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

func NewDashboard(client Client, logger *log.Logger, opts ...Option) *Dashboard {
	d := &Dashboard{
		client: client,
		log:    logger,
		now:    time.Now,
		state:  StateIdle,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State reports where the dashboard is in its load cycle.
func (d *Dashboard) State() State { return d.state }

// Snapshot returns the current collections. The slices are shared
// with the dashboard; treat them as read-only.
func (d *Dashboard) Snapshot() Snapshot { return d.snap }

// Now returns the dashboard's current clock instant.
func (d *Dashboard) Now() time.Time { return d.now() }

// Reload runs one full load cycle. Accounts come first so account
// names referenced by transaction views are resolvable; the remaining
// collections are independent and fetched concurrently, then the
// derived summary and chart data. Each collection failure is logged
// and skipped so partial availability wins over all-or-nothing
// consistency; only a dead context fails the cycle as a whole.
func (d *Dashboard) Reload(ctx context.Context) error {
	d.state = StateLoading

	if accounts, err := d.client.FetchAccounts(ctx); err != nil {
		d.log.Error("loading accounts", log.FieldError, err)
	} else {
		d.snap.Accounts = accounts
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if transactions, err := d.client.FetchTransactions(gctx); err != nil {
			d.log.Error("loading transactions", log.FieldError, err)
		} else {
			d.snap.Transactions = transactions
		}
		return nil
	})
	g.Go(func() error {
		if budgets, err := d.client.FetchBudgets(gctx); err != nil {
			d.log.Error("loading budgets", log.FieldError, err)
		} else {
			d.snap.Budgets = budgets
		}
		return nil
	})
	g.Go(func() error {
		if goals, err := d.client.FetchGoals(gctx); err != nil {
			d.log.Error("loading goals", log.FieldError, err)
		} else {
			d.snap.Goals = goals
		}
		return nil
	})
	_ = g.Wait()

	// Derived views load after the raw collections so the summary
	// reflects fresh data; a display preference, not an API dependency.
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		if summary, err := d.client.FetchSummary(gctx); err != nil {
			d.log.Error("loading summary", log.FieldError, err)
		} else {
			d.snap.Summary = summary
		}
		return nil
	})
	g.Go(func() error {
		if chartData, err := d.client.FetchChartData(gctx); err != nil {
			d.log.Error("loading chart data", log.FieldError, err)
		} else {
			d.snap.ChartData = chartData
		}
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		d.state = StateError
		return fmt.Errorf("loading dashboard data: %w", err)
	}
	d.state = StateReady
	return nil
}

// Mutations follow one pattern: validate locally, submit, and on
// success trigger a full reload. On failure the snapshot is left
// untouched and no reload happens.

func (d *Dashboard) AddTransaction(ctx context.Context, t model.NewTransaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := d.client.CreateTransaction(ctx, t); err != nil {
		d.log.Error("adding transaction", log.FieldError, err)
		return fmt.Errorf("adding transaction: %w", err)
	}
	d.log.Info("transaction added", log.FieldOperation, "create",
		"category", t.Category, "amount", t.Amount)
	return d.Reload(ctx)
}

func (d *Dashboard) DeleteTransaction(ctx context.Context, id int) error {
	if err := d.client.DeleteTransaction(ctx, id); err != nil {
		d.log.Error("deleting transaction", log.FieldError, err)
		return fmt.Errorf("deleting transaction: %w", err)
	}
	d.log.Info("transaction deleted", log.FieldOperation, "delete", "id", id)
	return d.Reload(ctx)
}

func (d *Dashboard) AddBudget(ctx context.Context, b model.NewBudget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if err := d.client.CreateBudget(ctx, b); err != nil {
		d.log.Error("setting budget", log.FieldError, err)
		return fmt.Errorf("setting budget: %w", err)
	}
	d.log.Info("budget set", log.FieldOperation, "create",
		"category", b.Category, "month", b.Month)
	return d.Reload(ctx)
}

func (d *Dashboard) AddAccount(ctx context.Context, a model.NewAccount) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := d.client.CreateAccount(ctx, a); err != nil {
		d.log.Error("adding account", log.FieldError, err)
		return fmt.Errorf("adding account: %w", err)
	}
	d.log.Info("account added", log.FieldOperation, "create", "name", a.Name)
	return d.Reload(ctx)
}

func (d *Dashboard) UpdateAccount(ctx context.Context, id int, u model.AccountUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if err := d.client.UpdateAccount(ctx, id, u); err != nil {
		d.log.Error("updating account", log.FieldError, err)
		return fmt.Errorf("updating account: %w", err)
	}
	d.log.Info("account updated", log.FieldOperation, "update", "id", id)
	return d.Reload(ctx)
}

func (d *Dashboard) DeleteAccount(ctx context.Context, id int) error {
	if err := d.client.DeleteAccount(ctx, id); err != nil {
		d.log.Error("deleting account", log.FieldError, err)
		return fmt.Errorf("deleting account: %w", err)
	}
	d.log.Info("account deleted", log.FieldOperation, "delete", "id", id)
	return d.Reload(ctx)
}

func (d *Dashboard) AddGoal(ctx context.Context, g model.NewGoal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := d.client.CreateGoal(ctx, g); err != nil {
		d.log.Error("adding goal", log.FieldError, err)
		return fmt.Errorf("adding goal: %w", err)
	}
	d.log.Info("goal added", log.FieldOperation, "create", "name", g.Name)
	return d.Reload(ctx)
}

func (d *Dashboard) UpdateGoalProgress(ctx context.Context, id int, p model.GoalProgress) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := d.client.UpdateGoalProgress(ctx, id, p); err != nil {
		d.log.Error("updating goal", log.FieldError, err)
		return fmt.Errorf("updating goal: %w", err)
	}
	d.log.Info("goal progress updated", log.FieldOperation, "update", "id", id)
	return d.Reload(ctx)
}

// WipeData destroys all backend data and reloads. The confirmation
// gesture happens in the interactive surface before this is called.
func (d *Dashboard) WipeData(ctx context.Context) error {
	if err := d.client.WipeData(ctx); err != nil {
		d.log.Error("wiping data", log.FieldError, err)
		return fmt.Errorf("wiping data: %w", err)
	}
	d.log.Info("all data wiped", log.FieldOperation, "delete")
	return d.Reload(ctx)
}
