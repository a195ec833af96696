package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/findash/dashboard-bot/internal/model"
)

// Budget status classification, driven by the unclamped usage percentage.
type BudgetStatus string

const (
	BudgetOK      BudgetStatus = "ok"
	BudgetWarning BudgetStatus = "warning"
	BudgetOver    BudgetStatus = "over"
)

// SentinelCategory is the placeholder label substituted when no
// expense data exists, so chart rendering always has at least one
// sector.
const SentinelCategory = "No Data"

// CategoryBreakdown is the expense-by-category dataset for the
// doughnut chart. Labels and Values are parallel. Sentinel marks the
// placeholder single-entry result; legend display is suppressed for it.
type CategoryBreakdown struct {
	Labels   []string
	Values   []float64
	Sentinel bool
}

// CategoryExpenses builds the expense breakdown, preferring the
// server-computed summary field and falling back to a fold over the
// transaction snapshot when it is absent. The two sources may cover
// different periods; callers tolerate either.
func CategoryExpenses(summary *model.Summary, transactions []model.Transaction) CategoryBreakdown {
	var totals map[string]float64
	if summary != nil && len(summary.CategoryExpenses) > 0 {
		totals = summary.CategoryExpenses
	} else {
		totals = expenseTotals(transactions)
	}

	if len(totals) == 0 {
		return CategoryBreakdown{
			Labels:   []string{SentinelCategory},
			Values:   []float64{1},
			Sentinel: true,
		}
	}

	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	// Largest categories first; ties broken by name for stable output.
	sort.Slice(labels, func(i, j int) bool {
		if totals[labels[i]] != totals[labels[j]] {
			return totals[labels[i]] > totals[labels[j]]
		}
		return labels[i] < labels[j]
	})

	values := make([]float64, len(labels))
	for i, label := range labels {
		values[i] = totals[label]
	}
	return CategoryBreakdown{Labels: labels, Values: values}
}

// expenseTotals folds expense transactions into per-category sums.
// Income is excluded entirely.
func expenseTotals(transactions []model.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range transactions {
		if t.IsExpense() {
			totals[t.Category] += t.Amount
		}
	}
	return totals
}

// MonthToDateSpend sums expense amounts for one category in the
// current calendar month. The month comes from the supplied clock
// instant, not from any budget record, and dates are matched by
// ISO year-month string prefix.
func MonthToDateSpend(transactions []model.Transaction, category string, now time.Time) float64 {
	month := now.Format(model.MonthLayout)
	var sum float64
	for _, t := range transactions {
		if t.IsExpense() && t.Category == category && strings.HasPrefix(t.Date, month) {
			sum += t.Amount
		}
	}
	return sum
}

// BudgetUsage describes how far a budget's category spend has
// progressed through the ceiling. Percent is left unclamped for
// status classification; Width is the clamped [0,100] value for any
// visual-extent encoding.
type BudgetUsage struct {
	Spent   float64
	Ceiling float64
	Percent float64
	Width   float64
	Status  BudgetStatus
}

// UsageForBudget computes month-to-date usage for one budget against
// the transaction snapshot.
func UsageForBudget(b model.Budget, transactions []model.Transaction, now time.Time) BudgetUsage {
	spent := MonthToDateSpend(transactions, b.Category, now)
	percent := spent / b.Amount * 100
	return BudgetUsage{
		Spent:   spent,
		Ceiling: b.Amount,
		Percent: percent,
		Width:   clampWidth(percent),
		Status:  classifyUsage(percent),
	}
}

func classifyUsage(percent float64) BudgetStatus {
	switch {
	case percent > 100:
		return BudgetOver
	case percent > 80:
		return BudgetWarning
	default:
		return BudgetOK
	}
}

// GoalStanding is the derived view of one savings goal. DaysLeft may
// be negative for overdue goals and is passed through to views
// unmodified.
type GoalStanding struct {
	Percent  float64
	Width    float64
	DaysLeft int
}

// StandingForGoal computes progress and time remaining for a goal.
// A non-positive target yields 0% progress, matching the backend's
// own progress computation.
func StandingForGoal(g model.Goal, now time.Time) GoalStanding {
	var percent float64
	if g.TargetAmount > 0 {
		percent = g.CurrentAmount / g.TargetAmount * 100
	}

	var daysLeft int
	if deadline, err := model.ParseDate(g.Deadline); err == nil {
		daysLeft = int(math.Ceil(deadline.Sub(now).Hours() / 24))
	}

	return GoalStanding{
		Percent:  percent,
		Width:    clampWidth(percent),
		DaysLeft: daysLeft,
	}
}

// ComputeSummary recomputes month-to-date totals from the transaction
// snapshot. Used when the summary endpoint is unavailable; mirrors the
// server's own summary semantics.
func ComputeSummary(transactions []model.Transaction, now time.Time) model.Summary {
	month := now.Format(model.MonthLayout)
	summary := model.Summary{
		CategoryExpenses: make(map[string]float64),
		CurrentMonth:     month,
	}
	for _, t := range transactions {
		if !strings.HasPrefix(t.Date, month) {
			continue
		}
		if t.IsExpense() {
			summary.TotalExpenses += t.Amount
			summary.CategoryExpenses[t.Category] += t.Amount
		} else {
			summary.TotalIncome += t.Amount
		}
	}
	summary.NetIncome = summary.TotalIncome - summary.TotalExpenses
	return summary
}

// clampWidth maps a raw percentage onto a displayable [0,100] extent.
func clampWidth(percent float64) float64 {
	if !(percent > 0) {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
