// Package render maps entities and aggregates into display-ready view
// models and their Telegram text rendering. Everything here is a pure
// function of its inputs; no fetching, no clock access.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/findash/dashboard-bot/internal/model"
	"github.com/findash/dashboard-bot/internal/service"
)

// maxRecent bounds the recent-transactions view.
const maxRecent = 5

// Empty-state messages per view.
const (
	EmptyTransactions = "No transactions yet"
	EmptyBudgets      = "No budgets set for this month"
	EmptyGoals        = "No financial goals set"
	EmptyAccounts     = "No accounts yet"
)

// SummaryView is the month-to-date totals header.
type SummaryView struct {
	TotalIncome   string
	TotalExpenses string
	NetIncome     string
	NetPositive   bool
}

// BuildSummary formats the summary totals. Net income keeps its sign
// in the formatted string; NetPositive drives the visual treatment.
func BuildSummary(s model.Summary) SummaryView {
	return SummaryView{
		TotalIncome:   FormatCurrency(s.TotalIncome),
		TotalExpenses: FormatCurrency(s.TotalExpenses),
		NetIncome:     FormatCurrency(s.NetIncome),
		NetPositive:   s.NetIncome >= 0,
	}
}

// TransactionRow is one line of the recent-transactions view.
type TransactionRow struct {
	ID          int
	Description string
	Category    string
	AccountName string
	Date        string
	Amount      string
	Class       string // "income" or "expense", keys the visual treatment
}

// RecentTransactions maps the first maxRecent transactions, in
// snapshot order, into rows. The engine performs no sorting; order is
// whatever the API returned.
func RecentTransactions(transactions []model.Transaction) []TransactionRow {
	n := len(transactions)
	if n > maxRecent {
		n = maxRecent
	}
	rows := make([]TransactionRow, 0, n)
	for _, t := range transactions[:n] {
		rows = append(rows, TransactionRow{
			ID:          t.ID,
			Description: t.Description,
			Category:    t.Category,
			AccountName: t.AccountName,
			Date:        FormatDate(t.Date),
			Amount:      SignedCurrency(t.Amount, t.TransactionType),
			Class:       t.TransactionType,
		})
	}
	return rows
}

// BudgetRow is one budget with its month-to-date usage.
type BudgetRow struct {
	Category string
	Spent    string
	Ceiling  string
	Percent  string // one decimal place, e.g. "85.0% used"
	Status   service.BudgetStatus
	Width    int // clamped [0,100]
}

// BudgetRows derives usage for every budget against the transaction
// snapshot at the given instant.
func BudgetRows(budgets []model.Budget, transactions []model.Transaction, now time.Time) []BudgetRow {
	rows := make([]BudgetRow, 0, len(budgets))
	for _, b := range budgets {
		usage := service.UsageForBudget(b, transactions, now)
		rows = append(rows, BudgetRow{
			Category: b.Category,
			Spent:    FormatCurrency(usage.Spent),
			Ceiling:  FormatCurrency(usage.Ceiling),
			Percent:  fmt.Sprintf("%.1f%% used", usage.Percent),
			Status:   usage.Status,
			Width:    int(usage.Width),
		})
	}
	return rows
}

// GoalCard is one savings goal with progress and time remaining.
type GoalCard struct {
	ID       int
	Name     string
	Current  string
	Target   string
	Percent  string // one decimal place, e.g. "30.0% complete"
	Width    int    // clamped [0,100]
	DaysLeft int    // negative when overdue, passed through as-is
}

// GoalCards derives a card per goal at the given instant.
func GoalCards(goals []model.Goal, now time.Time) []GoalCard {
	cards := make([]GoalCard, 0, len(goals))
	for _, g := range goals {
		standing := service.StandingForGoal(g, now)
		cards = append(cards, GoalCard{
			ID:       g.ID,
			Name:     g.Name,
			Current:  FormatCurrency(g.CurrentAmount),
			Target:   FormatCurrency(g.TargetAmount),
			Percent:  fmt.Sprintf("%.1f%% complete", standing.Percent),
			Width:    int(standing.Width),
			DaysLeft: standing.DaysLeft,
		})
	}
	return cards
}

// AccountCard is one account with its display tag. Edit and delete
// affordances are keyed by ID in the interactive surface.
type AccountCard struct {
	ID        int
	Name      string
	TypeLabel string
	Balance   string
	Negative  bool
	Color     string
}

func AccountCards(accounts []model.Account) []AccountCard {
	cards := make([]AccountCard, 0, len(accounts))
	for _, a := range accounts {
		cards = append(cards, AccountCard{
			ID:        a.ID,
			Name:      a.Name,
			TypeLabel: TitleLabel(a.AccountType),
			Balance:   FormatCurrency(a.Balance),
			Negative:  a.Balance < 0,
			Color:     a.Color,
		})
	}
	return cards
}

// Text rendering below. One message section per view, with the
// documented empty-state line when a collection is empty.

func SummaryText(v SummaryView) string {
	net := "📈"
	if !v.NetPositive {
		net = "📉"
	}
	var b strings.Builder
	b.WriteString("💰 Income: " + v.TotalIncome + "\n")
	b.WriteString("💸 Expenses: " + v.TotalExpenses + "\n")
	b.WriteString(net + " Net income: " + v.NetIncome)
	return b.String()
}

func TransactionsText(rows []TransactionRow) string {
	if len(rows) == 0 {
		return EmptyTransactions
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		marker := "🔻"
		if r.Class == model.TypeIncome {
			marker = "🔹"
		}
		b.WriteString(fmt.Sprintf("%s %s — %s\n    %s • %s", marker, r.Description, r.Amount, r.Category, r.Date))
		if r.AccountName != "" {
			b.WriteString(" • " + r.AccountName)
		}
	}
	return b.String()
}

func BudgetsText(rows []BudgetRow) string {
	if len(rows) == 0 {
		return EmptyBudgets
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fmt.Sprintf("%s %s: %s / %s\n    %s %s",
			statusMarker(r.Status), r.Category, r.Spent, r.Ceiling,
			progressBar(r.Width), r.Percent))
	}
	return b.String()
}

func GoalsText(cards []GoalCard) string {
	if len(cards) == 0 {
		return EmptyGoals
	}
	var b strings.Builder
	for i, c := range cards {
		if i > 0 {
			b.WriteByte('\n')
		}
		days := strconv.Itoa(c.DaysLeft) + " days left"
		if c.DaysLeft < 0 {
			days = strconv.Itoa(-c.DaysLeft) + " days overdue"
		}
		b.WriteString(fmt.Sprintf("🎯 %s: %s / %s\n    %s %s • %s",
			c.Name, c.Current, c.Target, progressBar(c.Width), c.Percent, days))
	}
	return b.String()
}

func AccountsText(cards []AccountCard) string {
	if len(cards) == 0 {
		return EmptyAccounts
	}
	var b strings.Builder
	for i, c := range cards {
		if i > 0 {
			b.WriteByte('\n')
		}
		marker := "🏦"
		if c.Negative {
			marker = "⚠️"
		}
		b.WriteString(fmt.Sprintf("%s %s (%s): %s", marker, c.Name, c.TypeLabel, c.Balance))
	}
	return b.String()
}

func statusMarker(s service.BudgetStatus) string {
	switch s {
	case service.BudgetOver:
		return "🔴"
	case service.BudgetWarning:
		return "🟡"
	default:
		return "🟢"
	}
}

// progressBar renders a ten-segment bar from a [0,100] width.
func progressBar(width int) string {
	filled := width / 10
	return strings.Repeat("▰", filled) + strings.Repeat("▱", 10-filled)
}
