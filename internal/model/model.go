package model

import "time"

// DateLayout is the calendar-date wire format used by the backend
// for transaction dates, goal deadlines and budget months ("2006-01"
// for the latter).
const DateLayout = "2006-01-02"

// MonthLayout is the year-month wire format for budget periods.
const MonthLayout = "2006-01"

// Transaction types as stored in the transaction_type field. The type
// determines sign semantics at aggregation time; stored amounts are
// always non-negative.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Account types as stored in the account_type field.
const (
	AccountChecking   = "checking"
	AccountSavings    = "savings"
	AccountCredit     = "credit"
	AccountInvestment = "investment"
)

// Account is a money account as served by GET /api/accounts.
type Account struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
	Color       string  `json:"color"`
}

// Transaction is a single income or expense record as served by
// GET /api/transactions. AccountName is denormalized by the server.
type Transaction struct {
	ID              int     `json:"id"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	TransactionType string  `json:"transaction_type"`
	AccountID       int     `json:"account_id"`
	AccountName     string  `json:"account_name,omitempty"`
	Date            string  `json:"date"`
}

// IsExpense reports whether the transaction reduces net income.
func (t Transaction) IsExpense() bool {
	return t.TransactionType == TypeExpense
}

// Budget is a monthly spending ceiling for one category.
type Budget struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    string  `json:"month"`
}

// Goal is a savings goal with a deadline.
type Goal struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"`
	Progress      float64 `json:"progress,omitempty"`
}

// Summary is the server-computed month-to-date overview from
// GET /api/analytics/summary. CategoryExpenses may be absent, in
// which case callers recompute the breakdown from the transaction
// snapshot.
type Summary struct {
	TotalIncome      float64            `json:"total_income"`
	TotalExpenses    float64            `json:"total_expenses"`
	NetIncome        float64            `json:"net_income"`
	CategoryExpenses map[string]float64 `json:"category_expenses,omitempty"`
	CurrentMonth     string             `json:"current_month,omitempty"`
}

// ChartData is the trend dataset from GET /api/analytics/chart-data.
// The three slices are parallel: one entry per period label.
type ChartData struct {
	Months   []string  `json:"months"`
	Income   []float64 `json:"income"`
	Expenses []float64 `json:"expenses"`
}

// ParseDate parses a wire-format calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
