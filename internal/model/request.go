package model

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors surfaced as inline form messages by the bot.
var (
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidType   = errors.New("transaction type must be income or expense")
)

// NewTransaction is the POST /api/transactions payload.
type NewTransaction struct {
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	TransactionType string  `json:"transaction_type"`
	AccountID       int     `json:"account_id"`
	Date            string  `json:"date"`
}

func (n NewTransaction) Validate() error {
	if n.Description == "" {
		return fmt.Errorf("description: %w", ErrMissingField)
	}
	if n.Category == "" {
		return fmt.Errorf("category: %w", ErrMissingField)
	}
	if n.Amount <= 0 {
		return ErrInvalidAmount
	}
	if n.TransactionType != TypeIncome && n.TransactionType != TypeExpense {
		return ErrInvalidType
	}
	if _, err := ParseDate(n.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// NewBudget is the POST /api/budgets payload.
type NewBudget struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    string  `json:"month"`
}

func (n NewBudget) Validate() error {
	if n.Category == "" {
		return fmt.Errorf("category: %w", ErrMissingField)
	}
	if n.Amount <= 0 {
		return ErrInvalidAmount
	}
	if _, err := time.Parse(MonthLayout, n.Month); err != nil {
		return fmt.Errorf("month must be in YYYY-MM format: %w", ErrInvalidDate)
	}
	return nil
}

// NewAccount is the POST /api/accounts payload.
type NewAccount struct {
	Name        string `json:"name"`
	AccountType string `json:"account_type"`
	Color       string `json:"color,omitempty"`
}

func (n NewAccount) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("name: %w", ErrMissingField)
	}
	if n.AccountType == "" {
		return fmt.Errorf("account type: %w", ErrMissingField)
	}
	return nil
}

// AccountUpdate is the PUT /api/accounts/{id} payload. Nil fields are
// omitted so the server keeps their current values.
type AccountUpdate struct {
	Name        *string  `json:"name,omitempty"`
	AccountType *string  `json:"account_type,omitempty"`
	Color       *string  `json:"color,omitempty"`
	Balance     *float64 `json:"balance,omitempty"`
}

func (u AccountUpdate) Validate() error {
	if u.Name == nil && u.AccountType == nil && u.Color == nil && u.Balance == nil {
		return fmt.Errorf("account update: %w", ErrMissingField)
	}
	if u.Name != nil && *u.Name == "" {
		return fmt.Errorf("name: %w", ErrMissingField)
	}
	return nil
}

// NewGoal is the POST /api/goals payload.
type NewGoal struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"`
}

func (n NewGoal) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("name: %w", ErrMissingField)
	}
	if n.TargetAmount <= 0 {
		return fmt.Errorf("target: %w", ErrInvalidAmount)
	}
	if n.CurrentAmount < 0 {
		return fmt.Errorf("current amount: %w", ErrInvalidAmount)
	}
	if _, err := ParseDate(n.Deadline); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// GoalProgress is the PUT /api/goals/{id} payload.
type GoalProgress struct {
	CurrentAmount float64 `json:"current_amount"`
}

func (p GoalProgress) Validate() error {
	if p.CurrentAmount < 0 {
		return ErrInvalidAmount
	}
	return nil
}
