package model

import (
	"errors"
	"testing"
)

func TestNewTransactionValidate(t *testing.T) {
	valid := NewTransaction{
		Description:     "Lunch",
		Amount:          12.5,
		Category:        "Food",
		TransactionType: TypeExpense,
		AccountID:       1,
		Date:            "2026-03-15",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(n *NewTransaction)
		wantErr error
	}{
		{"empty description", func(n *NewTransaction) { n.Description = "" }, ErrMissingField},
		{"empty category", func(n *NewTransaction) { n.Category = "" }, ErrMissingField},
		{"zero amount", func(n *NewTransaction) { n.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(n *NewTransaction) { n.Amount = -5 }, ErrInvalidAmount},
		{"unknown type", func(n *NewTransaction) { n.TransactionType = "transfer" }, ErrInvalidType},
		{"bad date", func(n *NewTransaction) { n.Date = "15/03/2026" }, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := valid
			tt.mutate(&n)
			if err := n.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewBudgetValidate(t *testing.T) {
	valid := NewBudget{Category: "Food", Amount: 400, Month: "2026-03"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	bad := valid
	bad.Month = "March"
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("month format: %v", err)
	}
	bad = valid
	bad.Amount = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount: %v", err)
	}
}

func TestAccountUpdateValidate(t *testing.T) {
	if err := (AccountUpdate{}).Validate(); !errors.Is(err, ErrMissingField) {
		t.Error("empty update must be rejected")
	}

	empty := ""
	if err := (AccountUpdate{Name: &empty}).Validate(); !errors.Is(err, ErrMissingField) {
		t.Error("blank name must be rejected")
	}

	balance := 100.0
	if err := (AccountUpdate{Balance: &balance}).Validate(); err != nil {
		t.Errorf("balance-only update: %v", err)
	}
}

func TestNewGoalValidate(t *testing.T) {
	valid := NewGoal{Name: "Vacation", TargetAmount: 1000, Deadline: "2026-08-01"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	bad := valid
	bad.TargetAmount = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero target: %v", err)
	}
	bad = valid
	bad.CurrentAmount = -1
	if err := bad.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative current: %v", err)
	}
}

func TestTransactionIsExpense(t *testing.T) {
	if !(Transaction{TransactionType: TypeExpense}).IsExpense() {
		t.Error("expense not recognized")
	}
	if (Transaction{TransactionType: TypeIncome}).IsExpense() {
		t.Error("income misclassified")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != 3 || d.Day() != 15 {
		t.Errorf("parsed %v", d)
	}
	if _, err := ParseDate("03/15/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
