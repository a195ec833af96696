package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/findash/dashboard-bot/internal/log"
	"github.com/findash/dashboard-bot/internal/model"
)

func testLogger() *log.Logger {
	return log.New("test", log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

// recorded captures the request details the backend saw.
type recorded struct {
	method      string
	path        string
	requestID   string
	contentType string
	body        []byte
}

func newTestClient(t *testing.T, status int, responseBody string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.requestID = r.Header.Get("X-Request-ID")
		rec.contentType = r.Header.Get("Content-Type")
		rec.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		w.Write([]byte(responseBody))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, testLogger()), rec
}

func TestFetchTransactions(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[
		{"id": 3, "description": "Lunch", "amount": 12.5, "category": "Food",
		 "transaction_type": "expense", "account_id": 1, "date": "2026-03-10"}
	]`)

	transactions, err := client.FetchTransactions(context.Background())
	if err != nil {
		t.Fatalf("FetchTransactions: %v", err)
	}
	if rec.method != http.MethodGet || rec.path != "/api/transactions" {
		t.Errorf("request = %s %s, want GET /api/transactions", rec.method, rec.path)
	}
	if rec.requestID == "" {
		t.Error("missing X-Request-ID header")
	}
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	got := transactions[0]
	if got.ID != 3 || got.Description != "Lunch" || got.Amount != 12.5 ||
		got.TransactionType != model.TypeExpense || got.Date != "2026-03-10" {
		t.Errorf("decoded transaction = %+v", got)
	}
}

func TestFetchSummary(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{
		"total_income": 3000, "total_expenses": 1200, "net_income": 1800,
		"category_expenses": {"Food": 450.5}, "current_month": "2026-03"
	}`)

	summary, err := client.FetchSummary(context.Background())
	if err != nil {
		t.Fatalf("FetchSummary: %v", err)
	}
	if rec.path != "/api/analytics/summary" {
		t.Errorf("path = %s", rec.path)
	}
	if summary.NetIncome != 1800 || summary.CategoryExpenses["Food"] != 450.5 {
		t.Errorf("decoded summary = %+v", summary)
	}
}

func TestCreateTransactionSendsJSONBody(t *testing.T) {
	client, rec := newTestClient(t, http.StatusCreated, `{"message": "Transaction added successfully"}`)

	err := client.CreateTransaction(context.Background(), model.NewTransaction{
		Description:     "Lunch",
		Amount:          12.5,
		Category:        "Food",
		TransactionType: model.TypeExpense,
		AccountID:       1,
		Date:            "2026-03-15",
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if rec.method != http.MethodPost || rec.path != "/api/transactions" {
		t.Errorf("request = %s %s, want POST /api/transactions", rec.method, rec.path)
	}
	if rec.contentType != "application/json" {
		t.Errorf("Content-Type = %q", rec.contentType)
	}

	var sent map[string]any
	if err := json.Unmarshal(rec.body, &sent); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if sent["description"] != "Lunch" || sent["transaction_type"] != "expense" || sent["account_id"] != float64(1) {
		t.Errorf("payload = %v", sent)
	}
}

func TestMutationPaths(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
	}{
		{"delete transaction", func(c *Client) error {
			return c.DeleteTransaction(context.Background(), 42)
		}, http.MethodDelete, "/api/transactions/42"},
		{"create budget", func(c *Client) error {
			return c.CreateBudget(context.Background(), model.NewBudget{Category: "Food", Amount: 400, Month: "2026-03"})
		}, http.MethodPost, "/api/budgets"},
		{"create account", func(c *Client) error {
			return c.CreateAccount(context.Background(), model.NewAccount{Name: "Cash", AccountType: model.AccountChecking})
		}, http.MethodPost, "/api/accounts"},
		{"update account", func(c *Client) error {
			name := "Renamed"
			return c.UpdateAccount(context.Background(), 7, model.AccountUpdate{Name: &name})
		}, http.MethodPut, "/api/accounts/7"},
		{"delete account", func(c *Client) error {
			return c.DeleteAccount(context.Background(), 7)
		}, http.MethodDelete, "/api/accounts/7"},
		{"create goal", func(c *Client) error {
			return c.CreateGoal(context.Background(), model.NewGoal{Name: "Vacation", TargetAmount: 1000, Deadline: "2026-08-01"})
		}, http.MethodPost, "/api/goals"},
		{"update goal progress", func(c *Client) error {
			return c.UpdateGoalProgress(context.Background(), 9, model.GoalProgress{CurrentAmount: 250})
		}, http.MethodPut, "/api/goals/9"},
		{"wipe data", func(c *Client) error {
			return c.WipeData(context.Background())
		}, http.MethodDelete, "/api/data/wipe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, http.StatusOK, `{"message": "ok"}`)
			if err := tt.call(client); err != nil {
				t.Fatalf("call: %v", err)
			}
			if rec.method != tt.wantMethod || rec.path != tt.wantPath {
				t.Errorf("request = %s %s, want %s %s", rec.method, rec.path, tt.wantMethod, tt.wantPath)
			}
		})
	}
}

func TestNon2xxReturnsStatusError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusServiceUnavailable, `{"error": "db down"}`)

	_, err := client.FetchAccounts(context.Background())
	if err == nil {
		t.Fatal("expected error for 503")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error type = %T, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d", statusErr.StatusCode)
	}
	if statusErr.Method != http.MethodGet || statusErr.Path != "/api/accounts" {
		t.Errorf("error identifies %s %s", statusErr.Method, statusErr.Path)
	}
	if statusErr.RequestID == "" {
		t.Error("StatusError should carry the request id")
	}
}

func TestMalformedResponseBody(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{not json`)

	if _, err := client.FetchBudgets(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL+"/", 5*time.Second, testLogger())
	if _, err := client.FetchGoals(context.Background()); err != nil {
		t.Fatalf("FetchGoals: %v", err)
	}
	if rec.path != "/api/goals" {
		t.Errorf("path = %q, want /api/goals", rec.path)
	}
}
