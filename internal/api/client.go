// Package api is the HTTP client for the finance dashboard backend.
//
// Every call is a single request/response against the fixed /api
// endpoint set: no retries, no backoff. A transport failure or a
// non-2xx status is returned as an error; callers decide whether to
// log, notify, or carry on with stale data.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/findash/dashboard-bot/internal/log"
	"github.com/findash/dashboard-bot/internal/model"
)

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	RequestID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d (request %s)",
		e.Method, e.Path, e.StatusCode, e.RequestID)
}

// Client talks to one dashboard backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *log.Logger
}

// New creates a client for the backend at baseURL. The timeout covers
// the whole request including body read.
func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

func (c *Client) FetchAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := c.getJSON(ctx, "/api/accounts", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) FetchTransactions(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := c.getJSON(ctx, "/api/transactions", &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) FetchBudgets(ctx context.Context) ([]model.Budget, error) {
	var budgets []model.Budget
	if err := c.getJSON(ctx, "/api/budgets", &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (c *Client) FetchGoals(ctx context.Context) ([]model.Goal, error) {
	var goals []model.Goal
	if err := c.getJSON(ctx, "/api/goals", &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (c *Client) FetchSummary(ctx context.Context) (*model.Summary, error) {
	var summary model.Summary
	if err := c.getJSON(ctx, "/api/analytics/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) FetchChartData(ctx context.Context) (*model.ChartData, error) {
	var data model.ChartData
	if err := c.getJSON(ctx, "/api/analytics/chart-data", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) CreateTransaction(ctx context.Context, t model.NewTransaction) error {
	return c.submit(ctx, http.MethodPost, "/api/transactions", t)
}

func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	return c.submit(ctx, http.MethodDelete, fmt.Sprintf("/api/transactions/%d", id), nil)
}

func (c *Client) CreateBudget(ctx context.Context, b model.NewBudget) error {
	return c.submit(ctx, http.MethodPost, "/api/budgets", b)
}

func (c *Client) CreateAccount(ctx context.Context, a model.NewAccount) error {
	return c.submit(ctx, http.MethodPost, "/api/accounts", a)
}

func (c *Client) UpdateAccount(ctx context.Context, id int, u model.AccountUpdate) error {
	return c.submit(ctx, http.MethodPut, fmt.Sprintf("/api/accounts/%d", id), u)
}

func (c *Client) DeleteAccount(ctx context.Context, id int) error {
	return c.submit(ctx, http.MethodDelete, fmt.Sprintf("/api/accounts/%d", id), nil)
}

func (c *Client) CreateGoal(ctx context.Context, g model.NewGoal) error {
	return c.submit(ctx, http.MethodPost, "/api/goals", g)
}

func (c *Client) UpdateGoalProgress(ctx context.Context, id int, p model.GoalProgress) error {
	return c.submit(ctx, http.MethodPut, fmt.Sprintf("/api/goals/%d", id), p)
}

// WipeData destroys every record on the backend. Irreversible; the
// caller is responsible for the confirmation gesture.
func (c *Client) WipeData(ctx context.Context) error {
	return c.submit(ctx, http.MethodDelete, "/api/data/wipe", nil)
}

// getJSON fetches path and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", path, err)
	}
	return nil
}

// submit sends a mutation and discards any response body beyond the
// status check. The backend's success payloads carry only messages.
func (c *Client) submit(ctx context.Context, method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%s %s: encoding payload: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	_, err := c.do(ctx, method, path, body)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	requestID := uuid.New().String()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	c.log.Debug("request complete",
		log.FieldMethod, method,
		log.FieldPath, path,
		log.FieldStatusCode, resp.StatusCode,
		log.FieldRequestID, requestID,
		log.FieldDuration, time.Since(start).Milliseconds(),
	)

	// Any 2xx counts as success; the client does not branch on
	// specific codes or error-body content.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
		}
	}
	return data, nil
}
