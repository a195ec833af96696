package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/findash/dashboard-bot/internal/model"
)

// Form steps a user can be waiting on.
const (
	awaitTransaction   = "transaction"
	awaitBudget        = "budget"
	awaitGoal          = "goal"
	awaitGoalProgress  = "goal_progress"
	awaitAccountNew    = "account_new"
	awaitAccountRename = "account_rename"
)

// formState tracks one user's in-progress form.
type formState struct {
	Awaiting    string
	PendingType string // transaction type picked before the account step
	PendingID   int    // account or goal id the form applies to
}

func (b *Bot) promptTransactionType(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Income or expense?")
	msg.ReplyMarkup = b.transactionTypeKeyboard()
	b.send(msg)
}

// promptTransactionAccount asks which account the transaction belongs
// to. Accounts are loaded first when the snapshot has none yet.
func (b *Bot) promptTransactionAccount(chatID, userID int64, txType string) {
	if len(b.dash.Snapshot().Accounts) == 0 {
		if err := b.dash.Reload(context.Background()); err != nil {
			b.sendError(chatID, "Error loading dashboard data")
			return
		}
	}
	accounts := b.dash.Snapshot().Accounts
	if len(accounts) == 0 {
		b.sendError(chatID, "No accounts yet. Add one first via "+btnAccounts)
		return
	}

	b.states[userID] = &formState{PendingType: txType}
	msg := tgbotapi.NewMessage(chatID, "Which account?")
	msg.ReplyMarkup = b.accountPickKeyboard(accounts)
	b.send(msg)
}

func (b *Bot) beginTransactionForm(chatID, userID int64, accountData string) {
	accountID, err := strconv.Atoi(accountData)
	if err != nil {
		return
	}
	state, ok := b.states[userID]
	if !ok || state.PendingType == "" {
		// Account picked without a preceding type step; restart.
		b.promptTransactionType(chatID)
		return
	}
	state.Awaiting = awaitTransaction
	state.PendingID = accountID
	b.send(tgbotapi.NewMessage(chatID,
		"Enter the transaction as:\n<amount> <category> <description>\n\n"+
			"Example: 12.50 Food Lunch downtown\nDated today by default."))
}

func (b *Bot) handleFormInput(message *tgbotapi.Message, state *formState) error {
	chatID := message.Chat.ID
	userID := message.From.ID
	ctx := context.Background()

	switch state.Awaiting {
	case awaitTransaction:
		amount, category, description, err := parseTransactionInput(message.Text)
		if err != nil {
			b.sendError(chatID, err.Error())
			return nil
		}
		t := model.NewTransaction{
			Description:     description,
			Amount:          amount,
			Category:        category,
			TransactionType: state.PendingType,
			AccountID:       state.PendingID,
			Date:            b.dash.Now().Format(model.DateLayout),
		}
		if err := b.dash.AddTransaction(ctx, t); err != nil {
			b.reportFailure(chatID, err, "Error adding transaction")
			return nil
		}
		delete(b.states, userID)
		b.sendOK(chatID, "Transaction added successfully!")
		b.showDashboard(chatID)

	case awaitBudget:
		category, amount, err := parseBudgetInput(message.Text)
		if err != nil {
			b.sendError(chatID, err.Error())
			return nil
		}
		budget := model.NewBudget{
			Category: category,
			Amount:   amount,
			Month:    b.dash.Now().Format(model.MonthLayout),
		}
		if err := b.dash.AddBudget(ctx, budget); err != nil {
			b.reportFailure(chatID, err, "Error setting budget")
			return nil
		}
		delete(b.states, userID)
		b.sendOK(chatID, "Budget set successfully!")
		b.showBudgets(chatID)

	case awaitGoal:
		goal, err := parseGoalInput(message.Text)
		if err != nil {
			b.sendError(chatID, err.Error())
			return nil
		}
		if err := b.dash.AddGoal(ctx, goal); err != nil {
			b.reportFailure(chatID, err, "Error adding goal")
			return nil
		}
		delete(b.states, userID)
		b.sendOK(chatID, "Goal added successfully!")
		b.showGoals(chatID)

	case awaitGoalProgress:
		amount, err := parseAmountValue(message.Text)
		if err != nil {
			b.sendError(chatID, err.Error())
			return nil
		}
		if err := b.dash.UpdateGoalProgress(ctx, state.PendingID, model.GoalProgress{CurrentAmount: amount}); err != nil {
			b.reportFailure(chatID, err, "Error updating goal")
			return nil
		}
		delete(b.states, userID)
		b.sendOK(chatID, "Goal progress updated!")
		b.showGoals(chatID)

	case awaitAccountNew:
		name, accountType, err := parseAccountInput(message.Text)
		if err != nil {
			b.sendError(chatID, err.Error())
			return nil
		}
		if err := b.dash.AddAccount(ctx, model.NewAccount{Name: name, AccountType: accountType}); err != nil {
			b.reportFailure(chatID, err, "Error adding account")
			return nil
		}
		delete(b.states, userID)
		b.sendOK(chatID, "Account added successfully!")
		b.showAccounts(chatID)

	case awaitAccountRename:
		name := strings.TrimSpace(message.Text)
		if name == "" {
			b.sendError(chatID, "Account name cannot be empty")
			return nil
		}
		if err := b.dash.UpdateAccount(ctx, state.PendingID, model.AccountUpdate{Name: &name}); err != nil {
			b.reportFailure(chatID, err, "Error updating account")
			return nil
		}
		delete(b.states, userID)
		b.sendOK(chatID, "Account updated successfully!")
		b.showAccounts(chatID)

	default:
		delete(b.states, userID)
	}
	return nil
}

// reportFailure distinguishes inline validation messages from the
// generic transient notice used for submit failures.
func (b *Bot) reportFailure(chatID int64, err error, fallback string) {
	if isValidationErr(err) {
		b.sendError(chatID, err.Error())
		return
	}
	b.sendError(chatID, fallback)
}

func isValidationErr(err error) bool {
	return errors.Is(err, model.ErrMissingField) ||
		errors.Is(err, model.ErrInvalidAmount) ||
		errors.Is(err, model.ErrInvalidDate) ||
		errors.Is(err, model.ErrInvalidType)
}

// parseTransactionInput splits "<amount> <category> <description>".
func parseTransactionInput(text string) (amount float64, category, description string, err error) {
	parts := strings.SplitN(strings.TrimSpace(text), " ", 3)
	if len(parts) != 3 {
		return 0, "", "", fmt.Errorf("use the format: <amount> <category> <description>")
	}
	amount, err = parseAmountValue(parts[0])
	if err != nil {
		return 0, "", "", err
	}
	return amount, parts[1], strings.TrimSpace(parts[2]), nil
}

// parseBudgetInput splits "<category> <amount>".
func parseBudgetInput(text string) (category string, amount float64, err error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("use the format: <category> <amount>")
	}
	amount, err = parseAmountValue(parts[1])
	if err != nil {
		return "", 0, err
	}
	return parts[0], amount, nil
}

// parseGoalInput splits "<name> | <target> | <deadline>".
func parseGoalInput(text string) (model.NewGoal, error) {
	parts := strings.Split(text, "|")
	if len(parts) != 3 {
		return model.NewGoal{}, fmt.Errorf("use the format: <name> | <target amount> | <deadline YYYY-MM-DD>")
	}
	target, err := parseAmountValue(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.NewGoal{}, err
	}
	return model.NewGoal{
		Name:         strings.TrimSpace(parts[0]),
		TargetAmount: target,
		Deadline:     strings.TrimSpace(parts[2]),
	}, nil
}

// parseAccountInput splits "<name...> <type>"; the last word is the
// account type.
func parseAccountInput(text string) (name, accountType string, err error) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("use the format: <name> <type>")
	}
	accountType = strings.ToLower(parts[len(parts)-1])
	switch accountType {
	case model.AccountChecking, model.AccountSavings, model.AccountCredit, model.AccountInvestment:
	default:
		return "", "", fmt.Errorf("account type must be one of: checking, savings, credit, investment")
	}
	return strings.Join(parts[:len(parts)-1], " "), accountType, nil
}

func parseAmountValue(text string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || amount < 0 {
		return 0, fmt.Errorf("amount must be a number, for example: 1000.50")
	}
	return amount, nil
}
