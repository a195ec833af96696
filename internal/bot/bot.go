// Package bot is the Telegram surface of the dashboard: commands and
// keyboards drive load cycles and mutations on the service layer, and
// every outcome is reported back as a transient notice.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/findash/dashboard-bot/internal/log"
	"github.com/findash/dashboard-bot/internal/model"
	"github.com/findash/dashboard-bot/internal/service"
)

// Main keyboard button labels.
const (
	btnDashboard   = "📊 Dashboard"
	btnTransaction = "➕ Transaction"
	btnBudgets     = "💵 Budgets"
	btnGoals       = "🎯 Goals"
	btnAccounts    = "🏦 Accounts"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	dash   *service.Dashboard
	charts ChartRenderer
	log    *log.Logger
	states map[int64]*formState // conversational form state per user
}

// ChartRenderer produces the two dashboard chart images.
type ChartRenderer interface {
	IncomeExpenseChart(data model.ChartData) ([]byte, error)
	CategoryChart(breakdown service.CategoryBreakdown) ([]byte, error)
}

func NewBot(token string, dash *service.Dashboard, charts ChartRenderer, logger *log.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}
	return &Bot{
		api:    api,
		dash:   dash,
		charts: charts,
		log:    logger,
		states: make(map[int64]*formState),
	}, nil
}

// Start runs the bot in long-polling mode until the updates channel
// closes.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for update := range updates {
		if err := b.handleUpdate(update); err != nil {
			b.log.Error("handling update", log.FieldError, err)
		}
	}
	return nil
}

// HandleWebhook processes one webhook update body.
func (b *Bot) HandleWebhook(body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return fmt.Errorf("decoding update: %w", err)
	}
	return b.handleUpdate(update)
}

func (b *Bot) handleUpdate(update tgbotapi.Update) error {
	if update.Message == nil && update.CallbackQuery == nil {
		return nil
	}

	if update.Message != nil && update.Message.IsCommand() {
		return b.handleCommand(update.Message)
	}
	if update.CallbackQuery != nil {
		return b.handleCallback(update.CallbackQuery)
	}
	return b.handleMessage(update.Message)
}

func (b *Bot) handleCommand(message *tgbotapi.Message) error {
	switch message.Command() {
	case "start":
		b.handleStart(message.Chat.ID)
	case "dashboard":
		b.refreshDashboard(message.Chat.ID)
	case "wipe":
		b.promptWipe(message.Chat.ID)
	}
	return nil
}

func (b *Bot) handleStart(chatID int64) {
	msg := tgbotapi.NewMessage(chatID,
		"Welcome to your finance dashboard! 💰\n\n"+
			"I track accounts, transactions, budgets and savings goals "+
			"from your dashboard backend. Here is what I can do:\n\n"+
			"• Show the full dashboard with charts\n"+
			"• Record income and expenses\n"+
			"• Set monthly budgets and savings goals\n"+
			"• Manage accounts\n\n"+
			"Pick an action:")
	msg.ReplyMarkup = b.mainKeyboard()
	b.send(msg)
}

func (b *Bot) handleMessage(message *tgbotapi.Message) error {
	switch message.Text {
	case btnDashboard:
		b.refreshDashboard(message.Chat.ID)
		return nil
	case btnTransaction:
		b.promptTransactionType(message.Chat.ID)
		return nil
	case btnBudgets:
		b.showBudgets(message.Chat.ID)
		return nil
	case btnGoals:
		b.showGoals(message.Chat.ID)
		return nil
	case btnAccounts:
		b.showAccounts(message.Chat.ID)
		return nil
	}

	state, ok := b.states[message.From.ID]
	if !ok {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Pick an action:")
		msg.ReplyMarkup = b.mainKeyboard()
		b.send(msg)
		return nil
	}
	return b.handleFormInput(message, state)
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) error {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID
	data := callback.Data

	switch {
	case data == "type_income" || data == "type_expense":
		txType := strings.TrimPrefix(data, "type_")
		b.promptTransactionAccount(chatID, userID, txType)

	case strings.HasPrefix(data, "txacct_"):
		b.beginTransactionForm(chatID, userID, strings.TrimPrefix(data, "txacct_"))

	case data == "txn_del_menu":
		b.promptTransactionDelete(chatID)

	case strings.HasPrefix(data, "txn_del_"):
		if id, err := strconv.Atoi(strings.TrimPrefix(data, "txn_del_")); err == nil {
			b.deleteTransaction(chatID, id)
		}

	case data == "budget_add":
		b.states[userID] = &formState{Awaiting: awaitBudget}
		b.send(tgbotapi.NewMessage(chatID,
			"Enter the budget as:\n<category> <amount>\n\nExample: Food 400\n"+
				"The budget applies to the current month."))

	case data == "goal_add":
		b.states[userID] = &formState{Awaiting: awaitGoal}
		b.send(tgbotapi.NewMessage(chatID,
			"Enter the goal as:\n<name> | <target amount> | <deadline YYYY-MM-DD>\n\n"+
				"Example: Vacation fund | 2500 | 2026-12-01"))

	case strings.HasPrefix(data, "goal_upd_"):
		if id, err := strconv.Atoi(strings.TrimPrefix(data, "goal_upd_")); err == nil {
			b.states[userID] = &formState{Awaiting: awaitGoalProgress, PendingID: id}
			b.send(tgbotapi.NewMessage(chatID, "Enter current amount saved:"))
		}

	case data == "acct_add":
		b.states[userID] = &formState{Awaiting: awaitAccountNew}
		b.send(tgbotapi.NewMessage(chatID,
			"Enter the account as:\n<name> <type>\n\n"+
				"Types: checking, savings, credit, investment\nExample: Everyday checking"))

	case strings.HasPrefix(data, "acct_edit_"):
		if id, err := strconv.Atoi(strings.TrimPrefix(data, "acct_edit_")); err == nil {
			b.states[userID] = &formState{Awaiting: awaitAccountRename, PendingID: id}
			b.send(tgbotapi.NewMessage(chatID, "Enter the new account name:"))
		}

	case strings.HasPrefix(data, "acct_del_"):
		if id, err := strconv.Atoi(strings.TrimPrefix(data, "acct_del_")); err == nil {
			b.deleteAccount(chatID, id)
		}

	case data == "wipe_confirm":
		b.wipeData(chatID)

	case data == "wipe_cancel":
		delete(b.states, userID)
		b.send(tgbotapi.NewMessage(chatID, "Wipe cancelled. Nothing was deleted."))
	}

	// Acknowledge so the client clears its loading indicator.
	b.api.Request(tgbotapi.NewCallback(callback.ID, ""))
	return nil
}

// deleteTransaction, deleteAccount and wipeData are the mutations
// triggered directly from a callback, with no form step in between.

func (b *Bot) deleteTransaction(chatID int64, id int) {
	if err := b.dash.DeleteTransaction(context.Background(), id); err != nil {
		b.sendError(chatID, "Error deleting transaction")
		return
	}
	b.sendOK(chatID, "Transaction deleted successfully!")
	b.showDashboard(chatID)
}

func (b *Bot) deleteAccount(chatID int64, id int) {
	if err := b.dash.DeleteAccount(context.Background(), id); err != nil {
		b.sendError(chatID, "Error deleting account")
		return
	}
	b.sendOK(chatID, "Account deleted successfully!")
	b.showAccounts(chatID)
}

func (b *Bot) promptWipe(chatID int64) {
	msg := tgbotapi.NewMessage(chatID,
		"⚠️ This permanently deletes ALL transactions, budgets and goals "+
			"and resets every account balance. This cannot be undone.\n\nContinue?")
	msg.ReplyMarkup = b.wipeConfirmKeyboard()
	b.send(msg)
}

func (b *Bot) wipeData(chatID int64) {
	if err := b.dash.WipeData(context.Background()); err != nil {
		b.sendError(chatID, "Error wiping data")
		return
	}
	b.sendOK(chatID, "All data has been wiped")
	b.showDashboard(chatID)
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("sending message", log.FieldError, err)
	}
}

func (b *Bot) sendOK(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, "✅ "+text))
}

func (b *Bot) sendError(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, "❌ "+text))
}
