package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/findash/dashboard-bot/internal/model"
	"github.com/findash/dashboard-bot/internal/render"
)

func (b *Bot) mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnDashboard),
			tgbotapi.NewKeyboardButton(btnTransaction),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBudgets),
			tgbotapi.NewKeyboardButton(btnGoals),
			tgbotapi.NewKeyboardButton(btnAccounts),
		),
	)
}

func (b *Bot) dashboardKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete a transaction", "txn_del_menu"),
		),
	)
}

func (b *Bot) transactionTypeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Income", "type_income"),
			tgbotapi.NewInlineKeyboardButtonData("💸 Expense", "type_expense"),
		),
	)
}

func (b *Bot) accountPickKeyboard(accounts []model.Account) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, a := range accounts {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(a.Name, fmt.Sprintf("txacct_%d", a.ID)),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (b *Bot) transactionDeleteKeyboard(rows []render.TransactionRow) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, r := range rows {
		label := fmt.Sprintf("%s (%s)", r.Description, r.Amount)
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("txn_del_%d", r.ID)),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (b *Bot) budgetsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Set budget", "budget_add"),
		),
	)
}

func (b *Bot) goalsKeyboard(cards []render.GoalCard) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, c := range cards {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("📈 Update "+c.Name, fmt.Sprintf("goal_upd_%d", c.ID)),
		})
	}
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("➕ Add goal", "goal_add"),
	})
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (b *Bot) accountsKeyboard(cards []render.AccountCard) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, c := range cards {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("✏️ "+c.Name, fmt.Sprintf("acct_edit_%d", c.ID)),
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+c.Name, fmt.Sprintf("acct_del_%d", c.ID)),
		})
	}
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("➕ Add account", "acct_add"),
	})
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (b *Bot) wipeConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚠️ Yes, wipe everything", "wipe_confirm"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Cancel", "wipe_cancel"),
		),
	)
}
