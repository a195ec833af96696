package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/findash/dashboard-bot/internal/log"
	"github.com/findash/dashboard-bot/internal/render"
	"github.com/findash/dashboard-bot/internal/service"
)

// refreshDashboard runs a full load cycle and renders every view.
func (b *Bot) refreshDashboard(chatID int64) {
	if err := b.dash.Reload(context.Background()); err != nil {
		b.sendError(chatID, "Error loading dashboard data")
		return
	}
	b.showDashboard(chatID)
}

// showDashboard renders the current snapshot without reloading.
// Mutations call this after the service has already refreshed state.
func (b *Bot) showDashboard(chatID int64) {
	snap := b.dash.Snapshot()
	now := b.dash.Now()

	summary := render.BuildSummary(snap.CurrentSummary(now))
	text := "📊 Dashboard\n\n" +
		render.SummaryText(summary) + "\n\n" +
		"🧾 Recent transactions\n" +
		render.TransactionsText(render.RecentTransactions(snap.Transactions)) + "\n\n" +
		"💵 Budgets\n" +
		render.BudgetsText(render.BudgetRows(snap.Budgets, snap.Transactions, now)) + "\n\n" +
		"🎯 Goals\n" +
		render.GoalsText(render.GoalCards(snap.Goals, now)) + "\n\n" +
		"🏦 Accounts\n" +
		render.AccountsText(render.AccountCards(snap.Accounts))

	msg := tgbotapi.NewMessage(chatID, text)
	if len(snap.Transactions) > 0 {
		msg.ReplyMarkup = b.dashboardKeyboard()
	}
	b.send(msg)
	b.sendCharts(chatID)
}

// sendCharts renders both chart datasets and sends whatever drew
// successfully. A missing trend dataset is skipped silently; the
// category chart always has at least the sentinel sector.
func (b *Bot) sendCharts(chatID int64) {
	snap := b.dash.Snapshot()

	if snap.ChartData != nil {
		png, err := b.charts.IncomeExpenseChart(*snap.ChartData)
		switch {
		case err != nil:
			b.log.Error("rendering trend chart", log.FieldError, err)
		case png != nil:
			photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "trend.png", Bytes: png})
			photo.Caption = "Income vs expenses, last 6 months"
			b.send(photo)
		}
	}

	breakdown := service.CategoryExpenses(snap.Summary, snap.Transactions)
	png, err := b.charts.CategoryChart(breakdown)
	switch {
	case err != nil:
		b.log.Error("rendering category chart", log.FieldError, err)
	case png != nil:
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "categories.png", Bytes: png})
		photo.Caption = "Expenses by category"
		b.send(photo)
	}
}

func (b *Bot) showBudgets(chatID int64) {
	snap := b.dash.Snapshot()
	text := "💵 Budgets\n\n" +
		render.BudgetsText(render.BudgetRows(snap.Budgets, snap.Transactions, b.dash.Now()))
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = b.budgetsKeyboard()
	b.send(msg)
}

func (b *Bot) showGoals(chatID int64) {
	snap := b.dash.Snapshot()
	cards := render.GoalCards(snap.Goals, b.dash.Now())
	msg := tgbotapi.NewMessage(chatID, "🎯 Goals\n\n"+render.GoalsText(cards))
	msg.ReplyMarkup = b.goalsKeyboard(cards)
	b.send(msg)
}

func (b *Bot) showAccounts(chatID int64) {
	snap := b.dash.Snapshot()
	cards := render.AccountCards(snap.Accounts)
	msg := tgbotapi.NewMessage(chatID, "🏦 Accounts\n\n"+render.AccountsText(cards))
	msg.ReplyMarkup = b.accountsKeyboard(cards)
	b.send(msg)
}

// promptTransactionDelete lists the recent transactions as delete
// buttons.
func (b *Bot) promptTransactionDelete(chatID int64) {
	rows := render.RecentTransactions(b.dash.Snapshot().Transactions)
	if len(rows) == 0 {
		b.send(tgbotapi.NewMessage(chatID, render.EmptyTransactions))
		return
	}
	msg := tgbotapi.NewMessage(chatID, "Pick a transaction to delete:")
	msg.ReplyMarkup = b.transactionDeleteKeyboard(rows)
	b.send(msg)
}
