// Webhook entry point: a small HTTP server that feeds Telegram
// webhook updates into the bot, for deployments where long polling is
// not an option.
package main

import (
	"io"
	stdlog "log"
	"net/http"

	"github.com/findash/dashboard-bot/internal/api"
	"github.com/findash/dashboard-bot/internal/bot"
	"github.com/findash/dashboard-bot/internal/charts"
	"github.com/findash/dashboard-bot/internal/config"
	"github.com/findash/dashboard-bot/internal/log"
	"github.com/findash/dashboard-bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}

	logger := log.New(log.ComponentApp, log.Config{Level: cfg.LogLevel})

	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, logger.WithComponent(log.ComponentAPI))
	dash := service.NewDashboard(client, logger.WithComponent(log.ComponentDashboard))

	b, err := bot.NewBot(cfg.TelegramToken, dash, charts.NewGenerator(), logger.WithComponent(log.ComponentBot))
	if err != nil {
		stdlog.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /telegram/webhook", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "reading body", http.StatusBadRequest)
			return
		}
		if err := b.HandleWebhook(body); err != nil {
			logger.Error("handling webhook", log.FieldError, err)
			http.Error(w, "handling update", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	logger.Info("webhook server started", "addr", cfg.WebhookAddr)
	if err := http.ListenAndServe(cfg.WebhookAddr, mux); err != nil {
		stdlog.Fatal(err)
	}
}
