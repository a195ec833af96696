package main

import (
	stdlog "log"

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

	logger.Info("bot started", "api_base_url", cfg.APIBaseURL)
	if err := b.Start(); err != nil {
		stdlog.Fatal(err)
	}
}
