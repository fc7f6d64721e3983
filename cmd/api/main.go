package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"task-reminder-bot/config"
	_ "task-reminder-bot/docs" // Swagger docs
	"task-reminder-bot/internal/httpserver"
	"task-reminder-bot/internal/middleware"
	"task-reminder-bot/internal/poller"
	tgDelivery "task-reminder-bot/internal/task/delivery/telegram"
	sqliteRepo "task-reminder-bot/internal/task/repository/sqlite"
	"task-reminder-bot/internal/task/usecase"
	"task-reminder-bot/pkg/clock"
	"task-reminder-bot/pkg/gcalendar"
	"task-reminder-bot/pkg/log"
	"task-reminder-bot/pkg/telegram"
	"task-reminder-bot/pkg/vntime"
)

// @title       Task Reminder Bot API
// @description Vietnamese natural-language task reminder bot for Telegram with SQLite storage and Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Reminder Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			logger.Error(ctx, "Failed to create database directory: ", mkErr)
			return
		}
	}
	db, err := sqliteRepo.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite database ready at %s", cfg.Database.Path)

	taskRepo := sqliteRepo.New(db, logger)

	// 4. Temporal resolver
	resolver := vntime.NewParser(clock.Vietnam)

	// 5. Google Calendar client (optional)
	var calendarClient usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcalErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcalErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. Task UseCase
	taskUC := usecase.New(logger, taskRepo, resolver, calendarClient)

	// 7. Telegram Bot client and delivery handler
	telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
	telegramHandler := tgDelivery.New(logger, taskUC, telegramBot)

	// 8. Reminder poller
	reminderPoller := poller.New(logger, taskUC, telegramBot, cfg.Reminder.PollSpec)
	if err := reminderPoller.Start(); err != nil {
		logger.Error(ctx, "Failed to start reminder poller: ", err)
		return
	}
	defer reminderPoller.Stop()

	// 9. Register webhook: auto-detect ngrok or fallback to manual config
	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL != "" {
		if whErr := telegramBot.SetWebhook(ctx, webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
		}
	}

	// 10. HTTP Server
	mw := middleware.New(logger, cfg.Telegram.WebhookSecret, cfg.Webhook.RateLimitPerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		TelegramHandler: telegramHandler,
		ReminderRunner:  reminderPoller,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
