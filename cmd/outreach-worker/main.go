package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"soundreach-server/internal/clients/mail"
	"soundreach-server/internal/config"
	"soundreach-server/internal/observability"
	"soundreach-server/internal/outreach/dispatcher"
	"soundreach-server/internal/store"
)

// Standalone outreach dispatcher. Runs the scheduled email loop without
// the HTTP server, for deployments that separate API and worker processes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting outreach dispatcher worker...")

	st, err := store.New(cfg.Database.URL, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %s", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Mail.ResendAPIKey, cfg.Mail.DefaultSender, logger)
	if err != nil {
		log.Fatalf("failed to create resend client: %s", err)
	}

	d := dispatcher.New(st, mailClient, cfg.Dispatcher.TickInterval, logger)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(ctx, "Shutting down outreach dispatcher...")
		cancel()
	}()

	d.Run(ctx)
	logger.Info(context.Background(), "Outreach dispatcher exited")
}
