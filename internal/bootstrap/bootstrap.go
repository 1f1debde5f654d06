package bootstrap

import (
	"context"
	"fmt"

	"soundreach-server/internal/config"
	"soundreach-server/internal/observability"
	"soundreach-server/internal/ratelimit"
	"soundreach-server/internal/store"

	analyticsHandler "soundreach-server/internal/analytics/handler"
	analyticsProcessor "soundreach-server/internal/analytics/processor"
	artistHandler "soundreach-server/internal/artist/handler"
	artistProcessor "soundreach-server/internal/artist/processor"
	authHandler "soundreach-server/internal/auth/handler"
	authProcessor "soundreach-server/internal/auth/processor"
	campaignHandler "soundreach-server/internal/campaign/handler"
	campaignProcessor "soundreach-server/internal/campaign/processor"
	"soundreach-server/internal/clients/mail"
	"soundreach-server/internal/clients/openai"
	redisClient "soundreach-server/internal/clients/redis"
	financeHandler "soundreach-server/internal/finance/handler"
	financeProcessor "soundreach-server/internal/finance/processor"
	"soundreach-server/internal/outreach/dispatcher"
	outreachHandler "soundreach-server/internal/outreach/handler"
	outreachProcessor "soundreach-server/internal/outreach/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Store  *store.Store
	Logger *observability.Logger

	AuthHandler      authHandler.Handler
	CampaignHandler  campaignHandler.Handler
	ArtistHandler    artistHandler.Handler
	OutreachHandler  outreachHandler.Handler
	FinanceHandler   financeHandler.Handler
	AnalyticsHandler analyticsHandler.Handler

	RateLimiter *ratelimit.Service
	Dispatcher  *dispatcher.Dispatcher

	// Redis client kept for cleanup
	Redis *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Mail.ResendAPIKey, cfg.Mail.DefaultSender, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	// Template generation degrades gracefully when no OpenAI key is configured.
	var textGenerator outreachProcessor.TextGenerator
	if cfg.Services.OpenAIAPIKey != "" {
		openaiClient, err := openai.New(cfg.Services.OpenAIAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		textGenerator = openaiClient
	} else {
		logger.Info(ctx, "OpenAI API key not configured, AI template generation disabled")
	}

	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.RateLimiter = ratelimit.NewService(deps.Redis, cfg.RateLimit.RequestsPerMinute, logger)

	authProc := authProcessor.New(deps.Store, authProcessor.NewBcryptHasher(), authProcessor.Config{
		AccessSecret:  cfg.Auth.JWTSecret,
		RefreshSecret: cfg.Auth.JWTRefreshSecret,
		AccessExpiry:  cfg.Auth.AccessTokenExpiry,
		RefreshExpiry: cfg.Auth.RefreshTokenExpiry,
	}, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	campaignProc := campaignProcessor.New(deps.Store, logger)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	artistProc := artistProcessor.New(deps.Store, logger)
	deps.ArtistHandler = artistHandler.New(artistProc, logger)

	outreachProc := outreachProcessor.New(deps.Store, textGenerator, logger)
	deps.OutreachHandler = outreachHandler.New(outreachProc, logger)

	financeProc := financeProcessor.New(deps.Store, cfg.Services.StripeSecretKey, logger)
	deps.FinanceHandler = financeHandler.New(financeProc, logger)

	analyticsProc := analyticsProcessor.New(deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analyticsProc, logger)

	deps.Dispatcher = dispatcher.New(deps.Store, mailClient, cfg.Dispatcher.TickInterval, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close Redis client", err)
		}
	}
}
