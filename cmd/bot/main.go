package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursebot/internal/catalog"
	"coursebot/internal/config"
	"coursebot/internal/handler"
	"coursebot/internal/middleware"
	"coursebot/internal/repository/memory"
	"coursebot/internal/server"
	"coursebot/internal/service"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting course bot", zap.String("run_mode", cfg.RunMode))

	if cfg.InviteLink == "" {
		logger.Warn("INVITE_LINK is empty, the free lesson button will have no link")
	}

	// Load course catalog
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}

	logger.Info("Catalog loaded",
		zap.Int("courses", len(cat.Courses)),
		zap.Int("currencies", len(cat.Currencies)),
	)

	// Initialize Telegram bot
	settings := tele.Settings{
		Token: cfg.BotToken,
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Sender() != nil {
				fields = append(fields, zap.Int64("user_id", c.Sender().ID))
			}
			logger.Error("Update processing failed", fields...)
		},
	}
	longPoll := cfg.RunMode == config.RunModeLongPoll
	if longPoll {
		settings.Poller = &tele.LongPoller{Timeout: 10 * time.Second}
	}

	bot, err := tele.NewBot(settings)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize repositories
	expectationRepo := memory.NewExpectationRepo()
	trailRepo := memory.NewTrailRepo()

	// Initialize services
	messenger := handler.NewBotMessenger(bot)
	trailService := service.NewTrailService(trailRepo, messenger, logger)
	notifier := service.NewNotifier(messenger, logger)
	paymentService := service.NewPaymentService(
		cat,
		expectationRepo,
		trailService,
		notifier,
		messenger,
		logger,
		service.PaymentOptions{ArmDelay: cfg.ArmDelay},
	)

	// Initialize handler
	bot.Use(middleware.Recover(logger), middleware.Logging(logger))
	h := handler.NewHandler(bot, cat, paymentService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start HTTP server in background
	var webhook http.Handler
	if !longPoll {
		// Updates go straight to ProcessUpdate, so no poller is started
		webhook = server.NewWebhookHandler(bot, logger)
	}
	srv := server.New(cfg.ListenAddr(), cfg.WebhookPath(), webhook, logger)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Run(ctx)
	}()

	if longPoll {
		if err := bot.RemoveWebhook(); err != nil {
			logger.Warn("Failed to remove webhook", zap.Error(err))
		}
		go func() {
			logger.Info("Bot started successfully")
			bot.Start()
		}()
	} else {
		endpoint := &tele.Webhook{Endpoint: &tele.WebhookEndpoint{PublicURL: cfg.WebhookEndpoint()}}
		if err := bot.SetWebhook(endpoint); err != nil {
			logger.Fatal("Failed to set webhook", zap.Error(err))
		}
		logger.Info("Webhook registered")
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, stopping bot...")
	case err := <-serverErr:
		logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
	}

	// Graceful shutdown
	cancel()
	if longPoll {
		bot.Stop()
	}

	logger.Info("Bot stopped gracefully")
}

// newLogger builds a production logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}
