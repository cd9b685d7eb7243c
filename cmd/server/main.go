package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/david/scholarship-hunter/internal/ai"
	"github.com/david/scholarship-hunter/internal/api"
	"github.com/david/scholarship-hunter/internal/auth"
	"github.com/david/scholarship-hunter/internal/config"
	"github.com/david/scholarship-hunter/internal/db"
	"github.com/david/scholarship-hunter/internal/leads"
	"github.com/david/scholarship-hunter/internal/logging"
	"github.com/david/scholarship-hunter/internal/metrics"
	"github.com/david/scholarship-hunter/internal/notify"
	"github.com/david/scholarship-hunter/internal/report"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	// .env is optional in production.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Configuration, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool, logger); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	rates, err := report.LoadRates(cfg.RatesFile)
	if err != nil {
		return fmt.Errorf("rates: %w", err)
	}

	unlocker, err := auth.NewUnlocker(cfg.Unlock.Secret, cfg.Unlock.TTL, logger)
	if err != nil {
		return err
	}

	sinks := buildLeadSinks(cfg.Leads, logger)
	defer sinks.Close() //nolint:errcheck

	deps := api.Deps{
		Store:     db.NewStore(pool),
		Hunter:    buildHunter(cfg.LLM, logger),
		Assembler: report.NewAssembler(report.NewConverter(rates)),
		Unlocker:  unlocker,
		Metrics:   metrics.NewRegistry(),
		Logger:    logger,
	}
	if sinks.Len() > 0 {
		deps.Leads = sinks
	}
	if cfg.Email.APIKey != "" {
		deps.Mailer = notify.NewResendMailer(cfg.Email.APIKey, cfg.Email.From, cfg.Email.Endpoint, 15*time.Second)
	} else {
		logger.Warn("email api key not set, report emails disabled")
	}

	srv := api.NewServer(deps, api.Options{
		BaseURL:      cfg.Server.BaseURL,
		CORSOrigins:  cfg.Server.CORSOrigins,
		PreviewCount: cfg.Unlock.PreviewCount,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("llm", cfg.LLM.Provider))
		errCh <- srv.Start(cfg.Server.Port)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Echo.Shutdown(shutdownCtx)
}

func buildHunter(cfg config.LLMConfig, logger *zap.Logger) api.Hunter {
	if cfg.Provider == "static" {
		logger.Warn("using static scholarship hunter")
		return ai.StaticHunter{}
	}
	return ai.NewHunter(ai.NewOllamaClient(cfg.Host, cfg.Model, cfg.Timeout), logger)
}

func buildLeadSinks(cfg config.LeadsConfig, logger *zap.Logger) *leads.MultiSink {
	var webhook, kafka leads.Sink
	if cfg.WebhookURL != "" {
		webhook = leads.NewWebhookSink(cfg.WebhookURL, 10*time.Second)
	}
	if len(cfg.KafkaBrokers) > 0 {
		kafka = leads.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	sinks := leads.NewMultiSink(webhook, kafka)
	logger.Info("lead sinks configured", zap.Int("count", sinks.Len()))
	return sinks
}
