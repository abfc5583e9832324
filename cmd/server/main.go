package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"finance-analytics/internal/amqp"
	"finance-analytics/internal/config"
	"finance-analytics/internal/database"
	"finance-analytics/internal/handlers"
	"finance-analytics/internal/middleware"
	"finance-analytics/internal/models"
	"finance-analytics/internal/repositories"
	"finance-analytics/internal/scheduler"
	"finance-analytics/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	recordRepo := repositories.NewRecordRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	eventLogger := services.NewEventLogger(logger)

	breakerConfig := services.DefaultCircuitBreakerConfig()
	breakerConfig.MaxFailures = cfg.Currency.BreakerMaxFailures
	breakerConfig.ResetTimeout = cfg.Currency.BreakerResetTimeout
	breakerConfig.OnStateChange = func(from, to models.CircuitBreakerState) {
		eventLogger.LogCircuitBreakerStateChange(context.Background(), breakerConfig.Name, from.String(), to.String())
	}

	provider := services.NewHTTPRateProvider(cfg.Currency.ProviderURL, cfg.Currency.ProviderAPIKey, cfg.Currency.FetchTimeout)
	currency := services.NewCurrencyService(provider, services.NewCircuitBreaker(breakerConfig), eventLogger, metrics,
		services.CurrencyServiceConfig{
			BaseCurrency: cfg.Currency.BaseCurrency,
			CacheTTL:     cfg.Currency.CacheTTL,
			FetchTimeout: cfg.Currency.FetchTimeout,
			AllowList:    cfg.Currency.AllowList,
		})
	defer currency.Close()

	if err := currency.Warm(ctx); err != nil {
		logger.Warn("Initial exchange rate fetch failed, conversions will retry on demand", "error", err)
	}

	notifier := newAlertNotifier(cfg.AMQP, logger)
	if closer, ok := notifier.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	periods := services.NewPeriodRangeService(nil)
	alertService := services.NewBudgetAlertService(budgetRepo, recordRepo, notifier, eventLogger, metrics, nil)
	budgetService := services.NewBudgetService(budgetRepo, currency, cfg.Alerts.DefaultThresholds)
	transactionService := services.NewTransactionService(recordRepo, currency, alertService, eventLogger, metrics)
	analyticsService := services.NewAnalyticsService(recordRepo, currency, periods, metrics)

	if cfg.Scheduler.Enabled {
		jobs := scheduler.NewScheduler(ctx, cfg.Scheduler, currency, transactionService)
		if err := jobs.RegisterAll(); err != nil {
			return fmt.Errorf("failed to register scheduled jobs: %w", err)
		}
		jobs.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			jobs.Stop(stopCtx)
		}()
	}

	rateLimiter := middleware.NewRateLimiter(cfg.Security)
	rateLimiter.StartCleanup(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, middleware.OwnerIDHeader, echo.HeaderXRequestID},
	}))
	e.Use(rateLimiter.Middleware())

	registerRoutes(e, routeHandlers{
		health:       handlers.NewHealthCheckHandler(db, currency),
		analytics:    handlers.NewAnalyticsHandler(analyticsService, metrics),
		budgets:      handlers.NewBudgetHandler(budgetService, alertService),
		currency:     handlers.NewCurrencyHandler(currency),
		transactions: handlers.NewTransactionHandler(transactionService, recordRepo),
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting finance analytics server", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// newAlertNotifier publishes to the broker when one is configured and
// reachable, and logs alerts otherwise.
func newAlertNotifier(cfg config.AMQPConfig, logger *slog.Logger) services.AlertNotifierInterface {
	if !cfg.Enabled() {
		logger.Info("AMQP not configured, budget alerts will be logged only")
		return services.NewLogAlertNotifier(logger)
	}

	publisher, err := amqp.NewPublisher(cfg)
	if err != nil {
		logger.Warn("AMQP unavailable, budget alerts will be logged only", "error", err)
		return services.NewLogAlertNotifier(logger)
	}

	logger.Info("Publishing budget alerts", "exchange", cfg.Exchange, "routing_key", cfg.RoutingKey)
	return publisher
}

type routeHandlers struct {
	health       *handlers.HealthCheckHandler
	analytics    *handlers.AnalyticsHandler
	budgets      *handlers.BudgetHandler
	currency     *handlers.CurrencyHandler
	transactions *handlers.TransactionHandler
}

func registerRoutes(e *echo.Echo, h routeHandlers) {
	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	currency := api.Group("/currency")
	currency.GET("/convert", h.currency.Convert)
	currency.GET("/rates", h.currency.GetRates)

	owned := api.Group("", middleware.RequireOwner())

	analytics := owned.Group("/analytics")
	analytics.GET("/trend", h.analytics.GetTrend)
	analytics.GET("/summary", h.analytics.GetMonthlySummary)
	analytics.GET("/categories", h.analytics.GetCategoryBreakdown)

	transactions := owned.Group("/transactions")
	transactions.POST("", h.transactions.RecordTransaction)
	transactions.GET("", h.transactions.ListTransactions)
	transactions.GET("/:transactionId", h.transactions.GetTransaction)

	budgets := owned.Group("/budgets")
	budgets.POST("", h.budgets.CreateBudget)
	budgets.GET("/:budgetId", h.budgets.GetBudget)
	budgets.GET("/:budgetId/status", h.budgets.GetBudgetStatus)
	budgets.DELETE("/:budgetId", h.budgets.DeleteBudget)
}
