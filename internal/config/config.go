package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Currency  CurrencyConfig
	Alerts    AlertsConfig
	AMQP      AMQPConfig
	Scheduler SchedulerConfig
	Security  SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDatabase    bool
	MigrationsPath  string
	SeedsPath       string
}

type CurrencyConfig struct {
	BaseCurrency        string
	ProviderURL         string
	ProviderAPIKey      string
	CacheTTL            time.Duration
	FetchTimeout        time.Duration
	AllowListFile       string
	AllowList           []string
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

type AlertsConfig struct {
	DefaultThresholds []int
}

type AMQPConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
	Queue      string
}

// Enabled reports whether alerts are published to a broker.
func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

type SchedulerConfig struct {
	Enabled           bool
	RateRefreshCron   string
	BackfillCron      string
	BackfillBatchSize int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load reads the configuration from the environment. Only a missing or
// malformed currency allow-list file is an error; every other value falls
// back to its default.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finance_user"),
			Password:        getEnv("DB_PASSWORD", "finance_password"),
			Name:            getEnv("DB_NAME", "finance_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
		},
		Currency: CurrencyConfig{
			BaseCurrency:        strings.ToUpper(getEnv("BASE_CURRENCY", "USD")),
			ProviderURL:         getEnv("RATE_PROVIDER_URL", "https://v6.exchangerate-api.com/v6"),
			ProviderAPIKey:      getEnv("RATE_PROVIDER_API_KEY", ""),
			CacheTTL:            getDurationEnv("RATE_CACHE_TTL", time.Hour),
			FetchTimeout:        getDurationEnv("RATE_FETCH_TIMEOUT", 10*time.Second),
			AllowListFile:       getEnv("CURRENCY_ALLOWLIST_FILE", ""),
			BreakerMaxFailures:  getIntEnv("RATE_BREAKER_MAX_FAILURES", 3),
			BreakerResetTimeout: getDurationEnv("RATE_BREAKER_RESET_TIMEOUT", time.Minute),
		},
		Alerts: AlertsConfig{
			DefaultThresholds: getIntListEnv("BUDGET_DEFAULT_THRESHOLDS", nil),
		},
		AMQP: AMQPConfig{
			URL:        getEnv("AMQP_URL", ""),
			Exchange:   getEnv("AMQP_EXCHANGE", "finance.alerts"),
			RoutingKey: getEnv("AMQP_ROUTING_KEY", "budget.threshold"),
			Queue:      getEnv("AMQP_QUEUE", "budget_alerts"),
		},
		Scheduler: SchedulerConfig{
			Enabled:           getBoolEnv("SCHEDULER_ENABLED", true),
			RateRefreshCron:   getEnv("RATE_REFRESH_CRON", "0 */30 * * * *"),
			BackfillCron:      getEnv("BACKFILL_CRON", "0 */10 * * * *"),
			BackfillBatchSize: getIntEnv("BACKFILL_BATCH_SIZE", 200),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.Currency.AllowListFile != "" {
		codes, err := LoadCurrencyAllowList(config.Currency.AllowListFile)
		if err != nil {
			return nil, err
		}
		config.Currency.AllowList = codes
	}

	if config.Currency.ProviderAPIKey == "" {
		slog.Warn("RATE_PROVIDER_API_KEY not set, rate requests will be unauthenticated")
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the DSN in URL form, as expected by golang-migrate.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getIntListEnv parses a comma separated list such as "50,80,100". Any
// malformed entry discards the whole value.
func getIntListEnv(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			slog.Warn("ignoring malformed integer list", "key", key, "value", value)
			return defaultValue
		}
		out = append(out, n)
	}
	return out
}

func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		} else {
			slog.Info("CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	slog.Info("CORS allowed origins configured", "origins", origins)
	return origins
}
