package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Status policies understood by the user slice.
const (
	StatusPolicyRandom = "random"
	StatusPolicyParity = "parity"
	StatusPolicySource = "source"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Directory DirectoryConfig
	Dashboard DashboardConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// DirectoryConfig points at the remote user directory.
type DirectoryConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// DashboardConfig tunes slice and selector behavior.
type DashboardConfig struct {
	PageSize              int
	StatusPolicy          string
	AnalyticsDeriveActive bool
}

// RedisConfig holds Redis connection values. An empty Addr disables Redis.
type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	EventsChannel string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines the demo credential and token parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
	DemoEmail             string
	DemoPassword          string
	DemoName              string
	RequireSession        bool
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	policy := strings.ToLower(getEnv("DASHBOARD_STATUS_POLICY", StatusPolicyRandom))
	switch policy {
	case StatusPolicyRandom, StatusPolicyParity, StatusPolicySource:
	default:
		return nil, fmt.Errorf("invalid DASHBOARD_STATUS_POLICY %q", policy)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "admin-dashboard"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Directory: DirectoryConfig{
			BaseURL:        strings.TrimRight(getEnv("DIRECTORY_BASE_URL", "https://jsonplaceholder.typicode.com"), "/"),
			TimeoutSeconds: getEnvAsInt("DIRECTORY_TIMEOUT_SECONDS", 10),
		},
		Dashboard: DashboardConfig{
			PageSize:              getEnvAsInt("DASHBOARD_PAGE_SIZE", 5),
			StatusPolicy:          policy,
			AnalyticsDeriveActive: getEnvAsBool("ANALYTICS_DERIVE_ACTIVE", false),
		},
		Redis: RedisConfig{
			Addr:          os.Getenv("REDIS_ADDR"),
			Password:      os.Getenv("REDIS_PASSWORD"),
			DB:            redisDB,
			EventsChannel: getEnv("REDIS_EVENTS_CHANNEL", "dashboard.events"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
			DemoEmail:             getEnv("AUTH_DEMO_EMAIL", "user@example.com"),
			DemoPassword:          getEnv("AUTH_DEMO_PASSWORD", "password123"),
			DemoName:              getEnv("AUTH_DEMO_NAME", "John Doe"),
			RequireSession:        getEnvAsBool("AUTH_REQUIRE_SESSION", false),
		},
	}

	if cfg.Dashboard.PageSize <= 0 {
		cfg.Dashboard.PageSize = 5
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the per-call timeout of the directory client.
func (d DirectoryConfig) Timeout() time.Duration {
	if d.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
