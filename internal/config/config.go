package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

const minSecretLength = 32

// Config holds all application configuration. It is built once at startup
// and passed by reference to every component that needs it.
type Config struct {
	GoEnv      string
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Mail       MailConfig
	Services   ServicesConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
	Upload     UploadConfig
	CORS       CORSConfig
	Dispatcher DispatcherConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// AuthConfig holds token signing secrets and expiries
type AuthConfig struct {
	JWTSecret          string
	JWTRefreshSecret   string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// MailConfig holds outbound email settings
type MailConfig struct {
	ResendAPIKey  string
	DefaultSender string
}

// ServicesConfig holds external service API keys
type ServicesConfig struct {
	StripeSecretKey string
	OpenAIAPIKey    string
}

// RedisConfig holds optional Redis settings for rate limiting
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig holds the per-user request budget
type RateLimitConfig struct {
	RequestsPerMinute int
}

// UploadConfig holds attachment upload limits
type UploadConfig struct {
	MaxSizeBytes int64
	AllowedTypes []string
}

// CORSConfig holds the allowed browser origins
type CORSConfig struct {
	Origins []string
}

// DispatcherConfig holds outreach dispatcher settings
type DispatcherConfig struct {
	TickInterval time.Duration
}

// IsProduction reports whether the server runs in production mode.
// Error responses include stack traces only when this is false.
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	goEnv := getEnvWithDefault("GO_ENV", "development")

	// Load env.local in non-production environments
	if goEnv != "production" {
		// Missing env.local is fine when variables come from the environment
		_ = godotenv.Load("env.local")
	}

	cfg := &Config{GoEnv: goEnv}

	var err error
	if cfg.Database.URL, err = requireEnv("DATABASE_URL"); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireSecret("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.JWTRefreshSecret, err = requireSecret("JWT_REFRESH_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.AccessTokenExpiry, err = parseDuration("JWT_EXPIRES_IN", "24h")
	if err != nil {
		return nil, err
	}
	cfg.Auth.RefreshTokenExpiry, err = parseDuration("JWT_REFRESH_EXPIRES_IN", "720h")
	if err != nil {
		return nil, err
	}

	if cfg.Mail.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Mail.DefaultSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}

	// Stripe and OpenAI are optional; the payment and template-draft features
	// report an external-service error when their key is absent.
	cfg.Services.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Services.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Enabled = cfg.Redis.Addr != ""
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if db := os.Getenv("REDIS_DB"); db != "" {
		cfg.Redis.DB, err = strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
		}
	}

	rpm := getEnvWithDefault("RATE_LIMIT_RPM", "120")
	cfg.RateLimit.RequestsPerMinute, err = strconv.Atoi(rpm)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_RPM: %w", err)
	}

	maxSize := getEnvWithDefault("UPLOAD_MAX_SIZE", "10485760")
	cfg.Upload.MaxSizeBytes, err = strconv.ParseInt(maxSize, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse UPLOAD_MAX_SIZE: %w", err)
	}
	cfg.Upload.AllowedTypes = splitList(getEnvWithDefault("ALLOWED_FILE_TYPES", "image/jpeg,image/png,image/webp"))

	cfg.CORS.Origins = splitList(getEnvWithDefault("CORS_ORIGINS", "http://localhost:3000"))

	tick, err := parseDuration("DISPATCHER_TICK_INTERVAL", "30s")
	if err != nil {
		return nil, err
	}
	cfg.Dispatcher.TickInterval = tick

	serverPort := getEnvWithDefault("SERVER_PORT", "5000")
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// requireSecret retrieves a signing secret and enforces a minimum length
func requireSecret(key string) (string, error) {
	value, err := requireEnv(key)
	if err != nil {
		return "", err
	}
	if len(value) < minSecretLength {
		return "", fmt.Errorf("%s must be at least %d characters", key, minSecretLength)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	raw := getEnvWithDefault(key, defaultValue)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
