package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	SentryDSN string        `env:"SENTRY_DSN"`

	Log      LogConfig
	Auth     AuthConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Chatbot  ChatbotConfig
	Geocoder GeocoderConfig
}

type LogConfig struct {
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB,  default=100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS,  default=5"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS, default=30"`
}

type AuthConfig struct {
	AdminCode          string        `env:"ADMIN_CODE,           default=ADMIN2024"`
	PartnerAutoApprove bool          `env:"PARTNER_AUTO_APPROVE, default=true"`
	ResetTokenTTL      time.Duration `env:"RESET_TOKEN_TTL,      default=1h"`
	ResetURL           string        `env:"RESET_URL,            default=http://localhost:5173/reset-password"`
	ResumeTimeout      time.Duration `env:"SESSION_RESUME_TIMEOUT, default=5s"`
}

type MongoConfig struct {
	URI         string        `env:"MONGO_URI,       default=mongodb://localhost:27017"`
	Database    string        `env:"MONGO_DB,        default=jaaago"`
	Timeout     time.Duration `env:"MONGO_TIMEOUT,   default=10s"`
	MaxPoolSize uint64        `env:"MONGO_MAX_POOL,  default=50"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT,   default=3s"`
	PoolSize int           `env:"REDIS_POOL_SIZE, default=20"`
}

type ChatbotConfig struct {
	Delay            time.Duration `env:"CHATBOT_DELAY,          default=1s"`
	Seed             uint64        `env:"CHATBOT_SEED,           default=0"`
	Workers          int           `env:"CHATBOT_WORKERS,        default=4"`
	MaxConversations int           `env:"CHAT_MAX_CONVERSATIONS, default=10000"`
	IdleTimeout      time.Duration `env:"CHAT_IDLE_TIMEOUT,      default=30m"`
}

type GeocoderConfig struct {
	URL          string        `env:"GEOCODER_URL,     default=https://api.opencagedata.com/geocode/v1/json"`
	APIKey       string        `env:"GEOCODER_API_KEY"`
	Timeout      time.Duration `env:"GEOCODER_TIMEOUT, default=5s"`
	DefaultCity  string        `env:"DEFAULT_CITY,     default=Jaipur"`
	DefaultState string        `env:"DEFAULT_STATE,    default=Rajasthan"`
}

// IsDevelopment reports whether the service runs in the development env.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" && !c.IsDevelopment() {
		return errors.New("JWT_SECRET is required outside development")
	}
	if c.Auth.AdminCode == "" {
		return errors.New("ADMIN_CODE must not be empty")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" && cfg.IsDevelopment() {
		cfg.JWTSecret = "dev-secret"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
