package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env     string        `json:"env"`
	Http    HttpConfig    `json:"http"`
	Storage StorageConfig `json:"storage"`
	Redis   RedisConfig   `json:"redis"`
	Webhook WebhookConfig `json:"webhook"`
	Live    LiveConfig    `json:"live"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type StorageConfig struct {
	IncidentsPath string `json:"incidents_path"`
	UsersPath     string `json:"users_path"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

type LiveConfig struct {
	Seed int64 `json:"seed"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":4000"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			IncidentsPath: getEnv("INCIDENTS_FILE", "storage/mockIncidents.json"),
			UsersPath:     getEnv("USERS_FILE", "storage/mockUsers.json"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
		},
		Live: LiveConfig{
			Seed: int64(getEnvInt("LIVE_SEED", int(time.Now().UnixNano()))),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("incidents_file", cfg.Storage.IncidentsPath),
		slog.Bool("webhooks_enabled", cfg.WebhooksEnabled()))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':4000'")
	}

	if c.Storage.IncidentsPath == "" {
		return errors.New("INCIDENTS_FILE required")
	}

	if !c.Webhook.Disabled && c.Webhook.URL != "" && c.Redis.Addr == "" {
		return errors.New("WEBHOOK_URL set but REDIS_ADDR missing")
	}

	return nil
}

// WebhooksEnabled reports whether the outbound webhook pipeline should be
// wired at all.
func (c *Config) WebhooksEnabled() bool {
	return !c.Webhook.Disabled && c.Webhook.URL != "" && c.Redis.Addr != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
