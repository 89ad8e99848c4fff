package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka

	Postgres Postgres `validate:"required"`

	Gateway Gateway `validate:"required"`
	Webhook Webhook `validate:"required"`
	Auth    Auth    `validate:"required"`
	Batch   Batch   `validate:"required"`

	Telemetry Telemetry
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	// очередь повторного применения побочных эффектов оплаты
	RetryTopic string `validate:"required_if=Enabled true"`
	// задержка перед первым повтором, дальше удваивается до RetryMaxBackoff
	RetryBackoff    time.Duration `validate:"gt=0"`
	RetryMaxBackoff time.Duration `validate:"gtefield=RetryBackoff"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	MigrationsPath string
}

type Gateway struct {
	BaseURL     string        `validate:"required,url"`
	AccessToken string        `validate:"required"`
	Timeout     time.Duration `validate:"gte=1s,lte=60s"`
}

type Webhook struct {
	Secret string `validate:"required"`
	// допустимое расхождение ts подписи и текущего времени
	ReplayWindow   time.Duration `validate:"gte=1s,lte=24h"`
	ProcessTimeout time.Duration `validate:"gte=1s"`
}

type Auth struct {
	JWTSecret string `validate:"required"`
}

type Batch struct {
	Interval    time.Duration `validate:"gte=1s"`
	StaleAfter  time.Duration `validate:"gte=0"`
	MaxAge      time.Duration `validate:"gtfield=StaleAfter"`
	Limit       int           `validate:"gte=1"`
	Concurrency int           `validate:"gte=1,lte=64"`
}

type Telemetry struct {
	ServiceName  string
	OTLPEndpoint string
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Enabled:    envBool("KAFKA_ENABLED", false),
			GroupID:    env("KAFKA_GROUP_ID", "payment-reconciler"),
			RetryTopic: env("KAFKA_RETRY_TOPIC", "payment-side-effects"),
			Brokers:    strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			RetryBackoff:    envDuration("KAFKA_RETRY_BACKOFF", 5*time.Second),
			RetryMaxBackoff: envDuration("KAFKA_RETRY_MAX_BACKOFF", 5*time.Minute),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "shop"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			MigrationsPath: env("MIGRATIONS_PATH", "migrations"),
		},

		Gateway: Gateway{
			BaseURL:     env("GATEWAY_BASE_URL", "https://api.mercadopago.com"),
			AccessToken: env("GATEWAY_ACCESS_TOKEN", ""),
			Timeout:     envDuration("GATEWAY_TIMEOUT", 15*time.Second),
		},

		Webhook: Webhook{
			Secret:         env("WEBHOOK_SECRET", ""),
			ReplayWindow:   envDuration("WEBHOOK_REPLAY_WINDOW", 1800*time.Second),
			ProcessTimeout: envDuration("WEBHOOK_PROCESS_TIMEOUT", 20*time.Second),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
		},

		Batch: Batch{
			Interval:    envDuration("BATCH_INTERVAL", 5*time.Minute),
			StaleAfter:  envDuration("BATCH_STALE_AFTER", 10*time.Minute),
			MaxAge:      envDuration("BATCH_MAX_AGE", 72*time.Hour),
			Limit:       envInt("BATCH_LIMIT", 200),
			Concurrency: envInt("BATCH_CONCURRENCY", 4),
		},

		Telemetry: Telemetry{
			ServiceName:  env("OTEL_SERVICE_NAME", "payment-reconciler"),
			OTLPEndpoint: env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
