package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"orders/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"

	defaultHTTPPort = "8080"
)

type Config struct {
	HTTPPort       string
	StorageBackend string

	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	DatabaseURL string

	KafkaHost              string
	KafkaOrderChangedTopic string

	ProfitReportSchedule string
	SeedFile             string
	LogLevel             slog.Level
}

// LoadConfig reads a .env file when present and then the process
// environment; variables already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds and validates a Config from getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:               withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		StorageBackend:         strings.ToLower(withDefault(getenv("STORAGE_BACKEND"), BackendPostgres)),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 getenv("DB_PORT"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              withDefault(getenv("DB_SSLMODE"), "disable"),
		DatabaseURL:            getenv("DATABASE_URL"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		ProfitReportSchedule:   getenv("PROFIT_REPORT_SCHEDULE"),
		SeedFile:               getenv("SEED_FILE"),
	}

	var problems []error
	if raw := getenv("LOG_LEVEL"); raw != "" {
		if err := config.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
		}
	}
	if err := config.Validate(); err != nil {
		problems = append(problems, err)
	}

	return config, errors.Join(problems...)
}

func (c Config) Validate() error {
	var problems []error

	switch c.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			for _, required := range []struct{ key, value string }{
				{"DB_HOST", c.DBHost},
				{"DB_PORT", c.DBPort},
				{"DB_USER", c.DBUser},
				{"DB_NAME", c.DBName},
			} {
				if required.value == "" {
					problems = append(problems, errs.NewValueIsRequiredError(required.key))
				}
			}
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidError("STORAGE_BACKEND"))
	}

	if c.KafkaHost != "" && c.KafkaOrderChangedTopic == "" {
		problems = append(problems, errs.NewValueIsRequiredError("KAFKA_ORDER_CHANGED_TOPIC"))
	}

	return errors.Join(problems...)
}

// DSN returns the libpq connection string. DATABASE_URL takes precedence
// over the individual DB_* keys.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("DATABASE_URL", err)
		}
		return dsn, nil
	}
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode), nil
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
