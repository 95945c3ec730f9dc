package config

import (
	"fmt"
	"os"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env      string
	HTTPPort string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
}

// Load returns application config populated from environment variables with sensible defaults.
func Load() App {
	return App{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		PostgresUser:     getEnv("POSTGRES_USER", "att_user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "att_pass"),
		PostgresDB:       getEnv("POSTGRES_DB", "att_db"),
		PostgresHost:     getEnv("POSTGRES_HOST", "postgres"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
	}
}

// DatabaseURL assembles the Postgres connection string from the discrete parts.
func (a App) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		a.PostgresUser, a.PostgresPassword, a.PostgresHost, a.PostgresPort, a.PostgresDB)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
