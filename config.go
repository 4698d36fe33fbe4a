package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// config holds the process configuration, read from the environment
// (optionally seeded by a .env file).
type config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// StaleAssignmentAfter is how long a key assignment may stay active
	// before the monitor reports it.
	StaleAssignmentAfter time.Duration
}

func loadConfig() config {
	// Missing .env files are acceptable; configuration may come from the
	// environment directly.
	_ = godotenv.Load()

	stale := 2 * time.Hour
	if v := os.Getenv("STALE_ASSIGNMENT_AFTER"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			stale = d
		}
	}

	return config{
		Port:                 getenvWithDefault("APP_PORT", "8080"),
		DBHost:               getenvWithDefault("DB_HOST", "localhost"),
		DBPort:               getenvWithDefault("DB_PORT", "5432"),
		DBUser:               getenvWithDefault("DB_USER", "postgres"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               getenvWithDefault("DB_NAME", "parking"),
		DBSSLMode:            getenvWithDefault("DB_SSLMODE", "disable"),
		StaleAssignmentAfter: stale,
	}
}

func (c config) dsn() string {
	return fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
