package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration.
type Config struct {
	// Server
	Port string

	// PostgreSQL
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	// Supabase
	SupabaseURL        string `mapstructure:"SUPABASE_URL"`
	SupabaseKey        string `mapstructure:"SUPABASE_KEY"`
	SupabaseServiceKey string `mapstructure:"SUPABASE_SERVICE_KEY"`

	// JWT
	JWTSecret string

	// Logging
	LogLevel string
}

// LoadConfig reads the configuration from the environment, preferring a
// local .env file when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using system environment variables")
	}

	config := &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		DBHost:             getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:             getEnvOrDefault("DB_PORT", "5432"),
		DBName:             getEnvOrDefault("DB_NAME", "stavquote"),
		DBUser:             getEnvOrDefault("DB_USER", "stavquote_user"),
		DBPassword:         getEnvOrDefault("DB_PASSWORD", "stavquote_password"),
		DBSSLMode:          getEnvOrDefault("DB_SSLMODE", "disable"),
		SupabaseURL:        getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:        getEnvOrDefault("SUPABASE_KEY", ""),
		SupabaseServiceKey: getEnvOrDefault("SUPABASE_SERVICE_KEY", ""),
		JWTSecret:          getEnvOrDefault("JWT_SECRET", ""),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if config.DBHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}

	if config.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}

	if config.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}

	if config.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// SetupLogger builds the logger for the given level.
func SetupLogger(logLevel string) *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logger.Warn("Invalid log level, falling back to 'info'")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
