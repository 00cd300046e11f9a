package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// JWTOptions groups the token-signing configuration consumed by the
// authenticator. Issuer and Audience are optional; when set they are embedded
// in issued tokens and enforced during verification.
type JWTOptions struct {
	SecretKey                 string `json:"-"`
	Issuer                    string `json:"issuer"`
	Audience                  string `json:"audience"`
	AccessTokenExpiryMinutes  int    `json:"access_token_expiry_minutes"`
	RefreshTokenExpiryMinutes int    `json:"refresh_token_expiry_minutes"`
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBPath     string `json:"db_path"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWT JWTOptions `json:"jwt"`

	// Seeding: default client registered at startup when absent. An empty
	// secret means one is generated and logged once.
	SeedClientID     string `json:"seed_client_id"`
	SeedClientSecret string `json:"-"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DBDriver: %s, DBPath: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, JWT: {SecretKey: [REDACTED], Issuer: %s, Audience: %s, AccessExpiryMin: %d, RefreshExpiryMin: %d}, SeedClientID: %s}",
		c.Port, c.Host, c.DBDriver, c.DBPath, c.DBName, c.DBUser, c.LogLevel,
		c.JWT.Issuer, c.JWT.Audience, c.JWT.AccessTokenExpiryMinutes, c.JWT.RefreshTokenExpiryMinutes, c.SeedClientID)
}

// LoadConfig reads the application configuration from environment variables.
// The JWT signing secret is required: a missing secret is a startup failure,
// never a request-time one.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, err
	}

	secretKey := GetEnvWithDefault("JWT_SECRET_KEY", "")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY environment variable is required")
	}

	config := &Config{
		Port:       port,
		Host:       GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:   GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBPath:     GetEnvWithDefault("DB_PATH", "shirts.sqlite"),
		DBHost:     GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     GetEnvWithDefault("DB_PORT", "5432"),
		DBName:     GetEnvWithDefault("DB_NAME", "shirtstore"),
		DBUser:     GetEnvWithDefault("DB_USER", "shirtstore"),
		DBPassword: GetEnvWithDefault("DB_PASSWORD", ""),
		LogLevel:   GetEnvWithDefault("LOG_LEVEL", "info"),
		JWT: JWTOptions{
			SecretKey:                 secretKey,
			Issuer:                    GetEnvWithDefault("JWT_ISSUER", ""),
			Audience:                  GetEnvWithDefault("JWT_AUDIENCE", ""),
			AccessTokenExpiryMinutes:  GetEnvAsType("JWT_ACCESS_EXPIRY_MINUTES", 10),
			RefreshTokenExpiryMinutes: GetEnvAsType("JWT_REFRESH_EXPIRY_MINUTES", 1440),
		},
		SeedClientID:     GetEnvWithDefault("SEED_CLIENT_ID", ""),
		SeedClientSecret: GetEnvWithDefault("SEED_CLIENT_SECRET", ""),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
