package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Mongo        MongoConfig
	Notification NotificationConfig
	Logging      LoggingConfig
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  int    // seconds
	WriteTimeout int    // seconds
	Environment  string // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DatabaseName string
	MaxOpenConns int
	MaxIdleConns int
}

// MongoConfig contains the archive store connection configuration
type MongoConfig struct {
	URI      string
	Database string
}

// NotificationConfig sizes the event fan-out worker pool
type NotificationConfig struct {
	Workers           int
	ChannelBufferSize int
}

type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load builds a Config from environment variables with development defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         envOr("SERVER_HOST", "0.0.0.0"),
			Port:         envOr("SERVER_PORT", "8080"),
			ReadTimeout:  envIntOr("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: envIntOr("SERVER_WRITE_TIMEOUT", 15),
			Environment:  envOr("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         envOr("DB_HOST", "localhost"),
			Port:         envOr("DB_PORT", "3306"),
			Username:     envOr("DB_USER", "root"),
			Password:     os.Getenv("DB_PASSWORD"),
			DatabaseName: envOr("DB_NAME", "venturelink"),
			MaxOpenConns: envIntOr("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns: envIntOr("DB_MAX_IDLE_CONNS", 10),
		},
		Mongo: MongoConfig{
			URI:      envOr("MONGO_URI", "mongodb://localhost:27017"),
			Database: envOr("MONGO_DB", "venturelink"),
		},
		Notification: NotificationConfig{
			Workers:           envIntOr("NOTIFY_WORKERS", 4),
			ChannelBufferSize: envIntOr("NOTIFY_BUFFER", 1000),
		},
		Logging: LoggingConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "json"),
		},
	}
}

func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
