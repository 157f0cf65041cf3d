// Package config provides configuration management for the guestbook binaries.
// It loads settings from environment variables (and an optional .env file)
// with sensible defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendLogFile  = "logfile"
	BackendSQLite   = "sqlite3"
	BackendMySQL    = "mysql"
	BackendPostgres = "postgres"
)

// Config holds all configuration for the guestbook server.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Guestbook GuestbookConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StorageConfig selects the message repository.
type StorageConfig struct {
	Backend     string // logfile, sqlite3, mysql, postgres
	LogFilePath string // Used by the logfile backend
}

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Database     string // File path for sqlite3
	Prefix       string // Table prefix (default: none)
	MaxOpenConns int
}

// GuestbookConfig holds service configuration.
type GuestbookConfig struct {
	DefaultPageSize int
}

// Load reads an optional .env file, then loads configuration from environment variables.
// Variables already set in the environment take precedence over the .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "127.0.0.1"),
			Port: getEnvInt("SERVER_PORT", 3000),
		},
		Storage: StorageConfig{
			Backend:     strings.ToLower(getEnv("STORAGE_BACKEND", BackendSQLite)),
			LogFilePath: getEnv("LOGFILE_PATH", "db/messages.jsonl"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvInt("DB_PORT", 0),
			User:         getEnv("DB_USER", "guestbook"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "db/database.sqlite"),
			Prefix:       getEnv("DB_PREFIX", ""),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 5),
		},
		Guestbook: GuestbookConfig{
			DefaultPageSize: getEnvInt("GUESTBOOK_DEFAULT_PAGE_SIZE", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks backend-specific requirements.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendLogFile:
		if c.Storage.LogFilePath == "" {
			return fmt.Errorf("LOGFILE_PATH environment variable is required for the logfile backend")
		}
	case BackendSQLite:
		if c.Database.Database == "" {
			return fmt.Errorf("DB_NAME environment variable is required for the sqlite3 backend")
		}
	case BackendMySQL, BackendPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD environment variable is required for the %s backend", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q (logfile, sqlite3, mysql, postgres)", c.Storage.Backend)
	}

	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be > 0, got %d", c.Database.MaxOpenConns)
	}
	return nil
}

// IsRelational reports whether the configured backend is a SQL database.
func (c *Config) IsRelational() bool {
	return c.Storage.Backend != BackendLogFile
}

// GetDSN returns the database connection string based on the backend.
func (c *Config) GetDSN() string {
	db := c.Database
	switch c.Storage.Backend {
	case BackendMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
			db.User, db.Password, db.Host, db.portOr(3306), db.Database)
	case BackendPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			db.Host, db.portOr(5432), db.User, db.Password, db.Database)
	case BackendSQLite:
		return db.Database // SQLite uses file path as DSN
	default:
		return ""
	}
}

func (c DatabaseConfig) portOr(def int) int {
	if c.Port == 0 {
		return def
	}
	return c.Port
}

// getEnv retrieves environment variable or returns default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves environment variable as integer or returns default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
