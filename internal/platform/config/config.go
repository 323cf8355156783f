package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	DatabaseDriver string
	DatabaseURL    string
	SQLitePath     string
	DBMaxConns     int32
	EnableDBCheck  bool
	RunMigrations  bool

	RateLimit          string
	CORSAllowedOrigins string
	ShutdownTimeout    time.Duration
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "./prod.db")
	viper.SetDefault("DB_MAX_CONNS", 5)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("RATE_LIMIT", "100-S")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "30s")
}

// LoadConfig loads configuration from environment variables, a .env file if present,
// and configFile when it is not empty. Environment variables win over both files.
func LoadConfig(configFile string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	setDefaults()
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}
	viper.AutomaticEnv()

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		SQLitePath:         viper.GetString("SQLITE_PATH"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:      viper.GetBool("RUN_MIGRATIONS"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	levelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		slog.Warn("Invalid LOG_LEVEL, defaulting to info", slog.String("value", levelStr))
	}

	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(viper.GetString("DATABASE_DRIVER")))
	switch cfg.DatabaseDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when DATABASE_DRIVER is %s", DriverPostgres)
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			cfg.SQLitePath = "./prod.db"
			slog.Warn("SQLITE_PATH not set, using default", slog.String("path", cfg.SQLitePath))
		}
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q (want %s or %s)", cfg.DatabaseDriver, DriverPostgres, DriverSQLite)
	}

	maxConns := viper.GetInt("DB_MAX_CONNS")
	if maxConns <= 0 {
		maxConns = 5
		slog.Warn("Invalid DB_MAX_CONNS, defaulting", slog.Int("max_conns", maxConns))
	}
	cfg.DBMaxConns = int32(maxConns)

	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-S"
	}

	shutdownStr := viper.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
		slog.Warn("Invalid SHUTDOWN_TIMEOUT, defaulting", slog.String("value", shutdownStr), slog.Duration("timeout", shutdownTimeout))
	}
	cfg.ShutdownTimeout = shutdownTimeout

	return cfg, nil
}
