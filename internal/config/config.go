package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Schedule grid configuration. The grid shows quarter-hour slots over
	// [GridStartHour, GridEndHour).
	GridStartHour int `mapstructure:"GRID_START_HOUR"`
	GridEndHour   int `mapstructure:"GRID_END_HOUR"`

	// Retention configuration for old schedule data
	RetentionDays    int  `mapstructure:"RETENTION_DAYS"`
	RetentionMinDays int  `mapstructure:"RETENTION_MIN_DAYS"`
	ExportOnCleanup  bool `mapstructure:"EXPORT_ON_CLEANUP"`

	// Rate limiting configuration for auth endpoints
	RateLimitRequests   int `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindowSec  int `mapstructure:"RATE_LIMIT_WINDOW_SEC"`
	RateLimitCleanupSec int `mapstructure:"RATE_LIMIT_CLEANUP_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "shiftboard")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Schedule grid defaults, 6 AM through 8 PM
	viper.SetDefault("GRID_START_HOUR", 6)
	viper.SetDefault("GRID_END_HOUR", 20)

	// Retention defaults
	viper.SetDefault("RETENTION_DAYS", 90)
	viper.SetDefault("RETENTION_MIN_DAYS", 30)
	viper.SetDefault("EXPORT_ON_CLEANUP", true)

	// Rate limiting defaults
	viper.SetDefault("RATE_LIMIT_REQUESTS", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SEC", 60)
	viper.SetDefault("RATE_LIMIT_CLEANUP_SEC", 300)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.GridStartHour < 0 || config.GridEndHour > 24 || config.GridStartHour >= config.GridEndHour {
		return fmt.Errorf("schedule grid hours must satisfy 0 <= start < end <= 24")
	}

	if config.RetentionDays < config.RetentionMinDays {
		return fmt.Errorf("RETENTION_DAYS must be at least RETENTION_MIN_DAYS (%d)", config.RetentionMinDays)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
