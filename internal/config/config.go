package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	JWT       JWTConfig       `yaml:"jwt"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// RedisConfig contains the fallback-cache settings. An empty address disables
// the cache entirely.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SMTPConfig contains email service settings
type SMTPConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	From       string `yaml:"from"`
	AdminEmail string `yaml:"admin_email"` // recipient of new-submission notices
}

// JWTConfig contains JWT token settings
type JWTConfig struct {
	Secret             string `yaml:"secret"`
	AccessTokenExpiry  int    `yaml:"access_token_expiry_minutes"`
	RefreshTokenExpiry int    `yaml:"refresh_token_expiry_minutes"`
}

// StorageConfig contains document storage settings
type StorageConfig struct {
	Type            string `yaml:"type"`       // "local" or "s3"
	UploadDir       string `yaml:"upload_dir"` // for local storage
	BaseURL         string `yaml:"base_url"`   // public URL prefix for local storage
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"` // optional, for S3-compatible providers
	MaxUploadSizeMB int64  `yaml:"max_upload_size_mb"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig holds the cron specs for scheduled jobs
type SchedulerConfig struct {
	DeactivateExpiredPositions string `yaml:"deactivate_expired_positions"`
	SendPendingDigest          string `yaml:"send_pending_digest"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Redis
	if val := os.Getenv("REDIS_ADDR"); val != "" {
		c.Redis.Addr = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		c.Redis.Password = val
	}

	// SMTP
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}
	if val := os.Getenv("SMTP_FROM"); val != "" {
		c.SMTP.From = val
	}
	if val := os.Getenv("ADMIN_EMAIL"); val != "" {
		c.SMTP.AdminEmail = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Storage
	if val := os.Getenv("STORAGE_TYPE"); val != "" {
		c.Storage.Type = val
	}
	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Storage.UploadDir = val
	}
	if val := os.Getenv("STORAGE_BUCKET"); val != "" {
		c.Storage.Bucket = val
	}
	if val := os.Getenv("STORAGE_REGION"); val != "" {
		c.Storage.Region = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// SMTP validation
	if c.SMTP.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTP.Port)
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	// Storage validation
	switch c.Storage.Type {
	case "", "local":
		if c.Storage.UploadDir == "" {
			return fmt.Errorf("upload directory is required for local storage")
		}
	case "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage bucket is required for s3 storage")
		}
		if c.Storage.Region == "" {
			return fmt.Errorf("storage region is required for s3 storage")
		}
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
	// Single source of truth for the upload size ceiling
	if c.Storage.MaxUploadSizeMB == 0 {
		c.Storage.MaxUploadSizeMB = 5
	}

	// JWT expiry defaults
	if c.JWT.AccessTokenExpiry == 0 {
		c.JWT.AccessTokenExpiry = 60
	}
	if c.JWT.RefreshTokenExpiry == 0 {
		c.JWT.RefreshTokenExpiry = 60 * 24 * 7
	}

	// Scheduler defaults
	if c.Scheduler.DeactivateExpiredPositions == "" {
		c.Scheduler.DeactivateExpiredPositions = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.SendPendingDigest == "" {
		c.Scheduler.SendPendingDigest = "0 0 8 * * 1" // Mondays at 8 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// MaxUploadSizeBytes returns the configured upload ceiling in bytes.
func (c *Config) MaxUploadSizeBytes() int64 {
	return c.Storage.MaxUploadSizeMB * 1024 * 1024
}
