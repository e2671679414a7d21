package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	MongoDB   MongoDBConfig
	JWT       JWTConfig
	Operator  OperatorConfig
	Ledger    LedgerConfig
	OCR       OCRConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	LogLevel  string
	LogFormat string // "text" or "json"
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
	Mode         string // gin mode: debug, release or test
}

// StorageConfig selects the repository driver
type StorageConfig struct {
	Driver string // "mongo" or "memory"
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// OperatorConfig is the account created at boot when it does not exist yet
type OperatorConfig struct {
	Email    string
	Password string
}

// LedgerConfig tunes the reconciliation engine
type LedgerConfig struct {
	Locale        string
	MaxRangeSpan  int64
	MaxMultiplier int
}

// OCRConfig locates the tesseract binary; an empty path disables image extraction
type OCRConfig struct {
	TesseractPath string
	Language      string
}

// SessionConfig holds editing session settings
type SessionConfig struct {
	TTL time.Duration
}

// RateLimitConfig throttles login attempts per client IP
type RateLimitConfig struct {
	LoginPerMinute int
	LoginBurst     int
}

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

// Load reads config.yaml from path (and ./config), then applies environment overrides such as
// SERVER_PORT or MONGODB_URI
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMongo:
		if c.MongoDB.URI == "" {
			return errors.New("config: MongoDB.URI is required for the mongo storage driver")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	if c.JWT.Secret == "" {
		return errors.New("config: JWT.Secret is required")
	}
	if c.JWT.ExpiresIn <= 0 {
		return errors.New("config: JWT.ExpiresIn must be positive")
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "8080")
	v.SetDefault("Server.AllowedHosts", []string{"http://localhost:3000"})
	v.SetDefault("Server.Mode", "release")
	v.SetDefault("Storage.Driver", StorageMemory)
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	v.SetDefault("MongoDB.Database", "ticket-ledger")
	v.SetDefault("MongoDB.Timeout", 10*time.Second)
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 12*60*60) // 12 hours
	v.SetDefault("Operator.Email", "")
	v.SetDefault("Operator.Password", "")
	v.SetDefault("Ledger.Locale", "en-IN")
	v.SetDefault("Ledger.MaxRangeSpan", 100000)
	v.SetDefault("Ledger.MaxMultiplier", 10000)
	v.SetDefault("OCR.TesseractPath", "")
	v.SetDefault("OCR.Language", "eng")
	v.SetDefault("Session.TTL", 12*time.Hour)
	v.SetDefault("RateLimit.LoginPerMinute", 10)
	v.SetDefault("RateLimit.LoginBurst", 5)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogFormat", "text")
}
