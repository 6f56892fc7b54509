package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Search    SearchConfig
	RateLimit RateLimitConfig
	Upload    UploadConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StorageConfig holds catalog store configuration
type StorageConfig struct {
	Type string `mapstructure:"type"` // "memory" or "badger"
	Path string `mapstructure:"path"`
}

// SearchConfig holds relevance scoring configuration. The thresholds come
// from the tuned search revision and are overridable rather than baked in.
type SearchConfig struct {
	MinScore             float64 `mapstructure:"min_score"`
	ProductTypeThreshold float64 `mapstructure:"product_type_threshold"`
	OtherTermsThreshold  float64 `mapstructure:"other_terms_threshold"`
	Workers              int     `mapstructure:"workers"` // 0 = number of CPUs
	EnableDebugLogging   bool    `mapstructure:"enable_debug_logging"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
}

// UploadConfig holds upload handling configuration
type UploadConfig struct {
	MaxFileBytes int64 `mapstructure:"max_file_bytes"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stokradar/")

	// Environment variable settings
	v.SetEnvPrefix("STOKRADAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Storage defaults
	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.path", "./data/catalog")

	// Search defaults
	v.SetDefault("search.min_score", 0.5)
	v.SetDefault("search.product_type_threshold", 0.7)
	v.SetDefault("search.other_terms_threshold", 0.5)
	v.SetDefault("search.workers", 0)
	v.SetDefault("search.enable_debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Upload defaults
	v.SetDefault("upload.max_file_bytes", int64(10*1024*1024))
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Storage.Type != "memory" && config.Storage.Type != "badger" {
		return fmt.Errorf("storage type must be 'memory' or 'badger', got: %s", config.Storage.Type)
	}

	if config.Storage.Type == "badger" && config.Storage.Path == "" {
		return fmt.Errorf("storage path is required when storage type is 'badger'")
	}

	if config.Search.MinScore <= 0 || config.Search.MinScore > 1 {
		return fmt.Errorf("search min_score must be in (0,1], got: %v", config.Search.MinScore)
	}

	if config.Search.ProductTypeThreshold <= 0 || config.Search.ProductTypeThreshold > 1 {
		return fmt.Errorf("search product_type_threshold must be in (0,1], got: %v", config.Search.ProductTypeThreshold)
	}

	if config.Search.OtherTermsThreshold <= 0 || config.Search.OtherTermsThreshold > 1 {
		return fmt.Errorf("search other_terms_threshold must be in (0,1], got: %v", config.Search.OtherTermsThreshold)
	}

	return nil
}
