// FilePath: internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	Analysis   AnalysisConfig
	Monitoring MonitoringConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// StoreConfig selects the key-value backend for local entities.
// "memory" keeps everything in process, "file" persists to a single
// JSON file on disk, "redis" targets a shared Redis instance.
type StoreConfig struct {
	Backend string      `mapstructure:"backend"`
	Path    string      `mapstructure:"path"`
	Redis   RedisConfig `mapstructure:"redis"`
	// SeedDemo controls the one-time first-run demo seed.
	SeedDemo bool `mapstructure:"seed_demo"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type AnalysisConfig struct {
	JobTTL time.Duration `mapstructure:"job_ttl"`
}

type MonitoringConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetEnvPrefix("HONEYROUTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Load config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 3001)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "30s")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Store defaults
	viper.SetDefault("store.backend", "file")
	viper.SetDefault("store.path", "./data/honeyroute.json")
	viper.SetDefault("store.seed_demo", true)
	viper.SetDefault("store.redis.port", 6379)
	viper.SetDefault("store.redis.db", 0)
	viper.SetDefault("store.redis.prefix", "honeyroute")

	// Analysis defaults
	viper.SetDefault("analysis.job_ttl", "1h")

	// Monitoring defaults
	viper.SetDefault("monitoring.log_level", "info")
}

func validateConfig(config *Config) error {
	switch config.Store.Backend {
	case "memory":
	case "file":
		if config.Store.Path == "" {
			return fmt.Errorf("store path is required for the file backend")
		}
	case "redis":
		if config.Store.Redis.Host == "" {
			return fmt.Errorf("redis host is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", config.Store.Backend)
	}
	if config.Analysis.JobTTL <= 0 {
		return fmt.Errorf("analysis job ttl must be positive")
	}
	return nil
}
