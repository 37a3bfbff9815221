package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	GinMode string `mapstructure:"gin_mode"`
}

// StorageConfig selects the repository adapters: "mongo" or "memory".
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// S3Config configures presigned image URLs. With Enabled false, catalog
// images resolve against the catalog image base URL instead.
type S3Config struct {
	Enabled         bool          `mapstructure:"enabled"`
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	ImagePrefix     string        `mapstructure:"image_prefix"`
	URLExpiry       time.Duration `mapstructure:"url_expiry"`
}

type CatalogConfig struct {
	SeedPath     string        `mapstructure:"seed_path"`
	ImageBaseURL string        `mapstructure:"image_base_url"`
	CacheSizeMB  int           `mapstructure:"cache_size_mb"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	FileName string `mapstructure:"file_name"`
	ToStdout bool   `mapstructure:"to_stdout"`
	JSON     bool   `mapstructure:"json"`
}

// LoadConfig reads config.yaml from path, then applies environment variables.
// Nested keys map to env vars with underscores: server.address -> SERVER_ADDRESS.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	var config Config
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env vars still apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return config, fmt.Errorf("config validation: %w", err)
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("storage.backend", BackendMongo)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_tracker")
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.image_prefix", "exercises")
	v.SetDefault("s3.url_expiry", "15m")
	v.SetDefault("catalog.image_base_url", "http://localhost:8080/static/images/")
	v.SetDefault("catalog.cache_size_mb", 4)
	v.SetDefault("catalog.cache_ttl", "1h")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.to_stdout", true)
}

func (c Config) validate() error {
	switch c.Storage.Backend {
	case BackendMongo:
		if c.Database.URI == "" || c.Database.Name == "" {
			return errors.New("database uri and name are required for the mongo backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.S3.Enabled && c.S3.BucketName == "" {
		return errors.New("s3 bucket name is required when s3 is enabled")
	}
	if c.Catalog.CacheSizeMB < 0 {
		return errors.New("catalog cache size must not be negative")
	}
	return nil
}
