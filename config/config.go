package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"contractdraft-backend/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the server configuration. It is read from config.yaml when
// present and overridden by environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// Contract store drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// DatabaseConfig selects the contract store. An empty driver means postgres
// when URL is set and memory otherwise. For sqlite, URL is the file path.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	URL    string `mapstructure:"url"`
}

// ResolvedDriver returns the store driver after applying the URL rule
func (d DatabaseConfig) ResolvedDriver() string {
	if d.Driver != "" {
		return d.Driver
	}
	if d.URL == "" {
		return DriverMemory
	}
	return DriverPostgres
}

// StorageConfig contains document archive settings
type StorageConfig struct {
	Type         string `mapstructure:"type"`
	LocalPath    string `mapstructure:"local_path"`
	S3Bucket     string `mapstructure:"s3_bucket"`
	S3Region     string `mapstructure:"s3_region"`
	AWSAccessKey string `mapstructure:"aws_access_key"`
	AWSSecretKey string `mapstructure:"aws_secret_key"`
}

// CatalogConfig points at an optional YAML clause catalog
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Development bool `mapstructure:"development"`
}

// Load reads .env, then config.yaml from the working directory or
// $HOME/.contractdraft, then the environment
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.contractdraft")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindLegacyEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.driver", "")
	v.SetDefault("database.url", "")
	v.SetDefault("storage.type", string(storage.StorageTypeLocal))
	v.SetDefault("storage.local_path", "./storage/documents")
	v.SetDefault("storage.s3_bucket", "")
	v.SetDefault("storage.s3_region", "ap-northeast-2")
	v.SetDefault("storage.aws_access_key", "")
	v.SetDefault("storage.aws_secret_key", "")
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.development", false)
}

// bindLegacyEnv keeps the conventional variable names working alongside
// the SECTION_KEY form
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("storage.s3_bucket", "STORAGE_S3_BUCKET", "AWS_S3_BUCKET")
	_ = v.BindEnv("storage.s3_region", "STORAGE_S3_REGION", "AWS_REGION")
	_ = v.BindEnv("storage.aws_access_key", "STORAGE_AWS_ACCESS_KEY", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("storage.aws_secret_key", "STORAGE_AWS_SECRET_KEY", "AWS_SECRET_ACCESS_KEY")
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port cannot be empty")
	}
	if n, err := strconv.Atoi(c.Server.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("invalid server port: %s", c.Server.Port)
	}

	switch c.Database.ResolvedDriver() {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if c.Database.URL == "" {
			return fmt.Errorf("database url cannot be empty for %s", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unknown database driver: %s", c.Database.Driver)
	}

	switch storage.StorageType(c.Storage.Type) {
	case storage.StorageTypeLocal:
		if c.Storage.LocalPath == "" {
			return errors.New("storage local_path cannot be empty for local storage")
		}
	case storage.StorageTypeS3:
		if c.Storage.S3Bucket == "" {
			return errors.New("storage s3_bucket cannot be empty for s3 storage")
		}
	default:
		return fmt.Errorf("unknown storage type: %s", c.Storage.Type)
	}

	return nil
}

// StorageConfig converts the archive settings for storage.NewStorage
func (c *Config) StorageConfig() storage.StorageConfig {
	return storage.StorageConfig{
		Type:         storage.StorageType(c.Storage.Type),
		LocalPath:    c.Storage.LocalPath,
		S3Bucket:     c.Storage.S3Bucket,
		S3Region:     c.Storage.S3Region,
		AWSAccessKey: c.Storage.AWSAccessKey,
		AWSSecretKey: c.Storage.AWSSecretKey,
	}
}
