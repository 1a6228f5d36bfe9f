package config

import (
	"os"
	"path/filepath"
	"testing"

	"contractdraft-backend/storage"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "./storage/documents", cfg.Storage.LocalPath)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, DriverMemory, cfg.Database.ResolvedDriver())
	assert.False(t, cfg.Log.Development)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/contracts")
	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("AWS_S3_BUCKET", "contracts-archive")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/contracts", cfg.Database.URL)
	assert.Equal(t, DriverPostgres, cfg.Database.ResolvedDriver())
	assert.Equal(t, "contracts-archive", cfg.Storage.S3Bucket)
	assert.True(t, cfg.Log.Development)
	assert.NoError(t, cfg.Validate())

	sc := cfg.StorageConfig()
	assert.Equal(t, storage.StorageTypeS3, sc.Type)
	assert.Equal(t, "ap-northeast-2", sc.S3Region)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := "server:\n  port: \"7000\"\ncatalog:\n  path: ./catalog.yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "./catalog.yaml", cfg.Catalog.Path)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8080"},
			Storage: StorageConfig{Type: "local", LocalPath: "./docs"},
		}
	}

	cases := map[string]func(*Config){
		"empty port":    func(c *Config) { c.Server.Port = "" },
		"bad port":      func(c *Config) { c.Server.Port = "http" },
		"port range":    func(c *Config) { c.Server.Port = "70000" },
		"unknown store": func(c *Config) { c.Storage.Type = "ftp" },
		"s3 no bucket":  func(c *Config) { c.Storage.Type = "s3" },
		"local no path": func(c *Config) { c.Storage.LocalPath = "" },
		"sqlite no url": func(c *Config) { c.Database.Driver = DriverSQLite },
		"bad driver":    func(c *Config) { c.Database.Driver = "mysql" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, valid().Validate())
}

func TestLoad_SQLiteDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "./contracts.db")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Database.ResolvedDriver())
	assert.NoError(t, cfg.Validate())
}
