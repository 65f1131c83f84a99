package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrsteele09/go-contest-portal/internal/config"
	"github.com/jrsteele09/go-contest-portal/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("ENV", "")

	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, config.EnvProd, c.GetEnv())
	require.Equal(t, config.DriverMemory, c.GetStorageDriver())
	require.Equal(t, 24*time.Hour, c.GetSessionMaxAge())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("http://localhost:3000"))
}

func TestNew_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")
	content := `
port: "9000"
app_name: From File
api_base_url: https://file.example.com/api
api_timeout: 3s
storage_driver: file
storage_path: /tmp/portal.json
allowed_origins:
  - https://a.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("APP_NAME", "From Env")
	t.Setenv("ALLOWED_ORIGINS", "https://b.example.com,https://c.example.com")

	c, err := config.New()
	require.NoError(t, err)

	t.Run("file values apply", func(t *testing.T) {
		require.Equal(t, ":9000", c.GetPort())
		require.Equal(t, "https://file.example.com/api", c.GetAPIBaseURL())
		require.Equal(t, 3*time.Second, c.GetAPITimeout())
		require.Equal(t, config.DriverFile, c.GetStorageDriver())
	})

	t.Run("env overrides file", func(t *testing.T) {
		require.Equal(t, "From Env", c.GetAppName())
		origins := c.GetAllowedOrigins()
		require.False(t, origins.IsAllowedOrigin("https://a.example.com"))
		require.True(t, origins.IsAllowedOrigin("https://b.example.com"))
		require.Equal(t, "https://b.example.com, https://c.example.com", origins.String())
	})
}

func TestNew_Validation(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "etcd")
		_, err := config.New()
		require.Error(t, err)
		require.ErrorIs(t, err, errors.ErrInvalidConfig)
		require.Contains(t, err.Error(), "unknown storage driver")
	})

	t.Run("redis without url", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "redis")
		t.Setenv("REDIS_URL", "")
		_, err := config.New()
		require.Error(t, err)
		require.Contains(t, err.Error(), "REDIS_URL")
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := config.New()
		require.Error(t, err)
	})
}

func TestSettings_GetEnv(t *testing.T) {
	s := config.Default()
	s.Env = ""
	require.Equal(t, config.EnvProd, s.GetEnv())
	s.Env = config.EnvDev
	require.Equal(t, config.EnvDev, s.GetEnv())
}

func TestSettings_GetPort(t *testing.T) {
	s := config.Default()
	s.Port = ":7000"
	require.Equal(t, ":7000", s.GetPort())
	s.Port = ""
	require.Equal(t, ":8080", s.GetPort())
}
