package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jrsteele09/go-contest-portal/internal/errors"
	"gopkg.in/yaml.v3"
)

const configFileVar = "CONFIG_FILE"

type Config interface {
	EnvConfig
	CorsConfig
	PortalConfig
	StorageConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

// Settings is the flat set of values behind every config interface. Fields are
// filled from Default, then the optional YAML file named by CONFIG_FILE, then
// environment variables.
type Settings struct {
	Port     string `yaml:"port" env:"PORT"`
	AppName  string `yaml:"app_name" env:"APP_NAME"`
	Env      string `yaml:"env" env:"ENV"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	APIBaseURL    string        `yaml:"api_base_url" env:"API_BASE_URL"`
	AuthStartURL  string        `yaml:"auth_start_url" env:"AUTH_START_URL"`
	APITimeout    time.Duration `yaml:"api_timeout" env:"API_TIMEOUT"`
	SessionMaxAge time.Duration `yaml:"session_max_age" env:"SESSION_MAX_AGE"`
	SessionSecret string        `yaml:"session_secret" env:"SESSION_SECRET"`

	StorageDriver string `yaml:"storage_driver" env:"STORAGE_DRIVER"`
	StoragePath   string `yaml:"storage_path" env:"STORAGE_PATH"`
	RedisURL      string `yaml:"redis_url" env:"REDIS_URL"`

	AllowedOriginList []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" envSeparator:","`
}

var _ Config = Settings{}

// Default returns the development defaults.
func Default() Settings {
	return Settings{
		Port:              "8080",
		AppName:           "Contest Portal",
		Env:               EnvProd,
		LogLevel:          "info",
		APIBaseURL:        "http://localhost:4000/api",
		AuthStartURL:      "http://localhost:4000/api/auth/google",
		APITimeout:        15 * time.Second,
		SessionMaxAge:     24 * time.Hour,
		StorageDriver:     DriverMemory,
		StoragePath:       "./data/portal.json",
		AllowedOriginList: []string{"http://localhost:3000"},
	}
}

// New loads the configuration from defaults, the optional config file and the environment.
func New() (Config, error) {
	s := Default()

	if path := os.Getenv(configFileVar); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.StorageDriver {
	case DriverMemory, DriverFile, DriverSQLite:
	case DriverRedis:
		if s.RedisURL == "" {
			return errors.Wrapf(errors.ErrInvalidConfig, "storage driver %q requires REDIS_URL", s.StorageDriver)
		}
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown storage driver %q", s.StorageDriver)
	}
	if s.APIBaseURL == "" {
		return errors.Wrapf(errors.ErrInvalidConfig, "API_BASE_URL is required")
	}
	return nil
}
