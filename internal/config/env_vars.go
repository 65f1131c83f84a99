package config

import (
	"fmt"
	"strings"
)

var _ EnvConfig = Settings{}

const (
	EnvDev  = "DEV"
	EnvProd = "PROD"
)

func (s Settings) GetPort() string {
	port := s.Port
	if port == "" {
		port = "8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (s Settings) GetAppName() string {
	return s.AppName
}

func (s Settings) GetEnv() string {
	if s.Env == "" {
		return EnvProd
	}
	return s.Env
}

func (s Settings) GetLogLevel() string {
	return s.LogLevel
}
