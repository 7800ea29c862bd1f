// Package config provides types for handling configuration parameters.
package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config handles server-related constants and parameters.
type Config struct {
	ServerConfig *ServerConfig
	SecretConfig *SecretConfig
}

// ServerConfig defines default server-related constants and parameters and overwrites them with environment variables.
type ServerConfig struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":8080"`
	BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// SecretConfig retrieves session-related parameters from environment.
type SecretConfig struct {
	UserKey  string        `env:"USER_KEY" envDefault:"jds__63h3_7ds"`
	AuthKey  string        `env:"AUTH_KEY" envDefault:"user"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"180m"`
}

// NewServerConfig sets up a server configuration.
func NewServerConfig() (*ServerConfig, error) {
	cfg := ServerConfig{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewSecretConfig sets up a secret configuration.
func NewSecretConfig() (*SecretConfig, error) {
	cfg := SecretConfig{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewDefaultConfiguration sets up a total configuration.
func NewDefaultConfiguration() (*Config, error) {
	serverCfg, err := NewServerConfig()
	if err != nil {
		return nil, err
	}
	secretCfg, err := NewSecretConfig()
	if err != nil {
		return nil, err
	}
	return &Config{
		ServerConfig: serverCfg,
		SecretConfig: secretCfg,
	}, nil
}

// ParseFlags parses command line arguments and stores them
func (c *Config) ParseFlags() {
	flag.StringVar(&c.ServerConfig.ServerAddress, "a", c.ServerConfig.ServerAddress, "Server address")
	flag.StringVar(&c.ServerConfig.BaseURL, "b", c.ServerConfig.BaseURL, "Base url")
	flag.StringVar(&c.ServerConfig.LogLevel, "l", c.ServerConfig.LogLevel, "Log level")
	flag.Parse()
}
