package main

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// config holds the application configuration.
type config struct {
	Development bool            `env:"ORGVAULT_DEVELOPMENT"`
	PG          pgConfig        `envPrefix:"ORGVAULT_PG_"`
	Server      serverConfig    `envPrefix:"ORGVAULT_SERVER_"`
	Filestore   filestoreConfig `envPrefix:"ORGVAULT_FILESTORE_"`
}

type pgConfig struct {
	ConnectionString string `env:"CONNECTION_STRING,required"`
}

type serverConfig struct {
	Host              string        `env:"HOST"` // default: "127.0.0.1"
	Port              int           `env:"PORT"` // default: 8080
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`
}

func (c *serverConfig) host() string {
	h := c.Host
	if h == "" {
		h = "127.0.0.1"
	}
	return h
}

func (c *serverConfig) port() int {
	p := c.Port
	if p == 0 {
		p = 8080
	}
	return p
}

type filestoreConfig struct {
	Dir      string `env:"DIR,required"`
	Domain   string `env:"DOMAIN,required"`
	MaxFiles int    `env:"MAX_FILES,required"`
}

// parseConfig parses the application configuration from the environment variables.
func parseConfig(environ []string) (*config, error) {
	var cfg config

	err := env.ParseWithOptions(&cfg, env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, err
	}

	if cfg.Filestore.MaxFiles <= 0 {
		return nil, errors.New("ORGVAULT_FILESTORE_MAX_FILES must be positive")
	}

	return &cfg, nil
}
