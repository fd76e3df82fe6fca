package server

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	ListenAddr string `env:"SKIRMISH_LISTEN" envDefault:"localhost:9999"`
	GridSize   int    `env:"SKIRMISH_GRID_SIZE" envDefault:"12"`
	Debug      bool   `env:"SKIRMISH_DEBUG" envDefault:"false"`
}

func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing server config from environment")
	}
	return cfg, nil
}
