package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/tock/internal/xslog"
)

type Config struct {
	Color    string `env:"TOCK_COLOR" envDefault:"#00ff00"`
	Timezone string `env:"TOCK_TIMEZONE"`
	LogFile  string `env:"TOCK_LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

func (c Config) Level() xslog.Level {
	return xslog.ParseOrDefault(c.LogLevel)
}
