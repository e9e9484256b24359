package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string  `yaml:"log-level" env:"MANCALA_LOG_LEVEL" env-default:"info"`
	Variant      string  `yaml:"variant" env:"MANCALA_VARIANT" env-default:"kalah"`
	StonesPerPit int     `yaml:"stones-per-pit" env:"MANCALA_STONES_PER_PIT" env-default:"4"`
	NoColor      bool    `yaml:"no-color" env:"MANCALA_NO_COLOR"`
	Players      Players `yaml:"players"`
}

type Players struct {
	One string `yaml:"one" env:"MANCALA_PLAYER_ONE" env-default:"Player 1"`
	Two string `yaml:"two" env:"MANCALA_PLAYER_TWO" env-default:"Player 2"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the file at path, falling back to environment variables and
// defaults when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
