package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrUnsupportedFirstTurn = errors.New("only the player can move first")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFormat string `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	FirstTurn string `yaml:"first-turn" env:"FIRST_TURN" env-default:"player"`
	Bot       Bot    `yaml:"bot"`
}

type Bot struct {
	// Seed for the bot's random choices; 0 picks a random seed at start-up.
	Seed int64 `yaml:"seed" env:"BOT_SEED" env-default:"0"`
}

// MustLoad - load configuration from the yml file if it exists, otherwise from the environment only.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	}

	if config.FirstTurn != "player" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFirstTurn, config.FirstTurn)
	}

	return config, nil
}
