package config

import (
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-server/internal/util"
)

// Log configures logrus and the access log
type Log struct {
	Level             string `yaml:"level" envconfig:"level"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
}

// Table configures the stakes
type Table struct {
	SmallBlind int `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind   int `yaml:"bigBlind" envconfig:"big_blind"`
	MinBuyIn   int `yaml:"minBuyIn" envconfig:"min_buy_in"`
}

// JWT configures session tokens
type JWT struct {
	// Secret is the HS256 key, a random key is generated per process when empty
	Secret string `yaml:"secret" envconfig:"secret"`
}

// Config provides configuration for the hold'em server
type Config struct {
	loaded        bool
	Addr          string `yaml:"addr" envconfig:"addr"`
	Log           Log    `yaml:"log"`
	Table         Table  `yaml:"table"`
	JWT           JWT    `yaml:"jwt"`
	DebugCommands bool   `yaml:"debugCommands" envconfig:"debug_commands"`
	CryptoShuffle bool   `yaml:"cryptoShuffle" envconfig:"crypto_shuffle"`
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	return Config{
		Addr: ":5000",
		Log: Log{
			Level: "info",
		},
		Table: Table{
			SmallBlind: 5,
			BigBlind:   10,
			MinBuyIn:   500,
		},
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error
func Load() error {
	cfg := Default()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
