package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"xidach-server/internal/util"
)

// Config provides configuration for the Xì Dách server and tools
type Config struct {
	loaded   bool
	Database struct {
		Driver string `yaml:"driver" envconfig:"driver"`
		DSN    string `yaml:"dsn" envconfig:"dsn"`
	} `yaml:"database"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	} `yaml:"jwt"`
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game struct {
		Denominations []int64 `yaml:"denominations" envconfig:"denominations"`
	} `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	var cfg Config
	cfg.Database.Driver = "postgres"
	cfg.Database.DSN = "postgres://postgres@localhost:5432/xidach?sslmode=disable"
	cfg.MigrationsPath = "./sql"
	cfg.JWT.PublicKey = ".jwt/public.pem"
	cfg.JWT.PrivateKey = ".jwt/private.key"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Game.Denominations = []int64{1000, 5000, 10000, 100000, 500000, 1000000}
	return cfg
}

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
// A missing configuration file is not an error, the defaults are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("XIDACH_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("xidach", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
