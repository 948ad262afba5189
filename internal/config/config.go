package config

import (
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT"        default:":8080"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"     required:"true"`
	LogLevel        string        `envconfig:"LOG_LEVEL"        default:"info"`
	GinMode         string        `envconfig:"GIN_MODE"         default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

var (
	config Config
	once   sync.Once
)

// load reads .env when present and then processes environment variables.
func load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig loads the configuration exactly once. Missing required values
// are fatal, the service cannot run without a database.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		cfg, err := load()
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, LogLevel=%s", config.HTTPPort, config.LogLevel)
		if config.DatabaseURL != "" {
			logger.Info("Configuration loaded: DatabaseURL is set")
		} else {
			logger.Fatal("Configuration error: DATABASE_URL is not set")
		}
	})
	return &config
}
