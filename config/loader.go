package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInputPath = "sample.json"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	defaultConfigFile = "config.yml"
	defaultEnvFile    = ".env"
)

// Environment variables read by Load.
const (
	EnvInputPath = "STOPREPORT_INPUT"
	EnvLogLevel  = "STOPREPORT_LOG_LEVEL"
	EnvLogFormat = "STOPREPORT_LOG_FORMAT"
)

// Default returns the configuration used when nothing overrides it.
func Default() AppConfig {
	return AppConfig{
		Input: InputConfig{Path: DefaultInputPath},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds the configuration. When path is empty, config.yml in the working
// directory is used if present; a path that was asked for must exist.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	file, required := path, true
	if file == "" {
		file, required = defaultConfigFile, false
	}
	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	case required || !errors.Is(err, fs.ErrNotExist):
		return cfg, err
	}

	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c AppConfig) Validate() error {
	return validator.New().Struct(c)
}

func applyEnv(cfg *AppConfig) {
	cfg.Input.Path = envStr(EnvInputPath, cfg.Input.Path)
	cfg.Logging.Level = envStr(EnvLogLevel, cfg.Logging.Level)
	cfg.Logging.Format = envStr(EnvLogFormat, cfg.Logging.Format)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
