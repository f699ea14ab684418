// Package config handles input from the config.ini file.
package config

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is the config file read when no --config flag is given.
	DefaultPath = "./config.ini"

	// envConfigJSON overrides config values with a JSON document from the
	// environment, mainly for container deployments.
	envConfigJSON = "SCRYDB_CONFIG_JSON"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read config file")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to map config file")
	}

	// override it from env
	if jsonConfigEnv := os.Getenv(envConfigJSON); jsonConfigEnv != "" {
		var err error
		if c, err = decodeAndMergeConfig(c, jsonConfigEnv); err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config override from env")
	}

	return c, nil
}

// setDefaults registers defaults for every key a minimal config.ini may omit.
// A file holding only the [mysql] credentials is a complete configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.engine", "mysql")
	v.SetDefault("mysql.host", "localhost")
	v.SetDefault("mysql.port", 3306)

	v.SetDefault("scryfall.base_url", "https://api.scryfall.com")
	v.SetDefault("scryfall.timeout_seconds", 300)
	v.SetDefault("scryfall.dir", ".")
	v.SetDefault("scryfall.bulk_type", "default_cards")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.app_name", "scrydb")
	v.SetDefault("log.service_name", "scrydb")
	v.SetDefault("log.console", true)
	v.SetDefault("log.console_pretty", false)
	v.SetDefault("log.file", false)
	v.SetDefault("log.path", "./logs")
	v.SetDefault("log.info_log", "scrydb.log")
	v.SetDefault("log.error_log", "scrydb-error.log")
	v.SetDefault("log.max_size", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)

	v.SetDefault("http.enabled", true)
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.shutdown_time", 5)

	v.SetDefault("sync.schedule", "@daily")
}

// validate minimal config settings for scrydb.
// The [mysql] credentials get explicit sentinel errors since they are the one
// interface every existing config.ini relies on; the rest goes through
// struct tag validation.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.DB.Engine == "sqlite" {
		if c.DB.Path == "" {
			return errors.Wrap(ErrDBPathEmpty, invalidErrMessage)
		}
	} else {
		if c.DB.User == "" {
			return errors.Wrap(ErrDBUserEmpty, invalidErrMessage)
		}

		if c.DB.Host == "" {
			return errors.Wrap(ErrDBHostEmpty, invalidErrMessage)
		}

		if c.DB.Name == "" {
			return errors.Wrap(ErrDBNameEmpty, invalidErrMessage)
		}
	}

	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	return nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	out, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(out), nil
}
