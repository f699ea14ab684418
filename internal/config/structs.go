package config

import (
	"github.com/scrydb/scrydb/internal/logger"
)

// Scryfall holds the Scryfall bulk-data API settings.
type Scryfall struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	Dir            string `mapstructure:"dir"`       // directory bulk files are downloaded to
	BulkType       string `mapstructure:"bulk_type"` // bulk type used when none is given on the command line
}

// HTTPServer implements the status webserver settings.
type HTTPServer struct {
	Enabled      bool `mapstructure:"enabled"`
	Port         int  `mapstructure:"port" validate:"gt=0,lte=65535"`
	ShutDownTime int  `mapstructure:"shutdown_time"` // wait time for shutdown in seconds
}

// Sync holds the daemon sync settings.
type Sync struct {
	// Schedule is a cron expression ("@daily", "0 3 * * *", ...) for the
	// periodic bulk-data sync in daemon mode.
	Schedule string `mapstructure:"schedule" validate:"required"`
}

// Config overall data structure.
type Config struct {
	DevMode  bool       // enable dev mode for development
	DB       DB         `mapstructure:"mysql"`
	Scryfall Scryfall   `mapstructure:"scryfall"`
	Log      logger.Log `mapstructure:"log"`
	HTTP     HTTPServer `mapstructure:"http"`
	Sync     Sync       `mapstructure:"sync"`
}
