// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"errors"
	"fmt"

	"github.com/scrydb/scrydb/internal/config"
)

// ErrUnknownEngine is returned for engines no DSN format exists for.
var ErrUnknownEngine = errors.New("unknown database engine")

// Create builds the Data Source Name from the configuration for the
// configured engine.
func Create(dbCfg *config.DB) (string, error) {
	switch dbCfg.Engine {
	case "mysql":
		return mysqlDSN(dbCfg), nil
	case "postgres":
		return postgresDSN(dbCfg), nil
	case "sqlite":
		return dbCfg.Path, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownEngine, dbCfg.Engine)
	}
}

func mysqlDSN(dbCfg *config.DB) string {
	extras := dbCfg.Extras
	if extras == "" {
		extras = "parseTime=true&loc=Local"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.Name,
		extras,
	)
}

func postgresDSN(dbCfg *config.DB) string {
	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Name,
	)

	if dbCfg.Extras != "" {
		out += " " + dbCfg.Extras
	}

	return out
}
