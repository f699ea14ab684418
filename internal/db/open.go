// Package db opens the card database for the configured gorm engine.
package db

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/scrydb/scrydb/internal/config"
	"github.com/scrydb/scrydb/internal/db/dsn"
	"github.com/scrydb/scrydb/internal/db/models"
)

// Open connects to the configured database engine and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	source, err := dsn.Create(&cfg.DB)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector

	switch cfg.DB.Engine {
	case "postgres":
		dialector = gormpostgres.Open(source)
	case "sqlite":
		dialector = sqlite.Open(source)
	default:
		dialector = gormmysql.Open(source)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if cfg.DB.Engine != "sqlite" {
		sqlDB, errDB := db.DB()
		if errDB != nil {
			return nil, errors.Wrap(errDB, "failed to access connection pool")
		}

		sqlDB.SetMaxOpenConns(16)
		sqlDB.SetMaxIdleConns(4)
		sqlDB.SetConnMaxLifetime(time.Minute)
	}

	if err = db.AutoMigrate(
		&models.Card{},
		&models.Ruling{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}
