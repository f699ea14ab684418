// Package ruling provides operations for the rulings table.
package ruling

import (
	"errors"

	"gorm.io/gorm"

	"github.com/scrydb/scrydb/internal/db/models"
)

const (
	insertBatchSize = 500
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrOracleIDEmpty is returned when a ruling has no oracle id.
	ErrOracleIDEmpty = errors.New("ruling oracle id cannot be empty")
)

// Reload replaces the whole rulings table with the given rows. Rulings have
// no usable natural key, so the bulk file is authoritative.
func Reload(db *gorm.DB, rulings []models.Ruling) error {
	if db == nil {
		return ErrDBNil
	}

	for i := range rulings {
		if rulings[i].OracleID == "" {
			return ErrOracleIDEmpty
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Ruling{}).Error; err != nil {
			return err
		}

		if len(rulings) == 0 {
			return nil
		}

		return tx.CreateInBatches(rulings, insertBatchSize).Error
	})
}

// ByOracleID retrieves all rulings for one oracle id, oldest first.
func ByOracleID(db *gorm.DB, oracleID string) ([]models.Ruling, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if oracleID == "" {
		return nil, ErrOracleIDEmpty
	}

	var rulings []models.Ruling
	result := db.Where("oracle_id = ?", oracleID).Order("published_at").Find(&rulings)
	if result.Error != nil {
		return nil, result.Error
	}

	return rulings, nil
}

// Count returns the number of rulings in the table.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.Ruling{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
