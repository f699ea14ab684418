// Package card provides CRUD operations for the scryfall card table.
package card

import (
	"errors"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/scrydb/scrydb/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"

	// upsertBatchSize limits how many rows one INSERT carries; bulk files
	// hold tens of thousands of aggregated cards.
	upsertBatchSize = 500
)

var (
	// ErrCardNotFound is returned when a card is not found.
	ErrCardNotFound = errors.New("card not found")
	// ErrCardNameEmpty is returned when attempting an operation with an empty card name.
	ErrCardNameEmpty = errors.New("card name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// refreshColumns are the columns a bulk load may overwrite. The deck column
// is deliberately absent: proxy assignments survive a re-sync.
var refreshColumns = []string{"set_names", "rarity", "colors", "cmc", "type_line"}

// Get retrieves a card by its name.
func Get(db *gorm.DB, name string) (*models.Card, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrCardNameEmpty
	}

	var c models.Card
	result := db.Where(nameQueryPattern, name).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}

	return &c, nil
}

// Upsert inserts a card or, when a card of that name already exists,
// refreshes its printable columns.
func Upsert(db *gorm.DB, c *models.Card) error {
	if db == nil {
		return ErrDBNil
	}
	if c == nil || c.Name == "" {
		return ErrCardNameEmpty
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns(refreshColumns),
	}).Create(c)

	return result.Error
}

// UpsertBatch upserts a slice of cards in batches.
func UpsertBatch(db *gorm.DB, cards []models.Card) error {
	if db == nil {
		return ErrDBNil
	}
	if len(cards) == 0 {
		return nil
	}

	for i := range cards {
		if cards[i].Name == "" {
			return ErrCardNameEmpty
		}
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns(refreshColumns),
	}).CreateInBatches(cards, upsertBatchSize)

	return result.Error
}

// List retrieves cards ordered by name. A limit of 0 returns all cards.
func List(db *gorm.DB, limit, offset int) ([]models.Card, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Order("name")
	if limit > 0 {
		tx = tx.Limit(limit)
	} else if offset > 0 {
		// OFFSET needs a LIMIT in front of it
		tx = tx.Limit(math.MaxInt32)
	}

	if offset > 0 {
		tx = tx.Offset(offset)
	}

	var cards []models.Card
	if result := tx.Find(&cards); result.Error != nil {
		return nil, result.Error
	}

	return cards, nil
}

// SetDeck marks a card as proxied for the given deck. An empty deck clears
// the proxy mark.
func SetDeck(db *gorm.DB, name, deck string) (*models.Card, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrCardNameEmpty
	}

	var c models.Card
	result := db.Where(nameQueryPattern, name).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}

	c.Deck = deck
	if result = db.Save(&c); result.Error != nil {
		return nil, result.Error
	}

	return &c, nil
}

// Proxied retrieves all cards marked as proxied.
func Proxied(db *gorm.DB) ([]models.Card, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var cards []models.Card
	result := db.Where("deck <> ''").Order("name").Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}

	return cards, nil
}

// Count returns the number of cards in the table.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.Card{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// CountProxied returns the number of proxied cards.
func CountProxied(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.Card{}).Where("deck <> ''").Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
