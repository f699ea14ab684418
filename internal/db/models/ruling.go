package models

// Ruling represents one Scryfall ruling. Rulings refer to cards via the
// oracle id, not the card name, so they live in their own table and are
// reloaded wholesale from the rulings bulk file.
type Ruling struct {
	ID uint64 `gorm:"primaryKey" json:"-"`
	// OracleID is the oracle id of the card the ruling refers to.
	OracleID string `gorm:"column:oracle_id;size:36;not null;index" json:"oracle_id"`
	// PublishedAt is the publication date as reported by Scryfall (YYYY-MM-DD).
	PublishedAt string `gorm:"size:10" json:"published_at"`
	// Source is who issued the ruling (wotc or scryfall).
	Source string `gorm:"size:20" json:"source"`
	// Comment is the ruling text.
	Comment string `gorm:"size:4000" json:"comment"`
}
