// Package models contains database model definitions.
package models

// Card represents one named Magic: The Gathering card in the scryfall table.
//
// A card is unique by name; printings collapse into the multi-valued columns.
// Multi-valued columns hold ", " joined strings, the layout the original
// scryfall table used so existing queries keep working.
type Card struct {
	// Name is the card name and the primary key.
	Name string `gorm:"primaryKey;size:255;not null" json:"name"`
	// SetNames lists every set the card was printed in.
	SetNames string `gorm:"size:14000" json:"set_names"`
	// Rarity lists the rarities the card was printed at.
	Rarity string `gorm:"size:100" json:"rarity"`
	// Colors is the flattened color identity, e.g. "B, G, R".
	Colors string `gorm:"size:100" json:"colors"`
	// CMC is the converted mana cost rendered as an integer string,
	// empty when Scryfall reports none.
	CMC string `gorm:"column:cmc;size:100" json:"cmc"`
	// TypeLine lists the type lines of the printings.
	TypeLine string `gorm:"size:255" json:"type_line"`
	// Deck is the deck this card was proxied for. Empty means the card
	// is not proxied.
	Deck string `gorm:"size:100" json:"deck"`
}

// TableName keeps the table name of the original schema.
func (Card) TableName() string {
	return "scryfall"
}

// Proxied reports whether the card was proxied for a deck.
func (c *Card) Proxied() bool {
	return c.Deck != ""
}
