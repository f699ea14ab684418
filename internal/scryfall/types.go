package scryfall

import (
	"fmt"
	"strings"
	"time"
)

// BulkDataType restricts the types of bulk files that can be requested.
// Reference https://scryfall.com/docs/api/bulk-data
type BulkDataType string

const (
	// BulkTypeOracle is a JSON file containing one Scryfall card object for
	// each Oracle ID on Scryfall. The chosen sets for the cards are an
	// attempt to return the most up-to-date recognizable version of the card.
	BulkTypeOracle BulkDataType = "oracle_cards"
	// BulkTypeUnique is a JSON file of Scryfall card objects that together
	// contain all unique artworks. The chosen cards promote the best image scans.
	BulkTypeUnique BulkDataType = "unique_artwork"
	// BulkTypeDefault is a JSON file containing every card object on Scryfall
	// in English or the printed language if the card is only available in one
	// language.
	BulkTypeDefault BulkDataType = "default_cards"
	// BulkTypeAll is a JSON file containing every card object on Scryfall in
	// every language.
	BulkTypeAll BulkDataType = "all_cards"
	// BulkTypeRulings is a JSON file containing all Rulings on Scryfall. Each
	// ruling refers to cards via an oracle_id.
	BulkTypeRulings BulkDataType = "rulings"
)

func (t BulkDataType) String() string {
	return string(t)
}

// ParseBulkDataType maps user input to a BulkDataType. It accepts the wire
// names ("default_cards") as well as the short forms ("default").
func ParseBulkDataType(s string) (BulkDataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oracle", "oracle_cards":
		return BulkTypeOracle, nil
	case "unique", "unique_artwork":
		return BulkTypeUnique, nil
	case "default", "default_cards":
		return BulkTypeDefault, nil
	case "all", "all_cards":
		return BulkTypeAll, nil
	case "rulings":
		return BulkTypeRulings, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBulkType, s)
	}
}

// FileName returns the local file name for a bulk file of the given type
// downloaded on the given day, e.g. "20260831_default_cards_scryfall.json".
func FileName(t BulkDataType, day time.Time) string {
	return fmt.Sprintf("%s_%s_scryfall.json", day.Format("20060102"), t)
}

// BulkData describes one entry of the Scryfall bulk-data catalog.
type BulkData struct {
	Type        string    `json:"type"`
	UpdatedAt   time.Time `json:"updated_at"`
	DownloadURI string    `json:"download_uri"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
}
