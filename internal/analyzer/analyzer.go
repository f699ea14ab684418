// Package analyzer ranks card sets by how many proxied cards they cover.
//
// Players proxy cards they would like to play with but do not own. Packs
// contain random cards from a specific set, so buying packs from the sets
// holding the most proxied cards maximizes the chance of pulling a card
// that can replace a proxy.
package analyzer

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/scrydb/scrydb/internal/db/controller/card"
)

// SetScore is one entry of the purchase recommendation.
type SetScore struct {
	// Set is the set name.
	Set string `json:"set"`
	// ProxiedCards counts distinct proxied cards printed in this set.
	ProxiedCards int `json:"proxied_cards"`
	// Cards lists those card names, alphabetically.
	Cards []string `json:"cards"`
}

// Recommend returns the sets covering the most proxied cards, ordered by
// coverage descending, name ascending. A limit of 0 returns all sets.
func Recommend(db *gorm.DB, limit int) ([]SetScore, error) {
	proxied, err := card.Proxied(db)
	if err != nil {
		return nil, err
	}

	bySet := make(map[string][]string)

	for i := range proxied {
		for _, set := range strings.Split(proxied[i].SetNames, ",") {
			set = strings.TrimSpace(set)
			if set == "" {
				continue
			}

			bySet[set] = append(bySet[set], proxied[i].Name)
		}
	}

	scores := make([]SetScore, 0, len(bySet))
	for set, cards := range bySet {
		sort.Strings(cards)
		scores = append(scores, SetScore{Set: set, ProxiedCards: len(cards), Cards: cards})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].ProxiedCards != scores[j].ProxiedCards {
			return scores[i].ProxiedCards > scores[j].ProxiedCards
		}

		return scores[i].Set < scores[j].Set
	})

	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}

	return scores, nil
}
