package loader

import (
	"sort"
	"strconv"
	"strings"
)

// cardObject is the subset of a Scryfall card object the loader keeps.
type cardObject struct {
	Name     string   `json:"name"`
	SetName  string   `json:"set_name"`
	Rarity   string   `json:"rarity"`
	Colors   []string `json:"colors"`
	CMC      *float64 `json:"cmc"`
	TypeLine string   `json:"type_line"`
}

// rulingObject is the subset of a Scryfall ruling object the loader keeps.
type rulingObject struct {
	OracleID    string `json:"oracle_id"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source"`
	Comment     string `json:"comment"`
}

// flattenColors turns a color list into a deduplicated, sorted,
// comma-joined string: ["R","G","B","R"] -> "B, G, R".
func flattenColors(colors []string) string {
	if len(colors) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(colors))
	out := make([]string, 0, len(colors))

	for _, c := range colors {
		if c == "" {
			continue
		}

		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}
		out = append(out, c)
	}

	sort.Strings(out)

	return strings.Join(out, ", ")
}

// formatCMC renders the converted mana cost as an integer string, empty
// when Scryfall reports none.
func formatCMC(cmc *float64) string {
	if cmc == nil {
		return ""
	}

	return strconv.Itoa(int(*cmc))
}

// valueSet collects distinct non-empty values in insertion order.
type valueSet struct {
	seen   map[string]struct{}
	values []string
}

func (s *valueSet) add(v string) {
	if v == "" {
		return
	}

	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}

	if _, ok := s.seen[v]; ok {
		return
	}

	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}

func (s *valueSet) join() string {
	return strings.Join(s.values, ", ")
}

// cardAggregate merges every printing of one card name into the
// multi-valued columns of the scryfall table.
type cardAggregate struct {
	setNames  valueSet
	rarities  valueSet
	colors    valueSet
	cmcs      valueSet
	typeLines valueSet
}

func (a *cardAggregate) add(obj *cardObject) {
	a.setNames.add(obj.SetName)
	a.rarities.add(obj.Rarity)
	a.colors.add(flattenColors(obj.Colors))
	a.cmcs.add(formatCMC(obj.CMC))
	a.typeLines.add(obj.TypeLine)
}
