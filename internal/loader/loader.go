// Package loader reads Scryfall bulk files and feeds the card database.
package loader

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/scrydb/scrydb/internal/db/controller/card"
	"github.com/scrydb/scrydb/internal/db/controller/ruling"
	"github.com/scrydb/scrydb/internal/db/models"
	"github.com/scrydb/scrydb/internal/scryfall"
)

// ctxCheckEvery bounds how often the decode loop looks at the context.
const ctxCheckEvery = 1000

// ErrDBNil is returned when the loader is built without a database.
var ErrDBNil = errors.New("database connection is nil")

// Stats summarizes one bulk load.
type Stats struct {
	// Seen counts objects decoded from the file.
	Seen int
	// Rows counts rows written to the database.
	Rows int
	// Duration is the wall time of the load.
	Duration time.Duration
}

// Loader loads bulk files into the database.
type Loader struct {
	db *gorm.DB
}

// New creates a Loader on the given database.
func New(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

// Load dispatches on the bulk data type: rulings files fill the rulings
// table, every card type fills the scryfall card table.
func (l *Loader) Load(ctx context.Context, path string, dataType scryfall.BulkDataType) (*Stats, error) {
	if dataType == scryfall.BulkTypeRulings {
		return l.LoadRulings(ctx, path)
	}

	return l.LoadCards(ctx, path)
}

// LoadCards streams a bulk card file, aggregates printings by card name and
// upserts the result. Bulk files reach hundreds of megabytes, so the JSON
// array is decoded object by object instead of unmarshalled at once.
func (l *Loader) LoadCards(ctx context.Context, path string) (*Stats, error) {
	if l.db == nil {
		return nil, ErrDBNil
	}

	start := time.Now()
	aggregates := make(map[string]*cardAggregate)
	seen := 0

	err := streamArray(ctx, path, func(dec *json.Decoder) error {
		var obj cardObject
		if errDec := dec.Decode(&obj); errDec != nil {
			return errors.Wrap(errDec, "failed to decode card object")
		}

		seen++
		objectsSeen.WithLabelValues("cards").Inc()

		if obj.Name == "" {
			return nil
		}

		agg, ok := aggregates[obj.Name]
		if !ok {
			agg = &cardAggregate{}
			aggregates[obj.Name] = agg
		}
		agg.add(&obj)

		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic write order
	names := make([]string, 0, len(aggregates))
	for name := range aggregates {
		names = append(names, name)
	}
	sort.Strings(names)

	cards := make([]models.Card, 0, len(names))
	for _, name := range names {
		agg := aggregates[name]
		cards = append(cards, models.Card{
			Name:     name,
			SetNames: agg.setNames.join(),
			Rarity:   agg.rarities.join(),
			Colors:   agg.colors.join(),
			CMC:      agg.cmcs.join(),
			TypeLine: agg.typeLines.join(),
		})
	}

	if err = card.UpsertBatch(l.db, cards); err != nil {
		return nil, errors.Wrap(err, "failed to upsert cards")
	}

	stats := &Stats{Seen: seen, Rows: len(cards), Duration: time.Since(start)}

	rowsLoaded.WithLabelValues("scryfall").Add(float64(stats.Rows))
	loadDuration.WithLabelValues("cards").Observe(stats.Duration.Seconds())

	log.Info().
		Str("file", path).
		Int("objects", stats.Seen).
		Int("cards", stats.Rows).
		Dur("duration", stats.Duration).
		Msg("card load finished")

	return stats, nil
}

// LoadRulings streams a rulings bulk file and replaces the rulings table.
func (l *Loader) LoadRulings(ctx context.Context, path string) (*Stats, error) {
	if l.db == nil {
		return nil, ErrDBNil
	}

	start := time.Now()

	var rulings []models.Ruling

	err := streamArray(ctx, path, func(dec *json.Decoder) error {
		var obj rulingObject
		if errDec := dec.Decode(&obj); errDec != nil {
			return errors.Wrap(errDec, "failed to decode ruling object")
		}

		objectsSeen.WithLabelValues("rulings").Inc()

		rulings = append(rulings, models.Ruling{
			OracleID:    obj.OracleID,
			PublishedAt: obj.PublishedAt,
			Source:      obj.Source,
			Comment:     obj.Comment,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err = ruling.Reload(l.db, rulings); err != nil {
		return nil, errors.Wrap(err, "failed to reload rulings")
	}

	stats := &Stats{Seen: len(rulings), Rows: len(rulings), Duration: time.Since(start)}

	rowsLoaded.WithLabelValues("rulings").Add(float64(stats.Rows))
	loadDuration.WithLabelValues("rulings").Observe(stats.Duration.Seconds())

	log.Info().
		Str("file", path).
		Int("rulings", stats.Rows).
		Dur("duration", stats.Duration).
		Msg("rulings load finished")

	return stats, nil
}

// streamArray walks a top-level JSON array, calling decodeOne once per
// element.
func streamArray(ctx context.Context, path string, decodeOne func(*json.Decoder) error) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open bulk file")
	}
	defer file.Close()

	dec := json.NewDecoder(bufio.NewReaderSize(file, 1<<20)) //nolint: mnd

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "failed to read bulk file")
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("bulk file does not hold a JSON array, starts with %v", tok)
	}

	count := 0

	for dec.More() {
		if count%ctxCheckEvery == 0 {
			if errCtx := ctx.Err(); errCtx != nil {
				return errors.Wrap(errCtx, "load canceled")
			}
		}
		count++

		if err = decodeOne(dec); err != nil {
			return err
		}
	}

	if _, err = dec.Token(); err != nil && err != io.EOF {
		return errors.Wrap(err, "failed to read bulk file trailer")
	}

	return nil
}
