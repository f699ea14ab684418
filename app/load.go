package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/scrydb/scrydb/internal/db"
	"github.com/scrydb/scrydb/internal/loader"
	"github.com/scrydb/scrydb/internal/scryfall"
)

func init() { //nolint: gochecknoinits
	loadCmd.Flags().StringVar(&loadType, "type", "", "Bulk data type (oracle, unique, default, all, rulings)")
	loadCmd.Flags().StringVar(&loadFile, "file", "", "Bulk file to load instead of today's download")

	rootCmd.AddCommand(loadCmd)
}

var (
	loadType string
	loadFile string

	loadCmd = &cobra.Command{
		Use:   "load",
		Short: "Load a Scryfall bulk data file into the database",
		Long: `Load parses a Scryfall bulk data file and upserts its cards, or rulings,
into the database. Without --file it looks for a file downloaded today and
downloads one when none exists.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataType, err := scryfall.ParseBulkDataType(bulkTypeOrDefault(loadType))
			if err != nil {
				return err
			}

			path := loadFile
			if path == "" {
				if path, err = fetchIfMissing(cmd, dataType); err != nil {
					return err
				}
			}

			database, err := db.Open(&cfg)
			if err != nil {
				return err
			}

			stats, err := loader.New(database).Load(cmd.Context(), path, dataType)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d rows from %d objects in %s\n",
				stats.Rows, stats.Seen, stats.Duration.Round(time.Millisecond))

			return nil
		},
	}
)

// fetchIfMissing returns the path of today's bulk file, downloading it first
// when it is not on disk yet.
func fetchIfMissing(cmd *cobra.Command, dataType scryfall.BulkDataType) (string, error) {
	dir := cfg.Scryfall.Dir
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, scryfall.FileName(dataType, time.Now()))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	return newScryfallClient().Download(cmd.Context(), dataType, dir)
}
