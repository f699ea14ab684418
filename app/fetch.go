package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scrydb/scrydb/internal/scryfall"
)

func init() { //nolint: gochecknoinits
	fetchCmd.Flags().StringVar(&fetchType, "type", "", "Bulk data type (oracle, unique, default, all, rulings)")
	fetchCmd.Flags().StringVar(&fetchDir, "dir", "", "Directory to download into")

	rootCmd.AddCommand(fetchCmd)
}

var (
	fetchType string
	fetchDir  string

	fetchCmd = &cobra.Command{
		Use:   "fetch",
		Short: "Download a Scryfall bulk data file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataType, err := scryfall.ParseBulkDataType(bulkTypeOrDefault(fetchType))
			if err != nil {
				return err
			}

			dir := fetchDir
			if dir == "" {
				dir = cfg.Scryfall.Dir
			}

			client := newScryfallClient()

			path, err := client.Download(cmd.Context(), dataType, dir)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
)

// bulkTypeOrDefault resolves the bulk type from the flag, falling back to the
// configured default.
func bulkTypeOrDefault(flag string) string {
	if flag != "" {
		return flag
	}

	return cfg.Scryfall.BulkType
}

func newScryfallClient() *scryfall.Client {
	return scryfall.New(
		scryfall.WithBaseURL(cfg.Scryfall.BaseURL),
		scryfall.WithTimeout(time.Duration(cfg.Scryfall.TimeoutSeconds)*time.Second),
	)
}
