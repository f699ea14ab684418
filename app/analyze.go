package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scrydb/scrydb/internal/analyzer"
	"github.com/scrydb/scrydb/internal/db"
)

func init() { //nolint: gochecknoinits
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 0, "Show only the top N sets (0 shows all)")

	rootCmd.AddCommand(analyzeCmd)
}

var (
	analyzeLimit int

	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Rank sets by how many proxied cards they would replace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := db.Open(&cfg)
			if err != nil {
				return err
			}

			scores, err := analyzer.Recommend(database, analyzeLimit)
			if err != nil {
				return err
			}

			if len(scores) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no proxied cards found, mark some with a deck first")

				return nil
			}

			for _, score := range scores {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s: %s\n",
					score.ProxiedCards, score.Set, strings.Join(score.Cards, ", "))
			}

			return nil
		},
	}
)
