// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/scrydb/scrydb/internal/config"
	"github.com/scrydb/scrydb/internal/logger"
)

var (
	configPath string // Path to the configuration file
	cfg        config.Config

	rootCmd = &cobra.Command{
		Use:   "scrydb",
		Short: "scrydb keeps a local MTG card database in sync with Scryfall",
		Long: `scrydb downloads Scryfall bulk data, loads the cards and rulings into a
local SQL database, and recommends which sets to buy to replace proxied
cards in your decks.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			return logger.Init(cfg.Log)
		},
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
