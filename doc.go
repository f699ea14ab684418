// Package main provides the entry point for scrydb, a command line tool
// and daemon that pulls Magic: The Gathering bulk card data from the
// Scryfall API and keeps a relational card table up to date. The
// application uses gorm for data persistence and includes a proxy
// analyzer that ranks card sets by how many proxied cards they would
// cover.
package main
