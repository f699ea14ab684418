package scryfall

import (
	"errors"
)

var (
	// ErrFetchBulkData is returned when fetching the bulk-data catalog fails.
	ErrFetchBulkData = errors.New("failed to fetch bulk data")

	// ErrDownload is returned when downloading a bulk file fails.
	ErrDownload = errors.New("failed to download the file")

	// ErrBulkTypeNotFound is returned when the requested data type is not
	// present in the bulk-data catalog.
	ErrBulkTypeNotFound = errors.New("data type not found in bulk data")

	// ErrUnknownBulkType is returned for input naming no known bulk data type.
	ErrUnknownBulkType = errors.New("unknown bulk data type")
)
