// Package scryfall implements a client for the Scryfall bulk-data API.
package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the Scryfall API root.
	DefaultBaseURL = "https://api.scryfall.com"

	// defaultTimeout covers one catalog or file request. Bulk files reach
	// hundreds of megabytes.
	defaultTimeout = 5 * time.Minute

	userAgent = "scrydb"
)

// Client talks to the Scryfall bulk-data API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a bulk-data client.
func New(options ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

type bulkDataList struct {
	Data []BulkData `json:"data"`
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req) //nolint:wrapcheck
}

// ListBulkData pulls the bulk-data catalog.
func (c *Client) ListBulkData(ctx context.Context) ([]BulkData, error) {
	resp, err := c.get(ctx, c.baseURL+"/bulk-data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch bulk data")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status code %d", ErrFetchBulkData, resp.StatusCode)
	}

	var list bulkDataList
	if err = json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, errors.Wrap(err, "failed to decode bulk data catalog")
	}

	return list.Data, nil
}

// Resolve finds the catalog entry for the given bulk data type.
func (c *Client) Resolve(ctx context.Context, dataType BulkDataType) (*BulkData, error) {
	list, err := c.ListBulkData(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Type == dataType.String() {
			return &list[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrBulkTypeNotFound, dataType)
}

// Download pulls the bulk file of the given type into dir and returns the
// path of the written file. The file name carries the download date.
func (c *Client) Download(ctx context.Context, dataType BulkDataType, dir string) (string, error) {
	entry, err := c.Resolve(ctx, dataType)
	if err != nil {
		return "", err
	}

	resp, err := c.get(ctx, entry.DownloadURI)
	if err != nil {
		return "", errors.Wrap(err, "failed to download the file")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status code %d", ErrDownload, resp.StatusCode)
	}

	if dir == "" {
		dir = "."
	}

	if err = os.MkdirAll(dir, 0o750); err != nil { //nolint: mnd
		return "", errors.Wrap(err, "failed to create download directory")
	}

	target := filepath.Join(dir, FileName(dataType, time.Now()))

	file, err := os.Create(target)
	if err != nil {
		return "", errors.Wrap(err, "failed to create file")
	}
	defer file.Close()

	written, err := io.Copy(file, resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to write file")
	}

	log.Info().
		Str("file", target).
		Int64("bytes", written).
		Str("type", dataType.String()).
		Msg("file downloaded successfully")

	return target, nil
}
