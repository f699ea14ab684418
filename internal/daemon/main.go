package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/scrydb/scrydb/internal/config"
	"github.com/scrydb/scrydb/internal/db"
	"github.com/scrydb/scrydb/internal/loader"
	"github.com/scrydb/scrydb/internal/scryfall"
	"github.com/scrydb/scrydb/internal/web"
)

// Daemon represents the main application daemon. It keeps the card database
// in sync with the Scryfall bulk data on a cron schedule and optionally
// serves the status API.
type Daemon struct {
	cfg    *config.Config
	db     *gorm.DB
	client *scryfall.Client
	loader *loader.Loader
	cron   *cron.Cron
	web    *web.Service

	mu      sync.Mutex
	running bool
	status  web.SyncStatus
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	database, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	d := &Daemon{
		cfg: cfg,
		db:  database,
		client: scryfall.New(
			scryfall.WithBaseURL(cfg.Scryfall.BaseURL),
			scryfall.WithTimeout(time.Duration(cfg.Scryfall.TimeoutSeconds)*time.Second),
		),
		loader: loader.New(database),
		cron:   cron.New(),
	}

	if _, err = d.cron.AddFunc(cfg.Sync.Schedule, d.runSync); err != nil {
		return nil, errors.Wrapf(err, "invalid sync schedule %q", cfg.Sync.Schedule)
	}

	if cfg.HTTP.Enabled {
		d.web = web.New(cfg, database, d)
	}

	return d, nil
}

// Start runs the cron scheduler and, when enabled, the web service. It
// blocks until the service shuts down.
func (d *Daemon) Start() error {
	d.cron.Start()
	defer d.cron.Stop()

	log.Info().
		Str("schedule", d.cfg.Sync.Schedule).
		Bool("http", d.cfg.HTTP.Enabled).
		Msg("daemon started")

	if d.web == nil {
		// Without the web service the scheduler is all there is, so wait
		// for a termination signal ourselves.
		waitSignal()

		log.Info().Msg("daemon stopped")

		return nil
	}

	go d.web.WaitShutdown()

	return d.web.Start(fmt.Sprintf(":%d", d.cfg.HTTP.Port))
}

// Trigger starts a sync in the background unless one is already running.
func (d *Daemon) Trigger() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return false
	}

	d.running = true
	d.status.Running = true

	go func() {
		defer d.finishSync()
		d.sync()
	}()

	return true
}

// Status reports the current sync state.
func (d *Daemon) Status() web.SyncStatus {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.status
}

// runSync is the cron entry point. It skips the run when a sync is already
// in flight, for example one triggered through the API.
func (d *Daemon) runSync() {
	d.mu.Lock()

	if d.running {
		d.mu.Unlock()
		log.Warn().Msg("scheduled sync skipped, another sync is running")

		return
	}

	d.running = true
	d.status.Running = true
	d.mu.Unlock()

	defer d.finishSync()
	d.sync()
}

// sync downloads today's bulk file, unless it is already on disk, and loads
// it into the database. Callers must hold the running flag.
func (d *Daemon) sync() {
	dataType, err := scryfall.ParseBulkDataType(d.cfg.Scryfall.BulkType)
	if err != nil {
		d.failSync(err)

		return
	}

	ctx := context.Background()

	path := d.bulkFilePath(dataType)
	if _, err = os.Stat(path); err != nil {
		if path, err = d.client.Download(ctx, dataType, d.cfg.Scryfall.Dir); err != nil {
			d.failSync(err)

			return
		}
	} else {
		log.Info().Str("file", path).Msg("reusing bulk file downloaded today")
	}

	stats, err := d.loader.Load(ctx, path, dataType)
	if err != nil {
		d.failSync(err)

		return
	}

	d.mu.Lock()
	d.status.LastError = ""
	d.status.LastCards = stats.Rows
	d.mu.Unlock()

	log.Info().
		Str("type", dataType.String()).
		Int("rows", stats.Rows).
		Dur("duration", stats.Duration).
		Msg("sync finished")
}

func (d *Daemon) bulkFilePath(dataType scryfall.BulkDataType) string {
	dir := d.cfg.Scryfall.Dir
	if dir == "" {
		dir = "."
	}

	return filepath.Join(dir, scryfall.FileName(dataType, time.Now()))
}

func (d *Daemon) failSync(err error) {
	d.mu.Lock()
	d.status.LastError = err.Error()
	d.mu.Unlock()

	log.Error().Err(err).Msg("sync failed")
}

func waitSignal() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("received shutdown signal: %v", sig)
}

func (d *Daemon) finishSync() {
	d.mu.Lock()
	d.running = false
	d.status.Running = false
	d.status.LastRun = time.Now()
	d.mu.Unlock()
}
