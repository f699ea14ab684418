// Package web implements the scrydb status web service.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/scrydb/scrydb/internal/config"
	accesslog "github.com/scrydb/scrydb/internal/logger/adapter/fiber"
)

// SyncStatus describes the state of the periodic bulk-data sync.
type SyncStatus struct {
	Running   bool      `json:"running"`
	LastRun   time.Time `json:"last_run"`
	LastError string    `json:"last_error,omitempty"`
	LastCards int       `json:"last_cards"`
}

// SyncController lets the web service inspect and trigger the sync.
type SyncController interface {
	// Trigger starts a sync unless one is already running.
	Trigger() bool
	// Status reports the current sync state.
	Status() SyncStatus
}

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	db    *gorm.DB
	sync  SyncController
	alive atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: healthz starts to fail so a LB
	// removes this instance before the listener goes away.
	if s.cfg.HTTP.ShutDownTime > 0 {
		log.Info().Msgf(
			"graceful shutdown: return 503 for %d seconds before stopping",
			s.cfg.HTTP.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.HTTP.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, sync SyncController) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			AppName:       "scrydb",
			CaseSensitive: true,
			Prefork:       false,
		},
	)

	app.Use(accesslog.New(accesslog.Config{
		Config:     cfg.Log,
		HealthzURI: "/healthz",
	}))

	service := &Service{
		cfg:  cfg,
		App:  app,
		db:   db,
		sync: sync,
	}
	service.alive.Store(true)

	app.Get("/healthz", service.handleHealthz)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/status", service.handleStatus)
	api.Get("/cards", service.handleListCards)
	api.Get("/cards/:name", service.handleGetCard)
	api.Post("/cards/:name/deck", service.handleSetDeck)
	api.Get("/rulings/:oracleid", service.handleRulings)
	api.Get("/sets/recommended", service.handleRecommended)
	api.Post("/sync", service.handleSync)

	return service
}
