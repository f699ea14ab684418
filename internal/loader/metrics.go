package loader

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	objectsSeen = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "scrydb_bulk_objects_seen_total",
			Help: "Number of objects decoded from bulk files.",
		},
		[]string{"type"},
	)

	rowsLoaded = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "scrydb_rows_loaded_total",
			Help: "Number of rows written to the database by bulk loads.",
		},
		[]string{"table"},
	)

	loadDuration = promauto.NewHistogramVec( //nolint:gochecknoglobals
		prometheus.HistogramOpts{
			Name:    "scrydb_load_duration_seconds",
			Help:    "Duration of bulk loads.",
			Buckets: prometheus.ExponentialBuckets(0.1, 4, 8),
		},
		[]string{"type"},
	)
)
