package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters for cache behavior, registered once at package
// load through promauto.
var (
	hitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "veranda",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Number of cache reads served from the store.",
	})

	missesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "veranda",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Number of cache reads that fell through, expired entries included.",
	})

	setsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "veranda",
		Subsystem: "cache",
		Name:      "sets_total",
		Help:      "Number of values written to the cache.",
	})

	deletesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "veranda",
		Subsystem: "cache",
		Name:      "deletes_total",
		Help:      "Number of single-key deletes.",
	})

	invalidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "veranda",
		Subsystem: "cache",
		Name:      "invalidations_total",
		Help:      "Number of entries removed by pattern invalidation.",
	})
)
