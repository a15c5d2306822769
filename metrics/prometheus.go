package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the Prometheus metrics of the bidding engine and the
// auction driver. A nil *Collector is valid and records nothing.
type Collector struct {
	// Strategy metrics
	DecisionsTotal       *prometheus.CounterVec
	GapsTotal            *prometheus.CounterVec
	InterpretationsTotal prometheus.Counter

	// Rule cache metrics
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	// Auction metrics
	AuctionsTotal *prometheus.CounterVec
	AuctionCalls  prometheus.Histogram
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		DecisionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_decisions_total",
				Help: "Total number of bids decided, by bid",
			},
			[]string{"bid"},
		),

		GapsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_strategy_gaps_total",
				Help: "Total number of lookups that hit a gap in the rule book",
			},
			[]string{"kind"},
		),

		InterpretationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bridge_interpretations_total",
				Help: "Total number of bids interpreted into hand ranges",
			},
		),

		CacheHitsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bridge_rule_cache_hits_total",
				Help: "Total number of rule table cache hits",
			},
		),

		CacheMissesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bridge_rule_cache_misses_total",
				Help: "Total number of rule table cache misses",
			},
		),

		AuctionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_auctions_total",
				Help: "Total number of auctions run, by outcome",
			},
			[]string{"outcome"},
		),

		AuctionCalls: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bridge_auction_calls",
				Help:    "Number of calls made in each completed auction",
				Buckets: prometheus.LinearBuckets(4, 4, 8),
			},
		),
	}
}

// RecordDecision records a bid chosen by the strategy
func (m *Collector) RecordDecision(bid string) {
	if m == nil {
		return
	}
	m.DecisionsTotal.WithLabelValues(bid).Inc()
}

// RecordGap records a lookup that found no rule
func (m *Collector) RecordGap(kind string) {
	if m == nil {
		return
	}
	m.GapsTotal.WithLabelValues(kind).Inc()
}

// RecordInterpretation records an interpreted bid
func (m *Collector) RecordInterpretation() {
	if m == nil {
		return
	}
	m.InterpretationsTotal.Inc()
}

// RecordCacheHit records a cache hit
func (m *Collector) RecordCacheHit() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}

// RecordCacheMiss records a cache miss
func (m *Collector) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMissesTotal.Inc()
}

// RecordAuction records the outcome of an auction and, when it completed,
// its length.
func (m *Collector) RecordAuction(outcome string, calls int) {
	if m == nil {
		return
	}
	m.AuctionsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeCompleted {
		m.AuctionCalls.Observe(float64(calls))
	}
}
