package strategy

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/luca-patrignani/bridge/domain/criterion"
	"github.com/luca-patrignani/bridge/metrics"
)

// Strategy resolves bids against the rule tables. The zero value is not
// usable; build one with New. A Strategy is safe for concurrent use.
type Strategy struct {
	cache   *lru.Cache[string, []Rule]
	logger  *slog.Logger
	metrics *metrics.Collector
}

type strategyOption func(Strategy) (Strategy, error)

// New returns a Strategy configured by opts.
func New(opts ...strategyOption) (*Strategy, error) {
	s := Strategy{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		var err error
		s, err = opt(s)
		if err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// WithCache memoizes up to size rule tables, keyed on the full content of
// the history. A size of zero disables the cache.
func WithCache(size int) strategyOption {
	return func(s Strategy) (Strategy, error) {
		if size == 0 {
			s.cache = nil
			return s, nil
		}
		cache, err := lru.New[string, []Rule](size)
		if err != nil {
			return s, fmt.Errorf("failed to create rule cache: %w", err)
		}
		s.cache = cache
		return s, nil
	}
}

func WithLogger(logger *slog.Logger) strategyOption {
	return func(s Strategy) (Strategy, error) {
		if logger != nil {
			s.logger = logger
		}
		return s, nil
	}
}

func WithMetrics(m *metrics.Collector) strategyOption {
	return func(s Strategy) (Strategy, error) {
		s.metrics = m
		return s, nil
	}
}

var plain = &Strategy{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

// Rules returns the rule table for the call after h. Cached tables are
// shared between callers and must not be modified.
func (s *Strategy) Rules(h bridge.History) ([]Rule, error) {
	if s.cache == nil {
		return BuildRules(h)
	}
	key := h.Key()
	if rules, ok := s.cache.Get(key); ok {
		s.metrics.RecordCacheHit()
		return rules, nil
	}
	s.metrics.RecordCacheMiss()
	rules, err := BuildRules(h)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, rules)
	return rules, nil
}

// Decide returns the first rule of the table for h whose criterion matches
// hand.
func (s *Strategy) Decide(h bridge.History, hand bridge.Hand) (Rule, error) {
	rules, err := s.Rules(h)
	if err != nil {
		return Rule{}, err
	}
	debug := s.logger.Enabled(context.Background(), slog.LevelDebug)
	for _, r := range rules {
		if r.Criterion.Match(hand) {
			s.logger.Debug("bid decided", "history", h.String(), "bid", r.Bid.String(), "rule", r.Criterion.String())
			s.metrics.RecordDecision(r.Bid.String())
			return r, nil
		}
		if debug {
			if reasons := Explain(r, hand); len(reasons) > 0 {
				s.logger.Debug("rule rejected", "bid", r.Bid.String(), "reasons", reasons)
			}
		}
	}
	s.metrics.RecordGap("no_applicable_rule")
	s.logger.Debug("no applicable rule", "history", h.String(), "rules", len(rules))
	return Rule{}, fmt.Errorf("after [%s] with %d rules: %w", h, len(rules), ErrNoApplicableRule)
}

// Explain lists the fields of r's hand range that reject hand. It returns
// nil when r is not a plain hand range or when it matches.
func Explain(r Rule, hand bridge.Hand) []string {
	hr, ok := r.Criterion.(criterion.HandRange)
	if !ok {
		return nil
	}
	return hr.Explain(hand)
}

// DecideBid returns the bid to make with hand after h.
func (s *Strategy) DecideBid(h bridge.History, hand bridge.Hand) (bridge.Bid, error) {
	r, err := s.Decide(h, hand)
	if err != nil {
		return bridge.Pass, err
	}
	return r.Bid, nil
}

// InterpretBid returns the criterion describing the hands that would have
// made the last call of h. A hand qualifies through a rule naming that call
// if it failed every earlier rule and matches that rule; the result is the
// union over every such rule.
func (s *Strategy) InterpretBid(h bridge.History) (criterion.Criterion, error) {
	rest, last, ok := h.Pop()
	if !ok {
		return nil, ErrEmptyHistory
	}
	rules, err := s.Rules(rest)
	if err != nil {
		return nil, err
	}
	excluded := criterion.Always
	var found []criterion.Criterion
	for _, r := range rules {
		if r.Bid == last {
			found = append(found, excluded.Intersect(r.Criterion))
		}
		excluded = excluded.Intersect(r.Criterion.Invert())
	}
	if len(found) == 0 {
		s.metrics.RecordGap("no_matching_rule")
		return nil, fmt.Errorf("%s after [%s]: %w", last, rest, ErrNoMatchingRule)
	}
	s.metrics.RecordInterpretation()
	return criterion.AnyOf(found...), nil
}

// DecideBid returns the bid to make with hand after h, without caching.
func DecideBid(h bridge.History, hand bridge.Hand) (bridge.Bid, error) {
	return plain.DecideBid(h, hand)
}

// InterpretBid returns the criterion describing the hands that would have
// made the last call of h, without caching.
func InterpretBid(h bridge.History) (criterion.Criterion, error) {
	return plain.InterpretBid(h)
}
