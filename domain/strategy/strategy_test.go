package strategy

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/luca-patrignani/bridge/domain/deck"
	"github.com/luca-patrignani/bridge/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomHands(t *testing.T, deals int) []bridge.Hand {
	t.Helper()
	dealer := deck.NewDealer(99)
	var hands []bridge.Hand
	for i := 0; i < deals; i++ {
		deal, err := dealer.Deal()
		require.NoError(t, err)
		hands = append(hands, deal[:]...)
	}
	return hands
}

func TestDecideBidOpening(t *testing.T) {
	seventeen := hand(t, "AS KS 3S 2S AH QH 2H KD 3D 2D JC 3C 2C")
	bid, err := DecideBid(bridge.History{}, seventeen)
	require.NoError(t, err)
	assert.Equal(t, "1N", bid.String())

	three := hand(t, "KS 2S 3S 4S 2H 3H 4H 2D 3D 4D 2C 3C 4C")
	bid, err = DecideBid(bridge.History{}, three)
	require.NoError(t, err)
	assert.Equal(t, bridge.Pass, bid)
}

func TestDecideReturnsRule(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	r, err := s.Decide(nil, hand(t, "AS KS 3S 2S AH QH 2H KD 3D 2D JC 3C 2C"))
	require.NoError(t, err)
	assert.Equal(t, "1N: (points in [16-18]) AND (balanced in [true])", r.String())
}

func TestExplainRejectedRules(t *testing.T) {
	seventeen := hand(t, "AS KS 3S 2S AH QH 2H KD 3D 2D JC 3C 2C")
	rules, err := BuildRules(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"points: 17 not in [0-12]"}, Explain(rules[0], seventeen))
	assert.Empty(t, Explain(rules[1], seventeen))
	assert.Nil(t, Explain(rules[2], seventeen), "disjunctions are not explained")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := New(WithLogger(logger))
	require.NoError(t, err)
	_, err = s.Decide(nil, seventeen)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rule rejected")
	assert.Contains(t, buf.String(), "points: 17 not in [0-12]")
}

func TestInterpretBid(t *testing.T) {
	ntOpening, err := InterpretBid(bridge.MustParseHistory("1N"))
	require.NoError(t, err)

	seventeen := hand(t, "AS KS 3S 2S AH QH 2H KD 3D 2D JC 3C 2C")
	fifteen := hand(t, "AS KS 3S 2S AH 3H 2H KD 3D 2D JC 3C 2C")
	assert.True(t, ntOpening.Match(seventeen))
	assert.False(t, ntOpening.Match(fifteen))

	for _, h := range randomHands(t, 50) {
		want := h.Points() >= 16 && h.Points() <= 18 && h.IsBalanced()
		assert.Equal(t, want, ntOpening.Match(h), h.Compact())
	}
}

func TestInterpretBidUnionsRepeatedBids(t *testing.T) {
	club, err := InterpretBid(bridge.MustParseHistory("1C"))
	require.NoError(t, err)

	threeThree := hand(t, "AS KS 3S 2S AH 3H 2H KD 3D 2D JC 3C 2C")
	fallback := hand(t, "AS KS 3S 2S AH KH 3H 2H AC 4C 3C 2C 2D")
	assert.True(t, club.Match(threeThree))
	assert.True(t, club.Match(fallback))
}

func TestInterpretBidErrors(t *testing.T) {
	_, err := InterpretBid(nil)
	assert.ErrorIs(t, err, ErrEmptyHistory)

	_, err = InterpretBid(bridge.MustParseHistory("7N"))
	assert.ErrorIs(t, err, ErrNoMatchingRule)

	_, err = InterpretBid(bridge.MustParseHistory("1C PS 1D PS 1S"))
	assert.ErrorIs(t, err, ErrNoMatchingRule)
}

func TestStrategyCache(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewCollector(reg)
	s, err := New(WithCache(8), WithMetrics(m))
	require.NoError(t, err)

	h := bridge.MustParseHistory("1S PS")
	first, err := s.Rules(h)
	require.NoError(t, err)
	second, err := s.Rules(bridge.MustParseHistory("1S PS"))
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMissesTotal))

	_, err = s.DecideBid(bridge.MustParseHistory("1C PS 1D PS"), hand(t, "AS KS 3S 2S AH QH 2H KD 3D 2D JC 3C 2C"))
	assert.ErrorIs(t, err, ErrNoApplicableRule)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GapsTotal.WithLabelValues("no_applicable_rule")))

	_, err = New(WithCache(-1))
	assert.Error(t, err)
}

func TestCachedAndPlainAgree(t *testing.T) {
	cached, err := New(WithCache(64))
	require.NoError(t, err)
	histories := []string{"", "1N PS", "1S PS", "1D PS 1H PS", "1H PS 2H PS"}
	for _, h := range randomHands(t, 20) {
		for _, hs := range histories {
			history := bridge.MustParseHistory(hs)
			a, errA := DecideBid(history, h)
			b, errB := cached.DecideBid(history, h)
			assert.Equal(t, errA == nil, errB == nil)
			assert.Equal(t, a, b)
		}
	}
}
