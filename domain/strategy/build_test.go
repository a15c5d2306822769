package strategy

import (
	"testing"

	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(t *testing.T, codes string) bridge.Hand {
	t.Helper()
	h, err := bridge.ParseHand(codes)
	require.NoError(t, err)
	return h
}

func TestIsRound(t *testing.T) {
	cases := []struct {
		history string
		round   int
	}{
		{"", 1},
		{"PS", 1},
		{"PS PS", 1},
		{"PS PS PS", 1},
		{"1S PS", 2},
		{"PS 1S PS", 2},
		{"PS PS 1S PS", 2},
		{"1S PS 2S PS", 3},
		{"PS 1S PS 2S PS", 3},
	}
	for _, tc := range cases {
		h := bridge.MustParseHistory(tc.history)
		first := 0
		for n := 3; n >= 1; n-- {
			if isRound(h, n) {
				first = n
			}
		}
		assert.Equal(t, tc.round, first, "history %q", tc.history)
	}
}

func TestOpeningBids(t *testing.T) {
	cases := []struct {
		name string
		hand string
		want string
	}{
		{"weak", "KS 2S 3S 4S 2H 3H 4H 2D 3D 4D 2C 3C 4C", "PS"},
		{"strong balanced", "AS KS 3S 2S AH QH 2H KD 3D 2D JC 3C 2C", "1N"},
		{"five spades", "AS KS QS 3S 2S AH 3H 2H 3D 2D 3C 2C 4C", "1S"},
		{"five hearts four spades", "AH KH QH 3H 2H AS 3S 2S 4S 2D 3D 2C 3C", "1H"},
		{"three three minors", "AS KS 3S 2S AH 3H 2H KD 3D 2D JC 3C 2C", "1C"},
		{"long diamonds", "AD KD QD 3D 2D AS 4S 3S 2S AH 3H 2H 3C", "1D"},
		{"fallback club", "AS KS 3S 2S AH KH 3H 2H AC 4C 3C 2C 2D", "1C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bid, err := DecideBid(nil, hand(t, tc.hand))
			require.NoError(t, err)
			assert.Equal(t, tc.want, bid.String())
		})
	}
}

func TestOpeningTableShape(t *testing.T) {
	rules, err := BuildRules(nil)
	require.NoError(t, err)
	require.Len(t, rules, 7)
	assert.Equal(t, "(points in [16-18]) AND (balanced in [true])", rules[1].Criterion.String())
	assert.Equal(t, "1C: any", rules[6].String())
}

func TestPassThrough(t *testing.T) {
	strong := hand(t, "AS KS QS 3S 2S AH 3H 2H KD 2D QC 2C 4C")
	for _, history := range []string{"1S PS 2S PS PS", "1S PS 4S PS", "1H PS 3N PS", "1D PS 5D PS"} {
		bid, err := DecideBid(bridge.MustParseHistory(history), strong)
		require.NoError(t, err, history)
		assert.Equal(t, bridge.Pass, bid, history)
	}
}

func TestRespondNoTrump(t *testing.T) {
	h := bridge.MustParseHistory("1N PS")
	cases := []struct {
		name string
		hand string
		want string
	}{
		{"weak hearts", "KH 9H 8H 7H 6H 2S 3S 4S 2D 3D 4D 2C 3C", "2H"},
		{"weak clubs", "KC 9C 8C 7C 6C 2S 3S 4S 2D 3D 4D 2H 3H", "2C"},
		{"weak flat", "KS 2S 3S 4S 2H 3H 4H 2D 3D 4D 2C 3C 4C", "PS"},
		{"invite", "KS QS 3S 4S AH 3H 4H 2D 3D 4D 2C 3C 4C", "2N"},
		{"six spades game", "AS KS QS 4S 5S 6S 2H 3H 2D 3D 2C 3C 4C", "4S"},
		{"five hearts force", "AH KH QH 4H 5H 2S 3S 4S 2D 3D 2C 3C 4C", "3H"},
		{"flat game", "AS KS 3S 4S AH 3H 4H 2D 3D 4D 2C 3C 4C", "3N"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bid, err := DecideBid(h, hand(t, tc.hand))
			require.NoError(t, err)
			assert.Equal(t, tc.want, bid.String())
		})
	}
}

func TestRespondSuit(t *testing.T) {
	cases := []struct {
		name    string
		history string
		hand    string
		want    string
	}{
		{"too weak", "1S PS", "KS 3S 2S 4H 3H 2H 5H 2D 3D 4D 5D 2C 3C", "PS"},
		{"single raise", "1S PS", "KS 3S 2S AH 3H 2H 4H 2D 3D 4D 5D 2C 3C", "2S"},
		{"limit raise", "1H PS", "KH 3H 2H AS QS 2S 4S QD 3D 4D 5D 2C 3C", "3H"},
		{"game raise", "1H PS", "KH 3H 2H AS KS 2S 4S AD 3D 4D 5D 2C 3C", "4H"},
		{"one diamond over club", "1C PS", "KD QD 3D 2D AH 3H 2H 3S 2S 4S 2C 3C 4C", "1D"},
		{"one heart over diamond", "1D PS", "KH QH 3H 2H AD 3D 2D 3S 2S 4S 2C 3C 4C", "1H"},
		{"one spade over heart", "1H PS", "KS QS 3S 2S AD 3D 2D 3H 2H 4D 2C 3C 4C", "1S"},
		{"minor raise", "1D PS", "KD QD 3D 2D 4D AH 3H 2H 3S 2S 2C 3C 4C", "2D"},
		{"one no trump", "1S PS", "KH QH 3H AD 3D 2D 4D 2S 5D 2C 3C 4C 5C", "1N"},
		{"two no trump", "1S PS", "KH QH 3H AD QD 2D 4D 2S 5D 2C 3C 4C 5C", "2N"},
		{"three no trump", "1S PS", "KH QH 3H AD KD 2D 4D 2S 5D AC 3C 4C 5C", "3N"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bid, err := DecideBid(bridge.MustParseHistory(tc.history), hand(t, tc.hand))
			require.NoError(t, err)
			assert.Equal(t, tc.want, bid.String())
		})
	}
}

func TestRebidAfterNoTrump(t *testing.T) {
	seventeen := hand(t, "AS KS 3S 2S AH QH 2H KD 3D 2D JC 3C 2C")
	sixteen := hand(t, "AS KS 3S 2S AH QH 2H KD 3D 2D 4C 3C 2C")

	bid, err := DecideBid(bridge.MustParseHistory("1N PS 2N PS"), seventeen)
	require.NoError(t, err)
	assert.Equal(t, "3N", bid.String())

	bid, err = DecideBid(bridge.MustParseHistory("1N PS 2N PS"), sixteen)
	require.NoError(t, err)
	assert.Equal(t, "PS", bid.String())

	bid, err = DecideBid(bridge.MustParseHistory("1N PS 2H PS"), seventeen)
	require.NoError(t, err)
	assert.Equal(t, "PS", bid.String())

	bid, err = DecideBid(bridge.MustParseHistory("1N PS 3S PS"), seventeen)
	require.NoError(t, err)
	assert.Equal(t, "4S", bid.String())

	bid, err = DecideBid(bridge.MustParseHistory("1N PS 3H PS"), seventeen)
	require.NoError(t, err)
	assert.Equal(t, "4H", bid.String())

	twoHearts := hand(t, "AS KS 3S 2S AH QH KD 3D 2D JC 3C 2C 4C")
	bid, err = DecideBid(bridge.MustParseHistory("1N PS 3H PS"), twoHearts)
	require.NoError(t, err)
	assert.Equal(t, "3N", bid.String())
}

func TestRebidAfterRaise(t *testing.T) {
	cases := []struct {
		name    string
		history string
		hand    string
		want    string
	}{
		{"game after single raise", "1S PS 2S PS", "AS KS QS JS 2S AH KH 2H AD 2D 3C 2C 4C", "4S"},
		{"invite after single raise", "1S PS 2S PS", "AS KS QS 3S 2S AH 3H 2H KD 2D QC 2C 4C", "3S"},
		{"minimum after single raise", "1S PS 2S PS", "AS KS QS 3S 2S AH 3H 2H 3D 2D 3C 2C 4C", "PS"},
		{"game after limit raise", "1S PS 3S PS", "AS KS QS 3S 2S AH 3H 2H 3D 2D 3C 2C 4C", "4S"},
		{"minimum after limit raise", "1S PS 3S PS", "AS KS JS 3S 2S AH 3H 2H 3D 2D 4C 3C 2C", "PS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bid, err := DecideBid(bridge.MustParseHistory(tc.history), hand(t, tc.hand))
			require.NoError(t, err)
			assert.Equal(t, tc.want, bid.String())
		})
	}
}

func TestThreeLevelRaiseHasNoInvitation(t *testing.T) {
	rules, err := BuildRules(bridge.MustParseHistory("1H PS 3H PS"))
	require.NoError(t, err)
	for _, r := range rules {
		if r.Bid.String() == "3H" {
			for _, h := range randomHands(t, 100) {
				assert.False(t, r.Criterion.Match(h), "3H rebid matched %s", h.Compact())
			}
		}
	}
}

func TestRebidAfterMajorResponse(t *testing.T) {
	cases := []struct {
		name    string
		history string
		hand    string
		want    string
	}{
		{"minimum raise", "1C PS 1S PS", "KS QS 3S 2S AC 3C 2C 4C AD 3D 2D 2H 3H", "2S"},
		{"strong balanced", "1C PS 1S PS", "KS QS 3S AH KH 2H AC KC 3C 4C QD 3D 2D", "2N"},
		{"spades over hearts", "1D PS 1H PS", "KS QS 3S 2S AD 3D 2D 4D AH 2H 2C 3C 4C", "1S"},
		{"minimum balanced", "1D PS 1H PS", "KS QS 3S AD 3D 2D 4D AH 2H 3H 2C 3C 4C", "1N"},
		{"rebid six card suit", "1D PS 1H PS", "KS 2S AD KD 3D 2D 4D 5D QH 2H 2C 3C 4C", "2D"},
		{"jump rebid", "1D PS 1H PS", "KS 2S AD KD QD 2D 4D 5D 3H 2H KC 3C 4C", "3D"},
		{"new suit", "1D PS 1S PS", "2S AD KD 3D 2D 4D AH 2H 3H KC QC 3C 4C", "2C"},
		{"jump shift", "1D PS 1S PS", "2S AD KD QD 2D 4D AH KH 3H 2H KC 3C 4C", "3H"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bid, err := DecideBid(bridge.MustParseHistory(tc.history), hand(t, tc.hand))
			require.NoError(t, err)
			assert.Equal(t, tc.want, bid.String())
		})
	}
}

func TestUnmodeledAuctionsHaveNoRules(t *testing.T) {
	h := hand(t, "AS KS 3S 2S AH QH 2H KD 3D 2D JC 3C 2C")
	for _, history := range []string{"1C PS 1D PS", "1S PS 1N PS", "1H PS 2N PS", "1S PS 2C PS", "1S PS 2S PS 3S PS"} {
		rules, err := BuildRules(bridge.MustParseHistory(history))
		require.NoError(t, err, history)
		assert.Empty(t, rules, history)

		_, err = DecideBid(bridge.MustParseHistory(history), h)
		assert.ErrorIs(t, err, ErrNoApplicableRule, history)
	}
}
