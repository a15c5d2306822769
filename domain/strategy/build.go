package strategy

import (
	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/luca-patrignani/bridge/domain/criterion"
)

var oneNoTrump = bridge.MustBid(1, bridge.NoTrump)

// isRound reports whether the player about to call is making the n-th call
// of the partnership's bidding, counting only from the first call after
// partner's opening passes. Round 1 holds while partner has not yet called
// or has only passed.
func isRound(h bridge.History, n int) bool {
	if n == 1 {
		return len(h) < 2 || (len(h) < 4 && h[len(h)-2].IsPass())
	}
	return len(h) > 1 && isRound(h[:len(h)-2], n-1)
}

// BuildRules returns the rule table for the next call after h, in priority
// order. The table is a pure function of the history. Auction shapes the
// book does not model yield an empty table.
//
// Opponents' calls are not taken into account, so a rule may name a bid
// that is not legal in a contested auction.
func BuildRules(h bridge.History) ([]Rule, error) {
	var b book
	n := len(h)
	switch {
	case isRound(h, 1):
		opening(&b)
	case h[n-2].IsPass(), h[n-2].IsGame():
		b.add(criterion.Always, bridge.Pass)
	case isRound(h, 2) && h[n-2] == oneNoTrump:
		respondNoTrump(&b, h[n-2])
	case isRound(h, 2) && h[n-2].Level() == 1:
		respondSuit(&b, h[n-2])
	case isRound(h, 3) && h[n-4] == oneNoTrump:
		rebidNoTrump(&b, h[n-2])
	case isRound(h, 3) && h[n-4].Level() == 1:
		rebidSuit(&b, h[n-4], h[n-2])
	}
	return b.result()
}
