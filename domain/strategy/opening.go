package strategy

import (
	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/luca-patrignani/bridge/domain/criterion"
)

// opening is the table used while partner has not yet opened. Majors are
// shown before minors and the longer major wins ties.
func opening(b *book) {
	b.add(points(0, 12), bridge.Pass)

	b.addAt(points(16, 18).WithBalanced(true), 1, bridge.NoTrump)

	b.addAt(anyOf(
		length(bridge.Spades, 7, 13),
		length(bridge.Spades, 6, 6).WithLength(bridge.Hearts, 0, 5),
		length(bridge.Spades, 5, 5).WithLength(bridge.Hearts, 0, 4),
	), 1, bridge.StrainSpades)

	b.addAt(length(bridge.Hearts, 5, 13), 1, bridge.StrainHearts)

	// With 3-3 in the minors open the cheaper one.
	b.addAt(length(bridge.Diamonds, 3, 3).WithLength(bridge.Clubs, 3, 3), 1, bridge.StrainClubs)

	b.addAt(anyOf(
		length(bridge.Diamonds, 7, 13),
		length(bridge.Diamonds, 6, 6).WithLength(bridge.Clubs, 0, 6),
		length(bridge.Diamonds, 5, 5).WithLength(bridge.Clubs, 0, 5),
		length(bridge.Diamonds, 4, 4).WithLength(bridge.Clubs, 0, 4),
	), 1, bridge.StrainDiamonds)

	b.addAt(criterion.Always, 1, bridge.StrainClubs)
}
