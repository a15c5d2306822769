package strategy

import (
	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/luca-patrignani/bridge/domain/criterion"
)

// weakSuits lists the suits a weak responder to 1N may sign off in, in
// priority order.
var weakSuits = [...]bridge.Suit{bridge.Spades, bridge.Hearts, bridge.Clubs, bridge.Diamonds}

// respondNoTrump answers partner's 1N opening.
func respondNoTrump(b *book, open bridge.Bid) {
	for _, s := range weakSuits {
		b.addNext(points(0, 7).WithLength(s, 5, 13), open, s.Strain())
	}
	b.add(points(0, 7), bridge.Pass)
	b.addJump(points(8, 9), open, bridge.NoTrump)

	for _, s := range [...]bridge.Suit{bridge.Spades, bridge.Hearts} {
		b.addAt(points(10, 40).WithLength(s, 6, 13), 4, s.Strain())
	}
	for _, s := range [...]bridge.Suit{bridge.Spades, bridge.Hearts} {
		b.addAt(points(10, 40).WithLength(s, 5, 5), 3, s.Strain())
	}
	b.addAt(criterion.Always, 3, bridge.NoTrump)
}

// respondSuit answers partner's one-level suit opening.
func respondSuit(b *book, open bridge.Bid) {
	suit := open.Strain().Suit()

	b.add(points(0, 5), bridge.Pass)

	if open.Strain().IsMajor() {
		support := length(suit, 3, 13)
		b.addAt(support.WithPoints(6, 10), 2, open.Strain())
		b.addAt(support.WithPoints(11, 12), 3, open.Strain())
		b.addAt(support.WithPoints(13, 40), 4, open.Strain())
	}

	if suit == bridge.Clubs {
		b.addNext(anyOf(
			length(bridge.Diamonds, 7, 13),
			length(bridge.Diamonds, 6, 6).WithLength(bridge.Hearts, 0, 5).WithLength(bridge.Spades, 0, 5),
			length(bridge.Diamonds, 5, 5).WithLength(bridge.Hearts, 0, 4).WithLength(bridge.Spades, 0, 4),
			length(bridge.Diamonds, 4, 4).WithLength(bridge.Hearts, 0, 3).WithLength(bridge.Spades, 0, 3),
		), open, bridge.StrainDiamonds)
	}
	if !suit.IsMajor() {
		b.addNext(anyOf(
			length(bridge.Hearts, 7, 13),
			length(bridge.Hearts, 6, 6).WithLength(bridge.Spades, 0, 5),
			length(bridge.Hearts, 5, 5).WithLength(bridge.Spades, 0, 4),
			length(bridge.Hearts, 4, 4).WithLength(bridge.Spades, 0, 4),
		), open, bridge.StrainHearts)
	}
	if suit != bridge.Spades {
		b.addNext(length(bridge.Spades, 4, 13), open, bridge.StrainSpades)
	}

	if !suit.IsMajor() {
		raise := length(bridge.Hearts, 0, 3).WithLength(bridge.Spades, 0, 3).WithLength(suit, 5, 13)
		b.addAt(raise.WithPoints(6, 10), 2, open.Strain())
		b.addAt(raise.WithPoints(11, 12), 3, open.Strain())
	}

	b.addNext(points(6, 10), open, bridge.NoTrump)
	b.addJump(points(11, 12), open, bridge.NoTrump)
	b.addAt(criterion.Always, 3, bridge.NoTrump)
}
