package strategy

import (
	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/luca-patrignani/bridge/domain/criterion"
)

var twoNoTrump = bridge.MustBid(2, bridge.NoTrump)

// gameTarget is the combined point count at which the partnership bids game.
const gameTarget = 26

// threeLevelRaiseFloor is the responder minimum assumed after a raise to
// the three level. A jump raise promises 11-12, so with a floor of 12 an
// opener holding 14 opposite an 11-count still bids game, and the
// invitational band for a three-level raise is empty.
//
// TODO: confirm with the rule book owners whether 14 opposite a three-level
// raise should bid game (floor 12) or stop (ceiling 11).
const threeLevelRaiseFloor = 12

// rebidNoTrump is opener's second call after opening 1N. last is partner's
// response.
func rebidNoTrump(b *book, last bridge.Bid) {
	switch {
	case last == twoNoTrump:
		// A 1N opening shows 16-18.
		b.addAt(points(17, 18), 3, bridge.NoTrump)
		b.add(points(16, 17), bridge.Pass)
		b.add(criterion.Always, bridge.Pass)
	case last.Level() == 2:
		b.add(criterion.Always, bridge.Pass)
	case last.Level() == 3 && last.Strain().IsSuit():
		b.addAt(length(last.Strain().Suit(), 3, 13), 4, last.Strain())
		b.addAt(criterion.Always, 3, bridge.NoTrump)
	}
}

// rebidSuit is opener's second call after a one-level suit opening.
func rebidSuit(b *book, open, last bridge.Bid) {
	switch {
	case open.Strain().IsMajor() && last.Strain() == open.Strain():
		rebidAfterRaise(b, open, last)
	case last.Strain().IsMajor() && last.Level() == 1:
		rebidAfterMajor(b, open, last)
	}
}

// rebidAfterRaise splits the game target against the band partner's raise
// promised.
func rebidAfterRaise(b *book, open, last bridge.Bid) {
	var lo, hi int
	switch last.Level() {
	case 2:
		lo, hi = 6, 10
	case 3:
		lo, hi = threeLevelRaiseFloor, 12
	default:
		return
	}
	b.addAt(points(gameTarget-lo, 40), 4, open.Strain())
	b.addAt(points(gameTarget-hi, gameTarget-lo-1), 3, open.Strain())
	b.add(points(13, gameTarget-hi-1), bridge.Pass)
	b.add(criterion.Always, bridge.Pass)
}

// rebidAfterMajor answers a new major at the one level.
func rebidAfterMajor(b *book, open, last bridge.Bid) {
	major := last.Strain().Suit()
	opened := open.Strain().Suit()

	support := length(major, 4, 13)
	b.addAt(support.WithPoints(13, 15), 2, last.Strain())
	b.addAt(support.WithPoints(16, 18), 3, last.Strain())
	b.addAt(support.WithPoints(19, 21), 4, last.Strain())

	b.addAt(points(19, 21).WithBalanced(true), 2, bridge.NoTrump)

	var others []bridge.Suit
	for _, s := range bridge.Suits {
		if s != major && s != opened {
			others = append(others, s)
		}
	}
	for _, s := range others {
		b.addJump(length(s, 4, 13).WithPoints(19, 21).WithBalanced(false), last, s.Strain())
	}
	b.addAt(length(opened, 6, 13).WithPoints(19, 21).WithBalanced(false), 4, open.Strain())

	if major == bridge.Hearts {
		b.addNext(length(bridge.Spades, 4, 13), last, bridge.StrainSpades)
	}
	b.addNext(points(13, 15).WithBalanced(true), last, bridge.NoTrump)
	b.addJump(length(opened, 6, 13).WithPoints(16, 18), last, open.Strain())
	b.addNext(length(opened, 6, 13).WithPoints(13, 15), last, open.Strain())
	for _, s := range others {
		b.addNext(length(s, 4, 13), last, s.Strain())
	}
	b.addNext(criterion.Always, last, open.Strain())
}
