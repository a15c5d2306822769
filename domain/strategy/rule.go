package strategy

import (
	"fmt"

	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/luca-patrignani/bridge/domain/criterion"
)

// Rule pairs a criterion with the bid made by hands that satisfy it.
type Rule struct {
	Criterion criterion.Criterion
	Bid       bridge.Bid
}

func (r Rule) String() string {
	return fmt.Sprintf("%s: %s", r.Bid, r.Criterion)
}

// book collects the rules of one table in priority order. The first error
// sticks and later additions are ignored.
type book struct {
	rules []Rule
	err   error
}

func (b *book) add(c criterion.Criterion, bid bridge.Bid) {
	if b.err != nil {
		return
	}
	b.rules = append(b.rules, Rule{Criterion: c, Bid: bid})
}

// addAt adds a rule bidding strain at the given level.
func (b *book) addAt(c criterion.Criterion, level int, strain bridge.Strain) {
	bid, err := bridge.NewBid(level, strain)
	if err != nil {
		b.fail(err)
		return
	}
	b.add(c, bid)
}

// addNext adds a rule bidding the cheapest bid of strain at or above from.
func (b *book) addNext(c criterion.Criterion, from bridge.Bid, strain bridge.Strain) {
	bid, err := from.Next(strain)
	if err != nil {
		b.fail(err)
		return
	}
	b.add(c, bid)
}

// addJump adds a rule bidding one level above the cheapest bid of strain.
func (b *book) addJump(c criterion.Criterion, from bridge.Bid, strain bridge.Strain) {
	bid, err := from.Next(strain)
	if err == nil {
		bid, err = bid.Jump()
	}
	if err != nil {
		b.fail(err)
		return
	}
	b.add(c, bid)
}

func (b *book) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *book) result() ([]Rule, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.rules, nil
}

// anyOf is shorthand for a disjunction of hand ranges.
func anyOf(rs ...criterion.HandRange) criterion.Criterion {
	cs := make([]criterion.Criterion, len(rs))
	for i, r := range rs {
		cs[i] = r
	}
	return criterion.AnyOf(cs...)
}

func points(lo, hi int) criterion.HandRange {
	return criterion.HandRange{}.WithPoints(lo, hi)
}

func length(s bridge.Suit, lo, hi int) criterion.HandRange {
	return criterion.HandRange{}.WithLength(s, lo, hi)
}
