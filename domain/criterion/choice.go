package criterion

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/bridge/domain/bridge"
)

// ErrIncompatibleCriteria is returned by the strict structural operations
// when the operands are not built over the same extractor or schema.
var ErrIncompatibleCriteria = errors.New("incompatible criteria")

// Choice is the atomic criterion "extracted value is in Values". Values is
// always a subset of the extractor's universe.
type Choice struct {
	Extractor Extractor
	Values    ValueSet
}

// NewChoice builds a Choice, dropping values outside the extractor's
// universe.
func NewChoice(e Extractor, vs ValueSet) Choice {
	return Choice{Extractor: e, Values: vs & e.Universe()}
}

// Length accepts hands holding lo..hi cards in suit s.
func Length(s bridge.Suit, lo, hi int) Choice {
	return NewChoice(LengthOf(s), Between(lo, hi))
}

// LengthIn accepts hands whose length in suit s is one of vs.
func LengthIn(s bridge.Suit, vs ...int) Choice {
	return NewChoice(LengthOf(s), Values(vs...))
}

// Points accepts hands whose total points are in lo..hi.
func Points(lo, hi int) Choice {
	return NewChoice(PointsExtractor, Between(lo, hi))
}

// HCPoints accepts hands whose high-card points are in lo..hi.
func HCPoints(lo, hi int) Choice {
	return NewChoice(HCPointsExtractor, Between(lo, hi))
}

// Balanced accepts hands whose balanced-ness equals b.
func Balanced(b bool) Choice {
	return NewChoice(BalancedExtractor, Values(boolValue(b)))
}

func boolValue(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (c Choice) Match(h bridge.Hand) bool {
	return c.Values.Contains(c.Extractor.Extract(h))
}

// Invert returns the Choice accepting every other value of the universe.
func (c Choice) Invert() Criterion {
	return Choice{Extractor: c.Extractor, Values: c.Values.Complement(c.Extractor.Universe())}
}

// Compatible reports whether both choices read the same extractor.
func (c Choice) Compatible(other Choice) bool {
	return c.Extractor == other.Extractor
}

// UnionWith merges two compatible choices exactly.
func (c Choice) UnionWith(other Choice) (Choice, error) {
	if !c.Compatible(other) {
		return Choice{}, fmt.Errorf("%w: %s and %s", ErrIncompatibleCriteria, c.Extractor, other.Extractor)
	}
	return Choice{Extractor: c.Extractor, Values: c.Values | other.Values}, nil
}

// IntersectWith intersects two compatible choices exactly.
func (c Choice) IntersectWith(other Choice) (Choice, error) {
	if !c.Compatible(other) {
		return Choice{}, fmt.Errorf("%w: %s and %s", ErrIncompatibleCriteria, c.Extractor, other.Extractor)
	}
	return Choice{Extractor: c.Extractor, Values: c.Values & other.Values}, nil
}

func (c Choice) Union(other Criterion) Criterion {
	if o, ok := other.(Choice); ok && c.Compatible(o) {
		merged, _ := c.UnionWith(o)
		return merged
	}
	return AnyOf(c, other)
}

func (c Choice) Intersect(other Criterion) Criterion {
	if o, ok := other.(Choice); ok && c.Compatible(o) {
		merged, _ := c.IntersectWith(o)
		return merged
	}
	return AllOf(c, other)
}

// IsEmpty reports whether the choice accepts no value.
func (c Choice) IsEmpty() bool {
	return c.Values.IsEmpty()
}

// IsFull reports whether the choice accepts every value of its universe.
func (c Choice) IsFull() bool {
	return c.Values == c.Extractor.Universe()
}

func (c Choice) Kind() Kind {
	return KindChoice
}

// String renders the choice, e.g. "(points in [16-18])".
func (c Choice) String() string {
	return c.Extractor.describe(c.Values)
}
