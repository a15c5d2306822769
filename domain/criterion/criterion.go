package criterion

import (
	"github.com/luca-patrignani/bridge/domain/bridge"
)

// Kind tags the variant of a Criterion.
type Kind uint8

const (
	KindAlways Kind = iota
	KindNever
	KindChoice
	KindFunc
	KindNot
	KindAnd
	KindOr
	KindHandRange
)

var kindNames = [...]string{"always", "never", "choice", "func", "not", "and", "or", "hand_range"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Criterion is a boolean predicate over a hand, closed under negation,
// union and intersection.
//
// Union and Intersect never fail. Compatible operands are merged
// structurally; anything else is wrapped in an Or or And node.
type Criterion interface {
	// Match reports whether the hand satisfies the predicate.
	Match(h bridge.Hand) bool
	// Invert returns the negation.
	Invert() Criterion
	Union(other Criterion) Criterion
	Intersect(other Criterion) Criterion
	Kind() Kind
	// String returns a human-readable description.
	String() string
}

type always struct{}

func (always) Match(bridge.Hand) bool              { return true }
func (always) Invert() Criterion                   { return Never }
func (always) Union(Criterion) Criterion           { return Always }
func (always) Intersect(other Criterion) Criterion { return other }
func (always) Kind() Kind                          { return KindAlways }
func (always) String() string                      { return "any" }

type never struct{}

func (never) Match(bridge.Hand) bool          { return false }
func (never) Invert() Criterion               { return Always }
func (never) Union(other Criterion) Criterion { return other }
func (never) Intersect(Criterion) Criterion   { return Never }
func (never) Kind() Kind                      { return KindNever }
func (never) String() string                  { return "none" }

var (
	// Always matches every hand. It is the identity of Intersect and
	// absorbs Union.
	Always Criterion = always{}
	// Never matches no hand.
	Never Criterion = never{}
)

// Not returns the negation of c.
func Not(c Criterion) Criterion {
	return c.Invert()
}

// Compatible reports whether a and b can be combined structurally: two
// Choices over the same extractor, or two HandRanges.
func Compatible(a, b Criterion) bool {
	switch x := a.(type) {
	case Choice:
		y, ok := b.(Choice)
		return ok && x.Compatible(y)
	case HandRange:
		_, ok := b.(HandRange)
		return ok
	}
	return false
}

// Func is an atomic criterion backed by an arbitrary function. It cannot be
// merged with anything and inverts to a Negation.
type Func struct {
	Name string
	Fn   func(bridge.Hand) bool
}

func (f Func) Match(h bridge.Hand) bool            { return f.Fn(h) }
func (f Func) Invert() Criterion                   { return Negation{Inner: f} }
func (f Func) Union(other Criterion) Criterion     { return AnyOf(f, other) }
func (f Func) Intersect(other Criterion) Criterion { return AllOf(f, other) }
func (f Func) Kind() Kind                          { return KindFunc }
func (f Func) String() string                      { return f.Name }

// Negation wraps a criterion that has no structural inverse.
type Negation struct {
	Inner Criterion
}

func (n Negation) Match(h bridge.Hand) bool            { return !n.Inner.Match(h) }
func (n Negation) Invert() Criterion                   { return n.Inner }
func (n Negation) Union(other Criterion) Criterion     { return AnyOf(n, other) }
func (n Negation) Intersect(other Criterion) Criterion { return AllOf(n, other) }
func (n Negation) Kind() Kind                          { return KindNot }
func (n Negation) String() string                      { return "NOT " + nested(n.Inner) }

// nested parenthesizes compound descriptions so they can be embedded in a
// larger expression.
func nested(c Criterion) string {
	switch x := c.(type) {
	case And, Or:
		return "(" + c.String() + ")"
	case HandRange:
		if x.constrained() > 1 {
			return "(" + c.String() + ")"
		}
	}
	return c.String()
}
