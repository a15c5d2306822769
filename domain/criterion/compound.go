package criterion

import (
	"strings"

	"github.com/luca-patrignani/bridge/domain/bridge"
)

// And matches hands that satisfy every term. Build it with AllOf.
type And struct {
	terms []Criterion
}

// Or matches hands that satisfy at least one term. Build it with AnyOf.
type Or struct {
	terms []Criterion
}

// AllOf returns the conjunction of cs in normalized form: nested Ands are
// flattened, Always terms are dropped, Never absorbs the result, choices
// over the same extractor are intersected and hand ranges are merged field
// by field. It returns Always for no terms and the term itself for one.
func AllOf(cs ...Criterion) Criterion {
	var terms []Criterion
	var add func(c Criterion) bool
	add = func(c Criterion) bool {
		switch x := c.(type) {
		case nil, always:
			return true
		case never:
			return false
		case And:
			for _, t := range x.terms {
				if !add(t) {
					return false
				}
			}
			return true
		case Choice:
			if x.IsEmpty() {
				return false
			}
			if x.IsFull() {
				return true
			}
			for i, t := range terms {
				if y, ok := t.(Choice); ok && y.Compatible(x) {
					merged, _ := y.IntersectWith(x)
					if merged.IsEmpty() {
						return false
					}
					terms[i] = merged
					return true
				}
			}
		case HandRange:
			if x.IsEmpty() {
				return false
			}
			if x.constrained() == 0 {
				return true
			}
			for i, t := range terms {
				if y, ok := t.(HandRange); ok {
					merged := y.IntersectRange(x)
					if merged.IsEmpty() {
						return false
					}
					terms[i] = merged
					return true
				}
			}
		}
		terms = append(terms, c)
		return true
	}
	for _, c := range cs {
		if !add(c) {
			return Never
		}
	}
	switch len(terms) {
	case 0:
		return Always
	case 1:
		return terms[0]
	}
	return And{terms: terms}
}

// AnyOf returns the disjunction of cs in normalized form, the dual of
// AllOf. Hand ranges are merged only where UnionWith is exact.
func AnyOf(cs ...Criterion) Criterion {
	var terms []Criterion
	var add func(c Criterion) bool
	add = func(c Criterion) bool {
		switch x := c.(type) {
		case nil, never:
			return true
		case always:
			return false
		case Or:
			for _, t := range x.terms {
				if !add(t) {
					return false
				}
			}
			return true
		case Choice:
			if x.IsFull() {
				return false
			}
			if x.IsEmpty() {
				return true
			}
			for i, t := range terms {
				if y, ok := t.(Choice); ok && y.Compatible(x) {
					merged, _ := y.UnionWith(x)
					if merged.IsFull() {
						return false
					}
					terms[i] = merged
					return true
				}
			}
		case HandRange:
			if x.constrained() == 0 {
				return false
			}
			if x.IsEmpty() {
				return true
			}
			for i, t := range terms {
				y, ok := t.(HandRange)
				if !ok {
					continue
				}
				merged, err := y.UnionWith(x)
				if err != nil {
					continue
				}
				terms = append(terms[:i], terms[i+1:]...)
				return add(merged)
			}
		}
		terms = append(terms, c)
		return true
	}
	for _, c := range cs {
		if !add(c) {
			return Always
		}
	}
	switch len(terms) {
	case 0:
		return Never
	case 1:
		return terms[0]
	}
	return Or{terms: terms}
}

// Terms returns a copy of the conjuncts.
func (a And) Terms() []Criterion {
	return append([]Criterion(nil), a.terms...)
}

func (a And) Match(h bridge.Hand) bool {
	for _, t := range a.terms {
		if !t.Match(h) {
			return false
		}
	}
	return true
}

// Invert applies De Morgan: NOT (a AND b) = (NOT a) OR (NOT b).
func (a And) Invert() Criterion {
	inverted := make([]Criterion, len(a.terms))
	for i, t := range a.terms {
		inverted[i] = t.Invert()
	}
	return AnyOf(inverted...)
}

func (a And) Union(other Criterion) Criterion     { return AnyOf(a, other) }
func (a And) Intersect(other Criterion) Criterion { return AllOf(a, other) }
func (a And) Kind() Kind                          { return KindAnd }
func (a And) String() string                      { return join(a.terms, " AND ") }

// Terms returns a copy of the disjuncts.
func (o Or) Terms() []Criterion {
	return append([]Criterion(nil), o.terms...)
}

func (o Or) Match(h bridge.Hand) bool {
	for _, t := range o.terms {
		if t.Match(h) {
			return true
		}
	}
	return false
}

// Invert applies De Morgan: NOT (a OR b) = (NOT a) AND (NOT b).
func (o Or) Invert() Criterion {
	inverted := make([]Criterion, len(o.terms))
	for i, t := range o.terms {
		inverted[i] = t.Invert()
	}
	return AllOf(inverted...)
}

func (o Or) Union(other Criterion) Criterion     { return AnyOf(o, other) }
func (o Or) Intersect(other Criterion) Criterion { return AllOf(o, other) }
func (o Or) Kind() Kind                          { return KindOr }
func (o Or) String() string                      { return join(o.terms, " OR ") }

func join(terms []Criterion, sep string) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = nested(t)
	}
	return strings.Join(parts, sep)
}
