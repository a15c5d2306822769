package criterion

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/luca-patrignani/bridge/domain/bridge"
)

const (
	fieldPoints = iota
	fieldClubs
	fieldDiamonds
	fieldHearts
	fieldSpades
	fieldBalanced
	numFields
)

var fieldExtractors = [numFields]Extractor{
	fieldPoints:   PointsExtractor,
	fieldClubs:    LengthOf(bridge.Clubs),
	fieldDiamonds: LengthOf(bridge.Diamonds),
	fieldHearts:   LengthOf(bridge.Hearts),
	fieldSpades:   LengthOf(bridge.Spades),
	fieldBalanced: BalancedExtractor,
}

func suitField(s bridge.Suit) int {
	return fieldClubs + int(s)
}

// HandRange is the conjunction of per-field choices over a fixed schema:
// points, the length of each suit and balanced-ness. A field that was never
// set is unconstrained. The zero value matches every hand.
//
// Build ranges by chaining on values:
//
//	HandRange{}.WithPoints(16, 18).WithBalanced(true)
type HandRange struct {
	fields [numFields]ValueSet
	set    uint8
}

func (r HandRange) with(f int, vs ValueSet) HandRange {
	r.fields[f] = vs & fieldExtractors[f].Universe()
	r.set |= 1 << f
	return r
}

// WithPoints constrains total points to lo..hi.
func (r HandRange) WithPoints(lo, hi int) HandRange {
	return r.with(fieldPoints, Between(lo, hi))
}

// WithLength constrains the length of suit s to lo..hi.
func (r HandRange) WithLength(s bridge.Suit, lo, hi int) HandRange {
	return r.with(suitField(s), Between(lo, hi))
}

// WithLengthIn constrains the length of suit s to the listed values.
func (r HandRange) WithLengthIn(s bridge.Suit, vs ...int) HandRange {
	return r.with(suitField(s), Values(vs...))
}

// WithBalanced constrains balanced-ness to b.
func (r HandRange) WithBalanced(b bool) HandRange {
	return r.with(fieldBalanced, Values(boolValue(b)))
}

func (r HandRange) field(f int) (ValueSet, bool) {
	return r.fields[f], r.set&(1<<f) != 0
}

// PointsRange returns the accepted points and whether they are constrained.
func (r HandRange) PointsRange() (ValueSet, bool) {
	return r.field(fieldPoints)
}

// LengthRange returns the accepted lengths of suit s and whether they are
// constrained.
func (r HandRange) LengthRange(s bridge.Suit) (ValueSet, bool) {
	return r.field(suitField(s))
}

// BalancedRange returns the accepted balanced values (0 = false, 1 = true)
// and whether they are constrained.
func (r HandRange) BalancedRange() (ValueSet, bool) {
	return r.field(fieldBalanced)
}

func (r HandRange) constrained() int {
	return bits.OnesCount8(r.set)
}

// IsEmpty reports whether some constrained field accepts no value, so that
// no hand can match.
func (r HandRange) IsEmpty() bool {
	for f := 0; f < numFields; f++ {
		if vs, ok := r.field(f); ok && vs.IsEmpty() {
			return true
		}
	}
	return false
}

// Choices returns one Choice per constrained field, in schema order.
func (r HandRange) Choices() []Choice {
	out := make([]Choice, 0, r.constrained())
	for f := 0; f < numFields; f++ {
		if vs, ok := r.field(f); ok {
			out = append(out, Choice{Extractor: fieldExtractors[f], Values: vs})
		}
	}
	return out
}

func (r HandRange) Match(h bridge.Hand) bool {
	for f := 0; f < numFields; f++ {
		if vs, ok := r.field(f); ok && !vs.Contains(fieldExtractors[f].Extract(h)) {
			return false
		}
	}
	return true
}

// Explain lists, in schema order, every constrained field that rejects h,
// e.g. "points: 12 not in [16-18]". It is empty when r matches h.
func (r HandRange) Explain(h bridge.Hand) []string {
	var out []string
	for f := 0; f < numFields; f++ {
		vs, ok := r.field(f)
		if !ok {
			continue
		}
		ex := fieldExtractors[f]
		if v := ex.Extract(h); !vs.Contains(v) {
			out = append(out, fmt.Sprintf("%s: %s not in [%s]", ex, ex.formatValue(v), vs.format(ex.formatValue)))
		}
	}
	return out
}

// Invert applies De Morgan over the per-field choices.
func (r HandRange) Invert() Criterion {
	choices := r.Choices()
	inverted := make([]Criterion, len(choices))
	for i, c := range choices {
		inverted[i] = c.Invert()
	}
	return AnyOf(inverted...)
}

// IntersectRange intersects two ranges field by field. The result is exact
// whichever fields each side constrains.
func (r HandRange) IntersectRange(other HandRange) HandRange {
	out := r
	for f := 0; f < numFields; f++ {
		vs, ok := other.field(f)
		if !ok {
			continue
		}
		if mine, set := r.field(f); set {
			vs &= mine
		}
		out = out.with(f, vs)
	}
	return out
}

func (r HandRange) Intersect(other Criterion) Criterion {
	if o, ok := other.(HandRange); ok {
		return r.IntersectRange(o)
	}
	return AllOf(r, other)
}

// UnionWith returns the exact union of two ranges. That is only possible
// when they agree on every field but at most one, otherwise it fails with
// ErrIncompatibleCriteria.
func (r HandRange) UnionWith(other HandRange) (HandRange, error) {
	diff := -1
	for f := 0; f < numFields; f++ {
		a, aok := r.field(f)
		b, bok := other.field(f)
		if a == b && aok == bok {
			continue
		}
		if diff >= 0 {
			return HandRange{}, fmt.Errorf("%w: ranges differ in more than one field", ErrIncompatibleCriteria)
		}
		diff = f
	}
	if diff < 0 {
		return r, nil
	}
	a, aok := r.field(diff)
	b, bok := other.field(diff)
	out := r
	if !aok || !bok {
		out.fields[diff] = 0
		out.set &^= 1 << diff
		return out, nil
	}
	return out.with(diff, a|b), nil
}

func (r HandRange) Union(other Criterion) Criterion {
	if o, ok := other.(HandRange); ok {
		if merged, err := r.UnionWith(o); err == nil {
			return merged
		}
	}
	return AnyOf(r, other)
}

func (r HandRange) Kind() Kind {
	return KindHandRange
}

// String lists the constrained fields joined by AND, or "any" when nothing
// is constrained.
func (r HandRange) String() string {
	choices := r.Choices()
	if len(choices) == 0 {
		return Always.String()
	}
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = c.String()
	}
	return strings.Join(parts, " AND ")
}
