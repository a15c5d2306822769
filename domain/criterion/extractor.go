package criterion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luca-patrignani/bridge/domain/bridge"
)

// ExtractorKind distinguishes the three ways a discrete value is read from
// a hand.
type ExtractorKind uint8

const (
	// SuitLength reads the number of cards held in one suit.
	SuitLength ExtractorKind = iota
	// Attribute reads a named boolean property of the hand.
	Attribute
	// Query reads the result of a named numeric hand query.
	Query
)

// Extractor is a pure function from a hand to a discrete value, identified
// by its kind and parameters. Two extractors are the same exactly when they
// compare equal with ==.
type Extractor struct {
	Kind ExtractorKind
	Suit bridge.Suit
	Name string
}

var attributes = map[string]func(bridge.Hand) bool{
	"balanced": bridge.Hand.IsBalanced,
}

// Numeric queries and their declared upper bound.
var queries = map[string]struct {
	fn  func(bridge.Hand) int
	max int
}{
	"points":    {bridge.Hand.Points, 40},
	"hc_points": {bridge.Hand.HCPoints, 40},
}

var (
	PointsExtractor   = QueryOf("points")
	HCPointsExtractor = QueryOf("hc_points")
	BalancedExtractor = AttributeOf("balanced")
)

// LengthOf returns the extractor reading the length of suit s.
func LengthOf(s bridge.Suit) Extractor {
	return Extractor{Kind: SuitLength, Suit: s}
}

// AttributeOf returns the extractor reading a named boolean attribute.
// Unknown names yield an extractor with an empty universe.
func AttributeOf(name string) Extractor {
	return Extractor{Kind: Attribute, Name: name}
}

// QueryOf returns the extractor reading a named numeric query.
// Unknown names yield an extractor with an empty universe.
func QueryOf(name string) Extractor {
	return Extractor{Kind: Query, Name: name}
}

// Universe returns every value the extractor can produce.
func (e Extractor) Universe() ValueSet {
	switch e.Kind {
	case SuitLength:
		if !e.Suit.Valid() {
			return 0
		}
		return Between(0, bridge.HandSize)
	case Attribute:
		if _, ok := attributes[e.Name]; ok {
			return Values(0, 1)
		}
	case Query:
		if q, ok := queries[e.Name]; ok {
			return Between(0, q.max)
		}
	}
	return 0
}

// Extract reads the value from h. It returns -1 when the extractor is not
// defined, which no ValueSet contains.
func (e Extractor) Extract(h bridge.Hand) int {
	switch e.Kind {
	case SuitLength:
		if e.Suit.Valid() {
			return h.Length(e.Suit)
		}
	case Attribute:
		if fn, ok := attributes[e.Name]; ok {
			if fn(h) {
				return 1
			}
			return 0
		}
	case Query:
		if q, ok := queries[e.Name]; ok {
			return q.fn(h)
		}
	}
	return -1
}

func (e Extractor) String() string {
	if e.Kind == SuitLength {
		return strings.ToLower(e.Suit.String())
	}
	return e.Name
}

func (e Extractor) formatValue(v int) string {
	if e.Kind == Attribute {
		return strconv.FormatBool(v == 1)
	}
	return strconv.Itoa(v)
}

func (e Extractor) describe(vs ValueSet) string {
	return fmt.Sprintf("(%s in [%s])", e, vs.format(e.formatValue))
}
