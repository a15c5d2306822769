package bridge

import (
	"fmt"
	"sort"
	"strings"
)

// HandSize is the number of cards dealt to each player.
const HandSize = 13

// Hand is an immutable set of thirteen distinct cards. Cards are kept in
// descending id order, which groups them by suit (spades first) with
// descending rank inside each suit.
type Hand struct {
	cards    [HandSize]Card
	lengths  [NumSuits]int
	hcp      int
	balanced bool
}

// NewHand builds a hand from exactly thirteen distinct cards.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}
	var h Hand
	seen := make(map[Card]bool, HandSize)
	for i, c := range cards {
		if !c.suit.Valid() || !c.rank.Valid() {
			return Hand{}, fmt.Errorf("%w: %v", ErrInvalidCardID, c)
		}
		if seen[c] {
			return Hand{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
		h.cards[i] = c
		h.lengths[c.suit]++
		h.hcp += c.HCPoints()
	}
	sort.Slice(h.cards[:], func(i, j int) bool {
		return h.cards[i].ID() > h.cards[j].ID()
	})
	h.balanced = isBalanced(h.lengths)
	return h, nil
}

// HandFromIndices builds a hand from 0-indexed positions in the canonical
// deck (see Deck).
func HandFromIndices(indices ...int) (Hand, error) {
	cards := make([]Card, 0, len(indices))
	for _, idx := range indices {
		c, err := CardFromID(idx + 1)
		if err != nil {
			return Hand{}, err
		}
		cards = append(cards, c)
	}
	return NewHand(cards...)
}

// HandFromCodes builds a hand from two-character card codes.
func HandFromCodes(codes ...string) (Hand, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return Hand{}, err
		}
		cards = append(cards, c)
	}
	return NewHand(cards...)
}

// ParseHand builds a hand from card codes separated by spaces or commas,
// e.g. "AS KS 4H ...".
func ParseHand(s string) (Hand, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	return HandFromCodes(fields...)
}

func isBalanced(lengths [NumSuits]int) bool {
	doubletons := 0
	for _, n := range lengths {
		if n < 2 {
			return false
		}
		if n == 2 {
			doubletons++
		}
	}
	return doubletons <= 1
}

// Cards returns a copy of the cards in descending id order.
func (h Hand) Cards() []Card {
	out := make([]Card, HandSize)
	copy(out, h.cards[:])
	return out
}

// Suit returns the cards held in suit s, highest rank first.
func (h Hand) Suit(s Suit) []Card {
	out := make([]Card, 0, h.Length(s))
	for _, c := range h.cards {
		if c.suit == s {
			out = append(out, c)
		}
	}
	return out
}

// Length returns the number of cards held in suit s.
func (h Hand) Length(s Suit) int {
	if !s.Valid() {
		return 0
	}
	return h.lengths[s]
}

// Contains reports whether the hand holds card c.
func (h Hand) Contains(c Card) bool {
	for _, held := range h.cards {
		if held == c {
			return true
		}
	}
	return false
}

// HCPoints returns the total high-card points of the hand.
func (h Hand) HCPoints() int {
	return h.hcp
}

// Points returns high-card points plus one point for every card beyond the
// fourth in each suit.
func (h Hand) Points() int {
	points := h.hcp
	for _, n := range h.lengths {
		points += max(0, n-4)
	}
	return points
}

// IsBalanced reports whether no suit is shorter than two cards and at most
// one suit is a doubleton.
func (h Hand) IsBalanced() bool {
	return h.balanced
}

// String renders one line per suit, spades first, e.g. "S: AK93".
func (h Hand) String() string {
	lines := make([]string, 0, NumSuits)
	for i := NumSuits - 1; i >= 0; i-- {
		s := Suits[i]
		var b strings.Builder
		b.WriteByte(s.Initial())
		b.WriteString(": ")
		for _, c := range h.Suit(s) {
			b.WriteString(c.rank.String())
		}
		if h.Length(s) == 0 {
			b.WriteString("-")
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Compact renders the cards on one line separated by spaces.
func (h Hand) Compact() string {
	codes := make([]string, HandSize)
	for i, c := range h.cards {
		codes[i] = c.String()
	}
	return strings.Join(codes, " ")
}
