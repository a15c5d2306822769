package bridge

import (
	"fmt"
)

// Suit identifies one of the four suits, ordered from lowest to highest.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

var suitNames = [NumSuits]string{"CLUBS", "DIAMONDS", "HEARTS", "SPADES"}

// Suits lists every suit from lowest to highest.
var Suits = [NumSuits]Suit{Clubs, Diamonds, Hearts, Spades}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s < NumSuits
}

// String returns the upper-case suit name, e.g. "CLUBS".
func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Initial returns the first letter of the suit name.
func (s Suit) Initial() byte {
	return suitNames[s][0]
}

// IsMajor reports whether s is hearts or spades.
func (s Suit) IsMajor() bool {
	return s == Hearts || s == Spades
}

// Strain returns the strain naming the same suit.
func (s Suit) Strain() Strain {
	return Strain(s)
}

// SuitFromInitial resolves a suit from the first letter of its name.
func SuitFromInitial(c byte) (Suit, error) {
	for _, s := range Suits {
		if s.Initial() == c {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, c)
}

// Rank is the rank of a card from Two (0) up to Ace (12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of ranks in each suit.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r < NumRanks
}

// String returns the one-character rank code, with "T" for ten.
func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankChars[r : r+1]
}

// HCPoints returns the high-card points of the rank: A=4, K=3, Q=2, J=1.
func (r Rank) HCPoints() int {
	if r >= Jack && r <= Ace {
		return int(r-Jack) + 1
	}
	return 0
}

// RankFromChar resolves a rank from its one-character code.
func RankFromChar(c byte) (Rank, error) {
	for i := 0; i < NumRanks; i++ {
		if rankChars[i] == c {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, c)
}

// DeckSize is the number of cards in a full deck.
const DeckSize = NumSuits * NumRanks

// Card represents a playing card with suit and rank.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Clubs, Diamonds, Hearts or Spades
//   - rank: Two through Ace
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// CardFromID converts a card id (1-52) to a Card. Ids map to suits in order
// (clubs, diamonds, hearts, spades) with ranks two through ace within each
// suit, so id 52 is the ace of spades.
func CardFromID(id int) (Card, error) {
	if id < 1 || id > DeckSize {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidCardID, id)
	}
	return Card{
		suit: Suit((id - 1) / NumRanks),
		rank: Rank((id - 1) % NumRanks),
	}, nil
}

// ReconcileCard builds a card from all three of its identifying fields and
// fails unless they describe the same card.
func ReconcileCard(id int, suit Suit, rank Rank) (Card, error) {
	c, err := NewCard(suit, rank)
	if err != nil {
		return Card{}, err
	}
	if _, err := CardFromID(id); err != nil {
		return Card{}, err
	}
	if c.ID() != id {
		return Card{}, fmt.Errorf("%w: %d is not %s", ErrInvalidCardID, id, c)
	}
	return c, nil
}

// ParseCard parses a two-character card code such as "TH" or "AS".
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: card code %q", ErrInvalidRank, code)
	}
	rank, err := RankFromChar(code[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := SuitFromInitial(code[1])
	if err != nil {
		return Card{}, err
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustParseCard is like ParseCard but panics on error. It is meant for
// fixtures and constant tables.
func MustParseCard(code string) Card {
	c, err := ParseCard(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// ID returns the 1-indexed position of the card in the canonical deck.
func (c Card) ID() int {
	return int(c.suit)*NumRanks + int(c.rank) + 1
}

// HCPoints returns the high-card points of the card.
func (c Card) HCPoints() int {
	return c.rank.HCPoints()
}

// String returns the card code: rank character followed by suit initial.
func (c Card) String() string {
	return c.rank.String() + string(c.suit.Initial())
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var deck = func() [DeckSize]Card {
	var d [DeckSize]Card
	for i := range d {
		d[i], _ = CardFromID(i + 1)
	}
	return d
}()

// Deck returns the canonical 52-card deck ordered by card id. Note that card
// ids are 1-indexed while the returned array is 0-indexed.
func Deck() [DeckSize]Card {
	return deck
}
