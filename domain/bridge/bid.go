package bridge

import (
	"fmt"
)

// Strain is the denomination of a bid: one of the four suits or no-trump.
// The four suit strains share their values with Suit.
type Strain uint8

const (
	StrainClubs Strain = iota
	StrainDiamonds
	StrainHearts
	StrainSpades
	NoTrump
)

// NumStrains is the number of strains available at each level.
const NumStrains = 5

// MaxLevel is the highest level a bid can name.
const MaxLevel = 7

var strainNames = [NumStrains]string{"CLUBS", "DIAMONDS", "HEARTS", "SPADES", "NO_TRUMP"}

// Strains lists every strain from lowest to highest.
var Strains = [NumStrains]Strain{StrainClubs, StrainDiamonds, StrainHearts, StrainSpades, NoTrump}

func (s Strain) Valid() bool {
	return s < NumStrains
}

func (s Strain) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strain(%d)", uint8(s))
	}
	return strainNames[s]
}

// Initial returns the first letter of the strain name ("N" for no-trump).
func (s Strain) Initial() byte {
	return strainNames[s][0]
}

// IsSuit reports whether the strain names a suit rather than no-trump.
func (s Strain) IsSuit() bool {
	return s < NoTrump
}

// Suit returns the suit named by the strain. It is only meaningful when
// IsSuit is true.
func (s Strain) Suit() Suit {
	return Suit(s)
}

func (s Strain) IsMajor() bool {
	return s == StrainHearts || s == StrainSpades
}

func (s Strain) IsMinor() bool {
	return s == StrainClubs || s == StrainDiamonds
}

// StrainFromInitial resolves a strain from the first letter of its name.
func StrainFromInitial(c byte) (Strain, error) {
	for _, s := range Strains {
		if s.Initial() == c {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStrain, c)
}

// MaxBidID is the id of 7N, the highest bid.
const MaxBidID = MaxLevel * NumStrains

// Bid is a call in the auction: either Pass or a level and a strain. Bids
// are totally ordered by their id.
type Bid struct {
	level  uint8 // 0 for Pass
	strain Strain
}

// Pass is the sentinel pass call.
var Pass = Bid{}

const passCode = "PS"

// NewBid creates a bid for the given level (1-7) and strain.
func NewBid(level int, strain Strain) (Bid, error) {
	if level < 1 || level > MaxLevel {
		return Bid{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	if !strain.Valid() {
		return Bid{}, fmt.Errorf("%w: %d", ErrInvalidStrain, strain)
	}
	return Bid{level: uint8(level), strain: strain}, nil
}

// MustBid is like NewBid but panics on error.
func MustBid(level int, strain Strain) Bid {
	b, err := NewBid(level, strain)
	if err != nil {
		panic(err)
	}
	return b
}

// BidFromID converts a bid id to a Bid. Id 0 is Pass, ids 1-35 run from
// 1C up to 7N.
func BidFromID(id int) (Bid, error) {
	if id < 0 || id > MaxBidID {
		return Bid{}, fmt.Errorf("%w: %d", ErrInvalidBidID, id)
	}
	if id == 0 {
		return Pass, nil
	}
	return Bid{
		level:  uint8((id-1)/NumStrains + 1),
		strain: Strain((id - 1) % NumStrains),
	}, nil
}

// ReconcileBid builds a non-pass bid from its id, level and strain and fails
// unless all three agree.
func ReconcileBid(id int, level int, strain Strain) (Bid, error) {
	b, err := NewBid(level, strain)
	if err != nil {
		return Bid{}, err
	}
	if _, err := BidFromID(id); err != nil {
		return Bid{}, err
	}
	if b.ID() != id {
		return Bid{}, fmt.Errorf("%w: %d is not %s", ErrInvalidBidID, id, b)
	}
	return b, nil
}

// ParseBid parses a bid code such as "1S", "3N" or "PS".
func ParseBid(code string) (Bid, error) {
	if code == passCode {
		return Pass, nil
	}
	if len(code) != 2 {
		return Bid{}, fmt.Errorf("%w: bid code %q", ErrInvalidLevel, code)
	}
	if code[0] < '1' || code[0] > '0'+MaxLevel {
		return Bid{}, fmt.Errorf("%w: %q", ErrInvalidLevel, code[0])
	}
	strain, err := StrainFromInitial(code[1])
	if err != nil {
		return Bid{}, err
	}
	return NewBid(int(code[0]-'0'), strain)
}

// MustParseBid is like ParseBid but panics on error.
func MustParseBid(code string) Bid {
	b, err := ParseBid(code)
	if err != nil {
		panic(err)
	}
	return b
}

// IsPass reports whether the call is Pass.
func (b Bid) IsPass() bool {
	return b.level == 0
}

// Level returns the level of the bid, or 0 for Pass.
func (b Bid) Level() int {
	return int(b.level)
}

// Strain returns the strain of the bid. It is meaningless for Pass.
func (b Bid) Strain() Strain {
	return b.strain
}

// ID returns the position of the bid on the bidding ladder, 0 for Pass.
func (b Bid) ID() int {
	if b.IsPass() {
		return 0
	}
	return (int(b.level)-1)*NumStrains + int(b.strain) + 1
}

// Less reports whether b ranks below other on the bidding ladder.
func (b Bid) Less(other Bid) bool {
	return b.ID() < other.ID()
}

// IsGame reports whether the bid reaches game: 3N, four of a major or five
// of a minor, or anything higher in the same strain.
func (b Bid) IsGame() bool {
	if b.IsPass() {
		return false
	}
	switch {
	case b.strain == NoTrump:
		return b.level >= 3
	case b.strain.IsMajor():
		return b.level >= 4
	default:
		return b.level >= 5
	}
}

// Next returns the smallest bid in the given strain that is not lower than
// b. From Pass it returns the one-level bid.
func (b Bid) Next(strain Strain) (Bid, error) {
	level := max(b.Level(), 1)
	for {
		next, err := NewBid(level, strain)
		if err != nil {
			return Bid{}, fmt.Errorf("no %s bid above %s: %w", strain, b, err)
		}
		if !next.Less(b) {
			return next, nil
		}
		level++
	}
}

// Jump returns the bid one level higher in the same strain.
func (b Bid) Jump() (Bid, error) {
	if b.IsPass() {
		return Bid{}, fmt.Errorf("cannot jump from %s: %w", b, ErrInvalidLevel)
	}
	return NewBid(b.Level()+1, b.strain)
}

// String returns the bid code, e.g. "1S" or "PS".
func (b Bid) String() string {
	if b.IsPass() {
		return passCode
	}
	return fmt.Sprintf("%d%c", b.level, b.strain.Initial())
}

func (b Bid) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bid) UnmarshalText(text []byte) error {
	parsed, err := ParseBid(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
