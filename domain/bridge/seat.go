package bridge

import (
	"errors"
	"fmt"
)

// ErrInvalidSeat is returned when a seat name cannot be resolved.
var ErrInvalidSeat = errors.New("invalid seat")

// Seat is a position at the table. Calls rotate clockwise North, East,
// South, West.
type Seat uint8

const (
	North Seat = iota
	East
	South
	West
)

// NumSeats is the number of players at the table.
const NumSeats = 4

var seatNames = [NumSeats]string{"NORTH", "EAST", "SOUTH", "WEST"}

// Seats lists the seats in calling order starting from North.
var Seats = [NumSeats]Seat{North, East, South, West}

func (s Seat) Valid() bool {
	return s < NumSeats
}

func (s Seat) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Seat(%d)", uint8(s))
	}
	return seatNames[s]
}

// Next returns the seat on the left, which calls after s.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// ParseSeat resolves a seat from its full name or its initial.
func ParseSeat(name string) (Seat, error) {
	for _, s := range Seats {
		if name == seatNames[s] || name == seatNames[s][:1] {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSeat, name)
}

func (s Seat) MarshalText() ([]byte, error) {
	return []byte(s.String()[:1]), nil
}

func (s *Seat) UnmarshalText(text []byte) error {
	parsed, err := ParseSeat(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
