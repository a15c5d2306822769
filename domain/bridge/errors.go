package bridge

import "errors"

var (
	// ErrInvalidCardID is returned when a card id is outside 1-52 or does not
	// agree with the supplied suit and rank.
	ErrInvalidCardID = errors.New("invalid card id")
	ErrInvalidSuit   = errors.New("invalid suit")
	ErrInvalidRank   = errors.New("invalid rank")

	// ErrInvalidBidID is returned when a bid id is outside 0-35 or does not
	// agree with the supplied level and strain.
	ErrInvalidBidID  = errors.New("invalid bid id")
	ErrInvalidLevel  = errors.New("invalid level")
	ErrInvalidStrain = errors.New("invalid strain")

	ErrHandSize      = errors.New("a hand holds exactly 13 cards")
	ErrDuplicateCard = errors.New("duplicate card in hand")
)
