package strategy

import "errors"

var (
	// ErrNoApplicableRule is returned when no rule of the table matches the
	// hand. It marks a gap in the rule book, not a problem with the hand.
	ErrNoApplicableRule = errors.New("no applicable rule")
	// ErrNoMatchingRule is returned when the bid being interpreted does not
	// appear in the rule table.
	ErrNoMatchingRule = errors.New("no rule produces the bid")
	ErrEmptyHistory   = errors.New("history has no call to interpret")
)
