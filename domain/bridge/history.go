package bridge

import (
	"strings"
)

// History is the ordered list of calls made so far in an auction, passes
// included. A History is treated as a value: With returns an extended copy
// and never touches the receiver's backing array.
type History []Bid

// ParseHistory parses bid codes separated by spaces, e.g. "1S PS 2S".
func ParseHistory(s string) (History, error) {
	fields := strings.Fields(s)
	h := make(History, 0, len(fields))
	for _, f := range fields {
		b, err := ParseBid(f)
		if err != nil {
			return nil, err
		}
		h = append(h, b)
	}
	return h, nil
}

// MustParseHistory is like ParseHistory but panics on error.
func MustParseHistory(s string) History {
	h, err := ParseHistory(s)
	if err != nil {
		panic(err)
	}
	return h
}

// With returns a new history with b appended.
func (h History) With(b Bid) History {
	out := make(History, len(h), len(h)+1)
	copy(out, h)
	return append(out, b)
}

// Pop splits off the last call. ok is false for an empty history.
func (h History) Pop() (rest History, last Bid, ok bool) {
	if len(h) == 0 {
		return nil, Pass, false
	}
	return h[: len(h)-1 : len(h)-1], h[len(h)-1], true
}

// Back returns the call made n turns before the player about to call, so
// Back(1) is the previous call and Back(2) is partner's last call. ok is
// false when the auction is too short.
func (h History) Back(n int) (Bid, bool) {
	if n < 1 || n > len(h) {
		return Pass, false
	}
	return h[len(h)-n], true
}

// Partner returns partner's most recent call.
func (h History) Partner() (Bid, bool) {
	return h.Back(2)
}

// Highest returns the last non-pass call, or Pass if every call so far was
// a pass.
func (h History) Highest() Bid {
	for i := len(h) - 1; i >= 0; i-- {
		if !h[i].IsPass() {
			return h[i]
		}
	}
	return Pass
}

// IsLegal reports whether b may be called next: a pass is always legal and
// any other bid must rank above the highest bid so far.
func (h History) IsLegal(b Bid) bool {
	if b.IsPass() {
		return true
	}
	return h.Highest().Less(b)
}

// ConsecutivePasses counts the passes at the end of the history.
func (h History) ConsecutivePasses() int {
	n := 0
	for i := len(h) - 1; i >= 0 && h[i].IsPass(); i-- {
		n++
	}
	return n
}

// Equal reports whether both histories hold the same calls.
func (h History) Equal(other History) bool {
	if len(h) != len(other) {
		return false
	}
	for i := range h {
		if h[i] != other[i] {
			return false
		}
	}
	return true
}

// Key returns a content-derived string that identifies the history; equal
// histories have equal keys.
func (h History) Key() string {
	return h.String()
}

// String renders the calls separated by spaces.
func (h History) String() string {
	codes := make([]string, len(h))
	for i, b := range h {
		codes[i] = b.String()
	}
	return strings.Join(codes, " ")
}
