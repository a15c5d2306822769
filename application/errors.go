package application

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/bridge/domain/bridge"
)

var (
	ErrIllegalCall    = errors.New("illegal call")
	ErrAuctionTooLong = errors.New("auction too long")
)

// AuctionError reports the seat and turn at which an auction stopped.
type AuctionError struct {
	Seat bridge.Seat
	Turn int
	Err  error
}

func (e *AuctionError) Error() string {
	return fmt.Sprintf("%s at turn %d: %v", e.Seat, e.Turn, e.Err)
}

func (e *AuctionError) Unwrap() error {
	return e.Err
}
