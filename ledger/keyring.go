package ledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/luca-patrignani/bridge/domain/bridge"
	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/sign/eddsa"
	"go.dedis.ch/kyber/v4/suites"
)

var (
	ErrMissingSignature = errors.New("missing signature")
	ErrBadSignature     = errors.New("bad signature")
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Keyring holds an EdDSA key pair for every seat at the table.
type Keyring struct {
	keys [bridge.NumSeats]*eddsa.EdDSA
}

// NewKeyring generates a fresh key pair per seat.
func NewKeyring() *Keyring {
	k := &Keyring{}
	for _, s := range bridge.Seats {
		k.keys[s] = eddsa.NewEdDSA(suite.RandomStream())
	}
	return k
}

// Public returns the public key of seat s.
func (k *Keyring) Public(s bridge.Seat) kyber.Point {
	return k.keys[s].Public
}

// serialize returns the signed payload of a call: the auction id followed by
// the JSON form of the call with its signature cleared.
func serialize(auctionID string, c Call) ([]byte, error) {
	c.Signature = nil
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return append([]byte(auctionID), b...), nil
}

// Sign returns c signed with the key of the seat that made it.
func (k *Keyring) Sign(auctionID string, c Call) (Call, error) {
	if !c.Seat.Valid() {
		return Call{}, bridge.ErrInvalidSeat
	}
	msg, err := serialize(auctionID, c)
	if err != nil {
		return Call{}, err
	}
	sig, err := k.keys[c.Seat].Sign(msg)
	if err != nil {
		return Call{}, fmt.Errorf("failed to sign call: %w", err)
	}
	c.Signature = sig
	return c, nil
}

// Verify checks that c carries a valid signature by its seat.
func (k *Keyring) Verify(auctionID string, c Call) error {
	if len(c.Signature) == 0 {
		return ErrMissingSignature
	}
	if !c.Seat.Valid() {
		return bridge.ErrInvalidSeat
	}
	msg, err := serialize(auctionID, c)
	if err != nil {
		return err
	}
	if err := eddsa.Verify(k.Public(c.Seat), msg, c.Signature); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	return nil
}

// VerifySignatures checks the signature of every recorded call against k.
func (t *Transcript) VerifySignatures(k *Keyring) error {
	for i, c := range t.Calls() {
		if err := k.Verify(t.auctionID, c); err != nil {
			return fmt.Errorf("call %d by %s: %w", i+1, c.Seat, err)
		}
	}
	return nil
}
