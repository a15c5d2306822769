package deck

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"github.com/luca-patrignani/bridge/domain/bridge"
	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Deal is the four hands of one board, indexed by seat.
type Deal [bridge.NumSeats]bridge.Hand

// Hand returns the hand held at seat s.
func (d Deal) Hand(s bridge.Seat) bridge.Hand {
	return d[s]
}

// HCPoints returns the high-card points of the whole deal, always 40.
func (d Deal) HCPoints() int {
	total := 0
	for _, h := range d {
		total += h.HCPoints()
	}
	return total
}

// Dealer shuffles the canonical deck and deals it into four hands.
// A Dealer is safe for concurrent use.
type Dealer struct {
	mu   sync.Mutex
	seed uint64
	rng  *rand.Rand
}

// NewDealer returns a dealer whose shuffles are fully determined by seed.
// A zero seed draws a fresh one from the suite's random stream.
func NewDealer(seed uint64) *Dealer {
	if seed == 0 {
		seed = RandomSeed()
	}
	return &Dealer{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the dealer was built from, so a run can be replayed.
func (d *Dealer) Seed() uint64 {
	return d.seed
}

// RandomSeed draws a non-zero seed from the Ed25519 suite's random stream.
func RandomSeed() uint64 {
	var buf [8]byte
	for {
		suite.RandomStream().XORKeyStream(buf[:], buf[:])
		if seed := binary.LittleEndian.Uint64(buf[:]); seed != 0 {
			return seed
		}
	}
}
