package deck

import (
	"testing"

	"github.com/luca-patrignani/bridge/domain/bridge"
)

func TestShuffleIsReproducible(t *testing.T) {
	a := NewDealer(42)
	b := NewDealer(42)
	for i := 0; i < 5; i++ {
		if a.Shuffle() != b.Shuffle() {
			t.Fatalf("shuffle %d differs for the same seed", i)
		}
	}
}

func TestShuffleDiffersAcrossSeeds(t *testing.T) {
	if NewDealer(1).Shuffle() == NewDealer(2).Shuffle() {
		t.Fatal("expected different seeds to produce different orders")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	shuffled := NewDealer(3).Shuffle()
	seen := make(map[int]bool, bridge.DeckSize)
	for _, c := range shuffled {
		seen[c.ID()] = true
	}
	for id := 1; id <= bridge.DeckSize; id++ {
		if !seen[id] {
			t.Fatalf("card %d missing from shuffled deck", id)
		}
	}
}

func TestDealN(t *testing.T) {
	deals, err := NewDealer(11).DealN(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(deals) != 3 {
		t.Fatalf("expected 3 deals, got %d", len(deals))
	}
	if deals[0] == deals[1] {
		t.Fatal("expected consecutive deals to differ")
	}
}
