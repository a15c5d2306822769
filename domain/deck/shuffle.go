package deck

import "github.com/luca-patrignani/bridge/domain/bridge"

// Shuffle returns the 52 cards of the canonical deck in a random order.
func (d *Dealer) Shuffle() [bridge.DeckSize]bridge.Card {
	d.mu.Lock()
	perm := d.rng.Perm(bridge.DeckSize)
	d.mu.Unlock()

	deck := bridge.Deck()
	var shuffled [bridge.DeckSize]bridge.Card
	for i, idx := range perm {
		shuffled[i] = deck[idx]
	}
	return shuffled
}

// Deal shuffles the deck and hands out consecutive blocks of thirteen
// cards, the first block to North.
func (d *Dealer) Deal() (Deal, error) {
	cards := d.Shuffle()
	var deal Deal
	for i := range deal {
		h, err := bridge.NewHand(cards[i*bridge.HandSize : (i+1)*bridge.HandSize]...)
		if err != nil {
			return Deal{}, err
		}
		deal[i] = h
	}
	return deal, nil
}

// DealN deals n boards in sequence.
func (d *Dealer) DealN(n int) ([]Deal, error) {
	deals := make([]Deal, 0, n)
	for i := 0; i < n; i++ {
		deal, err := d.Deal()
		if err != nil {
			return nil, err
		}
		deals = append(deals, deal)
	}
	return deals, nil
}
