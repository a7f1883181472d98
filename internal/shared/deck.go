package shared

import "log"

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck represents a collection of cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates the standard 52-card deck in canonical order
// (Diamonds, Clubs, Hearts, Spades; two through ace within each suit).
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Shuffle randomizes the order of cards in the deck using rng.
func (d *Deck) Shuffle(rng Shuffler) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Partition returns a copy of the n-th run of size cards. The deck is left
// untouched, so partitions 0..3 of size 13 are disjoint and cover the deck.
func (d *Deck) Partition(n, size int) []Card {
	start := n * size
	end := start + size
	if n < 0 || size <= 0 || end > len(d.Cards) {
		log.Panicf("Error: partition %d of size %d out of range for a %d-card deck.", n, size, len(d.Cards))
	}

	part := make([]Card, size)
	copy(part, d.Cards[start:end])
	return part
}
