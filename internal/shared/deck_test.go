package shared

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	require.Len(t, d.Cards, DeckSize)

	seen := map[Card]bool{}
	for _, c := range d.Cards {
		assert.False(t, seen[c], "duplicate %s", c.Code())
		seen[c] = true
	}
	assert.Equal(t, Card{Diamonds, Two}, d.Cards[0])
	assert.Equal(t, Card{Spades, Ace}, d.Cards[DeckSize-1])
	for i := 1; i < len(d.Cards); i++ {
		assert.True(t, d.Cards[i-1].Less(d.Cards[i]), "canonical order at %d", i)
	}
}

func TestShuffleIsSeeded(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	a.Shuffle(rand.New(rand.NewPCG(7, 11)))
	b.Shuffle(rand.New(rand.NewPCG(7, 11)))
	assert.Equal(t, a.Cards, b.Cards)
	assert.NotEqual(t, NewDeck().Cards, a.Cards)
	assert.ElementsMatch(t, NewDeck().Cards, a.Cards)
}

func TestPartitionsAreDisjointAndExhaustive(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewPCG(1, 2)))

	seen := map[Card]int{}
	for n := 0; n < NumSeats; n++ {
		part := d.Partition(n, HandSize)
		require.Len(t, part, HandSize)
		for _, c := range part {
			seen[c]++
		}
	}
	assert.Len(t, seen, DeckSize)
	for c, count := range seen {
		assert.Equal(t, 1, count, "card %s", c.Code())
	}
	assert.Len(t, d.Cards, DeckSize, "partitioning does not consume the deck")
}

func TestPartitionCopies(t *testing.T) {
	d := NewDeck()
	part := d.Partition(0, HandSize)
	part[0] = Card{Spades, Ace}
	assert.Equal(t, Card{Diamonds, Two}, d.Cards[0])
}

func TestPartitionOutOfRangePanics(t *testing.T) {
	d := NewDeck()
	assert.Panics(t, func() { d.Partition(4, HandSize) })
	assert.Panics(t, func() { d.Partition(-1, HandSize) })
	assert.Panics(t, func() { d.Partition(0, 0) })
}
