package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(codes ...string) []Card {
	out := make([]Card, len(codes))
	for i, code := range codes {
		out[i] = MustParseCard(code)
	}
	return out
}

func TestNewHandSorts(t *testing.T) {
	h := NewHand(cards("AS", "2D", "KH", "3C", "10D"))
	assert.Equal(t, cards("2D", "10D", "3C", "KH", "AS"), h.Cards())
	assert.Equal(t, MustParseCard("2D"), h.Card(0))
	assert.Equal(t, 5, h.Len())
	assert.Equal(t, "<[2♢][10♢][3♣][K♡][A♠]>", h.String())
}

func TestNewHandRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() { NewHand(cards("AS", "AS")) })
}

func TestHandRemove(t *testing.T) {
	h := NewHand(cards("AS", "2D", "KH"))
	require.NoError(t, h.Remove(MustParseCard("KH")))
	assert.False(t, h.Contains(MustParseCard("KH")))
	assert.Equal(t, 2, h.Len())

	assert.Error(t, h.Remove(MustParseCard("KH")))
	assert.Equal(t, 2, h.Len())
}

func TestHandSuitQueries(t *testing.T) {
	h := NewHand(cards("3H", "QH", "9H", "2D", "JS"))

	high, ok := h.HighestInSuit(Hearts)
	require.True(t, ok)
	assert.Equal(t, MustParseCard("QH"), high)

	low, ok := h.LowestInSuit(Hearts)
	require.True(t, ok)
	assert.Equal(t, MustParseCard("3H"), low)

	_, ok = h.HighestInSuit(Clubs)
	assert.False(t, ok)
	_, ok = h.LowestInSuit(Clubs)
	assert.False(t, ok)

	assert.True(t, h.HasSuit(Diamonds))
	assert.False(t, h.HasSuit(Clubs))
	assert.True(t, h.HasSpade())
	assert.Equal(t, 3, h.CountSuit(Hearts))

	require.NoError(t, h.Remove(MustParseCard("JS")))
	assert.False(t, h.HasSpade())
}

func TestHandCardsIsACopy(t *testing.T) {
	h := NewHand(cards("2D", "3D"))
	view := h.Cards()
	view[0] = MustParseCard("AS")
	assert.Equal(t, MustParseCard("2D"), h.Card(0))

	// iterating twice gives the same order
	assert.Equal(t, h.Cards(), h.Cards())
}

func TestNilHand(t *testing.T) {
	var h *Hand
	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.Cards())
}
