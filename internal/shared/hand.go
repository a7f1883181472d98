package shared

import (
	"fmt"
	"log"
	"slices"
	"strings"
)

// Hand is a player's cards for one round, kept sorted by Card ordering.
type Hand struct {
	cards []Card
}

// NewHand builds a sorted hand from a dealt partition.
func NewHand(cards []Card) *Hand {
	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, Card.Compare)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			log.Panicf("Error: duplicate card %s dealt into one hand.", sorted[i].Code())
		}
	}
	return &Hand{cards: sorted}
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	if h == nil {
		return 0
	}
	return len(h.cards)
}

// Card returns the i-th card in sorted order.
func (h *Hand) Card(i int) Card {
	return h.cards[i]
}

// Cards returns a copy of the hand in sorted order.
func (h *Hand) Cards() []Card {
	if h == nil {
		return nil
	}
	return slices.Clone(h.cards)
}

// Contains reports whether the card is in the hand.
func (h *Hand) Contains(card Card) bool {
	_, found := slices.BinarySearchFunc(h.cards, card, Card.Compare)
	return found
}

// Remove takes the card out of the hand.
func (h *Hand) Remove(card Card) error {
	i, found := slices.BinarySearchFunc(h.cards, card, Card.Compare)
	if !found {
		return fmt.Errorf("card %s not in hand", card.Code())
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	return nil
}

// HasSuit reports whether any card of the suit is held.
func (h *Hand) HasSuit(suit Suit) bool {
	for _, c := range h.cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// HasSpade reports whether any spade is held.
func (h *Hand) HasSpade() bool {
	return h.HasSuit(Spades)
}

// CountSuit returns how many cards of the suit are held.
func (h *Hand) CountSuit(suit Suit) int {
	n := 0
	for _, c := range h.cards {
		if c.Suit == suit {
			n++
		}
	}
	return n
}

// HighestInSuit returns the highest card of the suit, if any.
func (h *Hand) HighestInSuit(suit Suit) (Card, bool) {
	for i := len(h.cards) - 1; i >= 0; i-- {
		if h.cards[i].Suit == suit {
			return h.cards[i], true
		}
	}
	return Card{}, false
}

// LowestInSuit returns the lowest card of the suit, if any.
func (h *Hand) LowestInSuit(suit Suit) (Card, bool) {
	for _, c := range h.cards {
		if c.Suit == suit {
			return c, true
		}
	}
	return Card{}, false
}

func (h *Hand) String() string {
	var sb strings.Builder
	sb.WriteString("<")
	for _, c := range h.Cards() {
		sb.WriteString(c.String())
	}
	sb.WriteString(">")
	return sb.String()
}
