package shared

import "log"

// PlayersPerTrick is the number of cards in a complete trick.
const PlayersPerTrick = 4

// PlayedCard stores a card along with the seat of the player who played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat int  `json:"seat"`
}

// Trick represents a single trick: the cards played in seat order of play.
type Trick struct {
	Plays []PlayedCard
}

// NewTrick creates a new trick instance.
func NewTrick() *Trick {
	return &Trick{Plays: make([]PlayedCard, 0, PlayersPerTrick)}
}

// AddCard adds a card and the seat that played it.
func (t *Trick) AddCard(seat int, card Card) {
	if len(t.Plays) >= PlayersPerTrick {
		log.Panicf("Error: trick already holds %d cards, cannot add %s.", len(t.Plays), card.Code())
	}
	for _, pc := range t.Plays {
		if pc.Card == card || pc.Seat == seat {
			log.Panicf("Error: seat %d card %s conflicts with an earlier play in the trick.", seat, card.Code())
		}
	}
	t.Plays = append(t.Plays, PlayedCard{Card: card, Seat: seat})
}

// Len returns how many cards have been played.
func (t *Trick) Len() int {
	return len(t.Plays)
}

// Complete reports whether every seat has played.
func (t *Trick) Complete() bool {
	return len(t.Plays) == PlayersPerTrick
}

// LedSuit returns the suit of the first card, or NoSuit for an empty trick.
func (t *Trick) LedSuit() Suit {
	if len(t.Plays) == 0 {
		return NoSuit
	}
	return t.Plays[0].Card.Suit
}

// HasSpade reports whether a spade has been played.
func (t *Trick) HasSpade() bool {
	for _, pc := range t.Plays {
		if pc.Card.Suit == Spades {
			return true
		}
	}
	return false
}

// Winner determines the winning play: the highest spade if any spade was
// played, otherwise the highest card of the led suit.
func (t *Trick) Winner() PlayedCard {
	if !t.Complete() {
		log.Panicf("Error: cannot determine winner of a trick with %d cards.", len(t.Plays))
	}

	suit := t.LedSuit()
	if t.HasSpade() {
		suit = Spades
	}

	var winner PlayedCard
	found := false
	for _, pc := range t.Plays {
		if pc.Card.Suit != suit {
			continue
		}
		if !found || pc.Card.Rank > winner.Card.Rank {
			winner = pc
			found = true
		}
	}
	return winner
}

// Reset clears the trick for the next exchange.
func (t *Trick) Reset() {
	t.Plays = t.Plays[:0]
}
