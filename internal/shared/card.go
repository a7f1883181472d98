package shared

import (
	"fmt"
	"strings"
)

// Suit represents the suit of a card. Declaration order is suit rank.
type Suit int

const (
	NoSuit   Suit = iota // No leading suit established yet
	Diamonds             // D
	Clubs                // C
	Hearts               // H
	Spades               // S
)

// Suits lists the four real suits from lowest to highest.
var Suits = []Suit{Diamonds, Clubs, Hearts, Spades}

var suitCodes = map[Suit]string{
	Diamonds: "D",
	Clubs:    "C",
	Hearts:   "H",
	Spades:   "S",
}

var suitSymbols = map[Suit]string{
	Diamonds: "♢",
	Clubs:    "♣",
	Hearts:   "♡",
	Spades:   "♠",
}

// Code returns the single-letter code of the suit.
func (s Suit) Code() string {
	return suitCodes[s]
}

// Symbol returns the display symbol of the suit.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "None"
	}
}

// Rank is the face value of a card, 2 through 14 (ace high).
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks in ascending order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankCodes = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

// Code returns the token used for the rank in card codes ("10", "Q", ...).
func (r Rank) Code() string {
	return rankCodes[r]
}

// Card represents a single playing card.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Compare orders cards by suit first and rank second.
// It returns -1, 0 or 1.
func (c Card) Compare(other Card) int {
	switch {
	case c.Suit < other.Suit:
		return -1
	case c.Suit > other.Suit:
		return 1
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	}
	return 0
}

// Less reports whether c sorts before other.
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// IsZero reports whether c is the zero Card (no card).
func (c Card) IsZero() bool {
	return c == Card{}
}

// Code returns the rank+suit input token, e.g. "AS" or "10D".
func (c Card) Code() string {
	return c.Rank.Code() + c.Suit.Code()
}

func (c Card) String() string {
	return fmt.Sprintf("[%s%s]", c.Rank.Code(), c.Suit.Symbol())
}

// ParseCard parses a rank+suit token such as "AS", "10d" or "qh".
func ParseCard(raw string) (Card, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) < 2 {
		return Card{}, &ParseError{Input: raw, Reason: "too short"}
	}

	suitToken, rankToken := code[len(code)-1:], code[:len(code)-1]

	var card Card
	for s, sc := range suitCodes {
		if sc == suitToken {
			card.Suit = s
		}
	}
	if card.Suit == NoSuit {
		return Card{}, &ParseError{Input: raw, Reason: "unknown suit " + suitToken}
	}
	for r, rc := range rankCodes {
		if rc == rankToken {
			card.Rank = r
		}
	}
	if card.Rank == 0 {
		return Card{}, &ParseError{Input: raw, Reason: "unknown rank " + rankToken}
	}
	return card, nil
}

// MustParseCard is ParseCard for known-good literals; it panics on error.
func MustParseCard(raw string) Card {
	c, err := ParseCard(raw)
	if err != nil {
		panic(err)
	}
	return c
}
