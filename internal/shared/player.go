package shared

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Fixed seats around the table.
const (
	SeatNorth = 0
	SeatEast  = 1
	SeatSouth = 2 // the human seat
	SeatWest  = 3
)

// NumSeats is the number of players at the table.
const NumSeats = 4

// HandSize is the number of cards dealt to each seat.
const HandSize = DeckSize / NumSeats

// Fixed user-facing retry messages.
const (
	MsgBadBid      = "Opps! A bid must be a number! "
	MsgBadCardCode = "Opps! A card is the number followed by first letter of its suit. "
)

// PlayerKind tells human and computer seats apart.
type PlayerKind int

const (
	Computer PlayerKind = iota
	Human
)

func (k PlayerKind) String() string {
	if k == Human {
		return "human"
	}
	return "computer"
}

// LineReader supplies raw lines of player input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Notifier receives short user-facing messages.
type Notifier interface {
	Announce(msg string)
}

// Strategy decides bids and moves for a seat.
type Strategy interface {
	Bid(p *Player) (int, error)
	Move(p *Player, led Suit) (Card, error)
}

// Player represents a seat in the game.
type Player struct {
	Seat     int        // 0..3, see SeatNorth etc.
	Name     string     // Display name
	Kind     PlayerKind // Human or Computer
	Hand     *Hand      // Cards currently held by the player
	Bid      int        // Bid for the current round
	Tricks   int        // Tricks won this round
	Lead     bool       // Whether this player leads the current trick
	strategy Strategy
}

// NewPlayer creates a seat with an explicit strategy.
func NewPlayer(seat int, name string, kind PlayerKind, strategy Strategy) *Player {
	if name == "" {
		name = SeatName(seat)
	}
	return &Player{Seat: seat, Name: name, Kind: kind, strategy: strategy}
}

// NewComputerPlayer creates a rule-based seat.
func NewComputerPlayer(seat int) *Player {
	return NewPlayer(seat, "", Computer, ComputerStrategy{})
}

// NewHumanPlayer creates a seat driven by line input.
func NewHumanPlayer(seat int, name string, in LineReader, out Notifier) *Player {
	return NewPlayer(seat, name, Human, &HumanStrategy{In: in, Out: out})
}

// SeatName returns the table label for a seat ("Player 1" for North ...).
func SeatName(seat int) string {
	return fmt.Sprintf("Player %d", seat+1)
}

// IsHuman reports whether the seat is driven by input.
func (p *Player) IsHuman() bool {
	return p.Kind == Human
}

// TakeHand gives the player a freshly dealt hand.
func (p *Player) TakeHand(cards []Card) {
	p.Hand = NewHand(cards)
}

// PlaceBid asks the strategy for a bid and records it.
func (p *Player) PlaceBid() (int, error) {
	bid, err := p.strategy.Bid(p)
	if err != nil {
		return 0, err
	}
	p.Bid = bid
	return bid, nil
}

// ChooseMove asks the strategy for the next card. Legality is checked by
// the caller with IsLegalMove.
func (p *Player) ChooseMove(led Suit) (Card, error) {
	return p.strategy.Move(p, led)
}

// IsLegalMove reports whether the card may be played on the led suit:
// it must be in hand, and must follow suit when the hand can.
func (p *Player) IsLegalMove(card Card, led Suit) bool {
	if p.Hand == nil || !p.Hand.Contains(card) {
		return false
	}
	if led == NoSuit || !p.Hand.HasSuit(led) {
		return true
	}
	return card.Suit == led
}

// CheckMove is IsLegalMove returning an *IllegalMoveError.
func (p *Player) CheckMove(card Card, led Suit) error {
	if p.IsLegalMove(card, led) {
		return nil
	}
	return &IllegalMoveError{Seat: p.Seat, Card: card, LedSuit: led}
}

// PlayCard removes a legal card from the hand.
func (p *Player) PlayCard(card Card, led Suit) error {
	if err := p.CheckMove(card, led); err != nil {
		return err
	}
	if err := p.Hand.Remove(card); err != nil {
		// IsLegalMove already confirmed membership
		log.Panicf("Error: failed to remove %s from seat %d: %v", card.Code(), p.Seat, err)
	}
	return nil
}

// WonTrick credits a trick and hands the player the lead.
func (p *Player) WonTrick() {
	p.Tricks++
	p.Lead = true
}

// GoneNil reports whether the player bid zero.
func (p *Player) GoneNil() bool {
	return p.Bid == 0
}

// ResetRound clears bid and trick count between rounds. The lead flag is
// left alone: the last trick's winner leads the next round.
func (p *Player) ResetRound() {
	p.Bid = 0
	p.Tricks = 0
}

func (p *Player) String() string {
	return p.Name
}

// ComputerStrategy is the rule-based seat.
type ComputerStrategy struct{}

// Bid counts spades in hand.
func (ComputerStrategy) Bid(p *Player) (int, error) {
	return p.Hand.CountSuit(Spades), nil
}

// Move plays the first card when leading, the highest of the led suit when
// following, the lowest spade when void, and the first card otherwise.
func (ComputerStrategy) Move(p *Player, led Suit) (Card, error) {
	if p.Hand.Len() == 0 {
		log.Panicf("Error: seat %d asked to move with an empty hand.", p.Seat)
	}
	if p.Lead {
		return p.Hand.Card(0), nil
	}
	if c, ok := p.Hand.HighestInSuit(led); ok {
		return c, nil
	}
	if c, ok := p.Hand.LowestInSuit(Spades); ok {
		return c, nil
	}
	return p.Hand.Card(0), nil
}

// HumanStrategy prompts for bids and card codes until they parse.
type HumanStrategy struct {
	In  LineReader
	Out Notifier
}

// Bid prompts until the line parses as an integer.
func (h *HumanStrategy) Bid(p *Player) (int, error) {
	for {
		line, err := h.In.ReadLine("What is your bid? ")
		if err != nil {
			return 0, fmt.Errorf("reading bid: %w", err)
		}
		bid, err := ParseBid(line)
		if err == nil {
			return bid, nil
		}
		h.Out.Announce(MsgBadBid)
	}
}

// Move prompts until a well-formed card code is entered.
func (h *HumanStrategy) Move(p *Player, led Suit) (Card, error) {
	for {
		line, err := h.In.ReadLine("What card do you want to play? ")
		if err != nil {
			return Card{}, fmt.Errorf("reading move: %w", err)
		}
		card, err := ParseCard(line)
		if err == nil {
			return card, nil
		}
		h.Out.Announce(MsgBadCardCode)
	}
}

// ParseBid parses a bid line. Any integer is accepted.
func ParseBid(raw string) (int, error) {
	bid, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{Input: raw, Reason: "not a number"}
	}
	return bid, nil
}
