package shared

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the recoverable class of bad player input. Both
// ParseError and IllegalMoveError unwrap to it so the play loop can retry
// on a single check.
var ErrInvalidInput = errors.New("invalid input")

// ParseError reports a malformed bid or card code.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidInput }

// IllegalMoveError reports a well-formed card that the player may not play.
type IllegalMoveError struct {
	Seat    int
	Card    Card
	LedSuit Suit
}

func (e *IllegalMoveError) Error() string {
	if e.LedSuit == NoSuit {
		return fmt.Sprintf("seat %d cannot play %s: not in hand", e.Seat, e.Card.Code())
	}
	return fmt.Sprintf("seat %d cannot play %s on a %s lead", e.Seat, e.Card.Code(), e.LedSuit)
}

func (e *IllegalMoveError) Unwrap() error { return ErrInvalidInput }
