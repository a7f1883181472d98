package shared

import "github.com/google/uuid"

// TeamEnum represents the two teams in the game.
type TeamEnum int

const (
	TeamOne TeamEnum = 1 // seats 0 and 2
	TeamTwo TeamEnum = 2 // seats 1 and 3
)

// TeamOf returns the team a seat belongs to.
func TeamOf(seat int) TeamEnum {
	if seat%2 == 0 {
		return TeamOne
	}
	return TeamTwo
}

// Team represents a partnership of two players.
type Team struct {
	ID      string     `json:"id"`
	Number  TeamEnum   `json:"number"`
	Players [2]*Player `json:"-"`
}

// NewTeam creates a new team with the given number and players.
// It generates a unique UUID for the team ID.
func NewTeam(number TeamEnum, player1, player2 *Player) *Team {
	return &Team{
		ID:      uuid.NewString(),
		Number:  number,
		Players: [2]*Player{player1, player2},
	}
}

// Bid is the sum of the members' bids.
func (t *Team) Bid() int {
	return t.Players[0].Bid + t.Players[1].Bid
}

// Tricks is the sum of the members' tricks.
func (t *Team) Tricks() int {
	return t.Players[0].Tricks + t.Players[1].Tricks
}

// MadeBid reports whether the team took at least its bid.
func (t *Team) MadeBid() bool {
	return t.Tricks() >= t.Bid()
}

// MadeNil reports whether a member bid nil and took no tricks.
func (t *Team) MadeNil() bool {
	for _, p := range t.Players {
		if p.GoneNil() && p.Tricks == 0 {
			return true
		}
	}
	return false
}

// FailedNil reports whether a member bid nil and took a trick.
func (t *Team) FailedNil() bool {
	for _, p := range t.Players {
		if p.GoneNil() && p.Tricks > 0 {
			return true
		}
	}
	return false
}
