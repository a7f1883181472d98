package game

import "spades-game/internal/shared"

// SeatView is one seat as shown on the board.
type SeatView struct {
	Seat      int         `json:"seat"`
	Name      string      `json:"name"`
	Human     bool        `json:"human"`
	Bid       int         `json:"bid"`
	HasBid    bool        `json:"has_bid"`
	Tricks    int         `json:"tricks"`
	Played    shared.Card `json:"played"` // zero Card when nothing is on the table
	Lead      bool        `json:"lead"`
	CardsLeft int         `json:"cards_left"`
}

// TeamView is one team's standing.
type TeamView struct {
	Number shared.TeamEnum `json:"number"`
	Score  int             `json:"score"`
	Bags   int             `json:"bags"`
}

// Snapshot is an immutable copy of everything the board shows.
type Snapshot struct {
	GameID     string                    `json:"game_id"`
	State      GameState                 `json:"state"`
	Round      int                       `json:"round"`
	Trick      int                       `json:"trick"`
	ScoreLimit int                       `json:"score_limit"`
	LedSuit    shared.Suit               `json:"led_suit"`
	Seats      [shared.NumSeats]SeatView `json:"seats"`
	Teams      [2]TeamView               `json:"teams"`
	Hand       []shared.Card             `json:"hand"` // the South seat's hand
}

// Display renders board snapshots and short messages.
type Display interface {
	Render(snap Snapshot)
	Announce(msg string)
}

// Finisher is implemented by displays that want the final result.
type Finisher interface {
	Finish(res Result)
}

// MultiDisplay fans out to several displays in order.
type MultiDisplay []Display

func (m MultiDisplay) Render(snap Snapshot) {
	for _, d := range m {
		d.Render(snap)
	}
}

func (m MultiDisplay) Announce(msg string) {
	for _, d := range m {
		d.Announce(msg)
	}
}

func (m MultiDisplay) Finish(res Result) {
	for _, d := range m {
		if f, ok := d.(Finisher); ok {
			f.Finish(res)
		}
	}
}

// NopDisplay discards everything.
type NopDisplay struct{}

func (NopDisplay) Render(Snapshot) {}
func (NopDisplay) Announce(string) {}
