package game

import "spades-game/internal/shared"

// NewTable seats three computer players and the human at South. With
// autoplay the South seat is played by the computer strategy too, keeping
// the given name.
func NewTable(name string, in shared.LineReader, out shared.Notifier, autoplay bool) [shared.NumSeats]*shared.Player {
	var players [shared.NumSeats]*shared.Player
	for seat := range players {
		if seat == shared.SeatSouth && !autoplay {
			players[seat] = shared.NewHumanPlayer(seat, name, in, out)
			continue
		}
		players[seat] = shared.NewComputerPlayer(seat)
	}
	if autoplay && name != "" {
		players[shared.SeatSouth].Name = name
	}
	return players
}
