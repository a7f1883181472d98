package database

import (
	"time"

	"spades-game/internal/game"

	"github.com/google/uuid"
)

// GameResult is one finished game as stored in the history table.
type GameResult struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"created_at"`
	PlayerName string `json:"player_name"`
	ScoreLimit int    `json:"score_limit"`
	Rounds     int    `json:"rounds"`
	Team1Score int    `json:"team1_score"`
	Team2Score int    `json:"team2_score"`
	Team1Bags  int    `json:"team1_bags"`
	Team2Bags  int    `json:"team2_bags"`
	Winner     int    `json:"winner"` // 1 or 2, 0 when the game stopped without one
}

// FromResult converts the engine outcome into a row. The game ID becomes
// the row ID when it is a valid UUID.
func FromResult(res game.Result) GameResult {
	id := res.GameID
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	finished := res.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}
	return GameResult{
		ID:         id,
		CreatedAt:  finished.UTC().Format(time.RFC3339),
		PlayerName: res.PlayerName,
		ScoreLimit: res.ScoreLimit,
		Rounds:     res.Rounds,
		Team1Score: res.Scores[0].Total,
		Team2Score: res.Scores[1].Total,
		Team1Bags:  res.Scores[0].Bags,
		Team2Bags:  res.Scores[1].Bags,
		Winner:     int(res.Winner),
	}
}
