package protocol

import (
	"encoding/json"

	"spades-game/internal/game"
	"spades-game/internal/shared"
)

// Message types.
const (
	TypeWelcome  = "welcome"
	TypeBoard    = "board"
	TypeAnnounce = "announce"
	TypeGameOver = "game_over"
	TypePing     = "ping"
	TypePong     = "pong"
	TypeError    = "error"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "board", "ping")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// --- Server -> Spectator Payload Structs ---

type WelcomePayload struct {
	ClientID string `json:"client_id"`
	GameID   string `json:"game_id,omitempty"`
}

// BoardPayload is sent after every change on the table.
type BoardPayload struct {
	Snapshot game.Snapshot `json:"snapshot"`
}

type AnnouncePayload struct {
	Message string `json:"message"`
}

type GameOverPayload struct {
	GameID       string          `json:"game_id"`
	Winner       shared.TeamEnum `json:"winner"`
	Rounds       int             `json:"rounds"`
	FinalScoreT1 int             `json:"final_score_t1"`
	FinalScoreT2 int             `json:"final_score_t2"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewGameOverPayload summarizes a finished game.
func NewGameOverPayload(res game.Result) GameOverPayload {
	return GameOverPayload{
		GameID:       res.GameID,
		Winner:       res.Winner,
		Rounds:       res.Rounds,
		FinalScoreT1: res.Scores[0].Total,
		FinalScoreT2: res.Scores[1].Total,
	}
}

// NewMessage encodes a typed message. A nil payload is omitted.
func NewMessage(msgType string, payload any) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Payload: payloadBytes})
}

// Decode unmarshals a message's payload into v.
func Decode(data []byte, v any) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, err
	}
	if v != nil && len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, v); err != nil {
			return msg, err
		}
	}
	return msg, nil
}
