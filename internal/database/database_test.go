package database

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"spades-game/internal/game"
	"spades-game/internal/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Service {
	t.Helper()
	s, err := New("sqlite3", filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertAndRead(t *testing.T) {
	s := openTemp(t)
	assert.Equal(t, "spades_results", s.TableName())

	all, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	first := FromResult(game.Result{
		GameID:     uuid.NewString(),
		Winner:     shared.TeamTwo,
		Rounds:     2,
		ScoreLimit: 250,
		Scores:     [2]shared.Score{{Total: 200, Bags: 3}, {Total: 460}},
		PlayerName: "Ana",
		FinishedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	second := first
	second.ID = uuid.NewString()
	second.CreatedAt = "2026-01-03T00:00:00Z"
	second.PlayerName = "Bo"
	second.Winner = 1

	require.NoError(t, s.Insert(first))
	require.NoError(t, s.Insert(second))
	assert.Error(t, s.Insert(first), "duplicate id")

	got, err := s.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)
	assert.Equal(t, "2026-01-02T03:04:05Z", got.CreatedAt)
	assert.Equal(t, 3, got.Team1Bags)

	all, err = s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	mine, err := s.GetByPlayer("Bo")
	require.NoError(t, err)
	assert.Equal(t, []GameResult{second}, mine)
}

func TestMissingRows(t *testing.T) {
	s := openTemp(t)

	_, err := s.GetByID("nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = s.GetByPlayer("nobody")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := New("mysql", "x")
	assert.ErrorContains(t, err, "mysql")
}

func TestFromResult(t *testing.T) {
	row := FromResult(game.Result{GameID: "not-a-uuid", Scores: [2]shared.Score{{Total: -40}, {Total: 10, Bags: 9}}})
	_, err := uuid.Parse(row.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, row.CreatedAt)
	assert.Zero(t, row.Winner)
	assert.Equal(t, -40, row.Team1Score)
	assert.Equal(t, 9, row.Team2Bags)
}
