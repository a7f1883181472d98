package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spades.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.ScoreLimit)
	assert.True(t, cfg.PromptScoreLimit)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Autoplay)
	assert.True(t, cfg.PauseAfterTrick)
	assert.Zero(t, cfg.MaxRounds)
	assert.Equal(t, "spades.log", cfg.LogFile)
	assert.Equal(t, "You", cfg.PlayerName)
	assert.True(t, cfg.Color)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Empty(t, cfg.Database.DSN)
	assert.Empty(t, cfg.Spectator.Addr)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
score_limit: 500
autoplay: true
player_name: Ana
database:
  driver: pgx
  dsn: postgres://localhost/spades
spectator:
  addr: ":9090"
`)
	t.Setenv("SPADES_SCORE_LIMIT", "300")
	t.Setenv("SPADES_SPECTATOR_ADDR", ":8081")
	t.Setenv("SPADES_SEED", "42")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.ScoreLimit, "env wins over the file")
	assert.True(t, cfg.Autoplay)
	assert.Equal(t, "Ana", cfg.PlayerName)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/spades", cfg.Database.DSN)
	assert.Equal(t, ":8081", cfg.Spectator.Addr)
}

func TestLoadFromEnvConfigFile(t *testing.T) {
	t.Setenv(EnvConfigFile, writeConfig(t, "max_rounds: 7\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxRounds)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "a named file must exist")

	_, err = Load(writeConfig(t, "score_limit: -5\n"))
	assert.ErrorContains(t, err, "score_limit")

	_, err = Load(writeConfig(t, "database:\n  driver: mysql\n"))
	assert.ErrorContains(t, err, "mysql")
}

func TestParseScoreLimit(t *testing.T) {
	cases := map[string]int{
		"":      250,
		"  ":    250,
		"500":   500,
		" 100 ": 100,
		"abc":   250,
		"0":     250,
		"-10":   250,
		"12.5":  250,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseScoreLimit(raw, 250), "input %q", raw)
	}
}
