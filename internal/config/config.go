package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override (SPADES_SCORE_LIMIT).
	EnvPrefix = "SPADES"
	// EnvConfigFile names an explicit config file.
	EnvConfigFile = "SPADES_CONFIG"
	// DefaultConfigFile is read when present and no file is named.
	DefaultConfigFile = "spades.yaml"
)

type Config struct {
	ScoreLimit       int             `mapstructure:"score_limit"`
	PromptScoreLimit bool            `mapstructure:"prompt_score_limit"`
	Seed             uint64          `mapstructure:"seed"`
	Autoplay         bool            `mapstructure:"autoplay"`
	PauseAfterTrick  bool            `mapstructure:"pause_after_trick"`
	MaxRounds        int             `mapstructure:"max_rounds"`
	LogFile          string          `mapstructure:"log_file"`
	PlayerName       string          `mapstructure:"player_name"`
	Color            bool            `mapstructure:"color"`
	Database         DatabaseConfig  `mapstructure:"database"`
	Spectator        SpectatorConfig `mapstructure:"spectator"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type SpectatorConfig struct {
	Addr string `mapstructure:"addr"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("score_limit", 250)
	v.SetDefault("prompt_score_limit", true)
	v.SetDefault("seed", 0)
	v.SetDefault("autoplay", false)
	v.SetDefault("pause_after_trick", true)
	v.SetDefault("max_rounds", 0)
	v.SetDefault("log_file", "spades.log")
	v.SetDefault("player_name", "You")
	v.SetDefault("color", true)
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.dsn", "")
	v.SetDefault("spectator.addr", "")
}

// Load reads the configuration. An empty path falls back to SPADES_CONFIG
// and then to ./spades.yaml; only an explicitly named file must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := true
	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}
	if configPath == "" {
		configPath = DefaultConfigFile
		explicit = false
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot start with.
func (c *Config) Validate() error {
	if c.ScoreLimit <= 0 {
		return fmt.Errorf("score_limit must be positive, got %d", c.ScoreLimit)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must not be negative, got %d", c.MaxRounds)
	}
	switch c.Database.Driver {
	case "sqlite3", "pgx":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

// ParseScoreLimit reads the answer to the score prompt. Empty, non-numeric
// and non-positive answers give def.
func ParseScoreLimit(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
