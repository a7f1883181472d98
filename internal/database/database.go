package database

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/mattn/go-sqlite3"
)

const tableName = "spades_results"

const columns = "id, created_at, player_name, score_limit, rounds, team1_score, team2_score, team1_bags, team2_bags, winner"

// Service stores finished games.
type Service struct {
	db        *sql.DB
	m         *sync.Mutex
	driver    string
	tableName string
}

// New opens the store and creates the results table when missing. driver is
// "sqlite3" (dsn is a file path) or "pgx" (dsn is a postgres URL).
func New(driver, dsn string) (*Service, error) {
	switch driver {
	case "sqlite3", "pgx":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}

	sqlStmt := `
	create table if not exists ` + tableName + ` (
		id text not null primary key,
		created_at text,
		player_name text,
		score_limit integer,
		rounds integer,
		team1_score integer,
		team2_score integer,
		team1_bags integer,
		team2_bags integer,
		winner integer
	);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating %s table: %w", tableName, err)
	}

	return &Service{
		db:        db,
		m:         &sync.Mutex{},
		driver:    driver,
		tableName: tableName,
	}, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.tableName
}

// placeholders returns n bind markers in the driver's syntax.
func (s *Service) placeholders(n int) []string {
	ph := make([]string, n)
	for i := range ph {
		if s.driver == "pgx" {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return ph
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (GameResult, error) {
	var result GameResult
	err := row.Scan(
		&result.ID,
		&result.CreatedAt,
		&result.PlayerName,
		&result.ScoreLimit,
		&result.Rounds,
		&result.Team1Score,
		&result.Team2Score,
		&result.Team1Bags,
		&result.Team2Bags,
		&result.Winner)
	return result, err
}

func (s *Service) query(where string, args ...any) ([]GameResult, error) {
	rows, err := s.db.Query("SELECT "+columns+" FROM "+s.tableName+where+" ORDER BY created_at, id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

func (s *Service) GetAll() ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.query("")
}

func (s *Service) GetByID(id string) (GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	row := s.db.QueryRow("SELECT "+columns+" FROM "+s.tableName+" WHERE id = "+s.placeholders(1)[0], id)
	return scanResult(row)
}

// GetByPlayer returns sql.ErrNoRows when the player has no games.
func (s *Service) GetByPlayer(playerName string) ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	results, err := s.query(" WHERE player_name = "+s.placeholders(1)[0], playerName)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, sql.ErrNoRows
	}
	return results, nil
}

func (s *Service) Insert(result GameResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec("INSERT INTO "+s.tableName+
		" ("+columns+") VALUES ("+strings.Join(s.placeholders(10), ", ")+")",
		result.ID,
		result.CreatedAt,
		result.PlayerName,
		result.ScoreLimit,
		result.Rounds,
		result.Team1Score,
		result.Team2Score,
		result.Team1Bags,
		result.Team2Bags,
		result.Winner)
	if err != nil {
		return fmt.Errorf("inserting result %s: %w", result.ID, err)
	}
	return nil
}
