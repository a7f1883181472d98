package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"spades-game/internal/shared"

	"github.com/google/uuid"
)

// GameState represents the current state of the game.
type GameState string

const (
	Dealing  GameState = "Dealing"  // Shuffling and dealing hands
	Bidding  GameState = "Bidding"  // Collecting the four bids
	Playing  GameState = "Playing"  // Players are playing tricks
	Scoring  GameState = "Scoring"  // A round (13 tricks) is finished
	GameOver GameState = "GameOver" // A team won
)

// DefaultScoreLimit is the score a team must reach to win.
const DefaultScoreLimit = 250

// Fixed user-facing messages.
const (
	MsgIllegalMove = "You must play a card in the starting suit, if you have it. "
	MsgPressEnter  = "<<PRESS ENTER>>"
	MsgRoundOver   = "ROUND OVER"
)

var (
	// ErrGameOver is returned when a round is requested after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrRoundLimit is returned when MaxRounds is reached without a winner.
	ErrRoundLimit = errors.New("round limit reached without a winner")
)

// Options configure a Game.
type Options struct {
	ScoreLimit int               // 0 means DefaultScoreLimit
	Shuffler   shared.Shuffler   // nil means a time-seeded *rand.Rand
	Display    Display           // nil means NopDisplay
	Pause      shared.LineReader // when set, waits for Enter after tricks and rounds
	MaxRounds  int               // 0 means unlimited
}

// RoundSummary reports the outcome of one round.
type RoundSummary struct {
	Round   int                   `json:"round"`
	Results [2]shared.RoundResult `json:"results"`
	Winner  shared.TeamEnum       `json:"winner,omitempty"`
}

// Result is the final state of a finished game.
type Result struct {
	GameID     string          `json:"game_id"`
	Winner     shared.TeamEnum `json:"winner"`
	Rounds     int             `json:"rounds"` // rounds fully scored
	ScoreLimit int             `json:"score_limit"`
	Scores     [2]shared.Score `json:"scores"`
	PlayerName string          `json:"player_name"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
}

// Game represents the main game state machine.
type Game struct {
	ID           string
	Players      [shared.NumSeats]*shared.Player
	Teams        [2]*shared.Team
	Scores       [2]*shared.Score
	Deck         *shared.Deck
	CurrentTrick *shared.Trick
	LeadSeat     int
	GameState    GameState
	Round        int
	TrickNumber  int
	TargetScore  int
	Winner       shared.TeamEnum

	played    [shared.NumSeats]shared.Card // cards shown on the table this trick
	discarded []shared.Card                // resolved tricks of the current round
	bidCount  int                          // seats that have bid this round
	completed int                          // rounds scored so far
	display   Display
	pause     shared.LineReader
	rng       shared.Shuffler
	maxRounds int
	startedAt time.Time
}

// NewGame initializes a new game instance. Seats 0 and 2 form team one,
// seats 1 and 3 team two. North leads the first trick.
func NewGame(players [shared.NumSeats]*shared.Player, opts Options) *Game {
	if opts.ScoreLimit <= 0 {
		opts.ScoreLimit = DefaultScoreLimit
	}
	if opts.Shuffler == nil {
		opts.Shuffler = NewRand(uint64(time.Now().UnixNano()))
	}
	if opts.Display == nil {
		opts.Display = NopDisplay{}
	}
	for i, p := range players {
		if p == nil || p.Seat != i {
			log.Panicf("Error: seat %d is not set up correctly.", i)
		}
	}

	teams := [2]*shared.Team{
		shared.NewTeam(shared.TeamOne, players[0], players[2]),
		shared.NewTeam(shared.TeamTwo, players[1], players[3]),
	}

	g := &Game{
		ID:           uuid.New().String(),
		Players:      players,
		Teams:        teams,
		Scores:       [2]*shared.Score{{}, {}},
		Deck:         shared.NewDeck(),
		CurrentTrick: shared.NewTrick(),
		LeadSeat:     shared.SeatNorth,
		GameState:    Dealing,
		Round:        1,
		TargetScore:  opts.ScoreLimit,
		display:      opts.Display,
		pause:        opts.Pause,
		rng:          opts.Shuffler,
		maxRounds:    opts.MaxRounds,
		startedAt:    time.Now(),
	}
	for _, p := range players {
		p.Lead = p.Seat == g.LeadSeat
	}
	return g
}

// Run plays rounds until a team wins.
func (g *Game) Run() (*Result, error) {
	log.Printf("Game %s: Starting game loop. Playing to %d.", g.ID, g.TargetScore)
	for g.GameState != GameOver {
		if g.maxRounds > 0 && g.Round > g.maxRounds {
			log.Printf("Game %s: Stopping after %d rounds without a winner.", g.ID, g.maxRounds)
			res := g.Result()
			g.finish(res)
			return res, ErrRoundLimit
		}
		if _, err := g.PlayRound(); err != nil {
			return nil, err
		}
	}

	res := g.Result()
	g.finish(res)
	return res, nil
}

func (g *Game) finish(res *Result) {
	if f, ok := g.display.(Finisher); ok {
		f.Finish(*res)
	}
}

// PlayRound runs one full round: deal, bid, 13 tricks, scoring.
func (g *Game) PlayRound() (RoundSummary, error) {
	if g.GameState == GameOver {
		return RoundSummary{}, ErrGameOver
	}

	g.deal()
	if err := g.collectBids(); err != nil {
		return RoundSummary{}, err
	}

	g.GameState = Playing
	for g.TrickNumber = 1; g.TrickNumber <= shared.HandSize; g.TrickNumber++ {
		if err := g.playTrick(); err != nil {
			return RoundSummary{}, err
		}
	}

	return g.endRound()
}

// deal shuffles and hands every seat its partition of the deck.
func (g *Game) deal() {
	log.Printf("Game %s: Round %d. Dealing...", g.ID, g.Round)
	g.GameState = Dealing
	g.Deck.Shuffle(g.rng)
	for i, p := range g.Players {
		p.TakeHand(g.Deck.Partition(i, shared.HandSize))
	}
	g.discarded = g.discarded[:0]
	g.CurrentTrick.Reset()
	g.played = [shared.NumSeats]shared.Card{}
	g.TrickNumber = 0
	g.bidCount = 0

	seen := make(map[shared.Card]bool, shared.DeckSize)
	for _, p := range g.Players {
		for _, c := range p.Hand.Cards() {
			seen[c] = true
		}
	}
	if len(seen) != shared.DeckSize {
		log.Panicf("Game %s: dealt %d distinct cards, expected %d.", g.ID, len(seen), shared.DeckSize)
	}

	g.render()
}

func (g *Game) collectBids() error {
	g.GameState = Bidding
	for _, p := range g.Players {
		bid, err := p.PlaceBid()
		if err != nil {
			return fmt.Errorf("bid for seat %d: %w", p.Seat, err)
		}
		log.Printf("Game %s: %s (seat %d) bid %d.", g.ID, p.Name, p.Seat, bid)
		g.bidCount++
		g.render()
	}
	return nil
}

// playTrick collects one card from each seat, starting with the lead.
func (g *Game) playTrick() error {
	for i := 0; i < shared.NumSeats; i++ {
		p := g.Players[(g.LeadSeat+i)%shared.NumSeats]
		if err := g.takeTurn(p); err != nil {
			return err
		}
	}
	return g.endTrick()
}

// takeTurn asks the player for a card until a legal one is given.
func (g *Game) takeTurn(p *shared.Player) error {
	led := g.CurrentTrick.LedSuit()
	for {
		card, err := p.ChooseMove(led)
		if err != nil {
			return fmt.Errorf("move for seat %d: %w", p.Seat, err)
		}

		err = p.PlayCard(card, led)
		if err == nil {
			g.CurrentTrick.AddCard(p.Seat, card)
			g.played[p.Seat] = card
			log.Printf("Game %s: %s (seat %d) played %s", g.ID, p.Name, p.Seat, card.Code())
			g.render()
			return nil
		}
		if !p.IsHuman() {
			log.Panicf("Game %s: computer seat %d chose an illegal move: %v", g.ID, p.Seat, err)
		}
		if !errors.Is(err, shared.ErrInvalidInput) {
			return err
		}
		log.Printf("Game %s: rejected move from seat %d: %v", g.ID, p.Seat, err)
		g.display.Announce(MsgIllegalMove)
	}
}

// endTrick resolves the winner and hands them the lead.
func (g *Game) endTrick() error {
	win := g.CurrentTrick.Winner()
	winner := g.Players[win.Seat]

	for _, p := range g.Players {
		p.Lead = false
	}
	winner.WonTrick()
	g.LeadSeat = winner.Seat
	log.Printf("Game %s: Trick %d won by %s (seat %d) with %s.", g.ID, g.TrickNumber, winner.Name, winner.Seat, win.Card.Code())

	g.render()
	if winner.IsHuman() {
		g.display.Announce(fmt.Sprintf("You won the trick by playing the %s. ", win.Card))
	} else {
		g.display.Announce(fmt.Sprintf("%s won the trick by playing the %s. ", winner.Name, win.Card))
	}
	if err := g.wait(); err != nil {
		return err
	}

	for _, pc := range g.CurrentTrick.Plays {
		g.discarded = append(g.discarded, pc.Card)
	}
	g.CurrentTrick.Reset()
	g.played = [shared.NumSeats]shared.Card{}
	g.checkCardCount()
	g.render()
	return nil
}

// endRound scores the round and decides whether the game is over.
func (g *Game) endRound() (RoundSummary, error) {
	g.GameState = Scoring
	g.display.Announce(MsgRoundOver)

	summary := RoundSummary{Round: g.Round}
	for i, team := range g.Teams {
		summary.Results[i] = g.Scores[i].Settle(team)
	}
	g.completed++
	log.Printf("Game %s: Round %d over. Team 1: %+d (total %d, bags %d). Team 2: %+d (total %d, bags %d).",
		g.ID, g.Round,
		summary.Results[0].Delta, summary.Results[0].Total, summary.Results[0].Bags,
		summary.Results[1].Delta, summary.Results[1].Total, summary.Results[1].Bags)

	g.display.Announce(fmt.Sprintf(
		"Team 1 made %d points this round and now has a total of %d bags. \nTeam 2 made %d points this round and now has a total %d bags. ",
		summary.Results[0].Delta, summary.Results[0].Bags, summary.Results[1].Delta, summary.Results[1].Bags))
	if err := g.wait(); err != nil {
		return summary, err
	}
	g.render()

	if team, ok := DecideWinner(*g.Scores[0], *g.Scores[1], g.TargetScore); ok {
		g.Winner = team
		g.GameState = GameOver
		summary.Winner = team
		log.Printf("Game %s: Game Over! Team %d wins.", g.ID, team)
		g.display.Announce(fmt.Sprintf("Team %d wins! ", team))
		g.render()
		return summary, nil
	}

	for _, p := range g.Players {
		p.ResetRound()
	}
	g.Round++
	g.GameState = Dealing
	log.Printf("Game %s: Preparing for round %d. %s leads.", g.ID, g.Round, g.Players[g.LeadSeat].Name)
	g.render()
	return summary, nil
}

// NewRand returns a deterministic generator for the seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DecideWinner returns the team that reached the limit with a strict lead.
func DecideWinner(team1, team2 shared.Score, limit int) (shared.TeamEnum, bool) {
	switch {
	case team1.HasWinningScore(limit) && team1.Total > team2.Total:
		return shared.TeamOne, true
	case team2.HasWinningScore(limit) && team2.Total > team1.Total:
		return shared.TeamTwo, true
	}
	return 0, false
}

// Result returns the game outcome so far.
func (g *Game) Result() *Result {
	return &Result{
		GameID:     g.ID,
		Winner:     g.Winner,
		Rounds:     g.completed,
		ScoreLimit: g.TargetScore,
		Scores:     [2]shared.Score{*g.Scores[0], *g.Scores[1]},
		PlayerName: g.Players[shared.SeatSouth].Name,
		StartedAt:  g.startedAt,
		FinishedAt: time.Now(),
	}
}

// Snapshot copies the board state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		GameID:     g.ID,
		State:      g.GameState,
		Round:      g.Round,
		Trick:      g.TrickNumber,
		ScoreLimit: g.TargetScore,
		LedSuit:    g.CurrentTrick.LedSuit(),
		Hand:       g.Players[shared.SeatSouth].Hand.Cards(),
	}
	for i, p := range g.Players {
		snap.Seats[i] = SeatView{
			Seat:      p.Seat,
			Name:      p.Name,
			Human:     p.IsHuman(),
			Bid:       p.Bid,
			HasBid:    g.GameState != Dealing && (g.GameState != Bidding || i < g.bidCount),
			Tricks:    p.Tricks,
			Played:    g.played[i],
			Lead:      p.Lead,
			CardsLeft: p.Hand.Len(),
		}
	}
	for i, t := range g.Teams {
		snap.Teams[i] = TeamView{Number: t.Number, Score: g.Scores[i].Total, Bags: g.Scores[i].Bags}
	}
	return snap
}

func (g *Game) render() {
	g.display.Render(g.Snapshot())
}

func (g *Game) wait() error {
	if g.pause == nil {
		return nil
	}
	if _, err := g.pause.ReadLine(MsgPressEnter); err != nil {
		return fmt.Errorf("waiting for enter: %w", err)
	}
	return nil
}

// checkCardCount enforces that hands, trick and discards hold the whole deck.
func (g *Game) checkCardCount() {
	total := len(g.discarded) + g.CurrentTrick.Len()
	for _, p := range g.Players {
		total += p.Hand.Len()
	}
	if total != shared.DeckSize {
		log.Panicf("Game %s: %d cards accounted for, expected %d.", g.ID, total, shared.DeckSize)
	}
}
