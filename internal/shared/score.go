package shared

// Scoring constants.
const (
	NilBonus     = 100
	NilPenalty   = 100
	PointsPerBid = 10
	BagLimit     = 10
	BagPenalty   = 100
)

// Score tracks a team's cumulative score and bags across rounds.
type Score struct {
	Total int `json:"total"`
	Bags  int `json:"bags"` // always 0..BagLimit-1 between rounds
}

// RoundResult describes what one round did to a team's score.
type RoundResult struct {
	Team       TeamEnum `json:"team"`
	Bid        int      `json:"bid"`
	Tricks     int      `json:"tricks"`
	MadeBid    bool     `json:"made_bid"`
	MadeNil    bool     `json:"made_nil"`
	FailedNil  bool     `json:"failed_nil"`
	Overtricks int      `json:"overtricks"`
	BagPenalty bool     `json:"bag_penalty"`
	Delta      int      `json:"delta"`
	Total      int      `json:"total"`
	Bags       int      `json:"bags"`
}

// Settle applies one finished round of the team to the score. The new total
// is built on top of the previous one and the delta is taken against the
// stored total, so calling it once per round never double counts.
func (s *Score) Settle(t *Team) RoundResult {
	res := RoundResult{
		Team:      t.Number,
		Bid:       t.Bid(),
		Tricks:    t.Tricks(),
		MadeBid:   t.MadeBid(),
		MadeNil:   t.MadeNil(),
		FailedNil: t.FailedNil(),
	}

	bags := s.Bags
	if res.MadeBid {
		res.Overtricks = res.Tricks - res.Bid
		bags += res.Overtricks
	}

	total := s.Total
	if res.MadeNil {
		total += NilBonus
	}
	if res.FailedNil {
		total -= NilPenalty
	}
	if res.MadeBid {
		total += PointsPerBid * res.Bid
	} else {
		total -= PointsPerBid * res.Bid
	}
	if bags >= BagLimit {
		res.BagPenalty = true
		total -= BagPenalty
	}

	res.Delta = total - s.Total
	s.Total = total
	s.Bags = bags % BagLimit

	res.Total = s.Total
	res.Bags = s.Bags
	return res
}

// HasWinningScore reports whether the total reached the limit.
func (s *Score) HasWinningScore(limit int) bool {
	return s.Total >= limit
}
