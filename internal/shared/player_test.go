package shared

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptReader replays fixed lines and then reports EOF.
type scriptReader struct {
	lines   []string
	prompts []string
}

func (r *scriptReader) ReadLine(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

type announcements []string

func (a *announcements) Announce(msg string) { *a = append(*a, msg) }

func computerWith(codes ...string) *Player {
	p := NewComputerPlayer(SeatNorth)
	p.TakeHand(cards(codes...))
	return p
}

func TestIsLegalMove(t *testing.T) {
	cases := []struct {
		name  string
		hand  []string
		card  string
		led   Suit
		legal bool
	}{
		{"void in led suit may trump", []string{"2D", "AS"}, "AS", Hearts, true},
		{"void in led suit may discard", []string{"2D", "AS"}, "2D", Hearts, true},
		{"must follow suit", []string{"2D", "AH"}, "2D", Hearts, false},
		{"following suit", []string{"2D", "AH"}, "AH", Hearts, true},
		{"leading anything", []string{"2D", "AH"}, "2D", NoSuit, true},
		{"leading a spade", []string{"2D", "AS"}, "AS", NoSuit, true},
		{"not in hand", []string{"2D", "AH"}, "KH", Hearts, false},
		{"not in hand on lead", []string{"2D", "AH"}, "KH", NoSuit, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := computerWith(c.hand...)
			card := MustParseCard(c.card)
			assert.Equal(t, c.legal, p.IsLegalMove(card, c.led))

			err := p.CheckMove(card, c.led)
			if c.legal {
				assert.NoError(t, err)
				return
			}
			var illegal *IllegalMoveError
			require.ErrorAs(t, err, &illegal)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, card, illegal.Card)
		})
	}
}

func TestPlayCardKeepsHandOnRejection(t *testing.T) {
	p := computerWith("2D", "AH")
	err := p.PlayCard(MustParseCard("2D"), Hearts)
	require.Error(t, err)
	assert.Equal(t, 2, p.Hand.Len())

	require.NoError(t, p.PlayCard(MustParseCard("AH"), Hearts))
	assert.Equal(t, cards("2D"), p.Hand.Cards())
}

func TestComputerBidCountsSpades(t *testing.T) {
	p := computerWith("AS", "KS", "2S", "AH", "AD", "AC")
	bid, err := p.PlaceBid()
	require.NoError(t, err)
	assert.Equal(t, 3, bid)
	assert.Equal(t, 3, p.Bid)

	none := computerWith("AH", "AD")
	bid, err = none.PlaceBid()
	require.NoError(t, err)
	assert.Equal(t, 0, bid)
}

func TestComputerMove(t *testing.T) {
	cases := []struct {
		name string
		hand []string
		lead bool
		led  Suit
		want string
	}{
		{"leader plays first card", []string{"AS", "3H", "9D"}, true, NoSuit, "9D"},
		{"follows with highest of suit", []string{"3H", "QH", "9D", "2S"}, false, Hearts, "QH"},
		{"void trumps with lowest spade", []string{"9D", "5S", "2S", "KS"}, false, Hearts, "2S"},
		{"void without spades plays first card", []string{"JC", "9D", "4C"}, false, Hearts, "9D"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := computerWith(c.hand...)
			p.Lead = c.lead
			got, err := p.ChooseMove(c.led)
			require.NoError(t, err)
			assert.Equal(t, MustParseCard(c.want), got)
			assert.True(t, p.IsLegalMove(got, c.led))
		})
	}
}

func TestHumanBidRetries(t *testing.T) {
	in := &scriptReader{lines: []string{"three", "", "4.5", " 4 "}}
	var out announcements
	p := NewHumanPlayer(SeatSouth, "", in, &out)

	bid, err := p.PlaceBid()
	require.NoError(t, err)
	assert.Equal(t, 4, bid)
	assert.Equal(t, 4, p.Bid)
	assert.Len(t, in.prompts, 4)
	assert.Equal(t, announcements{MsgBadBid, MsgBadBid, MsgBadBid}, out)
	assert.Equal(t, "Player 3", p.Name)
}

func TestHumanMoveRetries(t *testing.T) {
	in := &scriptReader{lines: []string{"1S", "ace", "as"}}
	var out announcements
	p := NewHumanPlayer(SeatSouth, "Ana", in, &out)

	card, err := p.ChooseMove(Hearts)
	require.NoError(t, err)
	assert.Equal(t, Card{Spades, Ace}, card)
	assert.Equal(t, announcements{MsgBadCardCode, MsgBadCardCode}, out)
	assert.Equal(t, "Ana", p.Name)
}

func TestHumanBidAcceptsAnyInteger(t *testing.T) {
	for line, want := range map[string]int{"-1": -1, "14": 14} {
		var out announcements
		p := NewHumanPlayer(SeatSouth, "", &scriptReader{lines: []string{line}}, &out)

		bid, err := p.PlaceBid()
		require.NoError(t, err)
		assert.Equal(t, want, bid)
		assert.Empty(t, out, "no retry for %q", line)
	}
}

func TestHumanInputClosed(t *testing.T) {
	var out announcements
	p := NewHumanPlayer(SeatSouth, "", &scriptReader{}, &out)

	_, err := p.PlaceBid()
	assert.ErrorIs(t, err, io.EOF)
	assert.False(t, errors.Is(err, ErrInvalidInput))

	_, err = p.ChooseMove(NoSuit)
	assert.ErrorIs(t, err, io.EOF)
}

func TestResetRoundKeepsLead(t *testing.T) {
	p := computerWith("2D")
	p.Bid = 3
	p.WonTrick()
	assert.Equal(t, 1, p.Tricks)
	assert.True(t, p.Lead)

	p.ResetRound()
	assert.Zero(t, p.Bid)
	assert.Zero(t, p.Tricks)
	assert.True(t, p.Lead)
}

func TestParseBid(t *testing.T) {
	for in, want := range map[string]int{"0": 0, "13": 13, " 7\n": 7, "-1": -1, "14": 14} {
		got, err := ParseBid(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"x", "", "3.5", "1e2"} {
		_, err := ParseBid(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}
}
