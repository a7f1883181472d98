package console

import (
	"fmt"
	"strings"

	"spades-game/internal/game"
	"spades-game/internal/shared"

	"github.com/charmbracelet/lipgloss"
)

// BlankCard is shown for a seat that has not played this trick.
const BlankCard = "[  ]"

const boardWidth = 64

type palette struct {
	title  lipgloss.Style
	label  lipgloss.Style
	lead   lipgloss.Style
	subtle lipgloss.Style
	red    lipgloss.Style
	black  lipgloss.Style
	border lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{
			title:  plain,
			label:  plain,
			lead:   plain,
			subtle: plain,
			red:    plain,
			black:  plain,
			border: plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		}
	}
	return palette{
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color("#58a6ff")).Bold(true),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e6edf3")).Bold(true),
		lead:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e3b341")).Bold(true),
		subtle: lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")),
		red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149")),
		black:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e6edf3")),
		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363d")).
			Padding(0, 1),
	}
}

func (p palette) card(c shared.Card) string {
	if c.IsZero() {
		return p.subtle.Render(BlankCard)
	}
	if c.Suit == shared.Hearts || c.Suit == shared.Diamonds {
		return p.red.Render(c.String())
	}
	return p.black.Render(c.String())
}

func (p palette) seat(s game.SeatView) string {
	name := strings.ToUpper(shared.SeatName(s.Seat))
	if s.Human && s.Name != shared.SeatName(s.Seat) {
		name += " (" + s.Name + ")"
	}
	style := p.label
	if s.Lead {
		style = p.lead
		name = "▸ " + name
	}

	bid := "-"
	if s.HasBid {
		bid = fmt.Sprint(s.Bid)
	}
	return strings.Join([]string{
		style.Render(name),
		p.subtle.Render("Bid: ") + bid,
		p.subtle.Render("Tricks: ") + fmt.Sprint(s.Tricks),
	}, "\n")
}

func center(s string, w int) string {
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(s)
}

// RenderBoard draws the table for a snapshot.
func RenderBoard(snap game.Snapshot, color bool) string {
	p := newPalette(color)

	teams := make([]string, len(snap.Teams))
	for i, t := range snap.Teams {
		teams[i] = p.border.Render(fmt.Sprintf("%s\nScore:%d Bags:%d",
			p.title.Render(fmt.Sprintf("--Team %d--", t.Number)), t.Score, t.Bags))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		p.title.Render(fmt.Sprintf("Round:%d  ", snap.Round)),
		teams[0], "  ", teams[1])

	north := snap.Seats[shared.SeatNorth]
	east := snap.Seats[shared.SeatEast]
	south := snap.Seats[shared.SeatSouth]
	west := snap.Seats[shared.SeatWest]

	side := 18
	middle := boardWidth - 2*side
	table := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Width(side).Render(p.seat(west)),
		center(p.card(west.Played)+"      "+p.card(east.Played), middle),
		lipgloss.NewStyle().Width(side).Align(lipgloss.Right).Render(p.seat(east)),
	)

	hand := make([]string, len(snap.Hand))
	for i, c := range snap.Hand {
		hand[i] = p.card(c)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		center(p.seat(north), boardWidth),
		center(p.card(north.Played), boardWidth),
		table,
		center(p.card(south.Played), boardWidth),
		center(p.seat(south), boardWidth),
		"",
		center("<"+strings.Join(hand, "")+">", boardWidth),
	)
}
