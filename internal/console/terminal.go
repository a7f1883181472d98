package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"spades-game/internal/game"
)

const clearScreen = "\033[H\033[2J"

// Instructions is printed once before the game starts.
const Instructions = `
			 -----------------------
				SPADES
			 -----------------------

	  To play a card, simply type in the number of the card
	  followed by the first letter of its suit.

	  For example, to play the Ace of Spades, type in 'as' or 'AS'.

	  You are Player 3 and your teammate is Player 1. Good luck!
`

// Terminal is the line-based display and input for the human seat.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
	clear bool
}

// NewTerminal wraps the given streams. When clear is set every render
// redraws the whole screen.
func NewTerminal(in io.Reader, out io.Writer, color, clear bool) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, color: color, clear: clear}
}

// ReadLine prints the prompt and returns the next line without its newline.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Render draws the board.
func (t *Terminal) Render(snap game.Snapshot) {
	if t.clear {
		fmt.Fprint(t.out, clearScreen)
	}
	fmt.Fprintln(t.out, RenderBoard(snap, t.color))
}

// Announce prints a message on its own line.
func (t *Terminal) Announce(msg string) {
	fmt.Fprintln(t.out, msg)
}

// ShowInstructions prints the how-to-play banner.
func (t *Terminal) ShowInstructions() {
	if t.clear {
		fmt.Fprint(t.out, clearScreen)
	}
	fmt.Fprint(t.out, Instructions)
}
