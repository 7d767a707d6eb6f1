// Package render draws engine snapshots as text for terminal front ends.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/iamasit07/connect-four/backend/internal/domain"
)

var namedColors = map[string]color.Attribute{
	"red":     color.FgRed,
	"blue":    color.FgBlue,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"magenta": color.FgMagenta,
	"purple":  color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"black":   color.FgBlack,
}

const (
	emptySymbol = "."
	pieceSymbol = "O"
	winSymbol   = "@"
)

// Painter colors a player's pieces. Colors the terminal has no name for are
// printed plain, with the player number standing in for the piece.
type Painter struct {
	attrs   map[domain.PlayerID]color.Attribute
	symbols map[domain.PlayerID]string
}

func NewPainter(player1Color, player2Color string) *Painter {
	p := &Painter{
		attrs:   make(map[domain.PlayerID]color.Attribute),
		symbols: make(map[domain.PlayerID]string),
	}
	for player, name := range map[domain.PlayerID]string{domain.Player1: player1Color, domain.Player2: player2Color} {
		if attr, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]; ok {
			p.attrs[player] = attr
			p.symbols[player] = pieceSymbol
		} else {
			p.attrs[player] = color.Reset
			p.symbols[player] = fmt.Sprint(int(player))
		}
	}
	return p
}

func (p *Painter) Piece(player domain.PlayerID, highlight bool) string {
	if player == domain.Empty {
		return emptySymbol
	}
	symbol := p.symbols[player]
	style := color.New(p.attrs[player])
	if highlight {
		if symbol == pieceSymbol {
			symbol = winSymbol
		}
		style.Add(color.Bold)
	}
	return style.Sprint(symbol)
}

// Board writes the grid with 1-based column labels above it and the
// winning line, if any, highlighted.
func Board(w io.Writer, s domain.Snapshot) error {
	p := NewPainter(s.Player1Color, s.Player2Color)

	winning := make(map[domain.Position]bool, len(s.WinningLine))
	for _, pos := range s.WinningLine {
		winning[pos] = true
	}

	var b strings.Builder
	for c := 0; c < s.Columns; c++ {
		fmt.Fprintf(&b, " %d", (c+1)%10)
	}
	b.WriteString("\n")

	for r, row := range s.Board {
		for c, cell := range row {
			b.WriteString(" ")
			b.WriteString(p.Piece(domain.PlayerID(cell), winning[domain.Position{Row: r, Column: c}]))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Status is the one-line caption printed under the board.
func Status(s domain.Snapshot) string {
	switch s.Status {
	case domain.StatusWon:
		return fmt.Sprintf("Player %d won!", s.Winner)
	case domain.StatusTied:
		return "Tie!"
	}
	name := s.Player1Color
	if s.CurrentPlayer == domain.Player2 {
		name = s.Player2Color
	}
	return fmt.Sprintf("Player %d (%s) to move", s.CurrentPlayer, name)
}
