package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Other returns the opponent of p. Empty has no opponent.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

// Cell is the content of one board square: Empty or the owning player.
type Cell = PlayerID

const (
	DefaultColumns = 7
	DefaultRows    = 6
	ToWin          = 4
)

const (
	DefaultPlayer1Color = "red"
	DefaultPlayer2Color = "blue"
)

// to represent the game status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusTied       GameStatus = "tied"
)

func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusTied
}

// Outcome is what a single DropPiece call resolved to.
type Outcome string

const (
	OutcomeContinue      Outcome = "continue"
	OutcomeWin           Outcome = "win"
	OutcomeTie           Outcome = "tie"
	OutcomeColumnFull    Outcome = "column_full"
	OutcomeGameOver      Outcome = "game_over"
	OutcomeInvalidColumn Outcome = "invalid_column"
)

// Placed reports whether the outcome wrote a piece to the board.
func (o Outcome) Placed() bool {
	return o == OutcomeContinue || o == OutcomeWin || o == OutcomeTie
}

// DropResult describes a drop. Row is -1 when nothing was placed;
// Winner is set only for OutcomeWin.
type DropResult struct {
	Row     int      `json:"row"`
	Column  int      `json:"column"`
	Player  PlayerID `json:"player"`
	Outcome Outcome  `json:"outcome"`
	Winner  PlayerID `json:"winner,omitempty"`
}

// Position addresses a cell as (row, column); row 0 is the top.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDimensions Error = "board dimensions must be at least 1x1"
	ErrSessionNotFound   Error = "game session not found"
	ErrInvalidToken      Error = "invalid session token"
)
