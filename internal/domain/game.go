package domain

// Engine holds one game of Connect Four. It is not safe for concurrent use;
// the owning session serializes calls.
type Engine struct {
	board         Board
	columns       int
	rows          int
	currentPlayer PlayerID
	status        GameStatus
	winner        PlayerID
	moveCount     int
	colors        map[PlayerID]string
}

// Snapshot is a detached copy of the engine state for renderers.
type Snapshot struct {
	Board         [][]int    `json:"board"`
	Columns       int        `json:"columns"`
	Rows          int        `json:"rows"`
	CurrentPlayer PlayerID   `json:"currentPlayer"`
	Status        GameStatus `json:"status"`
	Winner        PlayerID   `json:"winner,omitempty"`
	WinningLine   []Position `json:"winningLine,omitempty"`
	MoveCount     int        `json:"moveCount"`
	Player1Color  string     `json:"player1Color"`
	Player2Color  string     `json:"player2Color"`
}

func NewEngine(columns, rows int, player1Color, player2Color string) (*Engine, error) {
	if columns < 1 || rows < 1 {
		return nil, ErrInvalidDimensions
	}

	e := &Engine{columns: columns, rows: rows}
	e.Reset(player1Color, player2Color)
	return e, nil
}

// Reset abandons whatever game is running and starts a fresh one.
// Empty colors fall back to the defaults.
func (e *Engine) Reset(player1Color, player2Color string) {
	if player1Color == "" {
		player1Color = DefaultPlayer1Color
	}
	if player2Color == "" {
		player2Color = DefaultPlayer2Color
	}

	e.board = NewBoard(e.columns, e.rows)
	e.currentPlayer = Player1
	e.status = StatusInProgress
	e.winner = Empty
	e.moveCount = 0
	e.colors = map[PlayerID]string{
		Player1: player1Color,
		Player2: player2Color,
	}
}

func (e *Engine) DropPiece(column int) DropResult {
	result := DropResult{Row: -1, Column: column, Player: e.currentPlayer}

	if column < 0 || column >= e.columns {
		result.Outcome = OutcomeInvalidColumn
		return result
	}

	if e.status != StatusInProgress {
		result.Outcome = OutcomeGameOver
		return result
	}

	row := e.board.LowestEmptyRow(column)
	if row < 0 {
		result.Outcome = OutcomeColumnFull
		return result
	}

	e.board[row][column] = e.currentPlayer
	e.moveCount++
	result.Row = row

	if CheckForWin(e.board, e.currentPlayer) {
		e.status = StatusWon
		e.winner = e.currentPlayer
		result.Outcome = OutcomeWin
		result.Winner = e.currentPlayer
		return result
	}

	if e.board.IsFull() {
		e.status = StatusTied
		result.Outcome = OutcomeTie
		return result
	}

	e.currentPlayer = e.currentPlayer.Other()
	result.Outcome = OutcomeContinue
	return result
}

// Cell returns the content at (row, column); ok is false when out of range.
func (e *Engine) Cell(row, column int) (Cell, bool) {
	if !e.board.InBounds(row, column) {
		return Empty, false
	}
	return e.board[row][column], true
}

func (e *Engine) CurrentPlayer() PlayerID {
	return e.currentPlayer
}

func (e *Engine) Status() GameStatus {
	return e.status
}

// Winner is Empty unless the status is StatusWon.
func (e *Engine) Winner() PlayerID {
	return e.winner
}

func (e *Engine) Dimensions() (columns, rows int) {
	return e.columns, e.rows
}

func (e *Engine) MoveCount() int {
	return e.moveCount
}

// Color returns the opaque color string stored for player at the last reset.
func (e *Engine) Color(player PlayerID) string {
	return e.colors[player]
}

func (e *Engine) IsFinished() bool {
	return e.status.IsTerminal()
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Board:         e.board.Ints(),
		Columns:       e.columns,
		Rows:          e.rows,
		CurrentPlayer: e.currentPlayer,
		Status:        e.status,
		Winner:        e.winner,
		MoveCount:     e.moveCount,
		Player1Color:  e.colors[Player1],
		Player2Color:  e.colors[Player2],
	}
	if e.status == StatusWon {
		s.WinningLine, _ = WinningLine(e.board, e.winner)
	}
	return s
}
