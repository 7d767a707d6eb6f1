package domain

// Board is a grid of cells indexed [row][column]; row 0 is the top.
type Board [][]Cell

func NewBoard(columns, rows int) Board {
	board := make(Board, rows)
	for i := range board {
		board[i] = make([]Cell, columns)
	}
	return board
}

func (b Board) Rows() int {
	return len(b)
}

func (b Board) Columns() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

func (b Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.Rows() && column >= 0 && column < b.Columns()
}

// LowestEmptyRow scans the column bottom-up and returns the first free row,
// or -1 when the column is full.
func (b Board) LowestEmptyRow(column int) int {
	for row := b.Rows() - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			return row
		}
	}
	return -1
}

// IsFull reports whether every cell is occupied. Gravity means checking
// the top row is enough, but a full scan keeps boards built by hand honest.
func (b Board) IsFull() bool {
	for _, row := range b {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

// this creates a deep copy of the board
func (b Board) Copy() Board {
	newBoard := make(Board, len(b))
	for i := range b {
		newBoard[i] = make([]Cell, len(b[i]))
		copy(newBoard[i], b[i])
	}
	return newBoard
}

// Ints flattens cells to plain ints for JSON clients.
func (b Board) Ints() [][]int {
	out := make([][]int, len(b))
	for i := range b {
		out[i] = make([]int, len(b[i]))
		for j := range b[i] {
			out[i][j] = int(b[i][j])
		}
	}
	return out
}

// countInDirection counts player's consecutive disks starting one step
// away from (row, column).
func (b Board) countInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for b.InBounds(r, c) && b[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
