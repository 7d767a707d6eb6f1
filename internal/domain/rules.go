package domain

// scan order matters: horizontal, vertical, diagonal down-right, diagonal down-left
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CheckForWin rescans the whole board for a run of ToWin cells owned by player.
func CheckForWin(board Board, player PlayerID) bool {
	_, ok := WinningLine(board, player)
	return ok
}

// WinningLine returns the first run found for player. Anchors are visited
// top-to-bottom, left-to-right, and each anchor tries every direction in order.
func WinningLine(board Board, player PlayerID) ([]Position, bool) {
	if player == Empty {
		return nil, false
	}

	for y := 0; y < board.Rows(); y++ {
		for x := 0; x < board.Columns(); x++ {
			for _, d := range directions {
				if runFrom(board, y, x, d[0], d[1], player) {
					line := make([]Position, ToWin)
					for k := range line {
						line[k] = Position{Row: y + k*d[0], Column: x + k*d[1]}
					}
					return line, true
				}
			}
		}
	}

	return nil, false
}

func runFrom(board Board, y, x, dy, dx int, player PlayerID) bool {
	for k := 0; k < ToWin; k++ {
		r, c := y+k*dy, x+k*dx
		if !board.InBounds(r, c) || board[r][c] != player {
			return false
		}
	}
	return true
}

// CheckWinAt only looks at lines passing through (row, column). After any
// single placement it agrees with CheckForWin, since a run that did not exist
// before the move must contain the new disk.
func CheckWinAt(board Board, row, column int, player PlayerID) bool {
	if !board.InBounds(row, column) || board[row][column] != player {
		return false
	}

	for _, d := range directions {
		total := 1 +
			board.countInDirection(row, column, d[0], d[1], player) +
			board.countInDirection(row, column, -d[0], -d[1], player)
		if total >= ToWin {
			return true
		}
	}

	return false
}
