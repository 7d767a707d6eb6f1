package domain

// ClientMessage is a UI event. Column is a pointer so a drop without one can
// be told apart from a drop in column 0.
type ClientMessage struct {
	Type         string `json:"type"`
	Column       *int   `json:"column,omitempty"`
	Player1Color string `json:"player1Color,omitempty"`
	Player2Color string `json:"player2Color,omitempty"`
}

type ServerMessage struct {
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	GameID  string      `json:"gameId,omitempty"`
	Result  *DropResult `json:"result,omitempty"`
	State   *Snapshot   `json:"state,omitempty"`
}

const (
	MsgDrop  = "drop"
	MsgReset = "reset"
	MsgSync  = "sync"

	MsgState     = "state"
	MsgMoveMade  = "move_made"
	MsgGameOver  = "game_over"
	MsgGameReset = "game_reset"
	MsgError     = "error"
)
