package http

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/backend/internal/domain"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
)

type WatchHandler struct {
	SessionManager *game.SessionManager
}

func NewWatchHandler(sm *game.SessionManager) *WatchHandler {
	return &WatchHandler{SessionManager: sm}
}

type liveGameResponse struct {
	GameID        string            `json:"gameId"`
	Status        domain.GameStatus `json:"status"`
	CurrentPlayer domain.PlayerID   `json:"currentPlayer"`
	MoveCount     int               `json:"moveCount"`
	Player1Color  string            `json:"player1Color"`
	Player2Color  string            `json:"player2Color"`
	StartedAt     string            `json:"startedAt"`
}

// GetLiveGames lists every session held in memory, newest first.
func (h *WatchHandler) GetLiveGames(c *gin.Context) {
	sessions := h.SessionManager.ActiveSessions()
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	response := make([]liveGameResponse, 0, len(sessions))
	for _, s := range sessions {
		state := s.Snapshot()
		response = append(response, liveGameResponse{
			GameID:        s.GameID,
			Status:        state.Status,
			CurrentPlayer: state.CurrentPlayer,
			MoveCount:     state.MoveCount,
			Player1Color:  state.Player1Color,
			Player2Color:  state.Player2Color,
			StartedAt:     s.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, response)
}
