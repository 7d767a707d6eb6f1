package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/backend/internal/domain"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
	"github.com/iamasit07/connect-four/backend/internal/transport/http/middleware"
	"github.com/iamasit07/connect-four/backend/pkg/httputil"
	"github.com/rs/zerolog/log"
)

type GameHandler struct {
	Service  *game.Service
	TokenTTL time.Duration
}

func NewGameHandler(svc *game.Service, tokenTTL time.Duration) *GameHandler {
	return &GameHandler{Service: svc, TokenTTL: tokenTTL}
}

type colorsRequest struct {
	Player1Color string `json:"player1Color"`
	Player2Color string `json:"player2Color"`
}

type dropRequest struct {
	Column *int `json:"column" binding:"required"`
}

type createGameResponse struct {
	GameID string          `json:"gameId"`
	Token  string          `json:"token"`
	State  domain.Snapshot `json:"state"`
}

type dropResponse struct {
	Result  domain.DropResult `json:"result"`
	Message string            `json:"message,omitempty"`
	State   domain.Snapshot   `json:"state"`
}

// CreateGame starts a session; colors are optional and default to red/blue.
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req colorsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	session, token, err := h.Service.StartGame(req.Player1Color, req.Player2Color)
	if err != nil {
		log.Error().Err(err).Str("component", "http").Msg("failed to start game")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start game"})
		return
	}

	httputil.SetSessionCookie(c.Writer, token, h.TokenTTL)
	c.JSON(http.StatusCreated, createGameResponse{
		GameID: session.GameID,
		Token:  token,
		State:  session.Snapshot(),
	})
}

// GetGame is public so spectators can render a game without its token.
func (h *GameHandler) GetGame(c *gin.Context) {
	session, err := h.Service.Sessions.GetSession(c.Param("id"))
	if errors.Is(err, domain.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

func (h *GameHandler) DropPiece(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	var req dropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	result, state := session.Drop(*req.Column)
	resp := dropResponse{Result: result, Message: game.GameOverMessage(result), State: state}

	switch result.Outcome {
	case domain.OutcomeInvalidColumn:
		c.JSON(http.StatusBadRequest, resp)
	case domain.OutcomeGameOver:
		c.JSON(http.StatusConflict, resp)
	default:
		// column_full is a valid no-op and reported like any other move
		c.JSON(http.StatusOK, resp)
	}
}

func (h *GameHandler) ResetGame(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	var req colorsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	c.JSON(http.StatusOK, session.Reset(req.Player1Color, req.Player2Color))
}
