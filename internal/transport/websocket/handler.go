package websocket

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect-four/backend/internal/domain"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
	"github.com/iamasit07/connect-four/backend/pkg/httputil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	GameService *game.Service
	Upgrader    websocket.Upgrader
}

// NewHandler creates a WebSocket handler; an empty Origin header is always
// accepted, anything else must be listed in allowedOrigins.
func NewHandler(cm *ConnectionManager, gs *game.Service, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager: cm,
		GameService: gs,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket authorizes the caller for ?gameId= and upgrades the connection
func (h *Handler) HandleWebSocket(c *gin.Context) {
	gameID := c.Query("gameId")
	token, err := httputil.GetTokenFromRequest(c.Request)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	session, err := h.GameService.AuthorizedSession(gameID, token)
	if err != nil {
		log.Warn().Err(err).Str("component", "ws").Str("game_id", gameID).Msg("rejected connection")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("component", "ws").Msg("upgrade error")
		return
	}

	h.handleConnection(conn, session)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn, session *game.GameSession) {
	logger := log.With().Str("component", "ws").Str("game_id", session.GameID).Logger()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	h.ConnManager.AddConnection(session.GameID, conn)
	logger.Info().Msg("connection opened")

	done := make(chan struct{})
	defer func() {
		close(done)
		h.ConnManager.RemoveConnectionIfMatching(session.GameID, conn)
		logger.Info().Msg("connection closed")
	}()

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	state := session.Snapshot()
	h.ConnManager.SendMessage(session.GameID, domain.ServerMessage{Type: domain.MsgState, GameID: session.GameID, State: &state})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("client disconnected unexpectedly")
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Debug().Err(err).Msg("invalid message format")
			h.sendError(session.GameID, "invalid message format")
			continue
		}

		h.processMessage(session, msg, logger)
	}
}

// processMessage routes client actions to the session
func (h *Handler) processMessage(session *game.GameSession, msg domain.ClientMessage, logger zerolog.Logger) {
	switch msg.Type {
	case domain.MsgDrop:
		if msg.Column == nil {
			h.sendError(session.GameID, "column is required")
			return
		}
		// move_made / game_over are pushed by the session itself
		result, _ := session.Drop(*msg.Column)
		switch result.Outcome {
		case domain.OutcomeInvalidColumn:
			h.sendError(session.GameID, "invalid column")
		case domain.OutcomeGameOver:
			h.sendError(session.GameID, "game is over, reset to play again")
		}

	case domain.MsgReset:
		session.Reset(msg.Player1Color, msg.Player2Color)

	case domain.MsgSync:
		state := session.Snapshot()
		h.ConnManager.SendMessage(session.GameID, domain.ServerMessage{Type: domain.MsgState, GameID: session.GameID, State: &state})

	default:
		logger.Debug().Str("type", msg.Type).Msg("unknown message type")
		h.sendError(session.GameID, "unknown message type")
	}
}

func (h *Handler) sendError(gameID, message string) {
	h.ConnManager.SendMessage(gameID, domain.ServerMessage{Type: domain.MsgError, GameID: gameID, Message: message})
}
