package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/backend/internal/config"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
	"github.com/iamasit07/connect-four/backend/internal/transport/http/middleware"
	"github.com/iamasit07/connect-four/backend/internal/transport/websocket"
)

// NewRouter wires every HTTP and WebSocket route onto a gin engine.
func NewRouter(cfg *config.Config, svc *game.Service, connManager *websocket.ConnectionManager) *gin.Engine {
	gameHandler := NewGameHandler(svc, cfg.SessionTokenTTL)
	watchHandler := NewWatchHandler(svc.Sessions)
	wsHandler := websocket.NewHandler(connManager, svc, cfg.AllowedOrigins)

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	router.POST("/api/games", gameHandler.CreateGame)
	router.GET("/api/games", watchHandler.GetLiveGames)
	router.GET("/api/games/:id", gameHandler.GetGame)

	// Routes that need the token issued with the game
	protected := router.Group("/api/games/:id")
	protected.Use(middleware.AuthMiddleware(svc))
	{
		protected.POST("/drop", gameHandler.DropPiece)
		protected.POST("/reset", gameHandler.ResetGame)
	}

	// WebSocket route (auth handled inside the WS handler itself)
	router.GET("/ws", wsHandler.HandleWebSocket)

	return router
}
