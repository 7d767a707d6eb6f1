package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
	"github.com/iamasit07/connect-four/backend/pkg/httputil"
)

const SessionKey = "game_session"

// AuthMiddleware resolves the :id route parameter to a session and checks
// that the request carries the token issued for it.
func AuthMiddleware(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session, err := svc.AuthorizedSession(c.Param("id"), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// SessionFromContext returns the session stored by AuthMiddleware.
func SessionFromContext(c *gin.Context) *game.GameSession {
	session, _ := c.MustGet(SessionKey).(*game.GameSession)
	return session
}
