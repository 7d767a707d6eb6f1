package game

import (
	"errors"
	"fmt"

	"github.com/iamasit07/connect-four/backend/internal/domain"
	"github.com/iamasit07/connect-four/backend/pkg/auth"
	"github.com/rs/zerolog/log"
)

// TokenIssuer issues and checks the per-game tokens; *auth.Issuer implements it.
type TokenIssuer interface {
	GenerateSessionToken(gameID string) (string, error)
	Authorize(token, gameID string) error
}

var _ TokenIssuer = (*auth.Issuer)(nil)

// Service is the entry point for game logic (facade)
type Service struct {
	Sessions *SessionManager
	Tokens   TokenIssuer
}

func NewService(sessions *SessionManager, tokens TokenIssuer) *Service {
	return &Service{
		Sessions: sessions,
		Tokens:   tokens,
	}
}

// StartGame creates a session and the token that lets its creator drive it.
func (s *Service) StartGame(player1Color, player2Color string) (*GameSession, string, error) {
	session, err := s.Sessions.CreateSession(player1Color, player2Color)
	if err != nil {
		return nil, "", err
	}

	token, err := s.Tokens.GenerateSessionToken(session.GameID)
	if err != nil {
		if rmErr := s.Sessions.RemoveSession(session.GameID); rmErr != nil {
			log.Warn().Err(rmErr).Str("component", "session").Str("game_id", session.GameID).
				Msg("failed to roll back session after token error")
		}
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	return session, token, nil
}

// AuthorizedSession returns the session gameID if token was issued for it.
func (s *Service) AuthorizedSession(gameID, token string) (*GameSession, error) {
	if err := s.Tokens.Authorize(token, gameID); err != nil {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}
	return s.Sessions.GetSession(gameID)
}
