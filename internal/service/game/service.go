package game

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iamasit07/connect-four/backend/internal/domain"
	"github.com/iamasit07/connect-four/backend/pkg/uid"
	"github.com/rs/zerolog/log"
)

// GameSession is the single owner of one engine. Every call into the engine
// goes through the session mutex, so UI events are handled one at a time.
// Notifications are sent after the mutex is released.
type GameSession struct {
	GameID     string
	CreatedAt  time.Time
	lastActive atomic.Int64 // unix nanos
	engine     *domain.Engine
	notifier   Notifier
	clock      func() time.Time
	mu         sync.Mutex
	sendMu     sync.Mutex // keeps notifications in move order
}

// Notifier delivers server messages to whatever UI is attached to a game.
type Notifier interface {
	SendMessage(gameID string, message domain.ServerMessage) error
}

// Disconnector is implemented by notifiers that hold a live connection per
// game; it is called when a session is removed.
type Disconnector interface {
	Disconnect(gameID string)
}

type noopNotifier struct{}

func (noopNotifier) SendMessage(string, domain.ServerMessage) error { return nil }

// SessionManager manages active game sessions
type SessionManager struct {
	Session  map[string]*GameSession // gameID → GameSession
	mu       sync.RWMutex
	columns  int
	rows     int
	colors   [2]string
	notifier Notifier
	now      func() time.Time
}

func NewSessionManager(columns, rows int, notifier Notifier) *SessionManager {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &SessionManager{
		Session:  make(map[string]*GameSession),
		columns:  columns,
		rows:     rows,
		notifier: notifier,
		now:      time.Now,
	}
}

// SetDefaultColors sets the colors used when a new game does not name its own.
func (sm *SessionManager) SetDefaultColors(player1Color, player2Color string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.colors = [2]string{player1Color, player2Color}
}

func (sm *SessionManager) CreateSession(player1Color, player2Color string) (*GameSession, error) {
	sm.mu.RLock()
	if player1Color == "" {
		player1Color = sm.colors[0]
	}
	if player2Color == "" {
		player2Color = sm.colors[1]
	}
	sm.mu.RUnlock()

	engine, err := domain.NewEngine(sm.columns, sm.rows, player1Color, player2Color)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	session := &GameSession{
		GameID:    uid.GenerateGameID(),
		CreatedAt: now,
		engine:    engine,
		notifier:  sm.notifier,
		clock:     sm.now,
	}
	session.lastActive.Store(now.UnixNano())
	sm.Session[session.GameID] = session

	log.Info().Str("component", "session").Str("game_id", session.GameID).
		Int("columns", sm.columns).Int("rows", sm.rows).
		Str("player1_color", engine.Color(domain.Player1)).
		Str("player2_color", engine.Color(domain.Player2)).
		Msg("created session")
	return session, nil
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, error) {
	if !uid.IsGameID(gameID) {
		return nil, domain.ErrSessionNotFound
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	if !exists {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	if _, exists := sm.Session[gameID]; !exists {
		sm.mu.Unlock()
		return domain.ErrSessionNotFound
	}
	delete(sm.Session, gameID)
	sm.mu.Unlock()

	sm.disconnect(gameID)
	log.Info().Str("component", "session").Str("game_id", gameID).Msg("removed session")
	return nil
}

// disconnect drops the UI connection of a removed game, if the notifier keeps one.
func (sm *SessionManager) disconnect(gameID string) {
	if d, ok := sm.notifier.(Disconnector); ok {
		d.Disconnect(gameID)
	}
}

// ActiveSessions returns a snapshot of the session list.
func (sm *SessionManager) ActiveSessions() []*GameSession {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	sessions := make([]*GameSession, 0, len(sm.Session))
	for _, s := range sm.Session {
		sessions = append(sessions, s)
	}
	return sessions
}

// CleanupIdleSessions drops sessions nobody has touched for maxIdle and
// returns how many were removed.
func (sm *SessionManager) CleanupIdleSessions(maxIdle time.Duration) int {
	now := sm.now()
	var removed []string

	sm.mu.Lock()
	for gameID, session := range sm.Session {
		if now.Sub(session.LastActivity()) > maxIdle {
			delete(sm.Session, gameID)
			removed = append(removed, gameID)
		}
	}
	sm.mu.Unlock()

	for _, gameID := range removed {
		sm.disconnect(gameID)
	}

	if len(removed) > 0 {
		log.Info().Str("component", "session").Int("removed", len(removed)).Msg("memory cleanup removed idle sessions")
	}
	return len(removed)
}

// LastActivity is the time of the last drop or reset. It never blocks on the
// session mutex.
func (gs *GameSession) LastActivity() time.Time {
	return time.Unix(0, gs.lastActive.Load())
}

func (gs *GameSession) touch() {
	gs.lastActive.Store(gs.clock().UnixNano())
}

// Drop plays column for whoever's turn it is and notifies the UI.
func (gs *GameSession) Drop(column int) (domain.DropResult, domain.Snapshot) {
	gs.mu.Lock()
	gs.touch()

	result := gs.engine.DropPiece(column)
	state := gs.engine.Snapshot()
	var outbox []domain.ServerMessage

	logger := log.With().Str("component", "game").Str("game_id", gs.GameID).
		Int("column", column).Int("player", int(result.Player)).Str("outcome", string(result.Outcome)).Logger()

	switch result.Outcome {
	case domain.OutcomeContinue:
		logger.Debug().Int("row", result.Row).Msg("move made")
		outbox = append(outbox, domain.ServerMessage{Type: domain.MsgMoveMade, Result: &result, State: &state})

	case domain.OutcomeWin, domain.OutcomeTie:
		logger.Info().Int("row", result.Row).Int("moves", state.MoveCount).Msg("game over")
		outbox = append(outbox,
			domain.ServerMessage{Type: domain.MsgMoveMade, Result: &result, State: &state},
			domain.ServerMessage{
				Type:    domain.MsgGameOver,
				Message: GameOverMessage(result),
				Result:  &result,
				State:   &state,
			})

	case domain.OutcomeColumnFull:
		// nothing changed; the UI ignores it
		logger.Debug().Msg("column full")

	default:
		logger.Warn().Msg("move rejected")
	}

	gs.unlockAndPublish(outbox...)
	return result, state
}

// Reset abandons the current game and starts a new one with the given colors.
func (gs *GameSession) Reset(player1Color, player2Color string) domain.Snapshot {
	gs.mu.Lock()
	gs.touch()

	wasFinished := gs.engine.IsFinished()
	gs.engine.Reset(player1Color, player2Color)
	state := gs.engine.Snapshot()

	log.Info().Str("component", "game").Str("game_id", gs.GameID).
		Bool("previous_finished", wasFinished).Msg("game reset")
	gs.unlockAndPublish(domain.ServerMessage{Type: domain.MsgGameReset, State: &state})
	return state
}

func (gs *GameSession) Snapshot() domain.Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.engine.Snapshot()
}

// unlockAndPublish releases gs.mu, which the caller must hold, and then
// sends msgs. sendMu is taken before gs.mu is released so that the next
// event's messages cannot overtake these.
func (gs *GameSession) unlockAndPublish(msgs ...domain.ServerMessage) {
	gs.sendMu.Lock()
	gs.mu.Unlock()
	defer gs.sendMu.Unlock()

	for _, msg := range msgs {
		msg.GameID = gs.GameID
		if err := gs.notifier.SendMessage(gs.GameID, msg); err != nil {
			log.Warn().Err(err).Str("component", "game").Str("game_id", gs.GameID).
				Str("type", msg.Type).Msg("failed to notify client")
		}
	}
}

// GameOverMessage is the banner text shown for a terminal result.
func GameOverMessage(result domain.DropResult) string {
	switch result.Outcome {
	case domain.OutcomeWin:
		return fmt.Sprintf("Player %d won!", result.Winner)
	case domain.OutcomeTie:
		return "Tie!"
	}
	return ""
}
