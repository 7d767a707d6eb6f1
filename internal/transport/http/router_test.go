package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/backend/internal/config"
	"github.com/iamasit07/connect-four/backend/internal/domain"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
	"github.com/iamasit07/connect-four/backend/internal/transport/websocket"
	"github.com/iamasit07/connect-four/backend/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AllowedOrigins:  []string{"http://localhost:5173"},
		SessionTokenTTL: time.Hour,
	}
	cm := websocket.NewConnectionManager()
	svc := game.NewService(game.NewSessionManager(7, 6, cm), auth.NewIssuer("test-secret", time.Hour))
	return NewRouter(cfg, svc, cm)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createGame(t *testing.T, router http.Handler, body any) createGameResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/games", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp createGameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateGame(t *testing.T) {
	router := newTestRouter(t)

	resp := createGame(t, router, map[string]string{"player1Color": "orange"})
	assert.NotEmpty(t, resp.GameID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "orange", resp.State.Player1Color)
	assert.Equal(t, "blue", resp.State.Player2Color)
	assert.Equal(t, domain.StatusInProgress, resp.State.Status)
	assert.Equal(t, 7, resp.State.Columns)

	w := doJSON(t, router, http.MethodGet, "/api/games/"+resp.GameID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateGame_NoBody(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/games", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestGetGame_NotFound(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/api/games/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDrop_RequiresToken(t *testing.T) {
	router := newTestRouter(t)
	g := createGame(t, router, nil)
	other := createGame(t, router, nil)

	w := doJSON(t, router, http.MethodPost, "/api/games/"+g.GameID+"/drop", "", map[string]int{"column": 0})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/games/"+g.GameID+"/drop", other.Token, map[string]int{"column": 0})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDrop_PlaysUntilWin(t *testing.T) {
	router := newTestRouter(t)
	g := createGame(t, router, nil)
	path := "/api/games/" + g.GameID + "/drop"

	for i := 0; i < 3; i++ {
		for _, col := range []int{0, 1} {
			w := doJSON(t, router, http.MethodPost, path, g.Token, map[string]int{"column": col})
			require.Equal(t, http.StatusOK, w.Code)
		}
	}

	w := doJSON(t, router, http.MethodPost, path, g.Token, map[string]int{"column": 0})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dropResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.OutcomeWin, resp.Result.Outcome)
	assert.Equal(t, domain.Player1, resp.Result.Winner)
	assert.Equal(t, "Player 1 won!", resp.Message)
	assert.Equal(t, domain.StatusWon, resp.State.Status)

	w = doJSON(t, router, http.MethodPost, path, g.Token, map[string]int{"column": 3})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDrop_InvalidColumnAndMissingColumn(t *testing.T) {
	router := newTestRouter(t)
	g := createGame(t, router, nil)
	path := "/api/games/" + g.GameID + "/drop"

	w := doJSON(t, router, http.MethodPost, path, g.Token, map[string]int{"column": 7})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dropResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.OutcomeInvalidColumn, resp.Result.Outcome)
	assert.Zero(t, resp.State.MoveCount)

	w = doJSON(t, router, http.MethodPost, path, g.Token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReset(t *testing.T) {
	router := newTestRouter(t)
	g := createGame(t, router, nil)

	doJSON(t, router, http.MethodPost, "/api/games/"+g.GameID+"/drop", g.Token, map[string]int{"column": 4})
	w := doJSON(t, router, http.MethodPost, "/api/games/"+g.GameID+"/reset", g.Token,
		map[string]string{"player1Color": "gold", "player2Color": "silver"})
	require.Equal(t, http.StatusOK, w.Code)

	var state domain.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Zero(t, state.MoveCount)
	assert.Equal(t, domain.Player1, state.CurrentPlayer)
	assert.Equal(t, "silver", state.Player2Color)
}

func TestLiveGames(t *testing.T) {
	router := newTestRouter(t)
	createGame(t, router, nil)
	createGame(t, router, nil)

	w := doJSON(t, router, http.MethodGet, "/api/games", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var games []liveGameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
	assert.Len(t, games, 2)
}

func TestCORS(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/games", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
