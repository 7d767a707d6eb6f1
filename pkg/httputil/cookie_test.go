package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/ws?token=from-query", nil)
	token, err := GetTokenFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "from-query", token)

	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})
	token, _ = GetTokenFromRequest(r)
	assert.Equal(t, "from-cookie", token)

	r.Header.Set("Authorization", "Bearer from-header")
	token, _ = GetTokenFromRequest(r)
	assert.Equal(t, "from-header", token)
}

func TestGetTokenFromRequest_Missing(t *testing.T) {
	_, err := GetTokenFromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Error(t, err)
}

func TestSetSessionCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetSessionCookie(w, "tok", time.Hour)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}
