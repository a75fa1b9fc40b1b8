package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionEcho() (http.Handler, *string) {
	var seen string
	handler := CartSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session, ok := GetCartSession(r.Context()); ok {
			seen = session
		}
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seen
}

func TestCartSession_IssuesUUIDCookieOnFirstContact(t *testing.T) {
	handler, seen := sessionEcho()

	req := httptest.NewRequest("GET", "/api/cart", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)
	assert.Equal(t, cookie.Value, *seen)
}

func TestCartSession_PropagatesExistingToken(t *testing.T) {
	handler, seen := sessionEcho()
	token := uuid.New().String()

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	// No replacement cookie when the token is valid.
	assert.Empty(t, w.Result().Cookies())
	assert.Equal(t, token, *seen)
}

func TestCartSession_ReplacesMalformedToken(t *testing.T) {
	handler, seen := sessionEcho()

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-uuid"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "not-a-uuid", cookies[0].Value)
	assert.Equal(t, cookies[0].Value, *seen)
}

func TestGetCartSession_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/cart", nil)

	_, ok := GetCartSession(req.Context())
	assert.False(t, ok)
}
