package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookie_signedRoundTrip(t *testing.T) {
	params := CookieParams{
		Secret: "test-secret",
		Secure: true,
		MaxAge: 24 * time.Hour,
	}

	rr := httptest.NewRecorder()
	SetSessionCookie(rr, "test_token", params)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
	// signed value carries the token plus a signature
	assert.NotEqual(t, "test_token", cookie.Value)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	token, ok := ReadSessionToken(req, params.Secret)
	require.True(t, ok)
	assert.Equal(t, "test_token", token)
}

func TestSessionCookie_unsignedWhenNoSecret(t *testing.T) {
	params := CookieParams{MaxAge: time.Hour}

	rr := httptest.NewRecorder()
	SetSessionCookie(rr, "test_token", params)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "test_token", cookies[0].Value)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])
	token, ok := ReadSessionToken(req, "")
	require.True(t, ok)
	assert.Equal(t, "test_token", token)
}

func TestSessionCookie_tamperedValueRejected(t *testing.T) {
	secret := "test-secret"

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  CookieName,
		Value: signToken("other_token", "wrong-secret"),
	})

	token, ok := ReadSessionToken(req, secret)
	assert.False(t, ok)
	assert.Empty(t, token)

	// no signature at all
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "bare_token"})
	token, ok = ReadSessionToken(req, secret)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestSessionCookie_missingCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	token, ok := ReadSessionToken(req, "test-secret")
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestClearSessionCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	ClearSessionCookie(rr, CookieParams{})

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
