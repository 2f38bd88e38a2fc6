package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func setupGatedRouterForTests(t *testing.T, checker Checker) *mux.Router {
	t.Helper()

	r := mux.NewRouter()
	gated := r.PathPrefix("/protected").Subrouter()
	gated.HandleFunc("", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gated.Use(NewSessionGate(checker, "test-secret").RequireSession())

	return r
}

func TestSessionGate(t *testing.T) {
	loginChecker := NewLoginTestChecker()
	loginChecker.Sessions["live_token"] = &Session{UserID: 1, CreatedAt: time.Now()}
	r := setupGatedRouterForTests(t, loginChecker)

	t.Run("no cookie", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/protected", nil))
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("tampered cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "live_token.forged-signature"})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("unknown session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: signToken("dead_token", "test-secret")})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("live session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: signToken("live_token", "test-secret")})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestSessionGate_checkerError(t *testing.T) {
	loginChecker := NewLoginTestChecker()
	loginChecker.Err = errors.New("session store down")
	r := setupGatedRouterForTests(t, loginChecker)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: signToken("any_token", "test-secret")})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	// a session store outage fails closed
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}
