package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

const CookieName = "lp_session"

// CookieParams defines how session cookies are issued.
type CookieParams struct {
	// Secret, when set, is used to HMAC-sign the cookie value so a
	// tampered token is rejected before hitting the session store.
	Secret string
	// Secure should be set in production deployments (HTTPS only).
	Secure bool
	MaxAge time.Duration
}

// SetSessionCookie issues the session cookie carrying the (signed) token.
func SetSessionCookie(w http.ResponseWriter, token string, params CookieParams) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signToken(token, params.Secret),
		Path:     "/",
		MaxAge:   int(params.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   params.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the session cookie from the client.
func ClearSessionCookie(w http.ResponseWriter, params CookieParams) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   params.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadSessionToken extracts and verifies the session token from the
// request cookie. Returns false for a missing cookie or a bad signature.
func ReadSessionToken(r *http.Request, secret string) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return verifyToken(cookie.Value, secret)
}

func signToken(token, secret string) string {
	if secret == "" {
		return token
	}
	return token + "." + tokenSignature(token, secret)
}

func verifyToken(value, secret string) (string, bool) {
	if secret == "" {
		return value, true
	}

	token, signature, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(signature), []byte(tokenSignature(token, secret))) {
		return "", false
	}
	return token, true
}

func tokenSignature(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
