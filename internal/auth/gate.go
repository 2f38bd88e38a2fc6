package auth

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// SessionGate guards routes behind the presence of a live session.
// Unauthenticated requests are redirected to the login entry point
// rather than served an error page.
type SessionGate struct {
	checker      Checker
	cookieSecret string
}

func NewSessionGate(checker Checker, cookieSecret string) *SessionGate {
	return &SessionGate{
		checker:      checker,
		cookieSecret: cookieSecret,
	}
}

func (g *SessionGate) RequireSession() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := ReadSessionToken(r, g.cookieSecret)
			if !ok {
				log.Tracef("[missing session] unauthorized => %s", r.URL.Path)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			isLogged, err := g.checker.IsLogged(r.Context(), token)
			if err != nil {
				log.Errorf("[failed session check] => %s: %s", r.URL.Path, err)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			if !isLogged {
				log.Tracef("[expired session] unauthorized => %s", r.URL.Path)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
