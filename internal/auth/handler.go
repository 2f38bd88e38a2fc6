package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/lpserve/lpserve/internal/middleware"
	"github.com/lpserve/lpserve/internal/telemetry/metrics"
	"github.com/lpserve/lpserve/internal/webui"
	"github.com/lpserve/lpserve/pkg"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	User    *loginUser `json:"user,omitempty"`
}

type loginUser struct {
	Email string `json:"email"`
	Name  string `json:"nome"`
}

type Handler struct {
	authService    *Service
	loginChecker   Checker
	cookieParams   CookieParams
	metricsManager *metrics.Manager
}

func NewHandler(
	authService *Service,
	loginChecker Checker,
	cookieParams CookieParams,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		authService:    authService,
		loginChecker:   loginChecker,
		cookieParams:   cookieParams,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
) {
	router.HandleFunc("/login", handler.handleLoginPage).Methods("GET").Name("login-page")

	// rate limit the credentials check to prevent brute forcing
	rateLimitMw := middleware.RateLimit(rateLimiter, "login", loginRateLimitAllowedPerMin, handler.metricsManager)
	router.Handle("/login", rateLimitMw(http.HandlerFunc(handler.handleLogin))).
		Methods("POST", "OPTIONS").Name("login")

	router.HandleFunc("/logout", handler.handleLogout).Methods("GET").Name("logout")
}

// handleLoginPage serves the login form, or sends an already
// authenticated client back to the home page.
func (handler *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if token, ok := ReadSessionToken(r, handler.cookieParams.Secret); ok {
		isLogged, err := handler.loginChecker.IsLogged(r.Context(), token)
		if err != nil {
			log.Errorf("login page, session check: %s", err)
		}
		if isLogged {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
	}

	pkg.WriteResponse(w, pkg.ContentType.HTML, webui.LoginPage, http.StatusOK)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			handler.writeLoginResponse(w, http.StatusBadRequest, loginResponse{
				Success: false,
				Message: "Email e senha são obrigatórios",
			})
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			handler.writeLoginResponse(w, http.StatusBadRequest, loginResponse{
				Success: false,
				Message: "Email e senha são obrigatórios",
			})
			return
		}
		loginReq = loginRequest{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Email == "" || loginReq.Password == "" {
		handler.writeLoginResponse(w, http.StatusBadRequest, loginResponse{
			Success: false,
			Message: "Email e senha são obrigatórios",
		})
		return
	}

	session, err := handler.authService.Login(r.Context(), loginReq.Email, loginReq.Password, time.Now())
	if err != nil {
		handler.metricsManager.CounterLoginFailure.Inc()

		if errors.Is(err, ErrInvalidCredentials) {
			reqIp, _ := pkg.ReadUserIP(r)
			log.Tracef("failed login attempt for [%s] from %s", loginReq.Email, reqIp)
			// same message for unknown email and wrong password
			handler.writeLoginResponse(w, http.StatusUnauthorized, loginResponse{
				Success: false,
				Message: "Email ou senha inválidos",
			})
			return
		}

		// store unreachable or any other internal fault: generic message only
		log.Errorf("login failed: %s", err)
		handler.writeLoginResponse(w, http.StatusInternalServerError, loginResponse{
			Success: false,
			Message: "Erro ao fazer login",
		})
		return
	}

	handler.metricsManager.CounterLoginSuccess.Inc()
	log.Tracef("new login success for user %d", session.UserID)

	SetSessionCookie(w, session.Token, handler.cookieParams)
	handler.writeLoginResponse(w, http.StatusOK, loginResponse{
		Success: true,
		Message: "Login realizado com sucesso",
		User: &loginUser{
			Email: session.Email,
			Name:  session.Name,
		},
	})
}

// handleLogout destroys the session and always lands on the login page,
// whether or not a live session was attached to the request.
func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := ReadSessionToken(r, handler.cookieParams.Secret); ok {
		found, err := handler.authService.Logout(r.Context(), token)
		if err != nil {
			log.Errorf("logout: %s", err)
		} else if found {
			log.Trace("logout success")
		}
	}

	ClearSessionCookie(w, handler.cookieParams)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (handler *Handler) writeLoginResponse(w http.ResponseWriter, statusCode int, resp loginResponse) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal login response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
