package misc

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/lpserve/lpserve/internal/auth"
	"github.com/lpserve/lpserve/internal/cache"
	"github.com/lpserve/lpserve/internal/webui"
	"github.com/lpserve/lpserve/pkg"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	CacheSize int       `json:"cache_size"`
}

// Handler serves the status/home page and the health endpoint.
type Handler struct {
	loginChecker auth.Checker
	cookieSecret string
	pageCache    *cache.PageCache
}

func NewHandler(
	loginChecker auth.Checker,
	cookieSecret string,
	pageCache *cache.PageCache,
) *Handler {
	return &Handler{
		loginChecker: loginChecker,
		cookieSecret: cookieSecret,
		pageCache:    pageCache,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/", handler.handleRoot).Methods("GET").Name("root")
	router.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	homeData := webui.HomeData{}
	if token, ok := auth.ReadSessionToken(r, handler.cookieSecret); ok {
		session, err := handler.loginChecker.GetSession(r.Context(), token)
		if err != nil {
			log.Errorf("home page, get session: %s", err)
		}
		if session != nil {
			homeData.LoggedIn = true
			homeData.UserName = session.Name
		}
	}

	w.Header().Set("Content-Type", pkg.ContentType.HTML)
	if err := webui.HomePage.Execute(w, homeData); err != nil {
		log.Errorf("render home page: %s", err)
	}
}

func (handler *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respJson, err := json.Marshal(healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		CacheSize: handler.pageCache.Size(),
	})
	if err != nil {
		log.Errorf("marshal health response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
