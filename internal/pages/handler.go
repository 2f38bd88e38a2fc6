package pages

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/lpserve/lpserve/internal/auth"
	"github.com/lpserve/lpserve/internal/cache"
	"github.com/lpserve/lpserve/internal/store"
	"github.com/lpserve/lpserve/internal/webui"
	"github.com/lpserve/lpserve/pkg"
)

type adminCacheResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type Handler struct {
	resolver  *Resolver
	pageCache *cache.PageCache
}

func NewHandler(resolver *Resolver, pageCache *cache.PageCache) *Handler {
	return &Handler{
		resolver:  resolver,
		pageCache: pageCache,
	}
}

// SetupRoutes registers the landing page and cache admin routes.
// Whether the content routes sit behind the session gate is an explicit
// policy decision of the caller, not a separate code path.
func (handler *Handler) SetupRoutes(
	router *mux.Router,
	sessionGate *auth.SessionGate,
	requireAuthForContent bool,
) {
	lpRouter := router.PathPrefix("/lp").Subrouter()
	lpRouter.HandleFunc("/{slug}", handler.handleGetLandingPage).Methods("GET").Name("landing-page")
	if requireAuthForContent {
		lpRouter.Use(sessionGate.RequireSession())
	}

	// cache admin routes are deliberately left without the session gate,
	// mirroring the original deployment; known access-control gap
	router.HandleFunc("/admin/clear-cache", handler.handleClearCache).
		Methods("GET").Name("clear-cache")
	router.HandleFunc("/admin/clear-cache/{slug}", handler.handleClearCacheSlug).
		Methods("GET").Name("clear-cache-slug")
}

func (handler *Handler) handleGetLandingPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	page, err := handler.resolver.Resolve(r.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			handler.writeNotFoundPage(w, slug)
			return
		}

		// no store detail reaches the client
		log.Errorf("resolve landing page [%s]: %s", slug, err)
		pkg.WriteResponse(w, pkg.ContentType.HTML, webui.ServerErrorPage, http.StatusInternalServerError)
		return
	}

	if page.MetaTitle != "" {
		w.Header().Set("X-Meta-Title", page.MetaTitle)
	}

	pkg.WriteResponse(w, pkg.ContentType.HTML, page.HTML, http.StatusOK)
}

func (handler *Handler) handleClearCache(w http.ResponseWriter, _ *http.Request) {
	handler.pageCache.InvalidateAll()
	log.Debugln("page cache cleared")

	handler.writeAdminResponse(w, "Cache limpo com sucesso")
}

func (handler *Handler) handleClearCacheSlug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	message := fmt.Sprintf("%q não estava em cache", slug)
	if handler.pageCache.Invalidate(slug) {
		message = fmt.Sprintf("Cache de %q limpo", slug)
	}
	log.Debugf("page cache invalidate [%s]: %s", slug, message)

	handler.writeAdminResponse(w, message)
}

func (handler *Handler) writeAdminResponse(w http.ResponseWriter, message string) {
	respJson, err := json.Marshal(adminCacheResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.Errorf("marshal admin cache response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) writeNotFoundPage(w http.ResponseWriter, slug string) {
	w.Header().Set("Content-Type", pkg.ContentType.HTML)
	w.WriteHeader(http.StatusNotFound)
	if err := webui.LandingPageNotFound.Execute(w, webui.NotFoundData{Slug: slug}); err != nil {
		log.Errorf("render landing page 404: %s", err)
	}
}
