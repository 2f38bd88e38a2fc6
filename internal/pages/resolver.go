package pages

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/lpserve/lpserve/internal/cache"
	"github.com/lpserve/lpserve/internal/store"
	"github.com/lpserve/lpserve/internal/telemetry/metrics"
	"github.com/lpserve/lpserve/internal/telemetry/tracing"
)

type pagesApi interface {
	GetLandingPage(ctx context.Context, slug string) (*store.LandingPage, error)
}

// Resolver maps a slug to its landing page, consulting the local cache
// before querying the content store, and caching store hits. Misses and
// store failures never touch the cache: a landing page published after a
// miss becomes visible on the very next request, and a failed refresh
// does not discard whatever entry is already present.
type Resolver struct {
	store          pagesApi
	cache          *cache.PageCache
	metricsManager *metrics.Manager
}

func NewResolver(
	pagesStore pagesApi,
	pageCache *cache.PageCache,
	metricsManager *metrics.Manager,
) *Resolver {
	return &Resolver{
		store:          pagesStore,
		cache:          pageCache,
		metricsManager: metricsManager,
	}
}

// Resolve returns the landing page for slug. A fresh cache entry is
// served without a store round trip; otherwise the store is queried and,
// on success only, the cache entry is overwritten.
// Concurrent calls for the same stale slug may each query the store;
// the last writer wins, which is fine since they fetch the same record.
func (r *Resolver) Resolve(ctx context.Context, slug string) (*store.LandingPage, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pages.resolve")
	span.SetAttributes(attribute.String("slug", slug))
	defer span.End()

	if page, ok := r.cache.Get(slug); ok {
		log.Tracef("[CACHE HIT] %s", slug)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		r.metricsManager.CounterCacheHits.Inc()
		return page, nil
	}

	span.SetAttributes(attribute.Bool("cache.hit", false))
	r.metricsManager.CounterCacheMisses.Inc()

	log.Tracef("[STORE] fetching %s ...", slug)
	r.metricsManager.CounterStoreLookups.Inc()
	page, err := r.store.GetLandingPage(ctx, slug)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("get landing page [%s]: %w", slug, err)
	}

	r.cache.Set(slug, page)
	return page, nil
}
