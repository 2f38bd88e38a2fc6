package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpserve/lpserve/internal/store"
)

func testPage(slug string) *store.LandingPage {
	return &store.LandingPage{
		ID:     1,
		Slug:   slug,
		HTML:   "<h1>" + slug + "</h1>",
		Active: true,
	}
}

func TestPageCache_GetSet(t *testing.T) {
	now := time.Now()
	pageCache := NewPageCache(300 * time.Second)
	pageCache.NowFunc = func() time.Time { return now }

	_, found := pageCache.Get("promo")
	assert.False(t, found)

	pageCache.Set("promo", testPage("promo"))
	got, found := pageCache.Get("promo")
	require.True(t, found)
	assert.Equal(t, "<h1>promo</h1>", got.HTML)
	assert.Equal(t, 1, pageCache.Size())

	// still fresh just before the TTL boundary
	now = now.Add(299 * time.Second)
	_, found = pageCache.Get("promo")
	assert.True(t, found)

	// stale at the boundary
	now = now.Add(time.Second)
	_, found = pageCache.Get("promo")
	assert.False(t, found)

	// stale entry is not removed, only unreadable
	assert.Equal(t, 1, pageCache.Size())
}

func TestPageCache_SetOverwrites(t *testing.T) {
	now := time.Now()
	pageCache := NewPageCache(300 * time.Second)
	pageCache.NowFunc = func() time.Time { return now }

	pageCache.Set("promo", testPage("promo"))
	now = now.Add(301 * time.Second)
	_, found := pageCache.Get("promo")
	require.False(t, found)

	// refresh resets the entry timestamp
	updated := testPage("promo")
	updated.HTML = "<h1>updated</h1>"
	pageCache.Set("promo", updated)

	got, found := pageCache.Get("promo")
	require.True(t, found)
	assert.Equal(t, "<h1>updated</h1>", got.HTML)
	assert.Equal(t, 1, pageCache.Size())
}

func TestPageCache_Invalidate(t *testing.T) {
	pageCache := NewPageCache(300 * time.Second)

	assert.False(t, pageCache.Invalidate("promo"))

	pageCache.Set("promo", testPage("promo"))
	assert.True(t, pageCache.Invalidate("promo"))
	assert.False(t, pageCache.Invalidate("promo")) // idempotent

	_, found := pageCache.Get("promo")
	assert.False(t, found)
	assert.Equal(t, 0, pageCache.Size())
}

func TestPageCache_InvalidateAll(t *testing.T) {
	pageCache := NewPageCache(300 * time.Second)

	for i := 0; i < 5; i++ {
		slug := fmt.Sprintf("page-%d", i)
		pageCache.Set(slug, testPage(slug))
	}
	require.Equal(t, 5, pageCache.Size())

	pageCache.InvalidateAll()
	assert.Equal(t, 0, pageCache.Size())

	_, found := pageCache.Get("page-0")
	assert.False(t, found)
}

func TestPageCache_concurrentAccess(t *testing.T) {
	pageCache := NewPageCache(300 * time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slug := fmt.Sprintf("page-%d", i%4)
			pageCache.Set(slug, testPage(slug))
			pageCache.Get(slug)
			pageCache.Invalidate(slug)
		}(i)
	}
	wg.Wait()
}
