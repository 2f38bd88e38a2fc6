package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetLandingPage(t *testing.T) {
	var gotPath, gotQuery, gotApiKey, gotAuthHeader string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotApiKey = r.Header.Get("apikey")
		gotAuthHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": 7,
			"url_slug": "promo",
			"html_content": "<h1>Promo</h1>",
			"meta_title": "Big Promo",
			"ativo": true
		}]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-api-key", ts.Client())
	page, err := client.GetLandingPage(context.Background(), "promo")
	require.NoError(t, err)

	assert.Equal(t, 7, page.ID)
	assert.Equal(t, "promo", page.Slug)
	assert.Equal(t, "<h1>Promo</h1>", page.HTML)
	assert.Equal(t, "Big Promo", page.MetaTitle)
	assert.True(t, page.Active)

	assert.Equal(t, "/rest/v1/landing_pages", gotPath)
	assert.Contains(t, gotQuery, "url_slug=eq.promo")
	assert.Contains(t, gotQuery, "ativo=is.true")
	assert.Contains(t, gotQuery, "limit=2")
	assert.Equal(t, "test-api-key", gotApiKey)
	assert.Equal(t, "Bearer test-api-key", gotAuthHeader)
}

func TestClient_GetLandingPage_notFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-api-key", ts.Client())
	page, err := client.GetLandingPage(context.Background(), "no-such-page")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, page)
}

func TestClient_GetLandingPage_ambiguousMatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "url_slug": "promo", "html_content": "a", "ativo": true},
			{"id": 2, "url_slug": "promo", "html_content": "b", "ativo": true}
		]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-api-key", ts.Client())
	page, err := client.GetLandingPage(context.Background(), "promo")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, page)
}

func TestClient_GetLandingPage_storeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied for table landing_pages"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-api-key", ts.Client())
	page, err := client.GetLandingPage(context.Background(), "promo")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Nil(t, page)
	// raw store detail stays server side
	assert.NotContains(t, err.Error(), "permission denied")
}

func TestClient_GetUserByEmail(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": 1,
			"email": "admin@example.com",
			"password_hash": "$2a$10$abcdefghijklmnopqrstuv",
			"nome": "Admin",
			"ativo": true
		}]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-api-key", ts.Client())
	user, err := client.GetUserByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, "Admin", user.Name)
	assert.True(t, user.Active)
	assert.Contains(t, gotQuery, "email=eq.admin%40example.com")
}

func TestClient_GetUserByEmail_unknown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-api-key", ts.Client())
	user, err := client.GetUserByEmail(context.Background(), "who@example.com")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, user)
}
