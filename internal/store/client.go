package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/lpserve/lpserve/internal/telemetry/tracing"
)

// ErrNotFound is returned when a query matches no row, or more than
// one row where exactly one is expected.
var ErrNotFound = errors.New("record not found")

// User is a credential record, owned by the store and read-only here.
// Column names follow the hosted schema.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Name         string `json:"nome"`
	Active       bool   `json:"ativo"`
}

// LandingPage is one content record, addressed by its unique slug.
type LandingPage struct {
	ID        int    `json:"id"`
	Slug      string `json:"url_slug"`
	HTML      string `json:"html_content"`
	MetaTitle string `json:"meta_title"`
	Active    bool   `json:"ativo"`
}

// Client talks to the hosted store over its PostgREST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// GetUserByEmail returns the single active user with the given email.
// Zero matches, or an ambiguous match, yield ErrNotFound.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.getUserByEmail")
	defer span.End()

	var users []User
	if err := c.getRows(ctx, "users", "email", email, &users); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if len(users) != 1 {
		log.Tracef("store: users query for email returned %d rows", len(users))
		span.SetStatus(codes.Error, "not-found")
		return nil, ErrNotFound
	}

	return &users[0], nil
}

// GetLandingPage returns the single active landing page with the given slug.
func (c *Client) GetLandingPage(ctx context.Context, slug string) (*LandingPage, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.getLandingPage")
	span.SetAttributes(attribute.String("slug", slug))
	defer span.End()

	var pages []LandingPage
	if err := c.getRows(ctx, "landing_pages", "url_slug", slug, &pages); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if len(pages) != 1 {
		log.Tracef("store: landing_pages query for [%s] returned %d rows", slug, len(pages))
		span.SetStatus(codes.Error, "not-found")
		return nil, ErrNotFound
	}

	return &pages[0], nil
}

// getRows queries one table for active rows with an exact column match.
// limit=2 is enough to detect an ambiguous match without pulling the table.
func (c *Client) getRows(ctx context.Context, table, column, value string, dest interface{}) error {
	reqUrl := fmt.Sprintf(
		"%s/rest/v1/%s?select=*&%s=eq.%s&ativo=is.true&limit=2",
		c.baseURL, table, column, url.QueryEscape(value),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return fmt.Errorf("create store request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("store request [%s]: %w", table, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read store response [%s]: %w", table, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Errorf("store query [%s] status %d: %s", table, resp.StatusCode, respBytes)
		return fmt.Errorf("store query [%s]: unexpected status %d", table, resp.StatusCode)
	}

	if err := json.Unmarshal(respBytes, dest); err != nil {
		return fmt.Errorf("unmarshal store response [%s]: %w", table, err)
	}

	return nil
}
