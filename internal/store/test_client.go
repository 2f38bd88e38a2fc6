package store

import (
	"context"
	"sync"
)

// TestClient is an in-memory stand-in for the hosted store,
// used in unit tests of the packages sitting on top of it.
type TestClient struct {
	mutex sync.Mutex

	Users map[string]*User        // keyed by email
	Pages map[string]*LandingPage // keyed by slug

	// when set, queries fail with this error (store outage simulation)
	Err error

	UserLookups int
	PageLookups int
}

func NewTestClient() *TestClient {
	return &TestClient{
		Users: make(map[string]*User),
		Pages: make(map[string]*LandingPage),
	}
}

func (tc *TestClient) GetUserByEmail(_ context.Context, email string) (*User, error) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	tc.UserLookups++
	if tc.Err != nil {
		return nil, tc.Err
	}

	user, ok := tc.Users[email]
	if !ok || !user.Active {
		return nil, ErrNotFound
	}
	return user, nil
}

func (tc *TestClient) GetLandingPage(_ context.Context, slug string) (*LandingPage, error) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	tc.PageLookups++
	if tc.Err != nil {
		return nil, tc.Err
	}

	page, ok := tc.Pages[slug]
	if !ok || !page.Active {
		return nil, ErrNotFound
	}
	return page, nil
}
