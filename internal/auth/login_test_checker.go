package auth

import "context"

// LoginTestChecker is a Checker fake for unit tests of packages
// gated by the session check.
type LoginTestChecker struct {
	Sessions map[string]*Session
	Err      error
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		Sessions: make(map[string]*Session),
	}
}

func (tc *LoginTestChecker) GetSession(_ context.Context, token string) (*Session, error) {
	if tc.Err != nil {
		return nil, tc.Err
	}
	return tc.Sessions[token], nil
}

func (tc *LoginTestChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	session, err := tc.GetSession(ctx, token)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}
