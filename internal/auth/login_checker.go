package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// GetSession returns the live session for token, or nil when the token
// is unknown or the session has outlived its TTL.
func (lc *LoginChecker) GetSession(ctx context.Context, token string) (*Session, error) {
	sessionKey := sessionKeyPrefix + token
	sessionJson, err := lc.redisClient.Get(ctx, sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal([]byte(sessionJson), &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	if time.Since(session.CreatedAt) > lc.ttl {
		return nil, nil
	}

	session.Token = token
	return &session, nil
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	session, err := lc.GetSession(ctx, token)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}
