package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/lpserve/lpserve/internal/store"
	"github.com/lpserve/lpserve/pkg"
)

const (
	DefaultTTL       = 24 * time.Hour
	sessionKeyPrefix = "lp-service-session||"
	tokensSetKey     = "lp-service-sessions"
)

// ErrInvalidCredentials covers unknown email, wrong password and inactive
// user alike, so that a failed login never reveals which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is the server-side record of an authenticated client,
// referenced by the opaque token held in the client's cookie.
type Session struct {
	Token     string    `json:"-"`
	UserID    int       `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
}

type usersApi interface {
	GetUserByEmail(ctx context.Context, email string) (*store.User, error)
}

type Service struct {
	store       usersApi
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(
	usersStore usersApi,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		store:          usersStore,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login checks the credential pair against the store and, on success,
// creates a session and returns it with a fresh token. Credential
// failures of any kind come back as ErrInvalidCredentials; store
// failures are wrapped and must be mapped to a generic response by the
// caller.
func (s *Service) Login(ctx context.Context, email, password string, createdAt time.Time) (*Session, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Tracef("[email] failed login attempt for: %s", email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login user lookup: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for: %s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.RandStringFunc(35)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := &Session{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: createdAt,
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	if err := s.redisClient.Set(ctx, sessionKey, sessionJson, 0).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// add token to the list of sessions
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return nil, fmt.Errorf("register session token: %w", err)
	}

	return session, nil
}

// Logout destroys the session for token. Destroying an already absent
// session is not an error, the returned bool just says whether it existed.
func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	removed, err := s.redisClient.Del(ctx, sessionKey).Result()
	if err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return removed > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (s *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		sessionJson, err := s.redisClient.Get(ctx, sessionKey).Result()
		if errors.Is(err, redis.Nil) {
			// session value gone, drop the dangling token too
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		var session Session
		if err := json.Unmarshal([]byte(sessionJson), &session); err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}

		if time.Since(session.CreatedAt) > s.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		log.Debugf("=>\twill clean the session with token: %s", token)
		sessionKey := sessionKeyPrefix + token
		if err := s.redisClient.Del(ctx, sessionKey).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
		}
	}
}
