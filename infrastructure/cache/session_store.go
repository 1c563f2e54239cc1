package cache

//go:generate mockgen -source=session_store.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const sessionKeyPrefix = "session:"

type SessionStore interface {
	SaveSession(ctx context.Context, session *domain.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type sessionStore struct {
	client redis.UniversalClient
}

func NewSessionStore(client redis.UniversalClient) SessionStore {
	return &sessionStore{
		client: client,
	}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// SaveSession grava a sessão sem as contas sociais, que são recarregadas a cada inicialização
func (s *sessionStore) SaveSession(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	stored := *session
	stored.SocialAccounts = nil

	payload, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err()
}

// GetSession retorna nil, nil quando a sessão não existe ou expirou
func (s *sessionStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *sessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
