package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

func setupStore(t *testing.T) (*miniredis.Miniredis, SessionStore) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, NewSessionStore(client)
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	mr, store := setupStore(t)
	ctx := context.Background()

	session := &domain.Session{
		ID:              "sess-1",
		User:            &domain.AuthUser{ID: "user-1", Email: "ana@example.com", PasswordHash: "hash"},
		Profile:         &domain.User{UserID: "user-1", Email: "ana@example.com", SubscriptionTier: "starter"},
		IsAuthenticated: true,
		SocialAccounts:  []*domain.SocialAccount{{ID: "sa-1", Platform: "instagram"}},
		ExpiresAt:       time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}

	require.NoError(t, store.SaveSession(ctx, session, time.Hour))
	assert.True(t, mr.Exists("session:sess-1"))
	assert.Equal(t, time.Hour, mr.TTL("session:sess-1"))

	got, err := store.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "user-1", got.User.ID)
	assert.Empty(t, got.User.PasswordHash)
	assert.True(t, got.IsAuthenticated)
	assert.Nil(t, got.SocialAccounts)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))

	// a sessão original não é alterada
	assert.Len(t, session.SocialAccounts, 1)
}

func TestSessionStore_GetSession_Missing(t *testing.T) {
	_, store := setupStore(t)

	got, err := store.GetSession(context.Background(), "inexistente")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_GetSession_Expired(t *testing.T) {
	mr, store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, &domain.Session{ID: "sess-2"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := store.GetSession(ctx, "sess-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_DeleteSession(t *testing.T) {
	mr, store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, &domain.Session{ID: "sess-3"}, time.Hour))
	require.NoError(t, store.DeleteSession(ctx, "sess-3"))
	assert.False(t, mr.Exists("session:sess-3"))

	// remover uma sessão inexistente não é erro
	assert.NoError(t, store.DeleteSession(ctx, "sess-3"))
}

func TestNewClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "endereço simples", url: mr.Addr()},
		{name: "url redis", url: "redis://" + mr.Addr() + "/0"},
		{name: "banco inválido", url: "redis://" + mr.Addr() + "/abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), config.Redis{URL: tt.url})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			client.Close()
		})
	}
}
