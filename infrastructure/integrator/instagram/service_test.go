package instagram

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	igdomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/instagramclient"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestIntegrator(t *testing.T, handler http.Handler) *InstagramIntegrator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := instagramclient.NewClient(config.Instagram{
		URL:          server.URL + "/v18.0",
		ClientID:     "app-id",
		ClientSecret: "app-secret",
	})

	return New(client)
}

func TestInstagramIntegrator_GetBusinessAccounts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v18.0/me/accounts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token", r.URL.Query().Get("access_token"))
		assert.Equal(t, "id,name,instagram_business_account", r.URL.Query().Get("fields"))
		w.Write([]byte(`{"data":[
			{"id":"page_1","name":"Loja Centro","instagram_business_account":{"id":"ig_1"}},
			{"id":"page_2","name":"Sem IG"}
		]}`))
	})

	integrator := newTestIntegrator(t, mux)

	accounts, err := integrator.GetBusinessAccounts(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, []domain.BusinessAccount{
		{ID: "ig_1", Name: "Loja Centro", Platform: domain.PlatformInstagram},
	}, accounts)
}

func TestInstagramIntegrator_PostContent(t *testing.T) {
	scheduled := time.Date(2024, 7, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		scheduledTime *time.Time
		validate      func(t *testing.T, publish map[string]any)
	}{
		{
			name: "publica imediatamente",
			validate: func(t *testing.T, publish map[string]any) {
				assert.NotContains(t, publish, "published")
				assert.NotContains(t, publish, "scheduled_publish_time")
			},
		},
		{
			name:          "agenda a publicação",
			scheduledTime: &scheduled,
			validate: func(t *testing.T, publish map[string]any) {
				assert.Equal(t, false, publish["published"])
				assert.EqualValues(t, scheduled.Unix(), publish["scheduled_publish_time"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var publish map[string]any

			mux := http.NewServeMux()
			mux.HandleFunc("/v18.0/ig_1/media", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				var media igdomain.MediaRequest
				body, _ := io.ReadAll(r.Body)
				require.NoError(t, json.Unmarshal(body, &media))
				assert.Equal(t, "https://img/1.png", media.ImageURL)
				assert.Equal(t, "Compre já", media.Caption)
				w.Write([]byte(`{"id":"creation_1"}`))
			})
			mux.HandleFunc("/v18.0/ig_1/media_publish", func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				require.NoError(t, json.Unmarshal(body, &publish))
				assert.Equal(t, "creation_1", publish["creation_id"])
				w.Write([]byte(`{"id":"media_99"}`))
			})

			integrator := newTestIntegrator(t, mux)

			result, err := integrator.PostContent(context.Background(), "token", "ig_1", domain.PostContent{
				Caption:       "Compre já",
				MediaURL:      "https://img/1.png",
				ScheduledTime: tt.scheduledTime,
			})
			require.NoError(t, err)

			assert.Equal(t, "media_99", result.PostID)
			assert.Equal(t, tt.scheduledTime != nil, result.Scheduled)
			tt.validate(t, publish)
		})
	}
}

func TestInstagramIntegrator_PostContent_TokenExpired(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v18.0/ig_1/media", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Session has expired","type":"OAuthException","code":190,"fbtrace_id":"abc"}}`))
	})

	integrator := newTestIntegrator(t, mux)

	result, err := integrator.PostContent(context.Background(), "token", "ig_1", domain.PostContent{MediaURL: "https://img/1.png"})
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, igdomain.ErrTokenExpired))
}

func TestInstagramIntegrator_GetPostMetrics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v18.0/media_99/insights", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "impressions,reach,likes,comments,shares,saves", r.URL.Query().Get("metric"))
		w.Write([]byte(`{"data":[
			{"name":"impressions","values":[{"value":1200}]},
			{"name":"likes","values":[{"value":80}]},
			{"name":"saves","values":[]}
		]}`))
	})

	integrator := newTestIntegrator(t, mux)

	metrics, err := integrator.GetPostMetrics(context.Background(), "token", "ig_1", "media_99")
	require.NoError(t, err)
	assert.Equal(t, domain.PostMetrics{"impressions": 1200, "likes": 80}, metrics)
}

func TestInstagramIntegrator_Tokens(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v18.0/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "app-id", q.Get("client_id"))
		assert.Equal(t, "app-secret", q.Get("client_secret"))

		if q.Get("grant_type") == "fb_exchange_token" {
			assert.Equal(t, "short", q.Get("fb_exchange_token"))
			w.Write([]byte(`{"access_token":"long","token_type":"bearer","expires_in":5184000}`))
			return
		}

		assert.Equal(t, "code-1", q.Get("code"))
		assert.Equal(t, "https://app/callback", q.Get("redirect_uri"))
		w.Write([]byte(`{"access_token":"short","token_type":"bearer","expires_in":3600}`))
	})

	integrator := newTestIntegrator(t, mux)

	token, err := integrator.ExchangeCodeForToken(context.Background(), "code-1", "https://app/callback")
	require.NoError(t, err)
	assert.Equal(t, &domain.OAuthToken{AccessToken: "short", ExpiresIn: 3600}, token)

	refreshed, err := integrator.RefreshToken(context.Background(), &domain.SocialAccount{AccessToken: "short"})
	require.NoError(t, err)
	assert.Equal(t, "long", refreshed.AccessToken)
	assert.EqualValues(t, 5184000, refreshed.ExpiresIn)
}

func TestInstagramIntegrator_ExchangeCodeForToken_EmptyCode(t *testing.T) {
	integrator := newTestIntegrator(t, http.NewServeMux())

	token, err := integrator.ExchangeCodeForToken(context.Background(), "", "https://app/callback")
	assert.Nil(t, token)
	assert.Error(t, err)
}
