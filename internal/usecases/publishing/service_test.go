package publishing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	igdomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/publishing/mocks"
	"go.uber.org/mock/gomock"
)

func newPlatformClient(ctrl *gomock.Controller, platform string) *mocks.MockPlatformClient {
	client := mocks.NewMockPlatformClient(ctrl)
	client.EXPECT().Platform().Return(platform).AnyTimes()
	return client
}

func TestService_PostToMultiplePlatforms(t *testing.T) {
	ctrl := gomock.NewController(t)
	instagram := newPlatformClient(ctrl, domain.PlatformInstagram)
	tiktok := newPlatformClient(ctrl, domain.PlatformTikTok)
	service := NewService(instagram, tiktok)

	scheduled := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	variation := &domain.AdVariation{
		AdVariationID:     "v1",
		GeneratedText:     "Compre já",
		GeneratedImageURL: "https://img/v1.png",
	}
	content := domain.PostContent{Caption: "Compre já", MediaURL: "https://img/v1.png", ScheduledTime: &scheduled}

	accounts := []*domain.SocialAccount{
		{ID: "sa-1", Platform: domain.PlatformInstagram, AccountID: "ig_1", Name: "Loja", AccessToken: "ig-token"},
		{ID: "sa-2", Platform: domain.PlatformTikTok, AccountID: "tt_1", Name: "Marca", AccessToken: "tt-token"},
		{ID: "sa-3", Platform: "pinterest", AccountID: "pin_1", Name: "Pins"},
	}

	gomock.InOrder(
		instagram.EXPECT().
			PostContent(gomock.Any(), "ig-token", "ig_1", content).
			Return(&domain.PostResult{PostID: "ig_post_1", Scheduled: true}, nil),
		tiktok.EXPECT().
			PostContent(gomock.Any(), "tt-token", "tt_1", content).
			Return(nil, errors.New("video muito curto")),
	)

	results := service.PostToMultiplePlatforms(context.Background(), variation, accounts, &scheduled)
	require.Len(t, results, 3)

	assert.Equal(t, domain.PostingResult{
		SocialAccountID: "sa-1",
		Platform:        domain.PlatformInstagram,
		AccountName:     "Loja",
		Success:         true,
		PostID:          "ig_post_1",
		Scheduled:       true,
	}, results[0])

	assert.False(t, results[1].Success)
	assert.Equal(t, "video muito curto", results[1].Error)
	assert.Equal(t, "Marca", results[1].AccountName)

	assert.False(t, results[2].Success)
	assert.Equal(t, "Unsupported platform: pinterest", results[2].Error)
}

func TestService_UnsupportedPlatform(t *testing.T) {
	service := NewService()

	_, err := service.GetBusinessAccounts(context.Background(), "snapchat", "token")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)

	_, err = service.ExchangeCodeForToken(context.Background(), "snapchat", "code", "https://app")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestService_RefreshToken(t *testing.T) {
	tests := []struct {
		name     string
		account  *domain.SocialAccount
		setup    func(instagram, tiktok *mocks.MockPlatformClient)
		expected error
	}{
		{
			name:    "TikTok sem refresh token",
			account: &domain.SocialAccount{Platform: domain.PlatformTikTok},
			setup: func(_, tiktok *mocks.MockPlatformClient) {
				tiktok.EXPECT().RefreshToken(gomock.Any(), gomock.Any()).Times(0)
			},
			expected: ErrMissingRefreshToken,
		},
		{
			name:    "TikTok com refresh token",
			account: &domain.SocialAccount{Platform: domain.PlatformTikTok, RefreshToken: "refresh"},
			setup: func(_, tiktok *mocks.MockPlatformClient) {
				tiktok.EXPECT().RefreshToken(gomock.Any(), gomock.Any()).Return(&domain.OAuthToken{AccessToken: "novo"}, nil)
			},
		},
		{
			name:    "Instagram renova com o próprio access token",
			account: &domain.SocialAccount{Platform: domain.PlatformInstagram, AccessToken: "long-lived"},
			setup: func(instagram, _ *mocks.MockPlatformClient) {
				instagram.EXPECT().RefreshToken(gomock.Any(), gomock.Any()).Return(&domain.OAuthToken{AccessToken: "novo"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			instagram := newPlatformClient(ctrl, domain.PlatformInstagram)
			tiktok := newPlatformClient(ctrl, domain.PlatformTikTok)
			tt.setup(instagram, tiktok)

			token, err := NewService(instagram, tiktok).RefreshToken(context.Background(), tt.account)
			if tt.expected != nil {
				assert.Nil(t, token)
				assert.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "novo", token.AccessToken)
		})
	}
}

func TestIsTokenExpired(t *testing.T) {
	assert.True(t, IsTokenExpired(fmt.Errorf("metrics: %w", igdomain.ErrTokenExpired)))
	assert.False(t, IsTokenExpired(errors.New("rate limited")))
	assert.False(t, IsTokenExpired(nil))
}

func TestSandboxClient(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1717243200000)

	instagram := NewSandboxClient(domain.PlatformInstagram)
	instagram.now = func() time.Time { return now }
	tiktok := NewSandboxClient(domain.PlatformTikTok)
	tiktok.now = func() time.Time { return now }

	accounts, err := tiktok.GetBusinessAccounts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []domain.BusinessAccount{{ID: "tt_account_1", Name: "My TikTok Business", Platform: domain.PlatformTikTok}}, accounts)

	posted, err := instagram.PostContent(ctx, "", "", domain.PostContent{})
	require.NoError(t, err)
	assert.Equal(t, "instagram_post_1717243200000", posted.PostID)
	assert.False(t, posted.Scheduled)

	token, err := tiktok.ExchangeCodeForToken(ctx, "code", "")
	require.NoError(t, err)
	assert.Equal(t, "mock_access_token_tiktok_1717243200000", token.AccessToken)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	for range 20 {
		m, err := tiktok.GetPostMetrics(ctx, "", "", "")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, m["play_count"], 5000)
		assert.Less(t, m["play_count"], 55000)

		m, err = instagram.GetPostMetrics(ctx, "", "", "")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, m["impressions"], 1000)
		assert.Less(t, m["impressions"], 11000)
	}
}
