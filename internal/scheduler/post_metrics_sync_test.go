package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	igdomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/adcreative-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adcreative-api/internal/domain"
	publishingmocks "github.com/vfg2006/adcreative-api/internal/usecases/publishing/mocks"
	"go.uber.org/mock/gomock"
)

func TestPostMetricsSyncService_syncPostMetrics(t *testing.T) {
	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)
	since := now.AddDate(0, 0, -7)

	instagram := &domain.SocialAccount{ID: "sa-ig", Platform: domain.PlatformInstagram, AccountID: "ig_1", AccessToken: "ig-token"}
	tiktok := &domain.SocialAccount{ID: "sa-tt", Platform: domain.PlatformTikTok, AccountID: "tt_1", AccessToken: "tt-token"}

	tests := []struct {
		name     string
		setup    func(variations *mocks.MockAdVariationRepository, accounts *mocks.MockSocialAccountRepository, publishing *publishingmocks.MockInterface)
		updated  int
		hasError bool
	}{
		{
			name: "Soma as métricas de todas as plataformas da variação",
			setup: func(variations *mocks.MockAdVariationRepository, accounts *mocks.MockSocialAccountRepository, publishing *publishingmocks.MockInterface) {
				variations.EXPECT().ListPostedSince(gomock.Any(), since).Return([]*domain.PostedVariation{
					{
						AdVariationID: "v1",
						UserID:        "user-1",
						PostingResults: domain.PostingResults{
							{SocialAccountID: "sa-ig", Platform: domain.PlatformInstagram, Success: true, PostID: "ig_post"},
							{SocialAccountID: "sa-tt", Platform: domain.PlatformTikTok, Success: true, PostID: "tt_post"},
							{SocialAccountID: "sa-x", Platform: domain.PlatformTikTok, Success: false, Error: "falhou"},
						},
					},
				}, nil)

				accounts.EXPECT().GetSocialAccount(gomock.Any(), "user-1", "sa-ig").Return(instagram, nil)
				accounts.EXPECT().GetSocialAccount(gomock.Any(), "user-1", "sa-tt").Return(tiktok, nil)

				publishing.EXPECT().
					GetPostMetrics(gomock.Any(), instagram, "ig_post").
					Return(domain.PostMetrics{"impressions": 2000, "likes": 100, "comments": 20, "shares": 10, "saves": 30}, nil)
				publishing.EXPECT().
					GetPostMetrics(gomock.Any(), tiktok, "tt_post").
					Return(domain.PostMetrics{"play_count": 3000, "like_count": 250, "comment_count": 40, "share_count": 10}, nil)

				variations.EXPECT().
					UpdateMetrics(gomock.Any(), "v1", domain.PerformanceMetrics{Impressions: 5000, Clicks: 460, EngagementRate: 9.2}).
					Return(&domain.AdVariation{AdVariationID: "v1"}, nil)
			},
			updated: 1,
		},
		{
			name: "Token expirado e conta removida não atualizam a variação",
			setup: func(variations *mocks.MockAdVariationRepository, accounts *mocks.MockSocialAccountRepository, publishing *publishingmocks.MockInterface) {
				variations.EXPECT().ListPostedSince(gomock.Any(), since).Return([]*domain.PostedVariation{
					{
						AdVariationID: "v2",
						UserID:        "user-2",
						PostingResults: domain.PostingResults{
							{SocialAccountID: "sa-ig", Success: true, PostID: "ig_post"},
							{SocialAccountID: "sa-gone", Success: true, PostID: "tt_post"},
						},
					},
				}, nil)

				accounts.EXPECT().GetSocialAccount(gomock.Any(), "user-2", "sa-ig").Return(instagram, nil)
				accounts.EXPECT().GetSocialAccount(gomock.Any(), "user-2", "sa-gone").Return(nil, nil)

				publishing.EXPECT().
					GetPostMetrics(gomock.Any(), instagram, "ig_post").
					Return(nil, fmt.Errorf("metrics: %w", igdomain.ErrTokenExpired))

				variations.EXPECT().UpdateMetrics(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name: "Resultados antigos sem conta são ignorados",
			setup: func(variations *mocks.MockAdVariationRepository, accounts *mocks.MockSocialAccountRepository, publishing *publishingmocks.MockInterface) {
				variations.EXPECT().ListPostedSince(gomock.Any(), since).Return([]*domain.PostedVariation{
					{AdVariationID: "v3", UserID: "user-1", PostingResults: domain.PostingResults{{Success: true, PostID: "p"}}},
				}, nil)
				accounts.EXPECT().GetSocialAccount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name: "Erro ao listar variações",
			setup: func(variations *mocks.MockAdVariationRepository, accounts *mocks.MockSocialAccountRepository, publishing *publishingmocks.MockInterface) {
				variations.EXPECT().ListPostedSince(gomock.Any(), since).Return(nil, errors.New("timeout"))
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			variations := mocks.NewMockAdVariationRepository(ctrl)
			accounts := mocks.NewMockSocialAccountRepository(ctrl)
			publishing := publishingmocks.NewMockInterface(ctrl)
			tt.setup(variations, accounts, publishing)

			service := &PostMetricsSyncService{
				config:            PostMetricsSyncConfig{LookbackDays: 7, MaxConcurrentJobs: 2},
				adVariationRepo:   variations,
				socialAccountRepo: accounts,
				publishingService: publishing,
				now:               func() time.Time { return now },
			}

			updated, err := service.syncPostMetrics(context.Background())
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.updated, updated)
		})
	}
}

func TestPostMetricsSyncService_syncVariation_StopsDelayOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	variations := mocks.NewMockAdVariationRepository(ctrl)
	accounts := mocks.NewMockSocialAccountRepository(ctrl)
	publishing := publishingmocks.NewMockInterface(ctrl)

	instagram := &domain.SocialAccount{ID: "sa-ig", Platform: domain.PlatformInstagram, AccountID: "ig_1", AccessToken: "ig-token"}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	accounts.EXPECT().GetSocialAccount(gomock.Any(), "user-1", "sa-ig").Return(instagram, nil)
	publishing.EXPECT().
		GetPostMetrics(gomock.Any(), instagram, "ig_post").
		DoAndReturn(func(context.Context, *domain.SocialAccount, string) (domain.PostMetrics, error) {
			cancel()
			return domain.PostMetrics{"impressions": 100}, nil
		})
	accounts.EXPECT().GetSocialAccount(gomock.Any(), "user-1", "sa-tt").Times(0)
	variations.EXPECT().UpdateMetrics(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	service := &PostMetricsSyncService{
		config:            PostMetricsSyncConfig{RequestDelaySeconds: 60},
		adVariationRepo:   variations,
		socialAccountRepo: accounts,
		publishingService: publishing,
		now:               time.Now,
	}

	start := time.Now()
	updated := service.syncVariation(ctx, &domain.PostedVariation{
		AdVariationID: "v1",
		UserID:        "user-1",
		PostingResults: domain.PostingResults{
			{SocialAccountID: "sa-ig", Success: true, PostID: "ig_post"},
			{SocialAccountID: "sa-tt", Success: true, PostID: "tt_post"},
		},
	})

	assert.False(t, updated)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestPostMetricsSyncService_GetStatus(t *testing.T) {
	service := &PostMetricsSyncService{
		config: PostMetricsSyncConfig{CronSchedule: "0 */6 * * *", LookbackDays: 7, SyncEnabled: true},
		now:    time.Now,
	}

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 */6 * * *", status["sync_cron"])
}
