package insighting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_AnalyzeProjectPerformance(t *testing.T) {
	variations := []*domain.AdVariation{{AdVariationID: "v1"}, {AdVariationID: "v2"}}

	tests := []struct {
		name     string
		setup    func(source *mocks.MockVariationSource, analyzer *mocks.MockPerformanceAnalyzer, plans *mocks.MockPlanReader)
		validate func(t *testing.T, insight *domain.PerformanceInsight, err error)
	}{
		{
			name: "Plano pro recebe a análise",
			setup: func(source *mocks.MockVariationSource, analyzer *mocks.MockPerformanceAnalyzer, plans *mocks.MockPlanReader) {
				plans.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&domain.User{UserID: "user-1", SubscriptionTier: "pro"}, nil)
				source.EXPECT().GetProjectVariations(gomock.Any(), "user-1", "p1").Return(variations, nil)
				analyzer.EXPECT().AnalyzePerformance(gomock.Any(), variations).Return("TikTok lidera", nil)
			},
			validate: func(t *testing.T, insight *domain.PerformanceInsight, err error) {
				require.NoError(t, err)
				assert.Equal(t, "TikTok lidera", insight.Insights)
			},
		},
		{
			name: "Plano starter é bloqueado antes de chamar a IA",
			setup: func(source *mocks.MockVariationSource, analyzer *mocks.MockPerformanceAnalyzer, plans *mocks.MockPlanReader) {
				plans.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&domain.User{UserID: "user-1", SubscriptionTier: "starter"}, nil)
				source.EXPECT().GetProjectVariations(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				analyzer.EXPECT().AnalyzePerformance(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, insight *domain.PerformanceInsight, err error) {
				assert.Nil(t, insight)
				assert.ErrorIs(t, err, ErrFeatureUnavailable)

				var insightErr *InsightError
				require.ErrorAs(t, err, &insightErr)
				assert.Equal(t, apiErrors.ErrInsufficientPrivilege, insightErr.Code)
			},
		},
		{
			name: "Usuário sem perfil",
			setup: func(source *mocks.MockVariationSource, analyzer *mocks.MockPerformanceAnalyzer, plans *mocks.MockPlanReader) {
				plans.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(nil, nil)
			},
			validate: func(t *testing.T, insight *domain.PerformanceInsight, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name: "Erro das variações é repassado",
			setup: func(source *mocks.MockVariationSource, analyzer *mocks.MockPerformanceAnalyzer, plans *mocks.MockPlanReader) {
				plans.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&domain.User{SubscriptionTier: "agency"}, nil)
				source.EXPECT().GetProjectVariations(gomock.Any(), "user-1", "p1").Return(nil, errors.New("sem variações"))
				analyzer.EXPECT().AnalyzePerformance(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, insight *domain.PerformanceInsight, err error) {
				assert.EqualError(t, err, "sem variações")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mocks.NewMockVariationSource(ctrl)
			analyzer := mocks.NewMockPerformanceAnalyzer(ctrl)
			plans := mocks.NewMockPlanReader(ctrl)
			tt.setup(source, analyzer, plans)

			insight, err := NewService(source, analyzer, plans).AnalyzeProjectPerformance(context.Background(), "user-1", "p1")
			tt.validate(t, insight, err)
		})
	}
}

func TestMetricsFromPost(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		metrics  domain.PostMetrics
		expected domain.PerformanceMetrics
	}{
		{
			name:     "Instagram",
			platform: domain.PlatformInstagram,
			metrics:  domain.PostMetrics{"impressions": 2000, "reach": 1500, "likes": 100, "comments": 20, "shares": 10, "saves": 30},
			expected: domain.PerformanceMetrics{Impressions: 2000, Clicks: 160, EngagementRate: 8},
		},
		{
			name:     "TikTok usa play_count como impressões",
			platform: domain.PlatformTikTok,
			metrics:  domain.PostMetrics{"play_count": 3000, "like_count": 250, "comment_count": 40, "share_count": 10},
			expected: domain.PerformanceMetrics{Impressions: 3000, Clicks: 300, EngagementRate: 10},
		},
		{
			name:     "Sem impressões",
			platform: domain.PlatformInstagram,
			metrics:  domain.PostMetrics{"likes": 5},
			expected: domain.PerformanceMetrics{Clicks: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MetricsFromPost(tt.platform, tt.metrics))
		})
	}
}

func TestCombineMetrics(t *testing.T) {
	combined := CombineMetrics(
		domain.PerformanceMetrics{Impressions: 2000, Clicks: 160, EngagementRate: 8},
		domain.PerformanceMetrics{Impressions: 1000, Clicks: 15, EngagementRate: 1.5},
	)

	assert.Equal(t, domain.PerformanceMetrics{Impressions: 3000, Clicks: 175, EngagementRate: 5.8}, combined)
	assert.Equal(t, domain.PerformanceMetrics{}, CombineMetrics())
}
