package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

func variationWith(id, platform string, impressions, clicks int, engagement float64) *domain.AdVariation {
	return &domain.AdVariation{
		AdVariationID: id,
		Platform:      platform,
		PerformanceMetrics: domain.PerformanceMetrics{
			Impressions:    impressions,
			Clicks:         clicks,
			EngagementRate: engagement,
		},
	}
}

func TestCalculateAnalytics(t *testing.T) {
	tests := []struct {
		name       string
		variations []*domain.AdVariation
		validate   func(t *testing.T, analytics *domain.ProjectAnalytics)
	}{
		{
			name: "Totais, média e CTR",
			variations: []*domain.AdVariation{
				variationWith("v1", "instagram", 1000, 50, 4.2),
				variationWith("v2", "tiktok", 3000, 150, 7.5),
				variationWith("v3", "instagram", 1000, 100, 5.0),
			},
			validate: func(t *testing.T, analytics *domain.ProjectAnalytics) {
				assert.Equal(t, 5000, analytics.TotalImpressions)
				assert.Equal(t, 300, analytics.TotalClicks)
				assert.Equal(t, 5.6, analytics.AvgEngagement)
				assert.InDelta(t, 6.0, analytics.ClickThroughRate, 0.0001)

				assert.Equal(t, domain.PlatformStats{Impressions: 2000, Clicks: 150, Count: 2}, analytics.PlatformBreakdown["instagram"])
				assert.Equal(t, domain.PlatformStats{Impressions: 3000, Clicks: 150, Count: 1}, analytics.PlatformBreakdown["tiktok"])
			},
		},
		{
			name: "CTR zero quando não há impressões",
			variations: []*domain.AdVariation{
				variationWith("v1", "instagram", 0, 0, 0),
			},
			validate: func(t *testing.T, analytics *domain.ProjectAnalytics) {
				assert.Zero(t, analytics.ClickThroughRate)
				assert.Zero(t, analytics.AvgEngagement)
			},
		},
		{
			name:       "Lista vazia não gera NaN",
			variations: []*domain.AdVariation{},
			validate: func(t *testing.T, analytics *domain.ProjectAnalytics) {
				assert.Zero(t, analytics.AvgEngagement)
				assert.Empty(t, analytics.TopPerforming)
				assert.Empty(t, analytics.PlatformBreakdown)
			},
		},
		{
			name: "Top 3 por engajamento com empates na ordem original",
			variations: []*domain.AdVariation{
				variationWith("v1", "instagram", 10, 1, 3.0),
				variationWith("v2", "instagram", 10, 1, 8.0),
				variationWith("v3", "tiktok", 10, 1, 5.0),
				variationWith("v4", "tiktok", 10, 1, 8.0),
				variationWith("v5", "tiktok", 10, 1, 5.0),
			},
			validate: func(t *testing.T, analytics *domain.ProjectAnalytics) {
				require.Len(t, analytics.TopPerforming, 3)
				assert.Equal(t, "v2", analytics.TopPerforming[0].AdVariationID)
				assert.Equal(t, "v4", analytics.TopPerforming[1].AdVariationID)
				assert.Equal(t, "v3", analytics.TopPerforming[2].AdVariationID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CalculateAnalytics(tt.variations))
		})
	}
}

func TestCalculateAnalytics_NaoReordenaEntrada(t *testing.T) {
	variations := []*domain.AdVariation{
		variationWith("v1", "instagram", 10, 1, 1.0),
		variationWith("v2", "instagram", 10, 1, 9.0),
	}

	CalculateAnalytics(variations)

	assert.Equal(t, "v1", variations[0].AdVariationID)
	assert.Equal(t, "v2", variations[1].AdVariationID)
}

func TestCalculateAnalytics_TotalIgualSomaDasImpressoes(t *testing.T) {
	variations := make([]*domain.AdVariation, 0, 20)
	expected := 0
	for i := 0; i < 20; i++ {
		impressions := (i + 1) * 137
		expected += impressions
		variations = append(variations, variationWith("v", "tiktok", impressions, i, float64(i)))
	}

	assert.Equal(t, expected, CalculateAnalytics(variations).TotalImpressions)
}
