package project

import (
	"sort"

	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/utils"
)

const topPerformingSize = 3

// CalculateAnalytics agrega as métricas das variações sem reordenar a lista recebida
func CalculateAnalytics(variations []*domain.AdVariation) *domain.ProjectAnalytics {
	analytics := &domain.ProjectAnalytics{
		PlatformBreakdown: make(map[string]domain.PlatformStats),
		TopPerforming:     []*domain.AdVariation{},
	}

	if len(variations) == 0 {
		return analytics
	}

	engagementSum := 0.0
	for _, variation := range variations {
		metrics := variation.PerformanceMetrics
		analytics.TotalImpressions += metrics.Impressions
		analytics.TotalClicks += metrics.Clicks
		engagementSum += metrics.EngagementRate

		stats := analytics.PlatformBreakdown[variation.Platform]
		stats.Impressions += metrics.Impressions
		stats.Clicks += metrics.Clicks
		stats.Count++
		analytics.PlatformBreakdown[variation.Platform] = stats
	}

	analytics.AvgEngagement = utils.RoundWithOneDecimalPlace(engagementSum / float64(len(variations)))

	if analytics.TotalImpressions > 0 {
		analytics.ClickThroughRate = float64(analytics.TotalClicks) / float64(analytics.TotalImpressions) * 100
	}

	ranked := append([]*domain.AdVariation{}, variations...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PerformanceMetrics.EngagementRate > ranked[j].PerformanceMetrics.EngagementRate
	})

	if len(ranked) > topPerformingSize {
		ranked = ranked[:topPerformingSize]
	}
	analytics.TopPerforming = ranked

	return analytics
}
