package insighting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
	"github.com/vfg2006/adcreative-api/pkg/utils"
)

const advancedAnalyticsFeature = "Advanced analytics"

type Interface interface {
	AnalyzeProjectPerformance(ctx context.Context, userID, projectID string) (*domain.PerformanceInsight, error)
}

type Service struct {
	variations VariationSource
	analyzer   PerformanceAnalyzer
	plans      PlanReader
}

func NewService(variations VariationSource, analyzer PerformanceAnalyzer, plans PlanReader) Interface {
	return &Service{
		variations: variations,
		analyzer:   analyzer,
		plans:      plans,
	}
}

// AnalyzeProjectPerformance só atende planos com analytics avançado
func (s *Service) AnalyzeProjectPerformance(ctx context.Context, userID, projectID string) (*domain.PerformanceInsight, error) {
	profile, err := s.plans.GetUserByID(ctx, userID)
	if err != nil {
		return nil, NewInsightError(err, apiErrors.ErrDatabaseOperation, "")
	}

	if profile == nil {
		return nil, NewInsightError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID)
	}

	if !domain.IsFeatureAvailable(profile.SubscriptionTier, advancedAnalyticsFeature) {
		return nil, NewInsightError(ErrFeatureUnavailable, apiErrors.ErrInsufficientPrivilege, profile.SubscriptionTier)
	}

	variations, err := s.variations.GetProjectVariations(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	insights, err := s.analyzer.AnalyzePerformance(ctx, variations)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"project_id": projectID,
		"variations": len(variations),
	}).Info("insighting: análise de performance gerada")

	return &domain.PerformanceInsight{Insights: insights}, nil
}

// MetricsFromPost converte as métricas brutas da plataforma em PerformanceMetrics
func MetricsFromPost(platform string, metrics domain.PostMetrics) domain.PerformanceMetrics {
	impressions := metrics["impressions"]
	if platform == domain.PlatformTikTok && impressions == 0 {
		impressions = metrics["play_count"]
	}

	clicks := metrics["likes"] + metrics["comments"] + metrics["shares"] + metrics["saves"] +
		metrics["like_count"] + metrics["comment_count"] + metrics["share_count"]

	return domain.PerformanceMetrics{
		Impressions:    impressions,
		Clicks:         clicks,
		EngagementRate: engagementRate(clicks, impressions),
	}
}

// CombineMetrics soma as métricas de vários posts e recalcula o engajamento
func CombineMetrics(all ...domain.PerformanceMetrics) domain.PerformanceMetrics {
	var combined domain.PerformanceMetrics
	for _, m := range all {
		combined.Impressions += m.Impressions
		combined.Clicks += m.Clicks
	}

	combined.EngagementRate = engagementRate(combined.Clicks, combined.Impressions)
	return combined
}

func engagementRate(clicks, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return utils.RoundWithOneDecimalPlace(float64(clicks) / float64(impressions) * 100)
}
