package insighting

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/vfg2006/adcreative-api/internal/domain"
)

// VariationSource fornece as variações de um projeto do usuário
type VariationSource interface {
	GetProjectVariations(ctx context.Context, userID, projectID string) ([]*domain.AdVariation, error)
}

// PerformanceAnalyzer gera o texto de insights a partir das variações
type PerformanceAnalyzer interface {
	AnalyzePerformance(ctx context.Context, variations []*domain.AdVariation) (string, error)
}

// PlanReader lê o plano atual do usuário
type PlanReader interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
