package generating

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
	"github.com/vfg2006/adcreative-api/pkg/utils"
)

var variationStyles = []string{"modern", "bold", "professional", "playful", "minimalist"}

type CopyWriter interface {
	GenerateAdCopy(ctx context.Context, description, platform, style string) ([]domain.AdCopy, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, style, platform string) (*domain.ImageVariation, error)
}

type PerformanceAnalyzer interface {
	AnalyzePerformance(ctx context.Context, performanceData string) (string, error)
}

type ImageEditor interface {
	EnhanceImage(ctx context.Context, imageURL, style string) (*domain.EnhancedImage, error)
	RemoveBackground(ctx context.Context, imageURL string) (*domain.EnhancedImage, error)
}

type Interface interface {
	GenerateAdCopy(ctx context.Context, description, platform, style string) ([]domain.AdCopy, error)
	GenerateImageVariations(ctx context.Context, imageURL, style, platform string) (*domain.ImageVariation, error)
	EnhanceImage(ctx context.Context, imageURL, style string) (*domain.EnhancedImage, error)
	RemoveBackground(ctx context.Context, imageURL string) (*domain.EnhancedImage, error)
	GenerateAdVariations(ctx context.Context, productImage, description string, platforms []string, count int) ([]domain.GeneratedVariation, error)
	AnalyzePerformance(ctx context.Context, variations []*domain.AdVariation) (string, error)
}

type Service struct {
	copyWriter CopyWriter
	images     ImageGenerator
	analyzer   PerformanceAnalyzer
	editor     ImageEditor
}

func NewService(copyWriter CopyWriter, images ImageGenerator, analyzer PerformanceAnalyzer, editor ImageEditor) Interface {
	return &Service{
		copyWriter: copyWriter,
		images:     images,
		analyzer:   analyzer,
		editor:     editor,
	}
}

func (s *Service) GenerateAdCopy(ctx context.Context, description, platform, style string) ([]domain.AdCopy, error) {
	if style == "" {
		style = domain.DefaultCopyStyle
	}

	copies, err := s.copyWriter.GenerateAdCopy(ctx, description, platform, style)
	if err != nil {
		return nil, NewGenerationError(ErrGenerateAdCopy, err.Error())
	}

	return copies, nil
}

func (s *Service) GenerateImageVariations(ctx context.Context, _ string, style, platform string) (*domain.ImageVariation, error) {
	image, err := s.images.GenerateImage(ctx, style, platform)
	if err != nil {
		return nil, NewGenerationError(ErrGenerateImage, err.Error())
	}

	return image, nil
}

func (s *Service) EnhanceImage(ctx context.Context, imageURL, style string) (*domain.EnhancedImage, error) {
	if style == "" {
		style = domain.DefaultEnhanceStyle
	}

	image, err := s.editor.EnhanceImage(ctx, imageURL, style)
	if err != nil {
		return nil, NewGenerationError(ErrEnhanceImage, err.Error())
	}

	return image, nil
}

func (s *Service) RemoveBackground(ctx context.Context, imageURL string) (*domain.EnhancedImage, error) {
	image, err := s.editor.RemoveBackground(ctx, imageURL)
	if err != nil {
		return nil, NewGenerationError(ErrRemoveBackground, err.Error())
	}

	return image, nil
}

// GenerateAdVariations gera copy e imagem para cada variação. Só entram as variações em que as duas etapas funcionaram.
func (s *Service) GenerateAdVariations(ctx context.Context, productImage, description string, platforms []string, count int) ([]domain.GeneratedVariation, error) {
	if len(platforms) == 0 {
		return nil, NewGenerationError(ErrGenerateAdVariations, ErrNoPlatforms.Error())
	}

	if count <= 0 {
		count = domain.DefaultVariations
	}

	variations := make([]domain.GeneratedVariation, 0, count)

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, NewGenerationError(ErrGenerateAdVariations, err.Error())
		}

		style := variationStyles[i%len(variationStyles)]
		platform := platforms[i%len(platforms)]

		logger := logrus.WithFields(logrus.Fields{
			"index":    i + 1,
			"style":    style,
			"platform": platform,
		})

		copies, err := s.GenerateAdCopy(ctx, description, platform, style)
		if err != nil {
			logger.WithError(err).Warn("generating: falha ao gerar copy da variação")
			continue
		}

		image, err := s.GenerateImageVariations(ctx, productImage, style, platform)
		if err != nil {
			logger.WithError(err).Warn("generating: falha ao gerar imagem da variação")
			continue
		}

		text := ""
		if len(copies) > 0 {
			text = copies[0].Text
		}

		variations = append(variations, domain.GeneratedVariation{
			ID:                i + 1,
			Prompt:            fmt.Sprintf("%s style for %s", style, platform),
			GeneratedText:     text,
			GeneratedImageURL: image.ImageURL,
			Platform:          platform,
			Style:             style,
			Status:            domain.AdVariationStatusGenerated,
		})

		metrics.RecordAdVariationGenerated(platform)
	}

	return variations, nil
}

type performanceEntry struct {
	ID       string                    `json:"id"`
	Text     string                    `json:"text"`
	Platform string                    `json:"platform"`
	Metrics  domain.PerformanceMetrics `json:"metrics"`
}

func (s *Service) AnalyzePerformance(ctx context.Context, variations []*domain.AdVariation) (string, error) {
	data := performanceData(variations)
	if data == "" {
		return "", NewGenerationError(ErrAnalyzePerformance, ErrSerializePerformance.Error())
	}

	insights, err := s.analyzer.AnalyzePerformance(ctx, data)
	if err != nil {
		return "", NewGenerationError(ErrAnalyzePerformance, err.Error())
	}

	return insights, nil
}

func performanceData(variations []*domain.AdVariation) string {
	entries := make([]performanceEntry, 0, len(variations))
	for _, variation := range variations {
		entries = append(entries, performanceEntry{
			ID:       variation.AdVariationID,
			Text:     variation.GeneratedText,
			Platform: variation.Platform,
			Metrics:  variation.PerformanceMetrics,
		})
	}

	return utils.PrettyJson(entries)
}
