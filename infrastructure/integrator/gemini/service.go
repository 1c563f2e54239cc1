package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
	"google.golang.org/genai"
)

const (
	provider     = "gemini"
	defaultModel = "gemini-2.0-flash"
)

// GeminiIntegrator é o redator alternativo de legendas
type GeminiIntegrator struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, cfg config.Gemini) (*GeminiIntegrator, error) {
	return newWithHTTPOptions(ctx, cfg, genai.HTTPOptions{})
}

func newWithHTTPOptions(ctx context.Context, cfg config.Gemini, httpOptions genai.HTTPOptions) (*GeminiIntegrator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("chave da API do Gemini não configurada")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do Gemini: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &GeminiIntegrator{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiIntegrator) GenerateAdCopy(ctx context.Context, description, platform, style string) ([]domain.AdCopy, error) {
	start := time.Now()
	resp, err := s.client.Models.GenerateContent(ctx, s.model,
		genai.Text(domain.AdCopyPrompt(description, platform, style)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(domain.CopywriterSystemPrompt(platform), genai.RoleUser),
			Temperature:       genai.Ptr[float32](domain.CopyTemperature),
			MaxOutputTokens:   domain.CopyMaxTokens,
		},
	)
	metrics.RecordExternalRequest(provider, "generate_ad_copy", err, time.Since(start))
	if err != nil {
		logrus.WithError(err).WithField("platform", platform).Error("gemini: falha ao gerar legendas")
		return nil, fmt.Errorf("Failed to generate ad copy: %w", err)
	}

	return domain.ParseAdCopies(resp.Text(), platform, style), nil
}
