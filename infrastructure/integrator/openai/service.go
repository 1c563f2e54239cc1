package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
)

const provider = "openai"

var ErrEmptyCompletion = errors.New("resposta vazia do modelo")

type OpenAIIntegrator struct {
	client *openai.Client
}

func New(cfg config.OpenAI) *OpenAIIntegrator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &OpenAIIntegrator{
		client: openai.NewClientWithConfig(clientCfg),
	}
}

// GenerateAdCopy pede três legendas ao modelo e devolve as linhas já limpas
func (s *OpenAIIntegrator) GenerateAdCopy(ctx context.Context, description, platform, style string) ([]domain.AdCopy, error) {
	content, err := s.complete(ctx, "generate_ad_copy", openai.ChatCompletionRequest{
		Model: domain.CopyModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: domain.CopywriterSystemPrompt(platform)},
			{Role: openai.ChatMessageRoleUser, Content: domain.AdCopyPrompt(description, platform, style)},
		},
		MaxTokens:   domain.CopyMaxTokens,
		Temperature: domain.CopyTemperature,
	})
	if err != nil {
		return nil, err
	}

	return domain.ParseAdCopies(content, platform, style), nil
}

func (s *OpenAIIntegrator) GenerateImage(ctx context.Context, style, platform string) (*domain.ImageVariation, error) {
	prompt := domain.ImagePrompt(style, platform)

	start := time.Now()
	resp, err := s.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          openai.CreateImageModelDallE3,
		N:              1,
		Size:           domain.ImageSize(platform),
		Quality:        openai.CreateImageQualityStandard,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	metrics.RecordExternalRequest(provider, "generate_image", err, time.Since(start))
	if err != nil {
		logrus.WithError(err).WithField("platform", platform).Error("openai: falha ao gerar imagem")
		return nil, apiMessage(err, "Failed to generate image")
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, fmt.Errorf("Failed to generate image: %w", ErrEmptyCompletion)
	}

	return &domain.ImageVariation{
		ImageURL: resp.Data[0].URL,
		Prompt:   prompt,
	}, nil
}

func (s *OpenAIIntegrator) AnalyzePerformance(ctx context.Context, performanceData string) (string, error) {
	return s.complete(ctx, "analyze_performance", openai.ChatCompletionRequest{
		Model: domain.CopyModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: domain.AnalystSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: domain.PerformancePrompt(performanceData)},
		},
		MaxTokens:   domain.InsightMaxTokens,
		Temperature: domain.InsightTemp,
	})
}

func (s *OpenAIIntegrator) complete(ctx context.Context, operation string, req openai.ChatCompletionRequest) (string, error) {
	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, req)
	metrics.RecordExternalRequest(provider, operation, err, time.Since(start))
	if err != nil {
		logrus.WithError(err).WithField("operation", operation).Error("openai: falha na chamada de chat completion")
		return "", apiMessage(err, "Failed to generate completion")
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

// apiMessage devolve a mensagem da API quando houver, senão o texto padrão
func apiMessage(err error, fallback string) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fmt.Errorf("%s: %w", apiErr.Message, err)
	}

	return fmt.Errorf("%s: %w", fallback, err)
}
