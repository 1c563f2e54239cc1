package imagineart

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	imaginedomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/imagineart/domain"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/imagineart/imagineartclient"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
)

const provider = "imagineart"

type ImagineArtIntegrator struct {
	Client imagineartclient.Client
}

func New(client imagineartclient.Client) *ImagineArtIntegrator {
	return &ImagineArtIntegrator{
		Client: client,
	}
}

// EnhanceImage aplica o estilo e faz upscale da imagem do produto
func (s *ImagineArtIntegrator) EnhanceImage(ctx context.Context, imageURL, style string) (*domain.EnhancedImage, error) {
	start := time.Now()
	resp, err := s.Client.GenerateImage(ctx, imaginedomain.GenerationRequest{
		Prompt:   domain.EnhancePrompt(style),
		ImageURL: imageURL,
		Style:    style,
		Enhance:  true,
		Upscale:  true,
	})
	metrics.RecordExternalRequest(provider, "enhance_image", err, time.Since(start))
	if err != nil {
		logrus.WithError(err).Error("imagineart: falha ao melhorar imagem")
		return nil, fmt.Errorf("Failed to enhance image: %w", err)
	}

	return &domain.EnhancedImage{
		ImageURL: resp.Data.URL,
		TaskID:   resp.TaskID,
	}, nil
}

func (s *ImagineArtIntegrator) RemoveBackground(ctx context.Context, imageURL string) (*domain.EnhancedImage, error) {
	start := time.Now()
	resp, err := s.Client.RemoveBackground(ctx, imageURL)
	metrics.RecordExternalRequest(provider, "remove_background", err, time.Since(start))
	if err != nil {
		logrus.WithError(err).Error("imagineart: falha ao remover fundo")
		return nil, fmt.Errorf("Failed to remove background: %w", err)
	}

	return &domain.EnhancedImage{
		ImageURL: resp.Data.URL,
		TaskID:   resp.TaskID,
	}, nil
}
