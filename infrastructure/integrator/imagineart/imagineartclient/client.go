package imagineartclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	imaginedomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/imagineart/domain"
	"github.com/vfg2006/adcreative-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GenerateImage(ctx context.Context, req imaginedomain.GenerationRequest) (*imaginedomain.ImageResponse, error)
	RemoveBackground(ctx context.Context, imageURL string) (*imaginedomain.ImageResponse, error)
}

type ImagineArtClient struct {
	Cfg        config.ImagineArt
	HTTPClient *http.Client
}

func NewClient(cfg config.ImagineArt) Client {
	return &ImagineArtClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (c *ImagineArtClient) GenerateImage(ctx context.Context, req imaginedomain.GenerationRequest) (*imaginedomain.ImageResponse, error) {
	return c.post(ctx, "/image/generations", req)
}

func (c *ImagineArtClient) RemoveBackground(ctx context.Context, imageURL string) (*imaginedomain.ImageResponse, error) {
	return c.post(ctx, "/image/background-removal", imaginedomain.BackgroundRemovalRequest{ImageURL: imageURL})
}

func (c *ImagineArtClient) post(ctx context.Context, path string, payload any) (*imaginedomain.ImageResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimRight(c.Cfg.URL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp imaginedomain.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%s", errResp.Message)
		}
		return nil, fmt.Errorf("erro na api do imagine art. status: %d", resp.StatusCode)
	}

	var imageResp imaginedomain.ImageResponse
	if err := json.Unmarshal(respBody, &imageResp); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &imageResp, nil
}
