package instagramclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	igdomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/adcreative-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetPages(ctx context.Context, accessToken string) ([]igdomain.Page, error)
	CreateMedia(ctx context.Context, accessToken, accountID string, imageURL, caption string) (string, error)
	PublishMedia(ctx context.Context, accessToken, accountID, creationID string, scheduledTime *time.Time) (string, error)
	GetMediaInsights(ctx context.Context, accessToken, mediaID string) ([]igdomain.InsightMetric, error)
	ExchangeCode(ctx context.Context, code, redirectURI string) (*igdomain.TokenResponse, error)
	GetLongLivedToken(ctx context.Context, accessToken string) (*igdomain.TokenResponse, error)
}

type InstagramClient struct {
	Cfg        config.Instagram
	HTTPClient *http.Client
}

func NewClient(cfg config.Instagram) Client {
	return &InstagramClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *InstagramClient) get(ctx context.Context, path string, params url.Values, out any) error {
	requestURL := fmt.Sprintf("%s/%s?%s", c.Cfg.URL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	return c.do(req, out)
}

func (c *InstagramClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", c.Cfg.URL, path), bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *InstagramClient) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := HandleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	return nil
}

// HandleResponse lê o corpo e converte respostas de erro da Graph API
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	var errorResp igdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		logrus.Errorf("Erro na graph api. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro na graph api. status: %d", resp.StatusCode)
	}

	if errorResp.IsTokenExpired() {
		logrus.WithField("fbtrace_id", errorResp.Error.FBTraceID).Warn("Token do Instagram expirado")
	}

	return nil, errorResp.Err(resp.StatusCode)
}
