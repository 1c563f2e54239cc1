package tiktokclient

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
	tiktokdomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/adcreative-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	privacyPublic    = "PUBLIC_TO_EVERYONE"
	analyticsFields  = "play_count,like_count,comment_count,share_count"
	grantAuthCode    = "authorization_code"
	grantRefreshCode = "refresh_token"
)

type Client interface {
	GetAdvertisers(ctx context.Context, accessToken string) ([]tiktokdomain.Advertiser, error)
	PublishVideo(ctx context.Context, accessToken, advertiserID, videoURL, text string, scheduledTime *time.Time) (string, error)
	GetVideoAnalytics(ctx context.Context, accessToken, advertiserID, itemID string) (map[string]any, error)
	ExchangeCode(ctx context.Context, code, redirectURI string) (*tiktokdomain.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*tiktokdomain.TokenResponse, error)
}

type TikTokClient struct {
	Cfg        config.TikTok
	HTTPClient *http.Client
}

func NewClient(cfg config.TikTok) Client {
	return &TikTokClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *TikTokClient) GetAdvertisers(ctx context.Context, accessToken string) ([]tiktokdomain.Advertiser, error) {
	var response tiktokdomain.BusinessResponse
	if err := c.post(ctx, c.Cfg.URL+"/business/get/", tiktokdomain.BusinessRequest{AccessToken: accessToken}, &response); err != nil {
		return nil, err
	}

	if err := response.Err(); err != nil {
		return nil, err
	}

	return response.Data.List, nil
}

// PublishVideo publica o vídeo, agendando quando scheduledTime é informado
func (c *TikTokClient) PublishVideo(ctx context.Context, accessToken, advertiserID, videoURL, text string, scheduledTime *time.Time) (string, error) {
	payload := tiktokdomain.PublishRequest{
		AccessToken:  accessToken,
		AdvertiserID: advertiserID,
		VideoURL:     videoURL,
		Text:         text,
		PrivacyLevel: privacyPublic,
	}
	if scheduledTime != nil {
		payload.ScheduleTime = scheduledTime.Unix()
	}

	var response tiktokdomain.PublishResponse
	if err := c.post(ctx, c.Cfg.URL+"/post/publish/", payload, &response); err != nil {
		return "", err
	}

	if err := response.Err(); err != nil {
		return "", err
	}

	return response.Data.ItemID, nil
}

func (c *TikTokClient) GetVideoAnalytics(ctx context.Context, accessToken, advertiserID, itemID string) (map[string]any, error) {
	params := url.Values{}
	params.Add("access_token", accessToken)
	params.Add("advertiser_id", advertiserID)
	params.Add("item_id", itemID)
	params.Add("fields", analyticsFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Cfg.URL+"/business/get/?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	var response tiktokdomain.AnalyticsResponse
	if err := c.do(req, &response); err != nil {
		return nil, err
	}

	if err := response.Err(); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *TikTokClient) ExchangeCode(ctx context.Context, code, _ string) (*tiktokdomain.TokenResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("código de autorização não pode ser vazio")
	}

	return c.requestToken(ctx, tiktokdomain.TokenRequest{
		ClientKey:    c.Cfg.ClientKey,
		ClientSecret: c.Cfg.ClientSecret,
		GrantType:    grantAuthCode,
		Code:         code,
	})
}

func (c *TikTokClient) RefreshToken(ctx context.Context, refreshToken string) (*tiktokdomain.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token não pode ser vazio")
	}

	return c.requestToken(ctx, tiktokdomain.TokenRequest{
		ClientKey:    c.Cfg.ClientKey,
		ClientSecret: c.Cfg.ClientSecret,
		GrantType:    grantRefreshCode,
		RefreshToken: refreshToken,
	})
}

func (c *TikTokClient) requestToken(ctx context.Context, payload tiktokdomain.TokenRequest) (*tiktokdomain.TokenResponse, error) {
	path := "/oauth/access_token/"
	if payload.GrantType == grantRefreshCode {
		path = "/oauth/refresh_token/"
	}

	var tokenResp tiktokdomain.TokenResponse
	if err := c.post(ctx, c.Cfg.BaseURL+path, payload, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao obter token do tiktok: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

func (c *TikTokClient) post(ctx context.Context, endpoint string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *TikTokClient) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro na api do tiktok. Status: %d, Resposta: %s", resp.StatusCode, string(body))

		var oauthErr tiktokdomain.OAuthError
		if json.Unmarshal(body, &oauthErr) == nil && oauthErr.ErrorDescription != "" {
			return fmt.Errorf("erro na api do tiktok: %s", oauthErr.ErrorDescription)
		}

		var envelope tiktokdomain.Envelope
		if json.Unmarshal(body, &envelope) == nil && envelope.Code != 0 {
			return envelope.Err()
		}

		return fmt.Errorf("erro na api do tiktok. status: %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	return nil
}
