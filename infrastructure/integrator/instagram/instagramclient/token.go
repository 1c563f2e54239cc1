package instagramclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	igdomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/domain"
)

// ExchangeCode troca o código do OAuth por um token de acesso
func (c *InstagramClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*igdomain.TokenResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("código de autorização não pode ser vazio")
	}

	params := url.Values{}
	params.Add("client_id", c.Cfg.ClientID)
	params.Add("client_secret", c.Cfg.ClientSecret)
	params.Add("redirect_uri", redirectURI)
	params.Add("code", code)

	var tokenResp igdomain.TokenResponse
	if err := c.get(ctx, "oauth/access_token", params, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao trocar código por token: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

// GetLongLivedToken obtém um token de longa duração a partir de um token atual
func (c *InstagramClient) GetLongLivedToken(ctx context.Context, accessToken string) (*igdomain.TokenResponse, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.Cfg.ClientID)
	params.Add("client_secret", c.Cfg.ClientSecret)
	params.Add("fb_exchange_token", accessToken)

	var tokenResp igdomain.TokenResponse
	if err := c.get(ctx, "oauth/access_token", params, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}
