package tiktok

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
)

const provider = "tiktok"

type TikTokIntegrator struct {
	Client tiktokclient.Client
}

func New(client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		Client: client,
	}
}

func (s *TikTokIntegrator) Platform() string {
	return domain.PlatformTikTok
}

func (s *TikTokIntegrator) GetBusinessAccounts(ctx context.Context, accessToken string) ([]domain.BusinessAccount, error) {
	start := time.Now()
	advertisers, err := s.Client.GetAdvertisers(ctx, accessToken)
	metrics.RecordExternalRequest(provider, "get_business_accounts", err, time.Since(start))
	if err != nil {
		logrus.WithError(err).Error("tiktok: falha ao buscar contas comerciais")
		return nil, err
	}

	accounts := make([]domain.BusinessAccount, 0, len(advertisers))
	for _, advertiser := range advertisers {
		accounts = append(accounts, domain.BusinessAccount{
			ID:       advertiser.AdvertiserID,
			Name:     advertiser.AdvertiserName,
			Platform: domain.PlatformTikTok,
		})
	}

	return accounts, nil
}

// PostContent publica a mídia gerada como vídeo do TikTok
func (s *TikTokIntegrator) PostContent(ctx context.Context, accessToken, accountID string, content domain.PostContent) (*domain.PostResult, error) {
	start := time.Now()
	itemID, err := s.Client.PublishVideo(ctx, accessToken, accountID, content.MediaURL, content.Caption, content.ScheduledTime)
	metrics.RecordExternalRequest(provider, "post_content", err, time.Since(start))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("tiktok: falha ao publicar conteúdo")
		return nil, err
	}

	return &domain.PostResult{
		PostID:    itemID,
		Scheduled: content.ScheduledTime != nil,
	}, nil
}

func (s *TikTokIntegrator) GetPostMetrics(ctx context.Context, accessToken, accountID, postID string) (domain.PostMetrics, error) {
	start := time.Now()
	analytics, err := s.Client.GetVideoAnalytics(ctx, accessToken, accountID, postID)
	metrics.RecordExternalRequest(provider, "get_post_metrics", err, time.Since(start))
	if err != nil {
		logrus.WithField("post_id", postID).WithError(err).Error("tiktok: falha ao buscar métricas do post")
		return nil, err
	}

	result := make(domain.PostMetrics, len(analytics))
	for name, value := range analytics {
		if number, ok := value.(float64); ok {
			result[name] = int(number)
		}
	}

	return result, nil
}

func (s *TikTokIntegrator) ExchangeCodeForToken(ctx context.Context, code, redirectURI string) (*domain.OAuthToken, error) {
	start := time.Now()
	token, err := s.Client.ExchangeCode(ctx, code, redirectURI)
	metrics.RecordExternalRequest(provider, "exchange_code", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	return &domain.OAuthToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    token.ExpiresIn,
	}, nil
}

// RefreshToken usa o refresh token da conta; o TikTok pode devolver um novo refresh token
func (s *TikTokIntegrator) RefreshToken(ctx context.Context, account *domain.SocialAccount) (*domain.OAuthToken, error) {
	start := time.Now()
	token, err := s.Client.RefreshToken(ctx, account.RefreshToken)
	metrics.RecordExternalRequest(provider, "refresh_token", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	refreshToken := token.RefreshToken
	if refreshToken == "" {
		refreshToken = account.RefreshToken
	}

	return &domain.OAuthToken{
		AccessToken:  token.AccessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    token.ExpiresIn,
	}, nil
}
