package publishing

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
)

// PlatformClient é implementado por cada integração de rede social
type PlatformClient interface {
	Platform() string
	GetBusinessAccounts(ctx context.Context, accessToken string) ([]domain.BusinessAccount, error)
	PostContent(ctx context.Context, accessToken, accountID string, content domain.PostContent) (*domain.PostResult, error)
	GetPostMetrics(ctx context.Context, accessToken, accountID, postID string) (domain.PostMetrics, error)
	ExchangeCodeForToken(ctx context.Context, code, redirectURI string) (*domain.OAuthToken, error)
	RefreshToken(ctx context.Context, account *domain.SocialAccount) (*domain.OAuthToken, error)
}

type Interface interface {
	GetBusinessAccounts(ctx context.Context, platform, accessToken string) ([]domain.BusinessAccount, error)
	PostContent(ctx context.Context, account *domain.SocialAccount, content domain.PostContent) (*domain.PostResult, error)
	PostToMultiplePlatforms(ctx context.Context, variation *domain.AdVariation, accounts []*domain.SocialAccount, scheduledTime *time.Time) []domain.PostingResult
	GetPostMetrics(ctx context.Context, account *domain.SocialAccount, postID string) (domain.PostMetrics, error)
	ExchangeCodeForToken(ctx context.Context, platform, code, redirectURI string) (*domain.OAuthToken, error)
	RefreshToken(ctx context.Context, account *domain.SocialAccount) (*domain.OAuthToken, error)
}

type Service struct {
	clients map[string]PlatformClient
}

func NewService(clients ...PlatformClient) Interface {
	byPlatform := make(map[string]PlatformClient, len(clients))
	for _, client := range clients {
		byPlatform[client.Platform()] = client
	}

	return &Service{
		clients: byPlatform,
	}
}

func (s *Service) client(platform string) (PlatformClient, error) {
	client, ok := s.clients[platform]
	if !ok {
		return nil, unsupportedPlatform(platform)
	}
	return client, nil
}

func (s *Service) GetBusinessAccounts(ctx context.Context, platform, accessToken string) ([]domain.BusinessAccount, error) {
	client, err := s.client(platform)
	if err != nil {
		return nil, err
	}

	return client.GetBusinessAccounts(ctx, accessToken)
}

func (s *Service) PostContent(ctx context.Context, account *domain.SocialAccount, content domain.PostContent) (*domain.PostResult, error) {
	client, err := s.client(account.Platform)
	if err != nil {
		return nil, err
	}

	return client.PostContent(ctx, account.AccessToken, account.AccountID, content)
}

// PostToMultiplePlatforms publica nas contas em sequência. Falhas viram resultados, nunca interrompem o lote.
func (s *Service) PostToMultiplePlatforms(ctx context.Context, variation *domain.AdVariation, accounts []*domain.SocialAccount, scheduledTime *time.Time) []domain.PostingResult {
	results := make([]domain.PostingResult, 0, len(accounts))

	content := domain.PostContent{
		Caption:       variation.GeneratedText,
		MediaURL:      variation.GeneratedImageURL,
		ScheduledTime: scheduledTime,
	}

	for _, account := range accounts {
		result := domain.PostingResult{
			SocialAccountID: account.ID,
			Platform:        account.Platform,
			AccountName:     account.Name,
		}

		posted, err := s.PostContent(ctx, account, content)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_variation_id": variation.AdVariationID,
				"platform":        account.Platform,
				"account_id":      account.AccountID,
				"error":           err.Error(),
			}).Warn("publishing: falha ao publicar na conta")

			result.Error = err.Error()
		} else {
			result.Success = true
			result.PostID = posted.PostID
			result.Scheduled = posted.Scheduled
		}

		metrics.RecordPostPublished(account.Platform, result.Success)
		results = append(results, result)
	}

	return results
}

func (s *Service) GetPostMetrics(ctx context.Context, account *domain.SocialAccount, postID string) (domain.PostMetrics, error) {
	client, err := s.client(account.Platform)
	if err != nil {
		return nil, err
	}

	return client.GetPostMetrics(ctx, account.AccessToken, account.AccountID, postID)
}

func (s *Service) ExchangeCodeForToken(ctx context.Context, platform, code, redirectURI string) (*domain.OAuthToken, error) {
	client, err := s.client(platform)
	if err != nil {
		return nil, err
	}

	return client.ExchangeCodeForToken(ctx, code, redirectURI)
}

func (s *Service) RefreshToken(ctx context.Context, account *domain.SocialAccount) (*domain.OAuthToken, error) {
	client, err := s.client(account.Platform)
	if err != nil {
		return nil, err
	}

	if account.Platform == domain.PlatformTikTok && account.RefreshToken == "" {
		return nil, ErrMissingRefreshToken
	}

	return client.RefreshToken(ctx, account)
}
