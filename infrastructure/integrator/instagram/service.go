package instagram

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/instagramclient"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
)

const provider = "instagram"

type InstagramIntegrator struct {
	Client instagramclient.Client
}

func New(client instagramclient.Client) *InstagramIntegrator {
	return &InstagramIntegrator{
		Client: client,
	}
}

func (s *InstagramIntegrator) Platform() string {
	return domain.PlatformInstagram
}

// GetBusinessAccounts lista apenas as páginas com conta comercial do Instagram vinculada
func (s *InstagramIntegrator) GetBusinessAccounts(ctx context.Context, accessToken string) ([]domain.BusinessAccount, error) {
	start := time.Now()
	pages, err := s.Client.GetPages(ctx, accessToken)
	metrics.RecordExternalRequest(provider, "get_business_accounts", err, time.Since(start))
	if err != nil {
		logrus.WithError(err).Error("instagram: falha ao buscar contas comerciais")
		return nil, err
	}

	accounts := make([]domain.BusinessAccount, 0, len(pages))
	for _, page := range pages {
		if page.InstagramBusinessAccount == nil || page.InstagramBusinessAccount.ID == "" {
			continue
		}

		accounts = append(accounts, domain.BusinessAccount{
			ID:       page.InstagramBusinessAccount.ID,
			Name:     page.Name,
			Platform: domain.PlatformInstagram,
		})
	}

	return accounts, nil
}

// PostContent cria o container de mídia e em seguida publica ou agenda
func (s *InstagramIntegrator) PostContent(ctx context.Context, accessToken, accountID string, content domain.PostContent) (*domain.PostResult, error) {
	start := time.Now()
	postID, err := s.postContent(ctx, accessToken, accountID, content)
	metrics.RecordExternalRequest(provider, "post_content", err, time.Since(start))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("instagram: falha ao publicar conteúdo")
		return nil, err
	}

	return &domain.PostResult{
		PostID:    postID,
		Scheduled: content.ScheduledTime != nil,
	}, nil
}

func (s *InstagramIntegrator) postContent(ctx context.Context, accessToken, accountID string, content domain.PostContent) (string, error) {
	creationID, err := s.Client.CreateMedia(ctx, accessToken, accountID, content.MediaURL, content.Caption)
	if err != nil {
		return "", err
	}

	return s.Client.PublishMedia(ctx, accessToken, accountID, creationID, content.ScheduledTime)
}

func (s *InstagramIntegrator) GetPostMetrics(ctx context.Context, accessToken, _ string, postID string) (domain.PostMetrics, error) {
	start := time.Now()
	insights, err := s.Client.GetMediaInsights(ctx, accessToken, postID)
	metrics.RecordExternalRequest(provider, "get_post_metrics", err, time.Since(start))
	if err != nil {
		logrus.WithField("post_id", postID).WithError(err).Error("instagram: falha ao buscar insights do post")
		return nil, err
	}

	result := make(domain.PostMetrics, len(insights))
	for _, metric := range insights {
		if len(metric.Values) == 0 {
			continue
		}
		result[metric.Name] = metric.Values[0].Value
	}

	return result, nil
}

func (s *InstagramIntegrator) ExchangeCodeForToken(ctx context.Context, code, redirectURI string) (*domain.OAuthToken, error) {
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

// RefreshToken troca o token atual da conta por um de longa duração
func (s *InstagramIntegrator) RefreshToken(ctx context.Context, account *domain.SocialAccount) (*domain.OAuthToken, error) {
	start := time.Now()
	token, err := s.Client.GetLongLivedToken(ctx, account.AccessToken)
	metrics.RecordExternalRequest(provider, "refresh_token", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	return &domain.OAuthToken{
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
	}, nil
}
