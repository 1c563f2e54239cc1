package account

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/infrastructure/repository"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/billing"
	"github.com/vfg2006/adcreative-api/internal/usecases/publishing"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
)

const (
	instagramScopes = "instagram_basic,instagram_content_publish,pages_show_list"
	tiktokScopes    = "user.info.basic,video.list,video.upload"
)

type Interface interface {
	ListSocialAccounts(ctx context.Context, userID string) ([]*domain.SocialAccount, error)
	AddSocialAccount(ctx context.Context, userID string, request *domain.AddSocialAccountRequest) (*domain.SocialAccount, error)
	RemoveSocialAccount(ctx context.Context, userID, accountID string) error
	GetOAuthURL(platform, redirectURI string) (string, error)
	ConnectAccounts(ctx context.Context, userID, platform, code, redirectURI string) ([]*domain.SocialAccount, error)
}

type Service struct {
	socialAccountRepository repository.SocialAccountRepository
	billingService          billing.Interface
	publishingService       publishing.Interface
	cfg                     *config.Config
	now                     func() time.Time
}

func NewService(
	socialAccountRepository repository.SocialAccountRepository,
	billingService billing.Interface,
	publishingService publishing.Interface,
	cfg *config.Config,
) Interface {
	return &Service{
		socialAccountRepository: socialAccountRepository,
		billingService:          billingService,
		publishingService:       publishingService,
		cfg:                     cfg,
		now:                     time.Now,
	}
}

func (s *Service) ListSocialAccounts(ctx context.Context, userID string) ([]*domain.SocialAccount, error) {
	accounts, err := s.socialAccountRepository.ListSocialAccounts(ctx, userID)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return accounts, nil
}

// AddSocialAccount respeita o limite de contas do plano antes de gravar
func (s *Service) AddSocialAccount(ctx context.Context, userID string, request *domain.AddSocialAccountRequest) (*domain.SocialAccount, error) {
	if !domain.IsSupportedPlatform(request.Platform) {
		return nil, NewAccountError(ErrUnsupportedPlatform, apiErrors.ErrUnsupportedPlatform, request.Platform)
	}

	if err := s.billingService.EnsureWithinLimit(ctx, userID, domain.LimitActionSocialAccount); err != nil {
		return nil, err
	}

	token := &domain.OAuthToken{
		AccessToken:  request.AccessToken,
		RefreshToken: request.RefreshToken,
		ExpiresIn:    request.ExpiresIn,
	}

	return s.save(ctx, userID, request.Platform, domain.BusinessAccount{
		ID:       request.AccountID,
		Name:     request.Name,
		Platform: request.Platform,
	}, token)
}

func (s *Service) RemoveSocialAccount(ctx context.Context, userID, accountID string) error {
	err := s.socialAccountRepository.DeleteSocialAccount(ctx, userID, accountID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrSocialAccountNotFound, accountID, "")
	}
	if err != nil {
		return NewAccountErrorWithID(ErrDeleteAccount, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"account_id": accountID,
	}).Info("account: conta social removida")

	return nil
}

func (s *Service) GetOAuthURL(platform, redirectURI string) (string, error) {
	var base string
	params := url.Values{}
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", "code")

	switch platform {
	case domain.PlatformInstagram:
		base = s.cfg.Instagram.DialogURL
		params.Set("client_id", s.cfg.Instagram.ClientID)
		params.Set("scope", instagramScopes)
	case domain.PlatformTikTok:
		base = s.cfg.TikTok.AuthorizeURL
		params.Set("client_key", s.cfg.TikTok.ClientKey)
		params.Set("scope", tiktokScopes)
	default:
		return "", NewAccountError(ErrUnsupportedPlatform, apiErrors.ErrUnsupportedPlatform, platform)
	}

	return base + "?" + params.Encode(), nil
}

// ConnectAccounts troca o código OAuth por um token e grava todas as contas comerciais encontradas
func (s *Service) ConnectAccounts(ctx context.Context, userID, platform, code, redirectURI string) ([]*domain.SocialAccount, error) {
	if !domain.IsSupportedPlatform(platform) {
		return nil, NewAccountError(ErrUnsupportedPlatform, apiErrors.ErrUnsupportedPlatform, platform)
	}

	token, err := s.publishingService.ExchangeCodeForToken(ctx, platform, code, redirectURI)
	if err != nil {
		return nil, NewAccountError(ErrExchangeCode, apiErrors.ErrSocialAPI, err.Error())
	}

	businessAccounts, err := s.publishingService.GetBusinessAccounts(ctx, platform, token.AccessToken)
	if err != nil {
		return nil, NewAccountError(ErrBusinessAccounts, apiErrors.ErrSocialAPI, err.Error())
	}

	connected := make([]*domain.SocialAccount, 0, len(businessAccounts))
	for _, businessAccount := range businessAccounts {
		account, err := s.save(ctx, userID, platform, businessAccount, token)
		if err != nil {
			return nil, err
		}
		connected = append(connected, account)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"platform": platform,
		"accounts": len(connected),
	}).Info("account: contas conectadas via OAuth")

	return connected, nil
}

func (s *Service) save(ctx context.Context, userID, platform string, businessAccount domain.BusinessAccount, token *domain.OAuthToken) (*domain.SocialAccount, error) {
	account, err := s.socialAccountRepository.SaveSocialAccount(ctx, &domain.SocialAccount{
		UserID:         userID,
		Platform:       platform,
		AccountID:      businessAccount.ID,
		Name:           businessAccount.Name,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		TokenExpiresAt: token.ExpiresAt(s.now()),
	})
	if err != nil {
		return nil, NewAccountErrorWithID(ErrSaveAccount, apiErrors.ErrDatabaseOperation, businessAccount.ID, err.Error())
	}

	return account, nil
}
