package publishing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vfg2006/adcreative-api/internal/domain"
)

const sandboxTokenTTL = 3600

// SandboxClient simula uma plataforma social com dados fixos e métricas aleatórias
type SandboxClient struct {
	platform string
	now      func() time.Time
}

func NewSandboxClient(platform string) *SandboxClient {
	return &SandboxClient{
		platform: platform,
		now:      time.Now,
	}
}

func (c *SandboxClient) Platform() string {
	return c.platform
}

func (c *SandboxClient) GetBusinessAccounts(_ context.Context, _ string) ([]domain.BusinessAccount, error) {
	switch c.platform {
	case domain.PlatformInstagram:
		return []domain.BusinessAccount{{ID: "ig_account_1", Name: "My Business Page", Platform: domain.PlatformInstagram}}, nil
	case domain.PlatformTikTok:
		return []domain.BusinessAccount{{ID: "tt_account_1", Name: "My TikTok Business", Platform: domain.PlatformTikTok}}, nil
	default:
		return []domain.BusinessAccount{}, nil
	}
}

func (c *SandboxClient) PostContent(_ context.Context, _, _ string, content domain.PostContent) (*domain.PostResult, error) {
	return &domain.PostResult{
		PostID:    fmt.Sprintf("%s_post_%d", c.platform, c.now().UnixMilli()),
		Scheduled: content.ScheduledTime != nil,
	}, nil
}

func (c *SandboxClient) GetPostMetrics(_ context.Context, _, _, _ string) (domain.PostMetrics, error) {
	if c.platform == domain.PlatformTikTok {
		return domain.PostMetrics{
			"play_count":    between(5000, 50000),
			"like_count":    between(200, 2000),
			"comment_count": between(30, 300),
			"share_count":   between(10, 100),
		}, nil
	}

	return domain.PostMetrics{
		"impressions": between(1000, 10000),
		"reach":       between(800, 8000),
		"likes":       between(50, 500),
		"comments":    between(10, 100),
		"shares":      between(5, 50),
		"saves":       between(20, 200),
	}, nil
}

func (c *SandboxClient) ExchangeCodeForToken(_ context.Context, _, _ string) (*domain.OAuthToken, error) {
	return c.token(), nil
}

func (c *SandboxClient) RefreshToken(_ context.Context, _ *domain.SocialAccount) (*domain.OAuthToken, error) {
	return c.token(), nil
}

func (c *SandboxClient) token() *domain.OAuthToken {
	ts := c.now().UnixMilli()
	return &domain.OAuthToken{
		AccessToken:  fmt.Sprintf("mock_access_token_%s_%d", c.platform, ts),
		RefreshToken: fmt.Sprintf("mock_refresh_token_%s_%d", c.platform, ts),
		ExpiresIn:    sandboxTokenTTL,
	}
}

// between sorteia um inteiro em [min, min+span)
func between(min, span int) int {
	return min + rand.IntN(span)
}
