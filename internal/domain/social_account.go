package domain

import "time"

type SocialAccount struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Platform       string     `json:"platform"`
	AccountID      string     `json:"account_id"`
	Name           string     `json:"name"`
	AccessToken    string     `json:"-"`
	RefreshToken   string     `json:"-"`
	TokenExpiresAt *time.Time `json:"token_expires_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type AddSocialAccountRequest struct {
	Platform     string `json:"platform" validate:"required,oneof=instagram tiktok"`
	AccountID    string `json:"account_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type ConnectAccountsRequest struct {
	Code        string `json:"code" validate:"required"`
	RedirectURI string `json:"redirect_uri" validate:"required,url"`
}

// BusinessAccount é uma conta comercial listada pela plataforma
type BusinessAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
}

type OAuthToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ExpiresAt calcula a expiração com um dia de folga para renovar antes do prazo real.
// Tokens curtos usam metade do tempo.
func (t *OAuthToken) ExpiresAt(now time.Time) *time.Time {
	if t.ExpiresIn <= 0 {
		return nil
	}

	buffer := int64(24 * 60 * 60)
	safeExpiresIn := t.ExpiresIn - buffer
	if safeExpiresIn < 0 {
		safeExpiresIn = t.ExpiresIn / 2
	}

	expiresAt := now.Add(time.Duration(safeExpiresIn) * time.Second)
	return &expiresAt
}

// PostMetrics são os números brutos de um post na plataforma
type PostMetrics map[string]int

type PostContent struct {
	Caption       string
	MediaURL      string
	ScheduledTime *time.Time
}

type PostResult struct {
	PostID    string `json:"post_id"`
	Scheduled bool   `json:"scheduled"`
}
