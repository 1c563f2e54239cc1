package domain

import "time"

// Session é o estado de autenticação mantido no cache.
// SocialAccounts não é persistido, é recarregado a cada Initialize.
type Session struct {
	ID              string           `json:"id"`
	User            *AuthUser        `json:"user"`
	Profile         *User            `json:"profile"`
	IsAuthenticated bool             `json:"is_authenticated"`
	Subscription    *Subscription    `json:"subscription"`
	SocialAccounts  []*SocialAccount `json:"social_accounts,omitempty"`
	ExpiresAt       time.Time        `json:"expires_at"`
}

type SignInResponse struct {
	Token   string   `json:"token"`
	Session *Session `json:"session"`
}
