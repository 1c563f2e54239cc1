package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// AuthUser é a identidade usada no login. O perfil fica em User.
type AuthUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// User é o perfil do usuário (tabela users)
type User struct {
	UserID           string    `json:"user_id"`
	Email            string    `json:"email"`
	FullName         *string   `json:"full_name"`
	Company          *string   `json:"company"`
	AvatarURL        *string   `json:"avatar_url"`
	SubscriptionTier string    `json:"subscription_tier"`
	Role             string    `json:"role"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type SignUpRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName *string `json:"full_name"`
	Company  *string `json:"company"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name"`
	Company   *string `json:"company"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

// Claims carrega o ID da sessão em RegisteredClaims.ID
type Claims struct {
	UserID           string `json:"user_id"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	SubscriptionTier string `json:"subscription_tier"`
	jwt.RegisteredClaims
}
