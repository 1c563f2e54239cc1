package authenticating

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/infrastructure/cache"
	"github.com/vfg2006/adcreative-api/infrastructure/repository"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/account"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
	"github.com/vfg2006/adcreative-api/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

const defaultSubscriptionTier = "starter"

type Authenticator interface {
	SignUp(ctx context.Context, request *domain.SignUpRequest) (*domain.AuthUser, error)
	SignIn(ctx context.Context, email, password string) (*domain.SignInResponse, error)
	SignOut(ctx context.Context, sessionID string) error
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
	Initialize(ctx context.Context, sessionID string) (*domain.Session, error)
	FetchProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, sessionID string, updates *domain.UpdateProfileRequest) (*domain.User, error)
	SetSubscription(ctx context.Context, sessionID string, subscription *domain.Subscription) (*domain.Session, error)
	FetchSocialAccounts(ctx context.Context, userID string) ([]*domain.SocialAccount, error)
	AddSocialAccount(ctx context.Context, sessionID string, request *domain.AddSocialAccountRequest) (*domain.SocialAccount, error)
	RemoveSocialAccount(ctx context.Context, userID, accountID string) error
}

type Service struct {
	authUserRepo     repository.AuthUserRepository
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	sessions         cache.SessionStore
	accountService   account.Interface
	cfg              config.Auth
	now              func() time.Time
}

func NewService(
	authUserRepo repository.AuthUserRepository,
	userRepo repository.UserRepository,
	subscriptionRepo repository.SubscriptionRepository,
	sessions cache.SessionStore,
	accountService account.Interface,
	cfg config.Auth,
) Authenticator {
	return &Service{
		authUserRepo:     authUserRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		sessions:         sessions,
		accountService:   accountService,
		cfg:              cfg,
		now:              time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) SignUp(ctx context.Context, request *domain.SignUpRequest) (*domain.AuthUser, error) {
	if request.Email == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email := handleEmail(request.Email)
	if err := validator.ValidateVar(email, "email"); err != nil {
		return nil, NewAuthError(ErrInvalidEmail, apiErrors.ErrInvalidFormat, email)
	}

	existing, err := s.authUserRepo.GetAuthUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	metadata := map[string]any{}
	if request.FullName != nil {
		metadata["full_name"] = *request.FullName
	}
	if request.Company != nil {
		metadata["company"] = *request.Company
	}

	user, err := s.authUserRepo.CreateAuthUser(ctx, &domain.AuthUser{
		Email:        email,
		PasswordHash: string(hashedPassword),
		UserMetadata: metadata,
	})
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	// o perfil é complementar, a conta já existe mesmo se ele falhar
	_, err = s.userRepo.CreateUser(ctx, &domain.User{
		UserID:           user.ID,
		Email:            email,
		FullName:         request.FullName,
		Company:          request.Company,
		SubscriptionTier: defaultSubscriptionTier,
		Role:             domain.RoleMember,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"error":   err.Error(),
		}).Error("authenticating: erro ao criar perfil do usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.SignInResponse, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.authUserRepo.GetAuthUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "")
	}

	profile, err := s.userRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, user.ID, "Erro ao buscar perfil")
	}

	subscription, err := s.subscriptionRepo.GetSubscriptionByUser(ctx, user.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("authenticating: erro ao buscar assinatura")
	}

	now := s.now()
	session := &domain.Session{
		ID:              uuid.NewString(),
		User:            user,
		Profile:         profile,
		IsAuthenticated: true,
		Subscription:    subscription,
		ExpiresAt:       now.Add(s.cfg.SessionTTL),
	}

	token, err := s.generateJWT(session, now)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrInternalServer, user.ID, "Erro ao gerar token de autenticação")
	}

	if err := s.sessions.SaveSession(ctx, session, s.cfg.SessionTTL); err != nil {
		return nil, NewUserAuthError(ErrSessionStore, apiErrors.ErrInternalServer, user.ID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"session_id": session.ID,
	}).Info("authenticating: login realizado")

	user.PasswordHash = ""
	return &domain.SignInResponse{
		Token:   token,
		Session: session,
	}, nil
}

func (s *Service) SignOut(ctx context.Context, sessionID string) error {
	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		return NewAuthError(ErrSessionStore, apiErrors.ErrInternalServer, err.Error())
	}

	return nil
}

func (s *Service) generateJWT(session *domain.Session, now time.Time) (string, error) {
	claims := domain.Claims{
		UserID: session.User.ID,
		Email:  session.User.Email,
		Role:   domain.RoleMember,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   session.User.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	if session.Profile != nil {
		claims.Role = session.Profile.Role
		claims.SubscriptionTier = session.Profile.SubscriptionTier
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

// ValidateToken exige assinatura válida e uma sessão ativa no cache
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	session, err := s.sessions.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, NewAuthError(ErrSessionStore, apiErrors.ErrInternalServer, err.Error())
	}

	if session == nil || session.User == nil || session.User.ID != claims.UserID {
		return nil, NewUserAuthError(ErrNotAuthenticated, apiErrors.ErrNotAuthenticated, claims.UserID, "")
	}

	return claims, nil
}

func (s *Service) loadSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, NewAuthError(ErrSessionStore, apiErrors.ErrInternalServer, err.Error())
	}

	if session == nil || session.User == nil {
		return nil, NewAuthError(ErrNotAuthenticated, apiErrors.ErrNotAuthenticated, "")
	}

	return session, nil
}

// persist grava a sessão preservando o prazo original
func (s *Service) persist(ctx context.Context, session *domain.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return NewAuthError(ErrNotAuthenticated, apiErrors.ErrNotAuthenticated, "sessão expirada")
	}

	if err := s.sessions.SaveSession(ctx, session, ttl); err != nil {
		return NewAuthError(ErrSessionStore, apiErrors.ErrInternalServer, err.Error())
	}

	return nil
}

// Initialize recarrega perfil, assinatura e contas sociais da sessão
func (s *Service) Initialize(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	userID := session.User.ID

	profile, err := s.FetchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	session.Profile = profile

	subscription, err := s.subscriptionRepo.GetSubscriptionByUser(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("authenticating: erro ao buscar assinatura")
	} else if subscription != nil {
		session.Subscription = subscription
	}

	if err := s.persist(ctx, session); err != nil {
		return nil, err
	}

	accounts, err := s.accountService.ListSocialAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	session.SocialAccounts = accounts

	return session, nil
}

func (s *Service) FetchProfile(ctx context.Context, userID string) (*domain.User, error) {
	profile, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	if profile == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, sessionID string, updates *domain.UpdateProfileRequest) (*domain.User, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	userID := session.User.ID

	profile, err := s.userRepo.UpdateUser(ctx, userID, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}
	if err != nil {
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	session.Profile = mergeProfile(session.Profile, profile, updates)

	if err := s.persist(ctx, session); err != nil {
		return nil, err
	}

	return session.Profile, nil
}

// mergeProfile aplica as alterações sobre o perfil da sessão
func mergeProfile(current, updated *domain.User, updates *domain.UpdateProfileRequest) *domain.User {
	if current == nil {
		return updated
	}

	merged := *current
	if updates.FullName != nil {
		merged.FullName = updates.FullName
	}
	if updates.Company != nil {
		merged.Company = updates.Company
	}
	if updates.AvatarURL != nil {
		merged.AvatarURL = updates.AvatarURL
	}
	if updated != nil {
		merged.UpdatedAt = updated.UpdatedAt
	}

	return &merged
}

func (s *Service) SetSubscription(ctx context.Context, sessionID string, subscription *domain.Subscription) (*domain.Session, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Subscription = subscription

	if err := s.persist(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *Service) FetchSocialAccounts(ctx context.Context, userID string) ([]*domain.SocialAccount, error) {
	return s.accountService.ListSocialAccounts(ctx, userID)
}

func (s *Service) AddSocialAccount(ctx context.Context, sessionID string, request *domain.AddSocialAccountRequest) (*domain.SocialAccount, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.accountService.AddSocialAccount(ctx, session.User.ID, request)
}

func (s *Service) RemoveSocialAccount(ctx context.Context, userID, accountID string) error {
	return s.accountService.RemoveSocialAccount(ctx, userID, accountID)
}
