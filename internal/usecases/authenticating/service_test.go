package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adcreative-api/infrastructure/cache"
	repomocks "github.com/vfg2006/adcreative-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
	accountmocks "github.com/vfg2006/adcreative-api/internal/usecases/account/mocks"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	authUsers     *repomocks.MockAuthUserRepository
	users         *repomocks.MockUserRepository
	subscriptions *repomocks.MockSubscriptionRepository
	accounts      *accountmocks.MockInterface
	sessions      cache.SessionStore
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, authMocks) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ctrl := gomock.NewController(t)
	m := authMocks{
		authUsers:     repomocks.NewMockAuthUserRepository(ctrl),
		users:         repomocks.NewMockUserRepository(ctrl),
		subscriptions: repomocks.NewMockSubscriptionRepository(ctrl),
		accounts:      accountmocks.NewMockInterface(ctrl),
		sessions:      cache.NewSessionStore(client),
	}

	service := NewService(m.authUsers, m.users, m.subscriptions, m.sessions, m.accounts, config.Auth{
		SecretKey:  "segredo-de-teste",
		TokenTTL:   time.Hour,
		SessionTTL: 24 * time.Hour,
	}).(*Service)
	service.now = func() time.Time { return fixedNow }

	return service, m
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func signIn(t *testing.T, service *Service, m authMocks) *domain.SignInResponse {
	t.Helper()

	m.authUsers.EXPECT().
		GetAuthUserByEmail(gomock.Any(), "ana@loja.com").
		Return(&domain.AuthUser{ID: "user-1", Email: "ana@loja.com", PasswordHash: hashPassword(t, "senha123")}, nil)
	m.users.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&domain.User{UserID: "user-1", Email: "ana@loja.com", SubscriptionTier: "pro", Role: domain.RoleAdmin}, nil)
	m.subscriptions.EXPECT().
		GetSubscriptionByUser(gomock.Any(), "user-1").
		Return(&domain.Subscription{SubscriptionID: "s-1", PlanID: "pro", Status: domain.SubscriptionStatusActive}, nil)

	response, err := service.SignIn(context.Background(), " Ana@Loja.com ", "senha123")
	require.NoError(t, err)
	return response
}

func TestService_SignUp(t *testing.T) {
	fullName := "Ana Souza"

	tests := []struct {
		name     string
		request  *domain.SignUpRequest
		setup    func(m authMocks)
		validate func(t *testing.T, user *domain.AuthUser, err error)
	}{
		{
			name:    "Cadastro com perfil",
			request: &domain.SignUpRequest{Email: "ANA@loja.com", Password: "senha123", FullName: &fullName},
			setup: func(m authMocks) {
				m.authUsers.EXPECT().GetAuthUserByEmail(gomock.Any(), "ana@loja.com").Return(nil, nil)
				m.authUsers.EXPECT().
					CreateAuthUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.AuthUser) (*domain.AuthUser, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha123")))
						assert.Equal(t, "Ana Souza", u.UserMetadata["full_name"])
						u.ID = "user-1"
						return u, nil
					})
				m.users.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.Equal(t, "user-1", u.UserID)
						assert.Equal(t, "starter", u.SubscriptionTier)
						assert.Equal(t, domain.RoleMember, u.Role)
						return u, nil
					})
			},
			validate: func(t *testing.T, user *domain.AuthUser, err error) {
				require.NoError(t, err)
				assert.Equal(t, "user-1", user.ID)
				assert.Empty(t, user.PasswordHash)
			},
		},
		{
			name:    "Falha no perfil não desfaz o cadastro",
			request: &domain.SignUpRequest{Email: "ana@loja.com", Password: "senha123"},
			setup: func(m authMocks) {
				m.authUsers.EXPECT().GetAuthUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.authUsers.EXPECT().
					CreateAuthUser(gomock.Any(), gomock.Any()).
					Return(&domain.AuthUser{ID: "user-2", Email: "ana@loja.com"}, nil)
				m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("duplicate key"))
			},
			validate: func(t *testing.T, user *domain.AuthUser, err error) {
				require.NoError(t, err)
				assert.Equal(t, "user-2", user.ID)
			},
		},
		{
			name:    "Email já cadastrado",
			request: &domain.SignUpRequest{Email: "ana@loja.com", Password: "senha123"},
			setup: func(m authMocks) {
				m.authUsers.EXPECT().GetAuthUserByEmail(gomock.Any(), gomock.Any()).Return(&domain.AuthUser{ID: "user-1"}, nil)
				m.authUsers.EXPECT().CreateAuthUser(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, user *domain.AuthUser, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
			},
		},
		{
			name:    "Email inválido",
			request: &domain.SignUpRequest{Email: "ana.loja.com", Password: "senha123"},
			setup:   func(m authMocks) {},
			validate: func(t *testing.T, user *domain.AuthUser, err error) {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			},
		},
		{
			name:    "Senha ausente",
			request: &domain.SignUpRequest{Email: "ana@loja.com"},
			setup:   func(m authMocks) {},
			validate: func(t *testing.T, user *domain.AuthUser, err error) {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, authErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			user, err := service.SignUp(context.Background(), tt.request)
			tt.validate(t, user, err)
		})
	}
}

func TestService_SignIn_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, m authMocks)
	}{
		{
			name: "Usuário inexistente",
			setup: func(t *testing.T, m authMocks) {
				m.authUsers.EXPECT().GetAuthUserByEmail(gomock.Any(), "ana@loja.com").Return(nil, nil)
			},
		},
		{
			name: "Senha incorreta",
			setup: func(t *testing.T, m authMocks) {
				m.authUsers.EXPECT().
					GetAuthUserByEmail(gomock.Any(), "ana@loja.com").
					Return(&domain.AuthUser{ID: "user-1", PasswordHash: hashPassword(t, "outra")}, nil)
				m.users.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Times(0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(t, m)

			response, err := service.SignIn(context.Background(), "ana@loja.com", "senha123")
			assert.Nil(t, response)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.True(t, IsCredentialsError(err))
		})
	}
}

func TestService_SignInValidateSignOut(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	response := signIn(t, service, m)
	require.NotEmpty(t, response.Token)
	assert.True(t, response.Session.IsAuthenticated)
	assert.Equal(t, fixedNow.Add(24*time.Hour), response.Session.ExpiresAt)
	assert.Empty(t, response.Session.User.PasswordHash)

	claims, err := service.ValidateToken(ctx, response.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, response.Session.ID, claims.ID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "pro", claims.SubscriptionTier)

	require.NoError(t, service.SignOut(ctx, response.Session.ID))

	claims, err = service.ValidateToken(ctx, response.Token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestService_ValidateToken_Rejections(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()
	response := signIn(t, service, m)

	service.now = func() time.Time { return fixedNow.Add(2 * time.Hour) }
	_, err := service.ValidateToken(ctx, response.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	service.now = func() time.Time { return fixedNow }
	_, err = service.ValidateToken(ctx, response.Token+"x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken(ctx, "nao-e-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Initialize(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()
	response := signIn(t, service, m)

	m.users.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&domain.User{UserID: "user-1", SubscriptionTier: "agency", Role: domain.RoleMember}, nil)
	m.subscriptions.EXPECT().
		GetSubscriptionByUser(gomock.Any(), "user-1").
		Return(&domain.Subscription{SubscriptionID: "s-1", PlanID: "agency"}, nil)
	m.accounts.EXPECT().
		ListSocialAccounts(gomock.Any(), "user-1").
		Return([]*domain.SocialAccount{{ID: "sa-1", Platform: domain.PlatformInstagram}}, nil)

	session, err := service.Initialize(ctx, response.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, "agency", session.Profile.SubscriptionTier)
	assert.Equal(t, "agency", session.Subscription.PlanID)
	require.Len(t, session.SocialAccounts, 1)

	stored, err := m.sessions.GetSession(ctx, response.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, "agency", stored.Profile.SubscriptionTier)
	assert.Empty(t, stored.SocialAccounts)
}

func TestService_UpdateProfile(t *testing.T) {
	t.Run("Sem sessão", func(t *testing.T) {
		service, m := newTestService(t)
		m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		profile, err := service.UpdateProfile(context.Background(), "sessao-inexistente", &domain.UpdateProfileRequest{})
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.EqualError(t, err, "Not authenticated")
	})

	t.Run("Mescla as alterações no perfil da sessão", func(t *testing.T) {
		service, m := newTestService(t)
		ctx := context.Background()
		response := signIn(t, service, m)

		company := "Loja da Ana"
		updates := &domain.UpdateProfileRequest{Company: &company}
		updatedAt := fixedNow.Add(time.Minute)

		m.users.EXPECT().
			UpdateUser(gomock.Any(), "user-1", updates).
			Return(&domain.User{UserID: "user-1", Company: &company, UpdatedAt: updatedAt}, nil)

		profile, err := service.UpdateProfile(ctx, response.Session.ID, updates)
		require.NoError(t, err)
		assert.Equal(t, "Loja da Ana", *profile.Company)
		assert.Equal(t, "pro", profile.SubscriptionTier)
		assert.Equal(t, updatedAt, profile.UpdatedAt)

		stored, err := m.sessions.GetSession(ctx, response.Session.ID)
		require.NoError(t, err)
		assert.Equal(t, "Loja da Ana", *stored.Profile.Company)
	})
}
