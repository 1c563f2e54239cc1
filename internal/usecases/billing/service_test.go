package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/adcreative-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/billing/mocks"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type billingMocks struct {
	provider      *mocks.MockProvider
	subscriptions *repomocks.MockSubscriptionRepository
	users         *repomocks.MockUserRepository
}

func newTestService(t *testing.T) (Interface, billingMocks) {
	ctrl := gomock.NewController(t)
	m := billingMocks{
		provider:      mocks.NewMockProvider(ctrl),
		subscriptions: repomocks.NewMockSubscriptionRepository(ctrl),
		users:         repomocks.NewMockUserRepository(ctrl),
	}
	return NewService(m.provider, m.subscriptions, m.users), m
}

func TestService_CreateCheckoutSession(t *testing.T) {
	tests := []struct {
		name     string
		planID   string
		setup    func(m billingMocks)
		validate func(t *testing.T, session *domain.CheckoutSession, err error)
	}{
		{
			name:   "Plano válido usa o price id",
			planID: "pro",
			setup: func(m billingMocks) {
				m.provider.EXPECT().
					CreateCheckoutSession(gomock.Any(), "price_pro_monthly", "user-1", "https://app/ok", "https://app/cancel").
					Return(&domain.CheckoutSession{SessionID: "cs_1"}, nil)
			},
			validate: func(t *testing.T, session *domain.CheckoutSession, err error) {
				require.NoError(t, err)
				assert.Equal(t, "cs_1", session.SessionID)
			},
		},
		{
			name:   "Plano inválido não chama o provedor",
			planID: "enterprise",
			setup: func(m billingMocks) {
				m.provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, session *domain.CheckoutSession, err error) {
				assert.Nil(t, session)
				assert.ErrorIs(t, err, ErrInvalidPlan)
				assert.EqualError(t, err, "Invalid plan selected")
			},
		},
		{
			name:   "Falha do provedor",
			planID: "starter",
			setup: func(m billingMocks) {
				m.provider.EXPECT().
					CreateCheckoutSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, session *domain.CheckoutSession, err error) {
				assert.ErrorIs(t, err, ErrBillingProvider)

				var billingErr *BillingError
				require.ErrorAs(t, err, &billingErr)
				assert.Equal(t, apiErrors.ErrBillingProvider, billingErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			session, err := service.CreateCheckoutSession(context.Background(), "user-1", &domain.CheckoutRequest{
				PlanID:     tt.planID,
				SuccessURL: "https://app/ok",
				CancelURL:  "https://app/cancel",
			})
			tt.validate(t, session, err)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestService_GetSubscription_Mirror(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	ownedBy := map[string]string{domain.MetadataUserID: "user-1"}

	tests := []struct {
		name         string
		subscription *domain.BillingSubscription
		setup        func(m billingMocks)
	}{
		{
			name: "Assinatura ativa atualiza o espelho e o plano do usuário",
			subscription: &domain.BillingSubscription{
				ID:                 "sub_1",
				Status:             domain.SubscriptionStatusActive,
				CurrentPeriodStart: start.Unix(),
				CurrentPeriodEnd:   end.Unix(),
				Plan:               &domain.BillingPlan{ID: "price_agency_monthly"},
				Customer:           &domain.BillingCustomer{ID: "cus_1"},
				Metadata:           ownedBy,
			},
			setup: func(m billingMocks) {
				m.subscriptions.EXPECT().
					GetSubscriptionByUser(gomock.Any(), "user-1").
					Return(&domain.Subscription{SubscriptionID: "s-1", PlanID: "starter"}, nil)
				m.subscriptions.EXPECT().
					SaveSubscription(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *domain.Subscription) (*domain.Subscription, error) {
						assert.Equal(t, "s-1", s.SubscriptionID)
						assert.Equal(t, "agency", s.PlanID)
						assert.Equal(t, "sub_1", *s.ExternalSubscriptionID)
						assert.Equal(t, "cus_1", *s.CustomerID)
						assert.True(t, start.Equal(*s.CurrentPeriodStart))
						assert.True(t, end.Equal(*s.CurrentPeriodEnd))
						return s, nil
					})
				m.users.EXPECT().UpdateSubscriptionTier(gomock.Any(), "user-1", "agency").Return(nil)
			},
		},
		{
			name: "Assinatura cancelada mantém plano, customer e período locais",
			subscription: &domain.BillingSubscription{
				ID:     "sub_2",
				Status: domain.SubscriptionStatusCanceled,
			},
			setup: func(m billingMocks) {
				m.subscriptions.EXPECT().
					GetSubscriptionByUser(gomock.Any(), "user-1").
					Return(&domain.Subscription{
						SubscriptionID:         "s-1",
						PlanID:                 "pro",
						ExternalSubscriptionID: strPtr("sub_2"),
						CustomerID:             strPtr("cus_9"),
						CurrentPeriodStart:     &start,
						CurrentPeriodEnd:       &end,
					}, nil)
				m.subscriptions.EXPECT().
					SaveSubscription(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *domain.Subscription) (*domain.Subscription, error) {
						assert.Equal(t, "pro", s.PlanID)
						require.NotNil(t, s.CustomerID)
						assert.Equal(t, "cus_9", *s.CustomerID)
						require.NotNil(t, s.CurrentPeriodStart)
						assert.True(t, start.Equal(*s.CurrentPeriodStart))
						require.NotNil(t, s.CurrentPeriodEnd)
						assert.True(t, end.Equal(*s.CurrentPeriodEnd))
						return s, nil
					})
				m.users.EXPECT().UpdateSubscriptionTier(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name: "Customer igual ao espelho local vincula nova assinatura",
			subscription: &domain.BillingSubscription{
				ID:       "sub_5",
				Status:   domain.SubscriptionStatusActive,
				Plan:     &domain.BillingPlan{ID: "pro"},
				Customer: &domain.BillingCustomer{ID: "cus_9"},
			},
			setup: func(m billingMocks) {
				m.subscriptions.EXPECT().
					GetSubscriptionByUser(gomock.Any(), "user-1").
					Return(&domain.Subscription{
						SubscriptionID:         "s-1",
						PlanID:                 "starter",
						ExternalSubscriptionID: strPtr("sub_old"),
						CustomerID:             strPtr("cus_9"),
					}, nil)
				m.subscriptions.EXPECT().
					SaveSubscription(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *domain.Subscription) (*domain.Subscription, error) {
						assert.Equal(t, "sub_5", *s.ExternalSubscriptionID)
						assert.Equal(t, "pro", s.PlanID)
						return s, nil
					})
				m.users.EXPECT().UpdateSubscriptionTier(gomock.Any(), "user-1", "pro").Return(nil)
			},
		},
		{
			name: "Sem espelho local usa starter",
			subscription: &domain.BillingSubscription{
				ID:       "sub_3",
				Status:   domain.SubscriptionStatusActive,
				Metadata: ownedBy,
			},
			setup: func(m billingMocks) {
				m.subscriptions.EXPECT().GetSubscriptionByUser(gomock.Any(), "user-1").Return(nil, nil)
				m.subscriptions.EXPECT().
					SaveSubscription(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *domain.Subscription) (*domain.Subscription, error) {
						assert.Empty(t, s.SubscriptionID)
						assert.Equal(t, "starter", s.PlanID)
						assert.Nil(t, s.CustomerID)
						return s, nil
					})
				m.users.EXPECT().UpdateSubscriptionTier(gomock.Any(), "user-1", "starter").Return(nil)
			},
		},
		{
			name: "Falha ao salvar o espelho não propaga",
			subscription: &domain.BillingSubscription{
				ID:       "sub_4",
				Status:   domain.SubscriptionStatusActive,
				Plan:     &domain.BillingPlan{ID: "pro"},
				Metadata: ownedBy,
			},
			setup: func(m billingMocks) {
				m.subscriptions.EXPECT().GetSubscriptionByUser(gomock.Any(), "user-1").Return(nil, nil)
				m.subscriptions.EXPECT().SaveSubscription(gomock.Any(), gomock.Any()).Return(nil, errors.New("deadlock"))
				m.users.EXPECT().UpdateSubscriptionTier(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			m.provider.EXPECT().GetSubscription(gomock.Any(), tt.subscription.ID).Return(tt.subscription, nil)
			tt.setup(m)

			subscription, err := service.GetSubscription(context.Background(), "user-1", tt.subscription.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.subscription, subscription)
		})
	}
}

func TestService_GetSubscription_OtherUser(t *testing.T) {
	tests := []struct {
		name         string
		local        *domain.Subscription
		subscription *domain.BillingSubscription
	}{
		{
			name:  "Metadata de outro usuário",
			local: nil,
			subscription: &domain.BillingSubscription{
				ID:       "sub_victim",
				Status:   domain.SubscriptionStatusActive,
				Plan:     &domain.BillingPlan{ID: "agency"},
				Customer: &domain.BillingCustomer{ID: "cus_victim"},
				Metadata: map[string]string{domain.MetadataUserID: "user-2"},
			},
		},
		{
			name:  "Customer diferente do espelho local",
			local: &domain.Subscription{SubscriptionID: "s-1", PlanID: "starter", CustomerID: strPtr("cus_1")},
			subscription: &domain.BillingSubscription{
				ID:       "sub_victim",
				Status:   domain.SubscriptionStatusActive,
				Customer: &domain.BillingCustomer{ID: "cus_victim"},
			},
		},
		{
			name:  "Espelho local sem customer não casa com customer vazio",
			local: &domain.Subscription{SubscriptionID: "s-1", PlanID: "starter", CustomerID: strPtr("")},
			subscription: &domain.BillingSubscription{
				ID:       "sub_victim",
				Status:   domain.SubscriptionStatusActive,
				Customer: &domain.BillingCustomer{ID: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			m.subscriptions.EXPECT().GetSubscriptionByUser(gomock.Any(), "user-1").Return(tt.local, nil)
			m.provider.EXPECT().GetSubscription(gomock.Any(), "sub_victim").Return(tt.subscription, nil)
			m.subscriptions.EXPECT().SaveSubscription(gomock.Any(), gomock.Any()).Times(0)
			m.users.EXPECT().UpdateSubscriptionTier(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			subscription, err := service.GetSubscription(context.Background(), "user-1", "sub_victim")

			assert.Nil(t, subscription)
			assert.ErrorIs(t, err, ErrSubscriptionNotFound)
			var billingErr *BillingError
			require.ErrorAs(t, err, &billingErr)
			assert.Equal(t, apiErrors.ErrSubscriptionNotFound, billingErr.Code)
		})
	}
}

func TestService_GetSubscription_LocalLookupFails(t *testing.T) {
	service, m := newTestService(t)
	m.subscriptions.EXPECT().GetSubscriptionByUser(gomock.Any(), "user-1").Return(nil, errors.New("conn refused"))
	m.provider.EXPECT().GetSubscription(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.GetSubscription(context.Background(), "user-1", "sub_1")

	var billingErr *BillingError
	require.ErrorAs(t, err, &billingErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, billingErr.Code)
}

func TestService_ChangeSubscription_RequiresLinkedSubscription(t *testing.T) {
	linked := &domain.Subscription{
		SubscriptionID:         "s-1",
		PlanID:                 "pro",
		ExternalSubscriptionID: strPtr("sub_1"),
		CustomerID:             strPtr("cus_1"),
	}

	tests := []struct {
		name  string
		local *domain.Subscription
		call  func(service Interface) (*domain.BillingSubscription, error)
		setup func(m billingMocks)
	}{
		{
			name:  "Cancelar assinatura de outro usuário",
			local: linked,
			call: func(service Interface) (*domain.BillingSubscription, error) {
				return service.CancelSubscription(context.Background(), "user-1", "sub_victim")
			},
			setup: func(m billingMocks) {
				m.provider.EXPECT().CancelSubscription(gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name:  "Cancelar sem espelho local",
			local: nil,
			call: func(service Interface) (*domain.BillingSubscription, error) {
				return service.CancelSubscription(context.Background(), "user-1", "sub_1")
			},
			setup: func(m billingMocks) {
				m.provider.EXPECT().CancelSubscription(gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name:  "Alterar plano de assinatura de outro usuário",
			local: linked,
			call: func(service Interface) (*domain.BillingSubscription, error) {
				return service.UpdateSubscription(context.Background(), "user-1", "sub_victim", "price_agency_monthly")
			},
			setup: func(m billingMocks) {
				m.provider.EXPECT().UpdateSubscription(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			m.subscriptions.EXPECT().GetSubscriptionByUser(gomock.Any(), "user-1").Return(tt.local, nil)
			m.subscriptions.EXPECT().SaveSubscription(gomock.Any(), gomock.Any()).Times(0)
			tt.setup(m)

			subscription, err := tt.call(service)

			assert.Nil(t, subscription)
			assert.ErrorIs(t, err, ErrSubscriptionNotFound)
		})
	}
}

func TestService_CancelSubscription_KeepsLocalFields(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	service, m := newTestService(t)
	m.subscriptions.EXPECT().
		GetSubscriptionByUser(gomock.Any(), "user-1").
		Return(&domain.Subscription{
			SubscriptionID:         "s-1",
			PlanID:                 "pro",
			ExternalSubscriptionID: strPtr("sub_1"),
			CustomerID:             strPtr("cus_1"),
			CurrentPeriodStart:     &start,
			CurrentPeriodEnd:       &end,
		}, nil)
	m.provider.EXPECT().
		CancelSubscription(gomock.Any(), "sub_1").
		Return(&domain.BillingSubscription{
			ID:               "sub_1",
			Status:           domain.SubscriptionStatusCanceled,
			CurrentPeriodEnd: end.Unix(),
		}, nil)
	m.subscriptions.EXPECT().
		SaveSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.Subscription) (*domain.Subscription, error) {
			assert.Equal(t, domain.SubscriptionStatusCanceled, s.Status)
			assert.Equal(t, "pro", s.PlanID)
			require.NotNil(t, s.CustomerID)
			assert.Equal(t, "cus_1", *s.CustomerID)
			require.NotNil(t, s.CurrentPeriodStart)
			assert.True(t, start.Equal(*s.CurrentPeriodStart))
			return s, nil
		})

	subscription, err := service.CancelSubscription(context.Background(), "user-1", "sub_1")

	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusCanceled, subscription.Status)
}

func TestService_UpdateSubscription_InvalidPrice(t *testing.T) {
	service, m := newTestService(t)
	m.provider.EXPECT().UpdateSubscription(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	subscription, err := service.UpdateSubscription(context.Background(), "user-1", "sub_1", "price_unknown")
	assert.Nil(t, subscription)
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestService_EnsureWithinLimit(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m billingMocks)
		expected error
	}{
		{
			name: "Dentro do limite",
			setup: func(m billingMocks) {
				m.provider.EXPECT().
					CheckPlanLimits(gomock.Any(), "user-1", domain.LimitActionAdGeneration).
					Return(&domain.PlanLimitCheck{Allowed: true, Remaining: 10, Limit: 50}, nil)
			},
		},
		{
			name: "Limite atingido",
			setup: func(m billingMocks) {
				m.provider.EXPECT().
					CheckPlanLimits(gomock.Any(), "user-1", domain.LimitActionAdGeneration).
					Return(&domain.PlanLimitCheck{Allowed: false, Remaining: 0, Limit: 50}, nil)
			},
			expected: ErrPlanLimitReached,
		},
		{
			name: "Falha do provedor",
			setup: func(m billingMocks) {
				m.provider.EXPECT().
					CheckPlanLimits(gomock.Any(), "user-1", domain.LimitActionAdGeneration).
					Return(nil, errors.New("503"))
			},
			expected: ErrBillingProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			err := service.EnsureWithinLimit(context.Background(), "user-1", domain.LimitActionAdGeneration)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_RecordAdGenerations(t *testing.T) {
	service, m := newTestService(t)

	m.subscriptions.EXPECT().IncrementAdGenerations(gomock.Any(), "user-1", 3).Return(nil)
	require.NoError(t, service.RecordAdGenerations(context.Background(), "user-1", 3))

	m.subscriptions.EXPECT().IncrementAdGenerations(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	require.NoError(t, service.RecordAdGenerations(context.Background(), "user-1", 0))
}

func TestSandboxProvider(t *testing.T) {
	provider := NewSandboxProvider()
	provider.now = func() time.Time { return time.UnixMilli(1717243200000) }
	ctx := context.Background()

	session, err := provider.CreateCheckoutSession(ctx, "price_pro_monthly", "user-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "cs_mock_1717243200000", session.SessionID)
	assert.Equal(t, "sub_mock_1717243200000", session.SubscriptionID)

	subscription, err := provider.GetSubscription(ctx, session.SubscriptionID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusActive, subscription.Status)
	assert.Equal(t, "pro", subscription.Plan.ID)
	assert.Equal(t, "cus_mock_user-1", subscription.Customer.ID)
	assert.Equal(t, "user-1", subscription.Metadata[domain.MetadataUserID])

	unknown, err := provider.GetSubscription(ctx, "sub_other")
	require.NoError(t, err)
	assert.Nil(t, unknown.Customer)
	assert.Empty(t, unknown.Metadata)

	check, err := provider.CheckPlanLimits(ctx, "user-1", domain.LimitActionSocialAccount)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanLimitCheck{Allowed: true, Remaining: 3, Limit: 5}, *check)

	check, err = provider.CheckPlanLimits(ctx, "user-1", "export")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanLimitCheck{Allowed: true, Remaining: 100, Limit: 200}, *check)
}

func TestService_SandboxSubscriptionIsScopedToBuyer(t *testing.T) {
	ctrl := gomock.NewController(t)
	subscriptions := repomocks.NewMockSubscriptionRepository(ctrl)
	users := repomocks.NewMockUserRepository(ctrl)
	provider := NewSandboxProvider()
	service := NewService(provider, subscriptions, users)
	ctx := context.Background()

	session, err := service.CreateCheckoutSession(ctx, "user-1", &domain.CheckoutRequest{PlanID: "pro"})
	require.NoError(t, err)

	subscriptions.EXPECT().GetSubscriptionByUser(gomock.Any(), "user-2").Return(nil, nil)
	subscriptions.EXPECT().SaveSubscription(gomock.Any(), gomock.Any()).Times(0)

	_, err = service.GetSubscription(ctx, "user-2", session.SubscriptionID)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)

	subscriptions.EXPECT().GetSubscriptionByUser(gomock.Any(), "user-1").Return(nil, nil)
	subscriptions.EXPECT().
		SaveSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.Subscription) (*domain.Subscription, error) {
			assert.Equal(t, "user-1", s.UserID)
			assert.Equal(t, "cus_mock_user-1", *s.CustomerID)
			return s, nil
		})
	users.EXPECT().UpdateSubscriptionTier(gomock.Any(), "user-1", "pro").Return(nil)

	subscription, err := service.GetSubscription(ctx, "user-1", session.SubscriptionID)
	require.NoError(t, err)
	assert.Equal(t, session.SubscriptionID, subscription.ID)
}
