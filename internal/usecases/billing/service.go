package billing

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/infrastructure/repository"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
)

// Provider é o backend de pagamentos
type Provider interface {
	CreateCheckoutSession(ctx context.Context, priceID, userID, successURL, cancelURL string) (*domain.CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*domain.PortalSession, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*domain.BillingSubscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*domain.BillingSubscription, error)
	UpdateSubscription(ctx context.Context, subscriptionID, priceID string) (*domain.BillingSubscription, error)
	GetUsageStats(ctx context.Context, userID string) (*domain.UsageStats, error)
	CheckPlanLimits(ctx context.Context, userID, action string) (*domain.PlanLimitCheck, error)
}

type Interface interface {
	ListPlans() []domain.Plan
	CreateCheckoutSession(ctx context.Context, userID string, request *domain.CheckoutRequest) (*domain.CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*domain.PortalSession, error)
	GetSubscription(ctx context.Context, userID, subscriptionID string) (*domain.BillingSubscription, error)
	CancelSubscription(ctx context.Context, userID, subscriptionID string) (*domain.BillingSubscription, error)
	UpdateSubscription(ctx context.Context, userID, subscriptionID, priceID string) (*domain.BillingSubscription, error)
	GetUsageStats(ctx context.Context, userID string) (*domain.UsageStats, error)
	CheckPlanLimits(ctx context.Context, userID, action string) (*domain.PlanLimitCheck, error)
	EnsureWithinLimit(ctx context.Context, userID, action string) error
	RecordAdGenerations(ctx context.Context, userID string, amount int) error
}

type Service struct {
	provider               Provider
	subscriptionRepository repository.SubscriptionRepository
	userRepository         repository.UserRepository
}

func NewService(
	provider Provider,
	subscriptionRepository repository.SubscriptionRepository,
	userRepository repository.UserRepository,
) Interface {
	return &Service{
		provider:               provider,
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
	}
}

func (s *Service) ListPlans() []domain.Plan {
	return domain.ListPlans()
}

func (s *Service) CreateCheckoutSession(ctx context.Context, userID string, request *domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	plan, ok := domain.GetPlan(request.PlanID)
	if !ok {
		return nil, NewBillingError(ErrInvalidPlan, apiErrors.ErrInvalidPlan, "")
	}

	session, err := s.provider.CreateCheckoutSession(ctx, plan.PriceID, userID, request.SuccessURL, request.CancelURL)
	if err != nil {
		return nil, providerError(err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"plan":       plan.ID,
		"session_id": session.SessionID,
	}).Info("billing: sessão de checkout criada")

	return session, nil
}

func (s *Service) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*domain.PortalSession, error) {
	session, err := s.provider.CreatePortalSession(ctx, customerID, returnURL)
	if err != nil {
		return nil, providerError(err)
	}

	return session, nil
}

// GetSubscription é chamado no retorno do checkout e atualiza o espelho local.
// Só espelha assinaturas do próprio usuário.
func (s *Service) GetSubscription(ctx context.Context, userID, subscriptionID string) (*domain.BillingSubscription, error) {
	current, err := s.localSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}

	subscription, err := s.provider.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, providerError(err)
	}

	if !ownsSubscription(userID, current, subscriptionID, subscription) {
		logrus.WithFields(logrus.Fields{
			"user_id":         userID,
			"subscription_id": subscriptionID,
		}).Warn("billing: assinatura não pertence ao usuário")
		return nil, NewBillingError(ErrSubscriptionNotFound, apiErrors.ErrSubscriptionNotFound, subscriptionID)
	}

	s.mirror(ctx, userID, current, subscription)

	return subscription, nil
}

func (s *Service) CancelSubscription(ctx context.Context, userID, subscriptionID string) (*domain.BillingSubscription, error) {
	current, err := s.linkedSubscription(ctx, userID, subscriptionID)
	if err != nil {
		return nil, err
	}

	subscription, err := s.provider.CancelSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, providerError(err)
	}

	s.mirror(ctx, userID, current, subscription)

	return subscription, nil
}

func (s *Service) UpdateSubscription(ctx context.Context, userID, subscriptionID, priceID string) (*domain.BillingSubscription, error) {
	if _, ok := domain.GetPlanByPriceID(priceID); !ok {
		return nil, NewBillingError(ErrInvalidPlan, apiErrors.ErrInvalidPlan, priceID)
	}

	current, err := s.linkedSubscription(ctx, userID, subscriptionID)
	if err != nil {
		return nil, err
	}

	subscription, err := s.provider.UpdateSubscription(ctx, subscriptionID, priceID)
	if err != nil {
		return nil, providerError(err)
	}

	s.mirror(ctx, userID, current, subscription)

	return subscription, nil
}

func (s *Service) localSubscription(ctx context.Context, userID string) (*domain.Subscription, error) {
	current, err := s.subscriptionRepository.GetSubscriptionByUser(ctx, userID)
	if err != nil {
		return nil, NewBillingError(err, apiErrors.ErrDatabaseOperation, "falha ao buscar assinatura local")
	}
	return current, nil
}

// linkedSubscription exige que subscriptionID seja a assinatura já espelhada do usuário
func (s *Service) linkedSubscription(ctx context.Context, userID, subscriptionID string) (*domain.Subscription, error) {
	current, err := s.localSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}

	if current == nil || current.ExternalSubscriptionID == nil || *current.ExternalSubscriptionID != subscriptionID {
		logrus.WithFields(logrus.Fields{
			"user_id":         userID,
			"subscription_id": subscriptionID,
		}).Warn("billing: tentativa de alterar assinatura de outro usuário")
		return nil, NewBillingError(ErrSubscriptionNotFound, apiErrors.ErrSubscriptionNotFound, subscriptionID)
	}

	return current, nil
}

// ownsSubscription aceita a assinatura já vinculada, a criada pelo checkout do
// usuário (metadata) ou uma do mesmo customer do espelho local
func ownsSubscription(userID string, current *domain.Subscription, subscriptionID string, subscription *domain.BillingSubscription) bool {
	if current != nil && current.ExternalSubscriptionID != nil && *current.ExternalSubscriptionID == subscriptionID {
		return true
	}

	if subscription.Metadata[domain.MetadataUserID] == userID {
		return true
	}

	return current != nil &&
		current.CustomerID != nil && *current.CustomerID != "" &&
		subscription.Customer != nil && subscription.Customer.ID == *current.CustomerID
}

func (s *Service) GetUsageStats(ctx context.Context, userID string) (*domain.UsageStats, error) {
	usage, err := s.provider.GetUsageStats(ctx, userID)
	if err != nil {
		return nil, providerError(err)
	}

	return usage, nil
}

func (s *Service) CheckPlanLimits(ctx context.Context, userID, action string) (*domain.PlanLimitCheck, error) {
	check, err := s.provider.CheckPlanLimits(ctx, userID, action)
	if err != nil {
		return nil, providerError(err)
	}

	return check, nil
}

// EnsureWithinLimit falha com ErrPlanLimitReached quando a ação não é permitida pelo plano
func (s *Service) EnsureWithinLimit(ctx context.Context, userID, action string) error {
	check, err := s.CheckPlanLimits(ctx, userID, action)
	if err != nil {
		return err
	}

	if !check.Allowed {
		return NewBillingError(ErrPlanLimitReached, apiErrors.ErrPlanLimitReached, action)
	}

	return nil
}

func (s *Service) RecordAdGenerations(ctx context.Context, userID string, amount int) error {
	if amount <= 0 {
		return nil
	}

	if err := s.subscriptionRepository.IncrementAdGenerations(ctx, userID, amount); err != nil {
		return NewBillingError(err, apiErrors.ErrDatabaseOperation, "falha ao registrar uso de gerações")
	}

	return nil
}

// mirror grava a assinatura do provedor na tabela subscriptions. Campos que o
// provedor não devolve mantêm o valor local. Falhas são apenas logadas.
func (s *Service) mirror(ctx context.Context, userID string, current *domain.Subscription, subscription *domain.BillingSubscription) {
	logger := logrus.WithFields(logrus.Fields{
		"user_id":         userID,
		"subscription_id": subscription.ID,
		"status":          subscription.Status,
	})

	mirrored := &domain.Subscription{
		UserID:                 userID,
		Status:                 subscription.Status,
		ExternalSubscriptionID: &subscription.ID,
		CurrentPeriodStart:     unixTime(subscription.CurrentPeriodStart),
		CurrentPeriodEnd:       unixTime(subscription.CurrentPeriodEnd),
	}

	if current != nil {
		mirrored.SubscriptionID = current.SubscriptionID
		mirrored.PlanID = current.PlanID
		mirrored.CustomerID = current.CustomerID
		if mirrored.CurrentPeriodStart == nil {
			mirrored.CurrentPeriodStart = current.CurrentPeriodStart
		}
		if mirrored.CurrentPeriodEnd == nil {
			mirrored.CurrentPeriodEnd = current.CurrentPeriodEnd
		}
	}

	if plan, ok := resolvePlan(subscription.Plan); ok {
		mirrored.PlanID = plan.ID
	}

	if mirrored.PlanID == "" {
		mirrored.PlanID = domain.SubscriptionPlans["STARTER"].ID
	}

	if subscription.Customer != nil && subscription.Customer.ID != "" {
		mirrored.CustomerID = &subscription.Customer.ID
	}

	if _, err := s.subscriptionRepository.SaveSubscription(ctx, mirrored); err != nil {
		logger.WithError(err).Warn("billing: falha ao salvar assinatura local")
		return
	}

	if subscription.Status != domain.SubscriptionStatusActive {
		return
	}

	if err := s.userRepository.UpdateSubscriptionTier(ctx, userID, mirrored.PlanID); err != nil {
		logger.WithError(err).Warn("billing: falha ao atualizar plano do usuário")
	}
}

// resolvePlan aceita tanto o id do plano quanto o price id
func resolvePlan(plan *domain.BillingPlan) (domain.Plan, bool) {
	if plan == nil || plan.ID == "" {
		return domain.Plan{}, false
	}

	if found, ok := domain.GetPlan(plan.ID); ok {
		return found, true
	}

	return domain.GetPlanByPriceID(plan.ID)
}

func unixTime(seconds int64) *time.Time {
	if seconds <= 0 {
		return nil
	}

	t := time.Unix(seconds, 0).UTC()
	return &t
}

func providerError(err error) error {
	return NewBillingError(ErrBillingProvider, apiErrors.ErrBillingProvider, err.Error())
}
