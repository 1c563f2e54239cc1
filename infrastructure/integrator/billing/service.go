package billing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/billing/billingclient"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
)

const provider = "billing"

type BillingIntegrator struct {
	Client billingclient.Client
}

func New(client billingclient.Client) *BillingIntegrator {
	return &BillingIntegrator{
		Client: client,
	}
}

func (s *BillingIntegrator) CreateCheckoutSession(ctx context.Context, priceID, userID, successURL, cancelURL string) (*domain.CheckoutSession, error) {
	start := time.Now()
	session, err := s.Client.CreateCheckoutSession(ctx, billingclient.CheckoutSessionRequest{
		PriceID:    priceID,
		UserID:     userID,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	})
	metrics.RecordExternalRequest(provider, "create_checkout_session", err, time.Since(start))
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("billing: falha ao criar sessão de checkout")
		return nil, err
	}

	return &domain.CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (s *BillingIntegrator) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*domain.PortalSession, error) {
	start := time.Now()
	session, err := s.Client.CreatePortalSession(ctx, customerID, returnURL)
	metrics.RecordExternalRequest(provider, "create_portal_session", err, time.Since(start))
	if err != nil {
		logrus.WithError(err).Error("billing: falha ao criar sessão do portal")
		return nil, err
	}

	return session, nil
}

func (s *BillingIntegrator) GetSubscription(ctx context.Context, subscriptionID string) (*domain.BillingSubscription, error) {
	start := time.Now()
	subscription, err := s.Client.GetSubscription(ctx, subscriptionID)
	metrics.RecordExternalRequest(provider, "get_subscription", err, time.Since(start))

	return subscription, err
}

func (s *BillingIntegrator) CancelSubscription(ctx context.Context, subscriptionID string) (*domain.BillingSubscription, error) {
	start := time.Now()
	subscription, err := s.Client.CancelSubscription(ctx, subscriptionID)
	metrics.RecordExternalRequest(provider, "cancel_subscription", err, time.Since(start))
	if err != nil {
		logrus.WithError(err).WithField("subscription_id", subscriptionID).Error("billing: falha ao cancelar assinatura")
	}

	return subscription, err
}

func (s *BillingIntegrator) UpdateSubscription(ctx context.Context, subscriptionID, priceID string) (*domain.BillingSubscription, error) {
	start := time.Now()
	subscription, err := s.Client.UpdateSubscription(ctx, subscriptionID, priceID)
	metrics.RecordExternalRequest(provider, "update_subscription", err, time.Since(start))
	if err != nil {
		logrus.WithError(err).WithField("subscription_id", subscriptionID).Error("billing: falha ao atualizar assinatura")
	}

	return subscription, err
}

func (s *BillingIntegrator) GetUsageStats(ctx context.Context, userID string) (*domain.UsageStats, error) {
	start := time.Now()
	usage, err := s.Client.GetUsageStats(ctx, userID)
	metrics.RecordExternalRequest(provider, "get_usage_stats", err, time.Since(start))

	return usage, err
}

func (s *BillingIntegrator) CheckPlanLimits(ctx context.Context, userID, action string) (*domain.PlanLimitCheck, error) {
	start := time.Now()
	check, err := s.Client.CheckPlanLimits(ctx, userID, action)
	metrics.RecordExternalRequest(provider, "check_plan_limits", err, time.Since(start))

	return check, err
}
