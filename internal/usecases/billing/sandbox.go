package billing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/adcreative-api/internal/domain"
)

const sandboxPeriod = 15 * 24 * time.Hour

var sandboxLimits = map[string]domain.PlanLimitCheck{
	domain.LimitActionAdGeneration:  {Allowed: true, Remaining: 45, Limit: 200},
	domain.LimitActionSocialAccount: {Allowed: true, Remaining: 3, Limit: 5},
}

// SandboxProvider simula o backend de pagamentos
type SandboxProvider struct {
	now func() time.Time

	mu     sync.Mutex
	owners map[string]string // subscription id -> user id
}

func NewSandboxProvider() *SandboxProvider {
	return &SandboxProvider{now: time.Now, owners: make(map[string]string)}
}

func (p *SandboxProvider) CreateCheckoutSession(_ context.Context, _, userID, _, _ string) (*domain.CheckoutSession, error) {
	millis := p.now().UnixMilli()
	subscriptionID := fmt.Sprintf("sub_mock_%d", millis)

	p.mu.Lock()
	p.owners[subscriptionID] = userID
	p.mu.Unlock()

	return &domain.CheckoutSession{
		SessionID:      fmt.Sprintf("cs_mock_%d", millis),
		SubscriptionID: subscriptionID,
	}, nil
}

func (p *SandboxProvider) CreatePortalSession(_ context.Context, _, _ string) (*domain.PortalSession, error) {
	return &domain.PortalSession{
		URL: fmt.Sprintf("https://billing.stripe.com/p/session/mock_%d", p.now().UnixMilli()),
	}, nil
}

func (p *SandboxProvider) GetSubscription(_ context.Context, subscriptionID string) (*domain.BillingSubscription, error) {
	now := p.now()
	subscription := &domain.BillingSubscription{
		ID:                 subscriptionID,
		Status:             domain.SubscriptionStatusActive,
		CurrentPeriodStart: now.Add(-sandboxPeriod).Unix(),
		CurrentPeriodEnd:   now.Add(sandboxPeriod).Unix(),
		Plan: &domain.BillingPlan{
			ID:       "pro",
			Nickname: "Pro Plan",
			Amount:   4900,
			Currency: "usd",
			Interval: "month",
		},
	}

	// assinaturas que não saíram de um checkout do sandbox não têm dono
	p.mu.Lock()
	owner, ok := p.owners[subscriptionID]
	p.mu.Unlock()
	if ok {
		subscription.Metadata = map[string]string{domain.MetadataUserID: owner}
		subscription.Customer = &domain.BillingCustomer{
			ID:    "cus_mock_" + owner,
			Email: "user@example.com",
		}
	}

	return subscription, nil
}

func (p *SandboxProvider) CancelSubscription(_ context.Context, subscriptionID string) (*domain.BillingSubscription, error) {
	now := p.now()
	return &domain.BillingSubscription{
		ID:               subscriptionID,
		Status:           domain.SubscriptionStatusCanceled,
		CanceledAt:       now.Unix(),
		CurrentPeriodEnd: now.Add(sandboxPeriod).Unix(),
	}, nil
}

func (p *SandboxProvider) UpdateSubscription(_ context.Context, subscriptionID, priceID string) (*domain.BillingSubscription, error) {
	name, amount := "Agency", int64(9900)
	switch {
	case strings.Contains(priceID, "starter"):
		name, amount = "Starter", 1900
	case strings.Contains(priceID, "pro"):
		name, amount = "Pro", 4900
	}

	return &domain.BillingSubscription{
		ID:     subscriptionID,
		Status: domain.SubscriptionStatusActive,
		Plan: &domain.BillingPlan{
			ID:       priceID,
			Nickname: name + " Plan",
			Amount:   amount,
			Currency: "usd",
			Interval: "month",
		},
	}, nil
}

func (p *SandboxProvider) GetUsageStats(_ context.Context, _ string) (*domain.UsageStats, error) {
	resetDate := p.now().Add(sandboxPeriod).UTC()
	return &domain.UsageStats{
		AdGenerations: domain.UsageCounter{
			Used:      50 + rand.IntN(150),
			Limit:     200,
			ResetDate: &resetDate,
		},
		SocialAccounts: domain.UsageCounter{
			Used:  1 + rand.IntN(3),
			Limit: 5,
		},
	}, nil
}

func (p *SandboxProvider) CheckPlanLimits(_ context.Context, _, action string) (*domain.PlanLimitCheck, error) {
	if check, ok := sandboxLimits[action]; ok {
		return &check, nil
	}
	return &domain.PlanLimitCheck{Allowed: true, Remaining: 100, Limit: 200}, nil
}
