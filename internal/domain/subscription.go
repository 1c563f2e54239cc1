package domain

import "time"

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"

	LimitActionAdGeneration  = "adGeneration"
	LimitActionSocialAccount = "socialAccount"
)

// Subscription é o espelho local da assinatura (tabela subscriptions)
type Subscription struct {
	SubscriptionID         string     `json:"subscription_id"`
	UserID                 string     `json:"user_id"`
	PlanID                 string     `json:"plan_id"`
	Status                 string     `json:"status"`
	ExternalSubscriptionID *string    `json:"external_subscription_id"`
	CustomerID             *string    `json:"customer_id"`
	AdGenerationsUsed      int        `json:"ad_generations_used"`
	CurrentPeriodStart     *time.Time `json:"current_period_start"`
	CurrentPeriodEnd       *time.Time `json:"current_period_end"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

type CheckoutRequest struct {
	PlanID     string `json:"plan_id" validate:"required"`
	SuccessURL string `json:"success_url" validate:"required,url"`
	CancelURL  string `json:"cancel_url" validate:"required,url"`
}

type PortalRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	ReturnURL  string `json:"return_url" validate:"required,url"`
}

type UpdateSubscriptionRequest struct {
	PriceID string `json:"price_id" validate:"required"`
}

type PlanLimitRequest struct {
	Action string `json:"action" validate:"required"`
}

type CheckoutSession struct {
	SessionID      string `json:"session_id"`
	URL            string `json:"url,omitempty"`
	SubscriptionID string `json:"subscription_id,omitempty"`
}

type PortalSession struct {
	URL string `json:"url"`
}

type BillingPlan struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Interval string `json:"interval"`
}

type BillingCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// BillingSubscription é a assinatura como o provedor de pagamento a retorna
type BillingSubscription struct {
	ID                 string            `json:"id"`
	Status             string            `json:"status"`
	CurrentPeriodStart int64             `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   int64             `json:"current_period_end,omitempty"`
	CanceledAt         int64             `json:"canceled_at,omitempty"`
	Plan               *BillingPlan      `json:"plan,omitempty"`
	Customer           *BillingCustomer  `json:"customer,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

// MetadataUserID é o usuário gravado no checkout que originou a assinatura
const MetadataUserID = "user_id"

type UsageCounter struct {
	Used      int        `json:"used"`
	Limit     int        `json:"limit"`
	ResetDate *time.Time `json:"resetDate,omitempty"`
}

type UsageStats struct {
	AdGenerations  UsageCounter `json:"adGenerations"`
	SocialAccounts UsageCounter `json:"socialAccounts"`
}

type PlanLimitCheck struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
	Limit     int  `json:"limit"`
}
