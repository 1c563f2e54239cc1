package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	AnalyticsBasic    = "basic"
	AnalyticsAdvanced = "advanced"

	// UnlimitedUsage marca limites sem teto
	UnlimitedUsage = -1
)

type PlanLimits struct {
	AdGenerations  int    `json:"adGenerations"`
	SocialAccounts int    `json:"socialAccounts"`
	Analytics      string `json:"analytics"`
}

type Plan struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Price    float64    `json:"price"`
	PriceID  string     `json:"priceId"`
	Features []string   `json:"features"`
	Limits   PlanLimits `json:"limits"`
	Popular  bool       `json:"popular,omitempty"`
}

var planOrder = []string{"STARTER", "PRO", "AGENCY"}

var SubscriptionPlans = map[string]Plan{
	"STARTER": {
		ID:      "starter",
		Name:    "Starter",
		Price:   19,
		PriceID: "price_starter_monthly",
		Features: []string{
			"50 ad generations per month",
			"2 connected social accounts",
			"Basic analytics",
			"Email support",
		},
		Limits: PlanLimits{AdGenerations: 50, SocialAccounts: 2, Analytics: AnalyticsBasic},
	},
	"PRO": {
		ID:      "pro",
		Name:    "Pro",
		Price:   49,
		PriceID: "price_pro_monthly",
		Features: []string{
			"200 ad generations per month",
			"5 connected social accounts",
			"Advanced analytics",
			"Priority support",
			"Auto-posting & scheduling",
		},
		Limits:  PlanLimits{AdGenerations: 200, SocialAccounts: 5, Analytics: AnalyticsAdvanced},
		Popular: true,
	},
	"AGENCY": {
		ID:      "agency",
		Name:    "Agency",
		Price:   99,
		PriceID: "price_agency_monthly",
		Features: []string{
			"Unlimited ad generations",
			"10 connected social accounts",
			"Advanced analytics",
			"Priority support",
			"Auto-posting & scheduling",
			"Team collaboration",
			"White-label options",
		},
		Limits: PlanLimits{AdGenerations: UnlimitedUsage, SocialAccounts: 10, Analytics: AnalyticsAdvanced},
	},
}

// ListPlans retorna os planos em ordem de preço
func ListPlans() []Plan {
	plans := make([]Plan, 0, len(planOrder))
	for _, key := range planOrder {
		plans = append(plans, SubscriptionPlans[key])
	}
	return plans
}

// GetPlan busca o plano pelo id, sem diferenciar maiúsculas
func GetPlan(planID string) (Plan, bool) {
	plan, ok := SubscriptionPlans[strings.ToUpper(planID)]
	return plan, ok
}

func GetPlanByPriceID(priceID string) (Plan, bool) {
	for _, key := range planOrder {
		if SubscriptionPlans[key].PriceID == priceID {
			return SubscriptionPlans[key], true
		}
	}
	return Plan{}, false
}

// IsFeatureAvailable procura a feature como substring nas features do plano
func IsFeatureAvailable(tier, feature string) bool {
	plan, ok := GetPlan(tier)
	if !ok {
		return false
	}

	feature = strings.ToLower(feature)
	for _, f := range plan.Features {
		if strings.Contains(strings.ToLower(f), feature) {
			return true
		}
	}

	return false
}

// FormatPrice formata no padrão en-US: $1,234.50
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		currency = "USD"
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	fraction := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}

	number := fmt.Sprintf("%s.%02d", grouped.String(), fraction)
	if strings.EqualFold(currency, "USD") {
		return sign + "$" + number
	}

	return fmt.Sprintf("%s%s %s", sign, strings.ToUpper(currency), number)
}
