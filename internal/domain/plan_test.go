package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{name: "dólar sem moeda informada", amount: 19, currency: "", want: "$19.00"},
		{name: "milhar com centavos", amount: 1234.5, currency: "USD", want: "$1,234.50"},
		{name: "milhão", amount: 1000000, currency: "usd", want: "$1,000,000.00"},
		{name: "outra moeda", amount: 49, currency: "eur", want: "EUR 49.00"},
		{name: "valor negativo", amount: -9.99, currency: "USD", want: "-$9.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.amount, tt.currency))
		})
	}
}

func TestIsFeatureAvailable(t *testing.T) {
	assert.True(t, IsFeatureAvailable("pro", "advanced analytics"))
	assert.True(t, IsFeatureAvailable("AGENCY", "White-Label"))
	assert.False(t, IsFeatureAvailable("starter", "Advanced analytics"))
	assert.True(t, IsFeatureAvailable("starter", "analytics"))
	assert.False(t, IsFeatureAvailable("enterprise", "analytics"))
}

func TestGetPlanByPriceID(t *testing.T) {
	plan, ok := GetPlanByPriceID("price_agency_monthly")
	assert.True(t, ok)
	assert.Equal(t, "agency", plan.ID)
	assert.Equal(t, UnlimitedUsage, plan.Limits.AdGenerations)

	_, ok = GetPlanByPriceID("price_unknown")
	assert.False(t, ok)
}

func TestListPlans(t *testing.T) {
	plans := ListPlans()
	if assert.Len(t, plans, 3) {
		assert.Equal(t, "starter", plans[0].ID)
		assert.Equal(t, "pro", plans[1].ID)
		assert.True(t, plans[1].Popular)
		assert.Equal(t, "agency", plans[2].ID)
	}
}

func TestPostingResultsScan(t *testing.T) {
	var results PostingResults
	err := results.Scan([]byte(`[{"platform":"instagram","account_name":"Loja","success":true,"post_id":"p1","scheduled":false}]`))
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "p1", results[0].PostID)
	}

	var metrics PerformanceMetrics
	assert.NoError(t, metrics.Scan(nil))
	assert.Equal(t, PerformanceMetrics{}, metrics)
	assert.Error(t, metrics.Scan(42))
}
