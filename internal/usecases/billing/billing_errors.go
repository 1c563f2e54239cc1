package billing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlan          = errors.New("Invalid plan selected")
	ErrPlanLimitReached     = errors.New("Plan limit reached")
	ErrSubscriptionNotFound = errors.New("Subscription not found")
	ErrBillingProvider      = errors.New("Billing provider error")
	ErrMirrorSubscription   = errors.New("erro ao espelhar assinatura")
)

type BillingError struct {
	Err     error
	Code    string
	Details string
}

func (e *BillingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BillingError) Unwrap() error {
	return e.Err
}

func NewBillingError(baseErr error, code string, details string) *BillingError {
	return &BillingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
