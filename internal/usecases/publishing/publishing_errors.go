package publishing

import (
	"errors"
	"fmt"

	igdomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/domain"
	tiktokdomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
)

var (
	ErrUnsupportedPlatform = errors.New("Unsupported platform")
	ErrMissingRefreshToken = errors.New("conta sem refresh token")
)

type PublishingError struct {
	Err     error
	Code    string
	Details string
}

func (e *PublishingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PublishingError) Unwrap() error {
	return e.Err
}

func NewPublishingError(baseErr error, code string, details string) *PublishingError {
	return &PublishingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func unsupportedPlatform(platform string) error {
	return NewPublishingError(ErrUnsupportedPlatform, apiErrors.ErrUnsupportedPlatform, platform)
}

// IsTokenExpired indica se a plataforma recusou o token da conta
func IsTokenExpired(err error) bool {
	return errors.Is(err, igdomain.ErrTokenExpired) || errors.Is(err, tiktokdomain.ErrTokenExpired)
}
