package generating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
)

var (
	ErrNoPlatforms          = errors.New("nenhuma plataforma informada")
	ErrGenerateAdCopy       = errors.New("Failed to generate ad copy")
	ErrGenerateImage        = errors.New("Failed to generate image variation")
	ErrEnhanceImage         = errors.New("Failed to enhance image")
	ErrRemoveBackground     = errors.New("Failed to remove background")
	ErrAnalyzePerformance   = errors.New("Failed to analyze performance")
	ErrGenerateAdVariations = errors.New("Failed to generate ad variations")
	ErrSerializePerformance = errors.New("erro ao serializar métricas das variações")
)

type GenerationError struct {
	Err     error
	Code    string
	Details string
}

func (e *GenerationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func NewGenerationError(baseErr error, details string) *GenerationError {
	return &GenerationError{
		Err:     baseErr,
		Code:    apiErrors.ErrGenerationFailed,
		Details: details,
	}
}
