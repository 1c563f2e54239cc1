package tiktokdomain

import (
	"errors"
	"fmt"
)

var ErrTokenExpired = errors.New("token do tiktok expirado ou inválido")

// códigos de token inválido ou expirado da API de negócios
var tokenErrorCodes = map[int]bool{
	40100: true,
	40102: true,
	40104: true,
	40105: true,
}

// Envelope é o formato comum das respostas da API
type Envelope struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *Envelope) IsTokenExpired() bool {
	return tokenErrorCodes[e.Code]
}

func (e *Envelope) Err() error {
	if e.Code == 0 {
		return nil
	}

	if e.IsTokenExpired() {
		return fmt.Errorf("%w: %s", ErrTokenExpired, e.Message)
	}

	return fmt.Errorf("erro na api do tiktok (%d): %s", e.Code, e.Message)
}

// OAuthError é o formato de erro dos endpoints de token
type OAuthError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
