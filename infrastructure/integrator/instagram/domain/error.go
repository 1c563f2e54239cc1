package igdomain

import (
	"errors"
	"fmt"
)

var ErrTokenExpired = errors.New("token do instagram expirado ou inválido")

// ErrorResponse representa a estrutura de erro da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 é token expirado; 460, 463 e 467 são subcódigos de sessão inválida
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

func (e *ErrorResponse) Err(status int) error {
	if e.IsTokenExpired() {
		return fmt.Errorf("%w: %s", ErrTokenExpired, e.Error.Message)
	}

	if e.Error.Message == "" {
		return fmt.Errorf("erro na graph api. status: %d", status)
	}

	return fmt.Errorf("erro na graph api (%d): %s", e.Error.Code, e.Error.Message)
}
