package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas sociais
var (
	// Erros de validação
	ErrUnsupportedPlatform = errors.New("Unsupported platform")
	ErrAccountNotFound     = errors.New("Social account not found")

	// Erros de serviços externos
	ErrExchangeCode     = errors.New("error exchanging OAuth code")
	ErrBusinessAccounts = errors.New("error fetching business accounts")

	// Erros de banco de dados
	ErrSaveAccount   = errors.New("error saving social account")
	ErrFetchAccounts = errors.New("error fetching social accounts from database")
	ErrDeleteAccount = errors.New("error deleting social account")
)

// AccountError é um erro com contexto adicional para contas sociais
type AccountError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithID cria um novo AccountError com ID da conta
func NewAccountErrorWithID(err error, code string, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
