package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrUserLocked            = "AUTH_004" // Usuário bloqueado temporariamente
	ErrPasswordExpired       = "AUTH_005" // Senha expirada
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe
	ErrNotAuthenticated      = "AUTH_010" // Sessão inexistente ou encerrada

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de projetos e variações
	ErrProjectNotFound     = "PROJ_001" // Projeto não encontrado
	ErrAdVariationNotFound = "PROJ_002" // Variação não encontrada
	ErrNoAdVariations      = "PROJ_003" // Projeto sem variações para análise

	// Erros de redes sociais
	ErrUnsupportedPlatform   = "SOC_001" // Plataforma não suportada
	ErrSocialAccountNotFound = "SOC_002" // Conta social não encontrada
	ErrSocialTokenExpired    = "SOC_003" // Token da plataforma expirado
	ErrSocialAPI             = "SOC_004" // Falha na API da plataforma

	// Erros de cobrança
	ErrInvalidPlan          = "BILL_001" // Plano inválido
	ErrPlanLimitReached     = "BILL_002" // Limite do plano atingido
	ErrSubscriptionNotFound = "BILL_003" // Assinatura não encontrada
	ErrBillingProvider      = "BILL_004" // Falha no provedor de pagamento

	// Erros de geração por IA
	ErrGenerationFailed = "AI_001" // Falha na geração de conteúdo

	// Erros de limite de requisições
	ErrRateLimited = "RATE_001" // Muitas requisições

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrUserLocked:            http.StatusForbidden,
	ErrPasswordExpired:       http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrNotAuthenticated:      http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrProjectNotFound:       http.StatusNotFound,
	ErrAdVariationNotFound:   http.StatusNotFound,
	ErrNoAdVariations:        http.StatusNotFound,
	ErrUnsupportedPlatform:   http.StatusBadRequest,
	ErrSocialAccountNotFound: http.StatusNotFound,
	ErrSocialTokenExpired:    http.StatusFailedDependency,
	ErrSocialAPI:             http.StatusBadGateway,
	ErrInvalidPlan:           http.StatusBadRequest,
	ErrPlanLimitReached:      http.StatusPaymentRequired,
	ErrSubscriptionNotFound:  http.StatusNotFound,
	ErrBillingProvider:       http.StatusBadGateway,
	ErrGenerationFailed:      http.StatusBadGateway,
	ErrRateLimited:           http.StatusTooManyRequests,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
