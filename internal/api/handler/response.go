package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/account"
	"github.com/vfg2006/adcreative-api/internal/usecases/authenticating"
	"github.com/vfg2006/adcreative-api/internal/usecases/billing"
	"github.com/vfg2006/adcreative-api/internal/usecases/generating"
	"github.com/vfg2006/adcreative-api/internal/usecases/insighting"
	"github.com/vfg2006/adcreative-api/internal/usecases/project"
	"github.com/vfg2006/adcreative-api/internal/usecases/publishing"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
	"github.com/vfg2006/adcreative-api/pkg/middleware"
	"github.com/vfg2006/adcreative-api/pkg/validator"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeAndValidate lê o corpo json e aplica as tags validate.
// Retorna false quando a resposta de erro já foi escrita.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil {
		logrus.WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	if fieldErrors := validator.Validate(dst); fieldErrors != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dados inválidos", fieldErrors)
		return false
	}

	return true
}

func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// errorCode extrai o código de API dos erros dos usecases
func errorCode(err error) string {
	var (
		authErr       *authenticating.AuthError
		accountErr    *account.AccountError
		projectErr    *project.ProjectError
		generationErr *generating.GenerationError
		publishingErr *publishing.PublishingError
		billingErr    *billing.BillingError
		insightErr    *insighting.InsightError
	)

	switch {
	case errors.As(err, &authErr):
		return authErr.Code
	case errors.As(err, &accountErr):
		return accountErr.Code
	case errors.As(err, &projectErr):
		return projectErr.Code
	case errors.As(err, &billingErr):
		return billingErr.Code
	case errors.As(err, &generationErr):
		return generationErr.Code
	case errors.As(err, &publishingErr):
		return publishingErr.Code
	case errors.As(err, &insightErr):
		return insightErr.Code
	default:
		return apiErrors.ErrInternalServer
	}
}

func writeUsecaseError(w http.ResponseWriter, err error) {
	code := errorCode(err)

	logger := logrus.WithFields(logrus.Fields{
		"code":  code,
		"error": err.Error(),
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao processar requisição")
	} else {
		logger.Warn("Requisição recusada")
	}

	apiErrors.WriteError(w, code, err.Error(), nil)
}
