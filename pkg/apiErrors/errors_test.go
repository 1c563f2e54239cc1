package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "credenciais inválidas", code: ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "limite do plano", code: ErrPlanLimitReached, wantStatus: http.StatusPaymentRequired},
		{name: "muitas requisições", code: ErrRateLimited, wantStatus: http.StatusTooManyRequests},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}, FromError(nil, ErrInvalidRequest))
	assert.Equal(t, APIError{Code: ErrInvalidRequest, Message: "falhou"}, FromError(errors.New("falhou"), ErrInvalidRequest))
}
