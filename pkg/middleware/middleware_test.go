package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/authenticating"
	"github.com/vfg2006/adcreative-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
	"github.com/vfg2006/adcreative-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func withClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		authHeader string
		setup      func(m *mocks.MockAuthenticator)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "rota pública não exige token",
			method:     http.MethodPost,
			path:       "/v1/auth/signin",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight passa direto",
			method:     http.MethodOptions,
			path:       "/v1/projects",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "sem header",
			method:     http.MethodGet,
			path:       "/v1/projects",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   apiErrors.ErrNotAuthenticated,
		},
		{
			name:       "header sem bearer",
			method:     http.MethodGet,
			path:       "/v1/projects",
			authHeader: "Token abc",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "sessão encerrada usa o código do erro",
			method:     http.MethodGet,
			path:       "/v1/projects",
			authHeader: "Bearer abc",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken(gomock.Any(), "abc").
					Return(nil, authenticating.NewAuthError(authenticating.ErrNotAuthenticated, apiErrors.ErrNotAuthenticated, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   apiErrors.ErrNotAuthenticated,
		},
		{
			name:       "token válido",
			method:     http.MethodGet,
			path:       "/v1/projects",
			authHeader: "Bearer abc",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken(gomock.Any(), "abc").Return(&domain.Claims{UserID: "u1"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			var gotClaims *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.authHeader == "Bearer abc" && tt.wantStatus == http.StatusOK {
				assert.Equal(t, "u1", gotClaims.UserID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "admin", claims: &domain.Claims{UserID: "u1", Role: domain.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "membro", claims: &domain.Claims{UserID: "u2", Role: domain.RoleMember}, wantStatus: http.StatusForbidden},
		{name: "sem claims", claims: nil, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(withClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/v1/projects", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimit{RequestsPerSecond: 1, Burst: 2})
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	handler := limiter.Middleware()(okHandler)

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1235"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1236"))

	// outro IP tem seu próprio bucket
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234"))

	fixed = fixed.Add(time.Second)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1237"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	var correlationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/projects", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, rec.Header().Get("X-Correlation-ID"))
}

func TestLoggingMiddleware_ReusesIncomingCorrelationID(t *testing.T) {
	var correlationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	req.Header.Set("X-Correlation-ID", "req-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", correlationID)
	assert.Equal(t, "req-123", rec.Header().Get("X-Correlation-ID"))
	assert.Equal(t, "ok", rec.Body.String())
}
