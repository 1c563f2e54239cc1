package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"google.golang.org/genai"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	integrator, err := New(context.Background(), config.Gemini{})
	assert.Nil(t, integrator)
	assert.Error(t, err)
}

func TestGeminiIntegrator_GenerateAdCopy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent"))

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "specializing in instagram ads")
		assert.Contains(t, string(body), "Under 200 characters")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"1. Legenda um ✨\n2. Legenda dois\n\n3. Legenda três"}]},"finishReason":"STOP"}]}`))
	}))
	defer server.Close()

	integrator, err := newWithHTTPOptions(context.Background(),
		config.Gemini{APIKey: "key", Model: "gemini-test"},
		genai.HTTPOptions{BaseURL: server.URL + "/"},
	)
	require.NoError(t, err)

	copies, err := integrator.GenerateAdCopy(context.Background(), "Bolsa de couro", domain.PlatformInstagram, "modern")
	require.NoError(t, err)
	require.Len(t, copies, 3)
	assert.Equal(t, "Legenda um ✨", copies[0].Text)
	assert.Equal(t, "Legenda três", copies[2].Text)
}

func TestGeminiIntegrator_GenerateAdCopy_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	integrator, err := newWithHTTPOptions(context.Background(),
		config.Gemini{APIKey: "key", Model: "gemini-test"},
		genai.HTTPOptions{BaseURL: server.URL + "/"},
	)
	require.NoError(t, err)

	copies, err := integrator.GenerateAdCopy(context.Background(), "Bolsa", domain.PlatformTikTok, "bold")
	assert.Nil(t, copies)
	assert.Error(t, err)
}
