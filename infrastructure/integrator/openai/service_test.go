package openai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestIntegrator(t *testing.T, handler http.Handler) *OpenAIIntegrator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(config.OpenAI{APIKey: "sk-test", BaseURL: server.URL + "/v1"})
}

func decode(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload
}

func chatResponse(content string) string {
	out, _ := json.Marshal(map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "gpt-4",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(out)
}

func TestOpenAIIntegrator_GenerateAdCopy(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		payload := decode(t, r)
		assert.Equal(t, "gpt-4", payload["model"])
		assert.EqualValues(t, 500, payload["max_tokens"])
		assert.InDelta(t, 0.8, payload["temperature"], 0.0001)

		messages := payload["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Contains(t, messages[0].(map[string]any)["content"], "specializing in tiktok ads")
		assert.Contains(t, messages[1].(map[string]any)["content"], "Under 150 characters")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatResponse("1. Primeira 🔥\n\n2. Segunda\n3. Terceira\n4. Quarta")))
	})

	integrator := newTestIntegrator(t, mux)

	copies, err := integrator.GenerateAdCopy(context.Background(), "Tênis de corrida", domain.PlatformTikTok, "bold")
	require.NoError(t, err)
	require.Len(t, copies, 3)
	assert.Equal(t, domain.AdCopy{ID: 1, Text: "Primeira 🔥", Platform: domain.PlatformTikTok, Style: "bold"}, copies[0])
	assert.Equal(t, "Terceira", copies[2].Text)
}

func TestOpenAIIntegrator_GenerateAdCopy_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`))
	})

	integrator := newTestIntegrator(t, mux)

	copies, err := integrator.GenerateAdCopy(context.Background(), "Tênis", domain.PlatformInstagram, "modern")
	assert.Nil(t, copies)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rate limit reached")
}

func TestOpenAIIntegrator_GenerateImage(t *testing.T) {
	tests := []struct {
		platform string
		wantSize string
	}{
		{platform: domain.PlatformInstagram, wantSize: "1024x1024"},
		{platform: domain.PlatformTikTok, wantSize: "1024x1792"},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/v1/images/generations", func(w http.ResponseWriter, r *http.Request) {
				payload := decode(t, r)
				assert.Equal(t, "dall-e-3", payload["model"])
				assert.EqualValues(t, 1, payload["n"])
				assert.Equal(t, tt.wantSize, payload["size"])
				assert.Equal(t, "standard", payload["quality"])

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"created":1717243200,"data":[{"url":"https://images.example.com/out.png"}]}`))
			})

			integrator := newTestIntegrator(t, mux)

			image, err := integrator.GenerateImage(context.Background(), "modern", tt.platform)
			require.NoError(t, err)
			assert.Equal(t, "https://images.example.com/out.png", image.ImageURL)
			assert.Contains(t, image.Prompt, "Create a modern style product image optimized for "+tt.platform)
		})
	}
}

func TestOpenAIIntegrator_AnalyzePerformance(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		payload := decode(t, r)
		assert.EqualValues(t, 800, payload["max_tokens"])
		assert.InDelta(t, 0.3, payload["temperature"], 0.0001)

		messages := payload["messages"].([]any)
		assert.Equal(t, domain.AnalystSystemPrompt, messages[0].(map[string]any)["content"])
		assert.Contains(t, messages[1].(map[string]any)["content"], `"platform": "instagram"`)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatResponse("Insights do desempenho")))
	})

	integrator := newTestIntegrator(t, mux)

	insights, err := integrator.AnalyzePerformance(context.Background(), "[\n  {\n    \"platform\": \"instagram\"\n  }\n]")
	require.NoError(t, err)
	assert.Equal(t, "Insights do desempenho", insights)
}
