package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

func newCompletionServer(t *testing.T, status int, body string) (*httptest.Server, *map[string]interface{}) {
	t.Helper()
	received := map[string]interface{}{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestLLMClientComplete(t *testing.T) {
	srv, received := newCompletionServer(t, http.StatusOK, `{
		"model": "llama-3.3-70b-versatile",
		"choices": [{"message": {"role": "assistant", "content": "  Eat more gotukola.  "}}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
	}`)

	client := service.NewLLMClient(service.LLMConfig{Provider: "groq", APIKey: "test-key", APIURL: srv.URL, Model: "llama-3.3-70b-versatile"})
	completion, err := client.Complete(context.Background(), service.CompletionRequest{
		Messages:    []service.Message{{Role: service.RoleUser, Content: "hi"}},
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	require.NoError(t, err)

	assert.Equal(t, "Eat more gotukola.", completion.Content)
	assert.Equal(t, "llama-3.3-70b-versatile", completion.Model)
	assert.Equal(t, 17, completion.Usage.TotalTokens)

	assert.Equal(t, "llama-3.3-70b-versatile", (*received)["model"])
	assert.Equal(t, 0.7, (*received)["temperature"])
	assert.Equal(t, float64(1024), (*received)["max_tokens"])
}

func TestLLMClientUpstreamError(t *testing.T) {
	srv, _ := newCompletionServer(t, http.StatusTooManyRequests, `{"error": "rate limited"}`)

	client := service.NewLLMClient(service.LLMConfig{Provider: "openai", APIKey: "test-key", APIURL: srv.URL})
	_, err := client.Complete(context.Background(), service.CompletionRequest{})

	var upstream *service.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Equal(t, "openai", upstream.Provider)
}

func TestLLMClientEmptyCompletion(t *testing.T) {
	srv, _ := newCompletionServer(t, http.StatusOK, `{"choices": []}`)

	client := service.NewLLMClient(service.LLMConfig{Provider: "openai", APIKey: "test-key", APIURL: srv.URL})
	_, err := client.Complete(context.Background(), service.CompletionRequest{})
	assert.ErrorIs(t, err, service.ErrEmptyCompletion)
}

func TestNewChatCompletionProviderWithoutKey(t *testing.T) {
	provider := service.NewChatCompletionProvider(service.LLMConfig{Provider: "groq"})
	assert.False(t, service.IsAvailable(provider))
	assert.Equal(t, "groq", provider.Name())

	_, err := provider.Complete(context.Background(), service.CompletionRequest{})
	assert.ErrorIs(t, err, service.ErrLLMUnavailable)

	assert.True(t, service.IsAvailable(service.NewChatCompletionProvider(service.LLMConfig{Provider: "groq", APIKey: "k"})))
}
