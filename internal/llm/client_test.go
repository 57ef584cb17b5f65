package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatReply(content string) string {
	return `{"choices":[{"message":{"content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestResearchClient_Complete(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatReply("research answer")))
	}))
	defer server.Close()

	client := NewResearchClient(server.URL, "pplx-test-key", "sonar-pro")
	content, err := client.Complete(context.Background(), "tell me about the fort", 4000, 0)
	require.NoError(t, err)

	assert.Equal(t, "research answer", content)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer pplx-test-key", gotAuth)
	assert.Equal(t, "sonar-pro", gotBody.Model)
	assert.Equal(t, float64(0), gotBody.Temperature)
	assert.Equal(t, 4000, gotBody.MaxTokens)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "tell me about the fort", gotBody.Messages[0].Content)
}

func TestFormatterClient_Complete(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		gotVersion = r.URL.Query().Get("api-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatReply(`{"formatted":true}`)))
	}))
	defer server.Close()

	client := NewFormatterClient(server.URL, "azure-key", "gpt-4o", "2024-02-15-preview")
	content, err := client.Complete(context.Background(), "format this", 2000, 0)
	require.NoError(t, err)

	assert.Equal(t, `{"formatted":true}`, content)
	assert.Equal(t, "/openai/deployments/gpt-4o/chat/completions", gotPath)
	assert.Equal(t, "azure-key", gotKey)
	assert.Equal(t, "2024-02-15-preview", gotVersion)
	// Azure addresses the model via the URL path, not the body.
	assert.Empty(t, gotBody.Model)
	assert.Equal(t, 2000, gotBody.MaxTokens)
}

func TestFormatterClient_TemperaturePassesThrough(t *testing.T) {
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(chatReply("ok")))
	}))
	defer server.Close()

	client := NewFormatterClient(server.URL, "key", "gpt-4o", "2024-02-15-preview")
	_, err := client.Complete(context.Background(), "resolve this", 500, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 0.3, gotBody.Temperature)
}

func TestResearchClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	client := NewResearchClient(server.URL, "pplx-key", "sonar-pro")
	_, err := client.Complete(context.Background(), "prompt", 100, 0)
	require.Error(t, err)

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "rate limited")
}

func TestFormatterClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewFormatterClient(server.URL, "key", "gpt-4o", "2024-02-15-preview")
	_, err := client.Complete(context.Background(), "prompt", 100, 0)
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestResearchClient_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewResearchClient(server.URL, "pplx-key", "sonar-pro")
	_, err := client.Complete(context.Background(), "prompt", 100, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
