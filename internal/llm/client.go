// Package llm provides thin HTTP clients for the two chat-completion
// services the pipeline depends on: the research model (Perplexity-style
// bearer-token API) and the formatting model (Azure OpenAI-style deployment
// API). Both speak the same messages/choices wire shape.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/phuslu/log"
)

// DefaultTimeout is the default HTTP request timeout for chat calls.
const DefaultTimeout = 120 * time.Second

// Completer is the abstraction the pipeline stages program against.
// maxTokens caps the completion length; the stage picks the temperature
// (0 everywhere except the resolver).
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ResearchClient calls a chat-completion endpoint authenticated with a
// bearer token. The model name travels in the request body.
type ResearchClient struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     log.Logger
}

// NewResearchClient creates a client for the research chat API.
// endpoint is the API base URL (e.g. "https://api.perplexity.ai").
func NewResearchClient(endpoint, apiKey, model string) *ResearchClient {
	return &ResearchClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     log.Logger{Level: log.InfoLevel, Context: log.NewContext(nil).Str("client", "research").Value()},
	}
}

// Complete sends a single user message and returns the first choice's content.
func (c *ResearchClient) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	req := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	url := c.endpoint + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}
	return postChat(ctx, c.httpClient, c.logger, url, headers, req)
}

// FormatterClient calls an Azure OpenAI-style deployment endpoint. The model
// is addressed through the URL path, not the request body, and the key
// travels in an api-key header.
type FormatterClient struct {
	endpoint   string
	apiKey     string
	deployment string
	apiVersion string
	httpClient *http.Client
	logger     log.Logger
}

// NewFormatterClient creates a client for the formatting chat API.
func NewFormatterClient(endpoint, apiKey, deployment, apiVersion string) *FormatterClient {
	return &FormatterClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		deployment: deployment,
		apiVersion: apiVersion,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     log.Logger{Level: log.InfoLevel, Context: log.NewContext(nil).Str("client", "formatter").Value()},
	}
}

// Complete sends a single user message and returns the first choice's content.
func (c *FormatterClient) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	req := chatRequest{
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)
	headers := map[string]string{"api-key": c.apiKey}
	return postChat(ctx, c.httpClient, c.logger, url, headers, req)
}

// postChat executes a chat-completion POST and extracts the payload text.
func postChat(ctx context.Context, client *http.Client, logger log.Logger, url string, headers map[string]string, payload chatRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", &APICallError{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &APICallError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &APICallError{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APICallError{Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn().Int("status", resp.StatusCode).Msg("chat completion returned non-OK status")
		return "", &APICallError{
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &ParseError{Message: "failed to decode chat response", Cause: err}
	}

	if len(parsed.Choices) == 0 {
		return "", &APICallError{Message: "no choices in response"}
	}

	logger.Debug().Int("chars", len(parsed.Choices[0].Message.Content)).Msg("chat completion succeeded")
	return parsed.Choices[0].Message.Content, nil
}
