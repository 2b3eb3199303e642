package critique

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	openRouterURL   = "https://openrouter.ai/api/v1/chat/completions"
	openRouterModel = "meta-llama/llama-3.1-8b-instruct"

	// systemMessage sets the reviewer persona for every critique.
	systemMessage = "You are a senior hiring manager. Be realistic, strict, and practical."

	// maxPromptChars caps the prompt sent upstream.
	maxPromptChars = 3000
)

// OpenRouter calls the OpenRouter chat-completions endpoint.
type OpenRouter struct {
	url        string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenRouter creates a provider for the hosted OpenRouter API.
func NewOpenRouter(apiKey string, httpClient *http.Client) *OpenRouter {
	return &OpenRouter{
		url:        openRouterURL,
		apiKey:     apiKey,
		model:      openRouterModel,
		httpClient: httpClient,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt to OpenRouter and returns the model's reply.
// Prompts longer than maxPromptChars are truncated before sending.
func (p *OpenRouter) Complete(ctx context.Context, prompt string) (string, error) {
	if len(prompt) > maxPromptChars {
		prompt = prompt[:maxPromptChars]
	}

	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.4,
		MaxTokens:   700,
	})
	if err != nil {
		return "", fmt.Errorf("marshal critique request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create critique request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "http://localhost")
	req.Header.Set("X-Title", "AI Resume Improver")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("critique request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read critique response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter returned HTTP %d: %s", resp.StatusCode, string(respBytes))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", fmt.Errorf("parse critique response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
