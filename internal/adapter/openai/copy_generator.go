package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"adforge/internal/config/configs"
	"adforge/internal/core/domain"
)

// Fallback templates. The wording and punctuation of the two literals
// intentionally differ and must be preserved exactly: downstream
// consumers distinguish the no-credential path from the failed-call path
// by these strings.
const (
	noKeyTemplate   = "Engaging ad copy for %s targeting %s."
	failureTemplate = "Engaging ad for %s - %s"
)

// chatMessage is a message in the chat completions conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request body for the chat completions endpoint.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// chatResponse is the subset of the chat completions response we read.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// CopyGenerator produces ad copy through an external chat completions
// service, degrading to local templates when no credential is configured
// or the call fails. It implements port.CopyGenerator and never returns
// an error to the caller.
type CopyGenerator struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCopyGenerator creates a generator from configuration. The default
// HTTP client is used; no timeout override, no retries, no caching.
func NewCopyGenerator(cfg configs.AdCopy, logger *slog.Logger) *CopyGenerator {
	return &CopyGenerator{
		apiKey:     cfg.APIKey,
		endpoint:   cfg.Endpoint,
		model:      cfg.Model,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// Generate returns ad copy for the product and comma-joined keywords. It
// always succeeds: with no credential configured the no-key template is
// returned, and any failure of the external call is logged and replaced
// with the failure template. The result's Source reports which path ran.
func (g *CopyGenerator) Generate(ctx context.Context, productName, keywords string) domain.AdCopy {
	if g.apiKey == "" {
		return domain.AdCopy{
			Text:   fmt.Sprintf(noKeyTemplate, productName, keywords),
			Source: domain.CopySourceFallback,
		}
	}

	text, err := g.callService(ctx, productName, keywords)
	if err != nil {
		g.logger.Error("ad copy generation failed", slog.Any("error", err))
		return domain.AdCopy{
			Text:   fmt.Sprintf(failureTemplate, productName, keywords),
			Source: domain.CopySourceFallback,
		}
	}
	return domain.AdCopy{Text: text, Source: domain.CopySourceService}
}

// callService issues one synchronous chat completions request and
// extracts the first choice's message content.
func (g *CopyGenerator) callService(ctx context.Context, productName, keywords string) (string, error) {
	prompt := fmt.Sprintf("Create a 1-2 sentence engaging ad for %s targeting %s.", productName, keywords)
	body, err := json.Marshal(chatRequest{
		Model:       g.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return parsed.Choices[0].Message.Content, nil
}
