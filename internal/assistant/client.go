package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Fallback strings returned to the caller verbatim. The UI shows them as-is,
// so they must stay byte-identical across releases.
const (
	FallbackConnectionError = "حدث خطأ أثناء الاتصال بالمساعد الذكي."
	FallbackEmptyGeneration = "عذراً، لم أتمكن من إنشاء النص."
)

type Config struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

// Client wraps the external text-generation API. It deliberately swallows
// every failure mode: a reason suggestion is a convenience, never a blocker,
// so callers always get usable text and never an error.
type Client struct {
	apiURL     string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		apiURL:  config.APIURL,
		apiKey:  config.APIKey,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// GenerateReason asks the generation API for a formal Arabic leave reason
// built from the type label and the caller's keywords. Single attempt, no
// retry: any transport, status or decode failure collapses into the fixed
// connection fallback, an empty generation into the empty-text fallback.
func (c *Client) GenerateReason(ctx context.Context, typeLabel, keywords string) string {
	prompt := buildPrompt(typeLabel, keywords)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("assistant generation failed, using fallback",
			"type_label", typeLabel,
			"error", err)
		return FallbackConnectionError
	}

	text = strings.TrimSpace(text)
	if text == "" {
		c.logger.Warn("assistant returned empty generation, using fallback",
			"type_label", typeLabel)
		return FallbackEmptyGeneration
	}

	return text
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	jsonData, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, "POST", c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation API returned status %d", resp.StatusCode)
	}

	var apiResponse generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return apiResponse.Text, nil
}

func buildPrompt(typeLabel, keywords string) string {
	var sb strings.Builder
	sb.WriteString("اكتب سبب طلب إجازة ")
	sb.WriteString(typeLabel)
	sb.WriteString(" بصياغة رسمية ومختصرة باللغة العربية")
	if keywords = strings.TrimSpace(keywords); keywords != "" {
		sb.WriteString(" بناءً على الكلمات التالية: ")
		sb.WriteString(keywords)
	}
	sb.WriteString(".")
	return sb.String()
}
