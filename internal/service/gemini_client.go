package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fortitwin/internal/config"
)

// GeminiClient calls the Gemini generateContent REST API
type GeminiClient struct {
	config *config.AIConfig
	client *http.Client
}

// NewGeminiClient creates a Gemini-backed generator from the given config
func NewGeminiClient(cfg *config.AIConfig) *GeminiClient {
	return &GeminiClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Generate sends one system+user prompt and returns the generated text.
// Failures come back as *GenerateError with the cause classified.
func (c *GeminiClient) Generate(ctx context.Context, system, user string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": system + "\n\n" + user},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", &GenerateError{Kind: FailureDecode, Err: err}
	}

	url := fmt.Sprintf("%s?key=%s", c.config.ModelEndpoint(), c.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", &GenerateError{Kind: FailureTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &GenerateError{Kind: FailureTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerateError{Kind: FailureTransport, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", &GenerateError{Kind: FailureAuth, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &GenerateError{Kind: FailureTransport, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	// Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", &GenerateError{Kind: FailureDecode, Err: err}
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
	}

	return "", &GenerateError{Kind: FailureDecode, Err: fmt.Errorf("empty response from Gemini")}
}
