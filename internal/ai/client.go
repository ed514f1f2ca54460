// Package ai talks to an OpenAI-compatible vision/chat endpoint to
// generate pin metadata from an article and its creative.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pinflow/internal/domain"
)

const defaultSystemPrompt = "You write Pinterest pin metadata. Respond with strict JSON: " +
	`{"title": string, "description": string, "alt_text": string}. No prose, no markdown.`

// Metadata is the strict JSON shape the model must return. A non-JSON
// or partially-populated response is a hard failure, never partially
// accepted.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AltText     string `json:"alt_text"`
}

// Config defines how to contact the generation API.
type Config struct {
	Endpoint     string
	Model        string
	APIKey       string
	SystemPrompt string
	Timeout      time.Duration
}

type Client struct {
	endpoint     string
	model        string
	apiKey       string
	systemPrompt string
	httpClient   *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	prompt := strings.TrimSpace(cfg.SystemPrompt)
	if prompt == "" {
		prompt = defaultSystemPrompt
	}
	return &Client{
		endpoint:     cfg.Endpoint,
		model:        cfg.Model,
		apiKey:       cfg.APIKey,
		systemPrompt: prompt,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// Request carries everything the model needs to write metadata for one
// pin. Feedback is set on regeneration only.
type Request struct {
	ArticleTitle   string
	ArticleContent string
	MediaURL       string
	Audience       string
	Tone           string
	Feedback       string
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate asks the model for pin metadata and parses its strict JSON
// answer.
func (c *Client) Generate(ctx context.Context, req Request) (*Metadata, error) {
	if c.apiKey == "" || c.endpoint == "" || c.model == "" {
		return nil, fmt.Errorf("ai client misconfigured")
	}

	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": c.systemPrompt},
			{"role": "user", "content": buildPrompt(req)},
		},
		"response_format": map[string]string{"type": "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal generation payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call generation api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &domain.UpstreamError{
			Service: "ai generation",
			Message: fmt.Sprintf("%s: %s", resp.Status, strings.TrimSpace(string(payload))),
		}
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, &domain.UpstreamError{Service: "ai generation", Message: "response is not valid JSON"}
	}
	if len(chat.Choices) == 0 {
		return nil, &domain.UpstreamError{Service: "ai generation", Message: "response has no choices"}
	}

	return parseMetadata(chat.Choices[0].Message.Content)
}

// parseMetadata enforces the strict contract: valid JSON with all
// three fields populated or the whole generation fails.
func parseMetadata(content string) (*Metadata, error) {
	var md Metadata
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &md); err != nil {
		return nil, &domain.UpstreamError{Service: "ai generation", Message: "model did not return JSON"}
	}
	if md.Title == "" || md.Description == "" || md.AltText == "" {
		return nil, &domain.UpstreamError{Service: "ai generation", Message: "model returned incomplete metadata"}
	}
	return &md, nil
}

func buildPrompt(req Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Article title: %s\n", req.ArticleTitle)
	if req.Audience != "" {
		fmt.Fprintf(&sb, "Target audience: %s\n", req.Audience)
	}
	if req.Tone != "" {
		fmt.Fprintf(&sb, "Tone: %s\n", req.Tone)
	}
	if req.MediaURL != "" {
		fmt.Fprintf(&sb, "Pin image: %s\n", req.MediaURL)
	}
	if req.Feedback != "" {
		fmt.Fprintf(&sb, "User feedback on the previous attempt: %s\n", req.Feedback)
	}
	sb.WriteString("Article content:\n")
	sb.WriteString(req.ArticleContent)
	return sb.String()
}
