package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/application/ports"
)

var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `You are an experienced HVAC project manager. Given a project name and
notes, break the job into concrete work tasks a field crew can execute.
Return ONLY a valid JSON array (no markdown, no code fences) with this
exact structure:
[
  {"task_title": "<short imperative task name>", "notes": "<one or two sentences of detail>"}
]

Rules:
- 3 to 8 tasks, ordered the way the work should happen on site.
- task_title under 60 characters.
- Include permits, inspections, and startup/commissioning steps where the
  job calls for them.
- No text outside the JSON array.`
)

// AnthropicService implements LLMService against the Anthropic Messages
// REST API with plain net/http; no SDK needed.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService builds the adapter. With an empty apiKey every call
// returns a descriptive error instead of panicking.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Network timeout of 25s; the use case adds its own context
			// timeout on top.
			Timeout: 25 * time.Second,
		},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonArrayRe pulls the first JSON array out of the reply even when the
// model wraps it in markdown.
var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// SuggestTasks sends the project name and notes to the model and parses
// the returned task list.
func (s *AnthropicService) SuggestTasks(ctx context.Context, projectName, notes string) ([]dto.TaskSuggestion, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("ai: ANTHROPIC_API_KEY not configured")
	}

	userContent := fmt.Sprintf("Project: %s\nNotes: %s", projectName, notes)

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ai: build HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("ai: timeout or cancellation: %w", ctx.Err())
		}
		return nil, fmt.Errorf("ai: HTTP call failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("ai: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("ai: anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("ai: anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(rawBody, &apiResp); err != nil {
		return nil, fmt.Errorf("ai: decode response: %w", err)
	}
	if len(apiResp.Content) == 0 {
		return nil, fmt.Errorf("ai: empty response")
	}

	text := apiResp.Content[0].Text
	if m := jsonArrayRe.FindString(text); m != "" {
		text = m
	}

	var suggestions []dto.TaskSuggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil, fmt.Errorf("ai: parse suggestions: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("ai: no suggestions returned")
	}
	return suggestions, nil
}
