package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"propdraft/internal/domain/entities"
	"propdraft/internal/usecase/interfaces"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")

const (
	defaultEndpoint = "https://api.openai.com"
	defaultModel    = "gpt-4o-mini"
	requestTimeout  = 60 * time.Second
)

// OpenAIClient implements the analysis collaborator over the OpenAI
// chat-completions API in JSON mode.
//
// Supported env vars:
//   - OPENAI_API_KEY (required unless mock mode)
//   - OPENAI_ENDPOINT (optional; e.g. a proxy)
//   - OPENAI_MODEL (default: gpt-4o-mini)
//   - ANALYSIS_MOCK (1/true/yes/on: deterministic canned output, no network)

type OpenAIClient struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
	mockMode bool
}

var _ interfaces.IAnalysisClient = (*OpenAIClient)(nil)

func NewOpenAIClient(endpoint, key, model string) (*OpenAIClient, error) {
	if isAnalysisMockEnabled() {
		log.Printf("[analysis][client] mock mode enabled")
		return &OpenAIClient{mockMode: true}, nil
	}
	if key == "" {
		log.Printf("[analysis][client] missing OPENAI_API_KEY")
		return nil, ErrMissingOpenAIAPIKey
	}
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	if model == "" {
		model = defaultModel
	}
	return &OpenAIClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: requestTimeout},
	}, nil
}

func (c *OpenAIClient) AnalyzeScope(ctx context.Context, description, userRequirements string) (json.RawMessage, error) {
	if c.mockMode {
		return mockScopeAnalysis(), nil
	}
	prompt := fmt.Sprintf(analyzeScopePrompt, description, userRequirements)
	return c.complete(ctx, prompt)
}

func (c *OpenAIClient) Reanalyze(ctx context.Context, scopeOfWork string, deliverables []entities.Deliverable, userRequirements, userFeedback string) (json.RawMessage, error) {
	if c.mockMode {
		return mockScopeAnalysis(), nil
	}
	prompt := fmt.Sprintf(reanalyzePrompt, scopeOfWork, marshalDeliverables(deliverables), userRequirements, userFeedback)
	return c.complete(ctx, prompt)
}

func (c *OpenAIClient) GenerateProposal(ctx context.Context, scopeOfWork string, deliverables []entities.Deliverable, userRequirements, userFeedback string) (json.RawMessage, error) {
	if c.mockMode {
		return mockFullProposal(), nil
	}
	prompt := fmt.Sprintf(generatePrompt, scopeOfWork, marshalDeliverables(deliverables), userRequirements, userFeedback)
	return c.complete(ctx, prompt)
}

// complete sends one JSON-mode chat completion and returns the message
// content verbatim. Callers treat it as untrusted structured data.
func (c *OpenAIClient) complete(ctx context.Context, prompt string) (json.RawMessage, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0.2,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[analysis][client] chat completion start model=%s prompt_len=%d", c.model, len(prompt))
	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("[analysis][client] request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		log.Printf("[analysis][client] non-200 status=%d err=%s", resp.StatusCode, apiErr.Error.Message)
		return nil, fmt.Errorf("openai: status %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, errors.New("openai: no choices in response")
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	log.Printf("[analysis][client] chat completion success content_len=%d", len(content))
	return json.RawMessage(content), nil
}

func marshalDeliverables(deliverables []entities.Deliverable) string {
	b, err := json.Marshal(deliverables)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func isAnalysisMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ANALYSIS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func mockScopeAnalysis() json.RawMessage {
	return json.RawMessage(`{
		"scopeOfWork": "- Build the project as described in the uploaded documents",
		"deliverables": [
			{"item": "Web Pages", "unit": "pages", "count": 5, "description": "Responsive landing pages"}
		]
	}`)
}

func mockFullProposal() json.RawMessage {
	return json.RawMessage(`{
		"executiveSummary": "A concise plan to deliver the project on time and on budget.",
		"requirements": ["Responsive design", "Accessibility compliance"],
		"workBreakdown": [
			{"id": "design", "task": "Design", "duration": 7},
			{"id": "build", "task": "Build", "duration": 14, "dependencies": ["design"]}
		],
		"timeline": [
			{"phase": "Phase 1", "startDate": "2024-01-01", "endDate": "2024-01-31", "tasks": ["design", "build"]}
		]
	}`)
}
