package interpret

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	apperrors "github.com/arcturus-labs/property-search/internal/errors"
	"github.com/arcturus-labs/property-search/services"
)

// OpenAISummarizer implements services.Summarizer with a single structured
// chat completion per request.
type OpenAISummarizer struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAISummarizer creates a summarizer. It fails if no API key is
// configured; callers that want a no-op summarizer use Disabled instead.
func NewOpenAISummarizer(cfg Config, logger *slog.Logger) (*OpenAISummarizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("creating summarizer: %w", apperrors.ErrInterpreterUnavailable)
	}
	if logger == nil {
		logger = slog.Default()
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultModel
	}

	return &OpenAISummarizer{
		client: openai.NewClientWithConfig(clientConfig),
		model:  modelName,
		logger: logger,
	}, nil
}

// Summarize describes the active search in one or two sentences and suggests
// related searches. Callers treat any error as "use the canned summary".
func (sm *OpenAISummarizer) Summarize(ctx context.Context, q string, query services.SearchQuery, total int) (*services.SearchSummary, error) {
	req := openai.ChatCompletionRequest{
		Model:       sm.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: summaryPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildSummaryContext(q, query, total),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "search_summary",
				Strict: true,
				Schema: summarySchema,
			},
		},
	}

	start := time.Now()
	resp, err := sm.client.CreateChatCompletion(ctx, req)
	latency := time.Since(start)
	if err != nil {
		sm.logger.Warn("search summary request failed",
			"error", err,
			"latency_ms", latency.Milliseconds())
		return nil, fmt.Errorf("summary request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("summary returned no choices")
	}

	summary, err := parseSummary(resp.Choices[0].Message.Content)
	if err != nil {
		sm.logger.Warn("search summary response unparseable",
			"content", resp.Choices[0].Message.Content,
			"error", err)
		return nil, err
	}

	sm.logger.Debug("search summarized",
		"latency_ms", latency.Milliseconds(),
		"tokens", resp.Usage.TotalTokens)

	return summary, nil
}

// buildSummaryContext renders the active criteria as one line per set
// parameter, so the model only sees constraints the user actually applied.
func buildSummaryContext(q string, query services.SearchQuery, total int) string {
	var parts []string
	if q != "" {
		parts = append(parts, fmt.Sprintf("Query: %q", q))
	}
	if query.Title != "" {
		parts = append(parts, fmt.Sprintf("Title search: %q", query.Title))
	}
	if query.Description != "" {
		parts = append(parts, fmt.Sprintf("Description search: %q", query.Description))
	}
	if len(query.PropertyTypes) > 0 {
		parts = append(parts, "Property types: "+strings.Join(query.PropertyTypes, ", "))
	}
	if len(query.Bedrooms) > 0 {
		parts = append(parts, "Bedrooms: "+strings.Join(query.Bedrooms, ", "))
	}
	if query.MinPrice != nil {
		parts = append(parts, fmt.Sprintf("Min price: $%d", *query.MinPrice))
	}
	if query.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("Max price: $%d", *query.MaxPrice))
	}
	if query.MinSqft != nil {
		parts = append(parts, fmt.Sprintf("Min square feet: %d", *query.MinSqft))
	}
	if query.MaxSqft != nil {
		parts = append(parts, fmt.Sprintf("Max square feet: %d", *query.MaxSqft))
	}
	parts = append(parts, fmt.Sprintf("Total results: %d", total))

	return "Current search parameters:\n" + strings.Join(parts, "\n")
}

func parseSummary(content string) (*services.SearchSummary, error) {
	content = strings.TrimSpace(content)
	if matches := codeFencePattern.FindStringSubmatch(content); len(matches) > 1 {
		content = matches[1]
	}

	var summary services.SearchSummary
	if err := json.Unmarshal([]byte(content), &summary); err != nil {
		return nil, fmt.Errorf("decoding summary: %w", err)
	}
	return &summary, nil
}

func (Disabled) Summarize(ctx context.Context, q string, query services.SearchQuery, total int) (*services.SearchSummary, error) {
	return nil, apperrors.ErrInterpreterUnavailable
}

const summaryPrompt = `You help users understand their real estate search and discover new searches. Given the current search parameters and result count, produce:
- summary: 1-2 sentences describing what the user is searching for in natural language, mentioning key filters ("affordable 2-bedroom apartments", "family homes under $800k").
- search_ideas: 2-3 related searches, each an actionable natural language query the user could type ("2 bedroom condos", "3-4 bedroom houses with yard", "spacious condos with modern amenities").`

var summarySchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "summary": {"type": "string", "description": "1-2 sentence summary of the search"},
    "search_ideas": {"type": "array", "items": {"type": "string"}, "description": "2-3 related search idea strings"}
  },
  "required": ["summary", "search_ideas"],
  "additionalProperties": false
}`)
