// Package interpret converts free-text search queries into structured
// criteria via an OpenAI chat completion, merges the result onto explicitly
// supplied criteria, and generates natural language summaries of result sets.
// Everything here is best effort: every failure path degrades to searching
// with the explicit criteria alone, or to a canned summary.
package interpret

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	apperrors "github.com/arcturus-labs/property-search/internal/errors"
	"github.com/arcturus-labs/property-search/model"
	"github.com/arcturus-labs/property-search/services"
)

const defaultModel = openai.GPT4Dot1

// Config holds the settings for the OpenAI-backed interpreter.
type Config struct {
	APIKey  string
	BaseURL string // empty uses the OpenAI default
	Model   string // empty uses gpt-4.1
}

// OpenAIInterpreter implements services.Interpreter with a single structured
// chat completion per query.
type OpenAIInterpreter struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIInterpreter creates an interpreter. It fails if no API key is
// configured; callers that want a no-op interpreter use Disabled instead.
func NewOpenAIInterpreter(cfg Config, logger *slog.Logger) (*OpenAIInterpreter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("creating interpreter: %w", apperrors.ErrInterpreterUnavailable)
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

	return &OpenAIInterpreter{
		client: openai.NewClientWithConfig(clientConfig),
		model:  modelName,
		logger: logger,
	}, nil
}

// Interpret extracts structured search parameters from q. The caller bounds
// the call with ctx and treats any error as "search without interpretation".
func (it *OpenAIInterpreter) Interpret(ctx context.Context, q string) (*services.Interpretation, error) {
	if strings.TrimSpace(q) == "" {
		return nil, fmt.Errorf("empty query: %w", apperrors.ErrInterpreterUnavailable)
	}

	req := openai.ChatCompletionRequest{
		Model:       it.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: interpreterPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("User search query: %q", q),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "search_parameters",
				Strict: true,
				Schema: interpretationSchema,
			},
		},
	}

	start := time.Now()
	resp, err := it.client.CreateChatCompletion(ctx, req)
	latency := time.Since(start)
	if err != nil {
		it.logger.Warn("query interpretation request failed",
			"error", err,
			"latency_ms", latency.Milliseconds())
		return nil, fmt.Errorf("interpretation request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("interpretation returned no choices")
	}

	interp, err := parseInterpretation(resp.Choices[0].Message.Content)
	if err != nil {
		it.logger.Warn("query interpretation response unparseable",
			"content", resp.Choices[0].Message.Content,
			"error", err)
		return nil, err
	}

	it.logger.Debug("query interpreted",
		"query", q,
		"latency_ms", latency.Milliseconds(),
		"tokens", resp.Usage.TotalTokens)

	return interp, nil
}

var codeFencePattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

// parseInterpretation decodes the model output and drops any values that do
// not survive boundary validation, so a hallucinated enum value can never
// produce a 400 for the user.
func parseInterpretation(content string) (*services.Interpretation, error) {
	content = strings.TrimSpace(content)
	if matches := codeFencePattern.FindStringSubmatch(content); len(matches) > 1 {
		content = matches[1]
	}

	var interp services.Interpretation
	if err := json.Unmarshal([]byte(content), &interp); err != nil {
		return nil, fmt.Errorf("decoding interpretation: %w", err)
	}
	sanitize(&interp)
	return &interp, nil
}

func sanitize(interp *services.Interpretation) {
	kept := interp.PropertyTypes[:0]
	for _, raw := range interp.PropertyTypes {
		if pt, err := model.ParsePropertyType(strings.TrimSpace(raw)); err == nil {
			kept = append(kept, string(pt))
		}
	}
	interp.PropertyTypes = kept

	if _, ok := services.ParseSortKey(interp.Sort); !ok {
		interp.Sort = ""
	}
}

// Disabled is a services.Interpreter that always reports itself unavailable.
// It stands in when no API key is configured so the chat and search handlers
// keep a single code path.
type Disabled struct{}

func (Disabled) Interpret(ctx context.Context, q string) (*services.Interpretation, error) {
	return nil, apperrors.ErrInterpreterUnavailable
}

const interpreterPrompt = `You convert natural language real estate search queries into structured search parameters. Extract structured data and decide what text, if any, should remain as free-text title and description searches.

Rules:
- property_type values: house, condo, apartment, townhouse. Map synonyms: "home"/"homes" -> house; "studio" -> apartment with bedrooms ["1"].
- bedrooms: decimal strings. Map semantics: "family" -> ["3","4","5"]; "big family" -> ["4","5"]; "small" -> ["1","2"].
- Price: "under X" -> max_price; "over X"/"at least X" -> min_price; "X to Y" -> both. Expand abbreviations: "800k" -> 800000, "1.5M" -> 1500000. "affordable" -> max_price 500000; "luxury" -> min_price 1000000.
- Square footage: "spacious"/"large" -> min_sqft 1000; "huge" -> min_sqft 2500; "compact"/"cozy" -> max_sqft 1200.
- sort values: relevance, price_asc, price_desc, newest. "new listing"/"recent" -> newest; "cheapest" -> price_asc; "most expensive" -> price_desc; otherwise relevance.
- title/description: include ONLY text not captured by structured parameters (features like "parking", "bay views"; locations like "downtown"; qualities like "sunny", "renovated"). title is Title Case, description is the same words lowercase. If everything mapped to parameters, leave both empty. Use minimal text: "parking", not "with parking".

Examples:
"Family home under 800k" -> bedrooms ["3","4","5"], property_type ["house","townhouse"], max_price 800000, title "Family", description "family".
"Affordable apartment" -> property_type ["apartment"], max_price 500000, sort "price_asc", empty title and description.
"New listing downtown condo" -> property_type ["condo"], sort "newest", title "Downtown", description "downtown".`

var interpretationSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "title": {"type": "string", "description": "Title-case free text not captured by structured parameters"},
    "description": {"type": "string", "description": "Lowercase free text not captured by structured parameters"},
    "property_type": {"type": "array", "items": {"type": "string", "enum": ["house", "condo", "apartment", "townhouse"]}},
    "bedrooms": {"type": "array", "items": {"type": "string"}},
    "min_price": {"type": ["integer", "null"]},
    "max_price": {"type": ["integer", "null"]},
    "min_sqft": {"type": ["integer", "null"]},
    "max_sqft": {"type": ["integer", "null"]},
    "sort": {"type": "string", "enum": ["relevance", "price_asc", "price_desc", "newest", ""]}
  },
  "required": ["title", "description", "property_type", "bedrooms", "min_price", "max_price", "min_sqft", "max_sqft", "sort"],
  "additionalProperties": false
}`)
