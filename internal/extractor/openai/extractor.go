package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"tabrev/internal/config"
	"tabrev/internal/domain"
	"tabrev/internal/extractor"
	"tabrev/internal/port"
)

// Extractor implements port.FieldExtractor using the OpenAI Chat Completions
// API. Invocation is deterministic (temperature 0) and requests a strict
// JSON object; the engine performs no retries, leaving resilience policy to
// the caller.
type Extractor struct {
	client  openai.Client
	apiKey  string
	model   string
	timeout time.Duration
}

// NewExtractor creates an extractor from config. A missing API key is not an
// error here; Extract fails fast instead, so the server can boot without
// credentials and only the extraction path is unavailable.
func NewExtractor(cfg config.ExtractorConfig, opts ...option.RequestOption) *Extractor {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	clientOpts := append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	return &Extractor{
		client:  openai.NewClient(clientOpts...),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: timeout,
	}
}

var _ port.FieldExtractor = (*Extractor)(nil)

// extractionResponse models the JSON object the model is instructed to return.
type extractionResponse struct {
	Results []fieldResult `json:"results"`
}

type fieldResult struct {
	FieldName     string   `json:"field_name"`
	Value         *string  `json:"value"`
	Confidence    *float64 `json:"confidence"`
	Citation      *string  `json:"citation"`
	Normalization *string  `json:"normalization"`
}

func (e *Extractor) Extract(ctx context.Context, text string, fields []domain.FieldSpec) ([]domain.FieldResult, error) {
	if e.apiKey == "" {
		return nil, domain.ErrExtractorNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := extractor.BuildExtractionPrompt(text, fields)

	completion, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(extractor.SystemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{
				Type: "json_object",
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: calling model: %v", domain.ErrExtractionFailed, err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response, no choices", domain.ErrExtractionFailed)
	}

	content := completion.Choices[0].Message.Content

	var parsed extractionResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: parsing model JSON: %v (raw: %s)", domain.ErrExtractionFailed, err, truncate(content, 500))
	}
	if parsed.Results == nil {
		return nil, fmt.Errorf("%w: response has no results key", domain.ErrExtractionFailed)
	}

	results := make([]domain.FieldResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.FieldName == "" {
			continue
		}
		results = append(results, domain.FieldResult{
			FieldName:     r.FieldName,
			Value:         r.Value,
			Confidence:    clampConfidence(r.Confidence),
			Citation:      r.Citation,
			Normalization: r.Normalization,
		})
	}
	return results, nil
}

// clampConfidence forces a reported confidence into [0,1].
func clampConfidence(c *float64) *float64 {
	if c == nil {
		return nil
	}
	v := *c
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return &v
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
