package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"

	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/schema"
)

// DefaultTimeout bounds a single extraction call's HTTP round trip.
const DefaultTimeout = 60 * time.Second

// Extractor turns OCR text plus a schema into a schema-valid object with
// a confidence score. RemoteExtractor and EdgeExtractor both implement
// it; the scanner is indifferent to which one it is holding.
type Extractor interface {
	Extract(ctx context.Context, req model.ExtractionRequest) (model.ExtractionResult, error)
}

// client is the shared machinery behind both Extractor implementations:
// an OpenAI-compatible chat endpoint in JSON-object mode, pinned to one
// model. The two exported types differ only in which base URL/model
// they're constructed with.
type client struct {
	openai openai.Client
	model  string
}

func newClient(baseURL, apiKey, model string) client {
	return client{
		openai: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
			option.WithHTTPClient(&http.Client{Timeout: DefaultTimeout}),
		),
		model: model,
	}
}

func (c client) extract(ctx context.Context, req model.ExtractionRequest) (model.ExtractionResult, error) {
	system, user, err := buildPrompt(req)
	if err != nil {
		return model.ExtractionResult{}, model.NewExtractionError(model.ExtractionErrorParse, err.Error(), err)
	}

	resp, err := c.openai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
		MaxTokens:   param.NewOpt[int64](4096),
		Temperature: param.NewOpt[float64](0.1),
	})
	if err != nil {
		return model.ExtractionResult{}, classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return model.ExtractionResult{}, model.NewExtractionError(model.ExtractionErrorTransient, "no choices in extraction response", nil)
	}

	choice := resp.Choices[0]
	target, err := schema.New(req.Schema)
	if err != nil {
		return model.ExtractionResult{}, model.NewExtractionError(model.ExtractionErrorSchema, err.Error(), err)
	}

	raw := extractJSONPayload(choice.Message.Content)
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return model.ExtractionResult{}, model.NewExtractionError(model.ExtractionErrorParse, "model response is not valid JSON", err)
	}

	result := schema.Validate(target)
	if !result.OK {
		return model.ExtractionResult{}, model.NewExtractionError(model.ExtractionErrorSchema, formatIssues(result.Issues), nil)
	}

	confidence := scoreConfidence(string(choice.FinishReason), target)
	setConfidence(target, confidence)
	return model.ExtractionResult{JSON: target, Confidence: confidence}, nil
}

// setConfidence writes the computed blend back onto target, so the
// scanner's post-audit read of the object's own Confidence field (which
// the hallucination detector mutates in place) sees this score rather
// than whatever the model self-reported.
func setConfidence(target any, confidence float64) {
	switch obj := target.(type) {
	case *model.Check:
		obj.SetConfidence(confidence)
	case *model.Receipt:
		obj.SetConfidence(confidence)
	}
}

// extractJSONPayload strips a Markdown code fence around a JSON
// response, if the model added one despite JSON mode being requested.
func extractJSONPayload(response string) string {
	response = strings.TrimSpace(response)
	if start := strings.Index(response, "```"); start != -1 {
		body := response[start+3:]
		body = strings.TrimPrefix(body, "json")
		body = strings.TrimPrefix(body, "\n")
		if end := strings.Index(body, "```"); end != -1 {
			return strings.TrimSpace(body[:end])
		}
	}
	return response
}

func formatIssues(issues []schema.Issue) string {
	parts := make([]string, len(issues))
	for i, issue := range issues {
		parts[i] = fmt.Sprintf("%s: %s", issue.Path, issue.Message)
	}
	return strings.Join(parts, "; ")
}

func classifyError(err error) error {
	if apiErr, ok := err.(*openai.Error); ok {
		if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500 {
			return model.NewExtractionError(model.ExtractionErrorTransient, "upstream extraction call failed", err)
		}
		return model.NewExtractionError(model.ExtractionErrorParse, "upstream extraction call rejected", err)
	}
	return model.NewExtractionError(model.ExtractionErrorTransient, "extraction call failed", err)
}
