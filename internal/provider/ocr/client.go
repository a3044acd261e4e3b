// Package ocr implements the first pipeline stage (spec.md §4.2): a
// vision-capable chat completion call that turns a photographed
// document into OCR text, plus a confidence estimate derived from the
// call's finish reason.
package ocr

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"

	"github.com/rezonia/docscan/internal/model"
)

// DefaultTimeout bounds a single OCR call's HTTP round trip.
const DefaultTimeout = 60 * time.Second

// systemPrompt instructs the vision model to transcribe rather than
// interpret: it must render what it sees, not guess at structure.
const systemPrompt = `You are a document transcription engine. Render every ` +
	`piece of legible text from the image as plain text or Markdown, in ` +
	`reading order. Do not summarize, interpret, or invent text you cannot ` +
	`read. If the image is blank, blurry, or unreadable, return an empty ` +
	`response.`

// visionHeaderTransport marks every request as a vision request, the
// header several OpenAI-compatible gateways use to route to a
// vision-capable backend.
type visionHeaderTransport struct {
	base http.RoundTripper
}

func (t *visionHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Copilot-Vision-Request", "true")
	if t.base != nil {
		return t.base.RoundTrip(req)
	}
	return http.DefaultTransport.RoundTrip(req)
}

// Client is a thin wrapper over an OpenAI-compatible vision endpoint,
// pinned to one OCR model.
type Client struct {
	vision openai.Client
	model  string
}

// NewClient constructs a Client against baseURL using apiKey, pinned to
// model for every call.
func NewClient(baseURL, apiKey, model string) *Client {
	httpClient := &http.Client{
		Timeout:   DefaultTimeout,
		Transport: &visionHeaderTransport{base: http.DefaultTransport},
	}

	return &Client{
		vision: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
			option.WithHTTPClient(httpClient),
		),
		model: model,
	}
}

// recognizeResult carries both the transcribed text and the raw
// finish-reason the call returned, which confidence synthesis needs.
type recognizeResult struct {
	text         string
	finishReason string
}

// Recognize sends a single document image to the vision model and
// returns its transcription plus the completion's finish reason.
func (c *Client) Recognize(ctx context.Context, content []byte, mimeType string) (recognizeResult, error) {
	dataURL := toDataURL(content, mimeType)

	contentParts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart("Transcribe all text visible in this image."),
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
	}

	resp, err := c.vision.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(contentParts),
		},
		MaxTokens:   param.NewOpt[int64](4096),
		Temperature: param.NewOpt[float64](0),
	})
	if err != nil {
		return recognizeResult{}, classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return recognizeResult{}, model.NewOCRError(model.OCRErrorPermanent, "no choices in OCR response", nil)
	}

	choice := resp.Choices[0]
	return recognizeResult{text: choice.Message.Content, finishReason: string(choice.FinishReason)}, nil
}

// chunkedEncodeThreshold is the buffer size above which toDataURL
// switches from one EncodeToString call to a streaming base64.NewEncoder
// pass, per spec.md §4.2's chunked-encoding requirement: above this size,
// encoding in fixed chunks avoids holding the full-size destination
// buffer and the Sprintf-concatenated result in memory at the same time.
const chunkedEncodeThreshold = 1 << 20 // 1MiB

// encodeChunkSize is the size of each chunk handed to the streaming
// encoder; kept a multiple of 3 so no chunk boundary falls mid base64
// group.
const encodeChunkSize = 3 * (1 << 15)

// toDataURL base64-encodes content as a data: URL. Small buffers use the
// direct encoder; buffers over chunkedEncodeThreshold are streamed
// through base64.NewEncoder in fixed-size chunks straight into the
// builder, never materializing the whole encoded payload as a separate
// string.
func toDataURL(content []byte, mimeType string) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mimeType) + base64.StdEncoding.EncodedLen(len(content)))
	b.WriteString("data:")
	b.WriteString(mimeType)
	b.WriteString(";base64,")

	if len(content) <= chunkedEncodeThreshold {
		b.WriteString(base64.StdEncoding.EncodeToString(content))
		return b.String()
	}

	enc := base64.NewEncoder(base64.StdEncoding, &b)
	for offset := 0; offset < len(content); offset += encodeChunkSize {
		end := offset + encodeChunkSize
		if end > len(content) {
			end = len(content)
		}
		_, _ = enc.Write(content[offset:end])
	}
	_ = enc.Close()
	return b.String()
}

// classifyError turns a raw openai-go error into a model.OCRError,
// treating 429 and 5xx as transient and everything else as permanent.
func classifyError(err error) error {
	var apiErr *openai.Error
	if ok := asOpenAIError(err, &apiErr); ok {
		if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500 {
			return model.NewOCRError(model.OCRErrorTransient, "upstream OCR call failed", err)
		}
		return model.NewOCRError(model.OCRErrorPermanent, "upstream OCR call rejected", err)
	}
	return model.NewOCRError(model.OCRErrorTransient, "OCR call failed", err)
}

func asOpenAIError(err error, target **openai.Error) bool {
	apiErr, ok := err.(*openai.Error)
	if !ok {
		return false
	}
	*target = apiErr
	return true
}
