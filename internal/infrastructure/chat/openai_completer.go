package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/suhailre/suhail/internal/domain/port"
)

// Config holds completion parameters.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
	HTTPClient  *http.Client
}

// OpenAICompleter implements port.ChatCompleter against an OpenAI-compatible
// chat completions endpoint.
type OpenAICompleter struct {
	client      *openai.Client
	model       string
	timeout     time.Duration
	maxTokens   int
	temperature float32
}

// NewOpenAICompleter creates a completer. An empty BaseURL uses the public
// OpenAI endpoint.
func NewOpenAICompleter(cfg Config) *OpenAICompleter {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}
	return &OpenAICompleter{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
	}
}

// Complete sends messages and classifies the result. It never returns a
// partial reply: Text is set only for ChatOK.
func (c *OpenAICompleter) Complete(ctx context.Context, messages []port.ChatMessage) port.ChatResult {
	ctx, span := otel.Tracer("suhail/chat").Start(ctx, "chat.complete")
	defer span.End()
	span.SetAttributes(attribute.String("chat.model", c.model), attribute.Int("chat.messages", len(messages)))

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err == nil && len(resp.Choices) == 0 {
		err = errNoChoices
	}
	if err != nil {
		result := classify(ctx, err)
		span.SetStatus(codes.Error, string(result.Outcome))
		span.RecordError(err)
		return result
	}

	span.SetAttributes(attribute.Int("chat.completion_tokens", resp.Usage.CompletionTokens))
	return port.ChatResult{Outcome: port.ChatOK, Text: resp.Choices[0].Message.Content, StatusCode: http.StatusOK}
}

var errNoChoices = errors.New("completion has no choices")

func classify(ctx context.Context, err error) port.ChatResult {
	var (
		apiErr    *openai.APIError
		reqErr    *openai.RequestError
		netErr    net.Error
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return port.ChatResult{Outcome: port.ChatTimeout, Err: err}
	case errors.As(err, &apiErr):
		return port.ChatResult{Outcome: port.ChatHTTPError, Err: err, StatusCode: apiErr.HTTPStatusCode}
	case errors.As(err, &reqErr):
		return port.ChatResult{Outcome: port.ChatHTTPError, Err: err, StatusCode: reqErr.HTTPStatusCode}
	case errors.As(err, &netErr) && netErr.Timeout():
		return port.ChatResult{Outcome: port.ChatTimeout, Err: err}
	case errors.Is(err, errNoChoices), errors.As(err, &syntaxErr), errors.As(err, &typeErr),
		errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return port.ChatResult{Outcome: port.ChatParseError, Err: err, StatusCode: http.StatusOK}
	default:
		return port.ChatResult{Outcome: port.ChatTransport, Err: err}
	}
}
