package generator

import (
	"context"
	"net/http"
	"strings"

	"github.com/npgrosser/houston/pkg/config"
	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/logging"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"
)

// Sampling parameters sent with every request
const (
	Temperature = 0.5
	TopP        = 1.0
)

// Generator produces a script for a specification
type Generator interface {
	Generate(ctx context.Context, spec ScriptSpecification) (string, error)
}

// Option configures an OpenAIGenerator
type Option func(*options)

type options struct {
	httpClient     *http.Client
	requestOptions []option.RequestOption
}

// WithHTTPClient sets the HTTP client used for API calls
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithRequestOptions appends raw openai-go request options
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(o *options) {
		o.requestOptions = append(o.requestOptions, opts...)
	}
}

// OpenAIGenerator generates scripts with the OpenAI chat completions API
type OpenAIGenerator struct {
	client    openai.Client
	model     string
	maxTokens int
	logger    zerolog.Logger
}

// NewOpenAIGenerator creates a generator for cfg. The API key is expected
// to be resolved already.
func NewOpenAIGenerator(cfg config.OpenAIConfig, opts ...Option) *OpenAIGenerator {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	oaOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey.Reveal()),
	}
	if cfg.BaseURL != "" {
		oaOpts = append(oaOpts, option.WithBaseURL(cfg.BaseURL))
	}
	if o.httpClient != nil {
		oaOpts = append(oaOpts, option.WithHTTPClient(o.httpClient))
	}
	oaOpts = append(oaOpts, o.requestOptions...)

	return &OpenAIGenerator{
		client:    openai.NewClient(oaOpts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logging.GetLogger("generator"),
	}
}

// Model returns the model used for generation
func (g *OpenAIGenerator) Model() string {
	return g.model
}

// Generate implements Generator
func (g *OpenAIGenerator) Generate(ctx context.Context, spec ScriptSpecification) (string, error) {
	done := logging.LogOperationStart(g.logger, "generate script")
	defer done()

	prompt := NewChatPrompt(spec)
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(Temperature),
		TopP:        openai.Float(TopP),
		N:           openai.Int(1),
	}
	if g.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(g.maxTokens))
	}

	g.logger.Debug().
		Str("model", g.model).
		Str("lang", spec.Lang).
		Int("requirements", len(spec.Requirements)).
		Msg("Requesting chat completion")

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrGenerate, "chat completion request failed").
			WithDetail("model", g.model)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New(errors.ErrGenerate, "model returned no choices").
			WithDetail("model", g.model)
	}

	script := strings.TrimSpace(completion.Choices[0].Message.Content)
	g.logger.Debug().
		Int64("total_tokens", completion.Usage.TotalTokens).
		Int("script_length", len(script)).
		Msg("Received script")

	return script, nil
}
