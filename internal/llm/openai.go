package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"symptomchecker/internal/config"
)

// OpenAI client implementation. Groq exposes an OpenAI-compatible
// chat-completion endpoint, so the same client works against either.
type OpenAI struct {
	client *openai.Client
	cfg    *config.GroqConfig
}

func NewOpenAI(cfg *config.GroqConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY not set; get a free key at https://console.groq.com")
	}

	// Retries are the caller's decision; the orchestrator must stay
	// retry-transparent, so the SDK's automatic retry is turned off.
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.Endpoint),
		option.WithMaxRetries(0),
	)

	return &OpenAI{
		client: client,
		cfg:    cfg,
	}, nil
}

func (o *OpenAI) Complete(ctx context.Context, systemMessage string, userMessage string, opts ...Option) (*Response, error) {
	// Apply options over configured defaults
	options := &Options{
		Model:       o.cfg.Model,
		Temperature: o.cfg.Temperature,
		MaxTokens:   o.cfg.MaxTokens,
		TopP:        0.9,
	}
	for _, opt := range opts {
		opt(options)
	}

	ctx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	resp, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model: openai.F(options.Model),
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(systemMessage),
				openai.UserMessage(userMessage),
			}),
			Temperature: openai.F(options.Temperature),
			MaxTokens:   openai.F(options.MaxTokens),
			TopP:        openai.F(options.TopP),
		},
	)
	if err != nil {
		return nil, classifyErr(err)
	}

	response := &Response{
		Model: resp.Model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	if response.Model == "" {
		response.Model = options.Model
	}

	if len(resp.Choices) > 0 {
		response.Content = resp.Choices[0].Message.Content
	}

	return response, nil
}
