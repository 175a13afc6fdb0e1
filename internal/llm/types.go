package llm

import "context"

type Provider interface {
	// Complete sends a system+user prompt pair and returns the model's reply
	Complete(ctx context.Context, systemMessage string, userMessage string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
	TopP        float64
}

type Response struct {
	Content string
	Model   string
	Usage   Usage
}
