package llm

import (
	"context"
)

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// StreamEvent is one unit of a streaming completion: either a text
// fragment or an error reported mid-stream. Channel close marks
// end-of-stream.
type StreamEvent struct {
	Text string
	Err  error
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Generate sends a single prompt to the model and returns the full response
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)

	// Stream sends a prompt and returns a channel of incremental
	// fragments. A connection-level failure is returned as the error;
	// failures after the stream has opened arrive as StreamEvent.Err.
	Stream(ctx context.Context, prompt string, options ...Option) (<-chan StreamEvent, error)
}
