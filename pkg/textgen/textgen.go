// Package textgen defines the contract of the external text-generation
// service the ticket assistant forwards prompts to.
package textgen

import (
	"context"
	"errors"
)

var (
	// ErrUnexpectedStatus is returned when the service answers with a non-2xx
	// status.
	ErrUnexpectedStatus = errors.New("unexpected status from text-generation service")

	// ErrMalformedResponse is returned when the body cannot be decoded or does
	// not carry candidates[0].content.parts[0].text.
	ErrMalformedResponse = errors.New("malformed text-generation response")
)

// Generator submits a single-turn prompt and returns the generated text.
// Implementations do not retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
