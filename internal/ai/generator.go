// Package ai wraps the hosted generation service behind a small interface so
// the content flows stay agnostic to which model fulfills them.
package ai

import (
	"context"
	"fmt"
)

// ImageInput is an inline image attached to a generation request.
type ImageInput struct {
	MIMEType string
	Data     []byte
}

// Request is one generation call: a rendered prompt plus optional images.
// The model is asked for structured JSON; callers decode and validate the
// returned bytes against their own output shape.
type Request struct {
	Prompt string
	Images []ImageInput
}

// Generator issues a single outstanding call to the generation service.
// There is no retry, no caching, and no partial result: failures surface as
// errors and identical inputs always re-invoke the service.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]byte, error)
}

// GenerationError marks a failed external call or an output that did not
// match the declared shape. Callers surface it as a generic user-facing
// message and may re-invoke manually.
type GenerationError struct {
	Flow string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for %s: %v", e.Flow, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
