package service

import (
	"context"
	"fmt"
)

// FailureKind classifies why a remote generation attempt produced no text.
// Every kind collapses to the same offline fallback; the kind exists for
// logging and tests.
type FailureKind string

const (
	FailureUnavailable FailureKind = "unavailable"
	FailureTransport   FailureKind = "transport"
	FailureAuth        FailureKind = "auth"
	FailureDecode      FailureKind = "decode"
)

// GenerateError is a remote generation failure with its kind attached
type GenerateError struct {
	Kind FailureKind
	Err  error
}

func (e *GenerateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generate: %s", e.Kind)
	}
	return fmt.Sprintf("generate: %s: %v", e.Kind, e.Err)
}

func (e *GenerateError) Unwrap() error { return e.Err }

// Generator issues one prompt to a remote generation service and returns the
// raw text. Implementations return a *GenerateError on any failure.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface
type GeneratorFunc func(ctx context.Context, system, user string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

// failureKind extracts the kind from an error for logging; non-GenerateError
// values count as transport failures.
func failureKind(err error) FailureKind {
	if ge, ok := err.(*GenerateError); ok {
		return ge.Kind
	}
	return FailureTransport
}
