package generator

import (
	"context"
	"fmt"

	"github.com/quizmaster/backend/internal/domain/quiz"
)

// Generator turns user-supplied content into quiz data.
// Implementations may call an LLM or return canned results (for tests).
type Generator interface {
	// Generate builds a quiz from free text and/or a base64-encoded image.
	// imageBase64 may be empty.
	Generate(ctx context.Context, text, imageBase64 string) (*quiz.QuizData, error)
}

// GenerateError is returned when generation fails so the caller can
// distinguish between "model produced bad data" and "model was unreachable."
// Callers surface it unchanged and do not retry.
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}
