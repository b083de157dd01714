package repository

import (
	"context"
	"errors"
)

// ErrNoChoices is returned when the model answered without any candidate text.
var ErrNoChoices = errors.New("no choices returned")

// ChatRequest is a single system + user exchange with no history.
type ChatRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
}

// AIRepository sends one chat exchange to a model provider and returns the reply text.
type AIRepository interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
	Model() string
}
