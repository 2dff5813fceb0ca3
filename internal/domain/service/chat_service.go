package service

import (
	"context"
	"errors"
)

// ErrChatNotConfigured is returned when no model API key is available.
var ErrChatNotConfigured = errors.New("chat provider is not configured")

// ChatPrompt is a single grounded question about one project.
type ChatPrompt struct {
	SystemInstruction string
	Query             string
}

// ChatService answers questions through a hosted language model.
type ChatService interface {
	Generate(ctx context.Context, prompt ChatPrompt) (string, error)
}
