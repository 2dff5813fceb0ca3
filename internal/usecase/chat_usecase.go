package usecase

import "context"

// ChatInput is a visitor question about one project.
type ChatInput struct {
	Query              string
	ProjectTitle       string
	ProjectDescription string
}

// ChatUsecase answers visitor questions grounded in a project description.
type ChatUsecase interface {
	Ask(ctx context.Context, input *ChatInput) (string, error)
}
