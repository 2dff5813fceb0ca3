package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "portfolio/internal/delivery/context"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const systemInstructionTemplate = `You are a helpful assistant embedded in an engineering portfolio.
Your goal is to answer questions about specific projects based ONLY on the provided context.
Be concise, technical, and focus on explaining the engineering aspects.
Do not mention information outside the context. Project Context:
Title: %s
Description: %s`

type chatService struct {
	chat   service.ChatService
	logger *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Chat   service.ChatService
	Logger *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chat:   params.Chat,
		logger: params.Logger,
	}
}

func (srv *chatService) Ask(ctx context.Context, input *usecase.ChatInput) (string, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return "", domainerrors.ErrValidationFailed.WithMessage("Query is required for AI chat.")
	}

	text, err := srv.chat.Generate(ctx, BuildChatPrompt(input))
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
		if errors.Is(err, service.ErrChatNotConfigured) {
			logger.Error("AI chat requested but no API key is configured")

			return "", errors.WithStack(domainerrors.ErrAIConfiguration)
		}

		logger.Error("AI provider call failed", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrUpstreamService, err.Error())
	}

	return text, nil
}

// BuildChatPrompt grounds the question in the project the visitor is reading.
func BuildChatPrompt(input *usecase.ChatInput) service.ChatPrompt {
	title := strings.TrimSpace(input.ProjectTitle)
	if title == "" {
		title = "Unknown Project"
	}
	description := strings.TrimSpace(input.ProjectDescription)
	if description == "" {
		description = "No description provided."
	}

	return service.ChatPrompt{
		SystemInstruction: fmt.Sprintf(systemInstructionTemplate, title, description),
		Query:             "Question about the project: " + strings.TrimSpace(input.Query),
	}
}
