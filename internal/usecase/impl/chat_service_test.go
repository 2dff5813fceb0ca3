package impl

import (
	"context"
	"testing"

	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	mockSvc "portfolio/internal/mocks/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestChatService(t *testing.T) (usecase.ChatUsecase, *mockSvc.MockChatService) {
	chat := mockSvc.NewMockChatService(t)

	return NewChatService(ChatServiceParams{Chat: chat, Logger: newDiscardLogger()}), chat
}

func TestChatService_Ask(t *testing.T) {
	ctx := context.Background()

	t.Run("grounds the prompt", func(t *testing.T) {
		svc, chat := createTestChatService(t)

		chat.EXPECT().Generate(ctx, mock.MatchedBy(func(p service.ChatPrompt) bool {
			return p.Query == "Question about the project: which broker?" &&
				assert.Contains(t, p.SystemInstruction, "Title: IoT Hub") &&
				assert.Contains(t, p.SystemInstruction, "Description: Sensor gateway")
		})).Return("Mosquitto", nil)

		text, err := svc.Ask(ctx, &usecase.ChatInput{Query: " which broker? ", ProjectTitle: "IoT Hub", ProjectDescription: "Sensor gateway"})
		require.NoError(t, err)
		assert.Equal(t, "Mosquitto", text)
	})

	t.Run("query required", func(t *testing.T) {
		svc, _ := createTestChatService(t)

		_, err := svc.Ask(ctx, &usecase.ChatInput{Query: "  "})
		requireAppError(t, err, domainerrors.ErrValidationFailed, "Query is required for AI chat.")
	})

	t.Run("missing key", func(t *testing.T) {
		svc, chat := createTestChatService(t)

		chat.EXPECT().Generate(ctx, mock.Anything).Return("", service.ErrChatNotConfigured)

		_, err := svc.Ask(ctx, &usecase.ChatInput{Query: "q"})
		requireAppError(t, err, domainerrors.ErrAIConfiguration, "AI service configuration error. API key is missing.")
	})

	t.Run("upstream failure", func(t *testing.T) {
		svc, chat := createTestChatService(t)

		chat.EXPECT().Generate(ctx, mock.Anything).Return("", errors.New("429 quota"))

		_, err := svc.Ask(ctx, &usecase.ChatInput{Query: "q"})
		requireAppError(t, err, domainerrors.ErrUpstreamService, "Failed to communicate with AI service.")
	})
}

func TestBuildChatPrompt_Defaults(t *testing.T) {
	prompt := BuildChatPrompt(&usecase.ChatInput{Query: "q"})

	assert.Contains(t, prompt.SystemInstruction, "Title: Unknown Project")
	assert.Contains(t, prompt.SystemInstruction, "Description: No description provided.")
}
