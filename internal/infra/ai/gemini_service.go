package ai

import (
	"context"
	"log/slog"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// errEmptyResponse is returned when the model answers without any text part.
var errEmptyResponse = errors.New("AI service returned an unexpected response format")

// generateFunc is the subset of genai.Models used here.
type generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

type geminiChatService struct {
	generate generateFunc
	model    string
	timeout  time.Duration
	logger   *slog.Logger
}

// unconfiguredChatService answers every prompt with ErrChatNotConfigured.
type unconfiguredChatService struct{}

// NewChatService builds the Gemini backed chat service wrapped in an answer
// cache. Without an API key every call fails with service.ErrChatNotConfigured.
func NewChatService(cfg *config.Config, logger *slog.Logger, recorder service.ActivityRecorder) (service.ChatService, error) {
	aiCfg := cfg.AI
	if aiCfg == nil || aiCfg.APIKey == "" {
		logger.Warn("AI API key is not set, chat is disabled")

		return unconfiguredChatService{}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  aiCfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	gemini := &geminiChatService{
		generate: client.Models.GenerateContent,
		model:    aiCfg.Model,
		timeout:  aiCfg.Timeout,
		logger:   logger,
	}

	return NewCachedChatService(gemini, aiCfg.CacheTTL, recorder), nil
}

// Generate sends the query with the project grounding as system instruction.
func (s *geminiChatService) Generate(ctx context.Context, prompt service.ChatPrompt) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: prompt.SystemInstruction}},
		},
	}

	start := time.Now()
	result, err := s.generate(ctx, s.model, genai.Text(prompt.Query), config)
	if err != nil {
		return "", errors.Wrapf(err, "generate content with %s", s.model)
	}

	text := result.Text()
	if text == "" {
		return "", errors.WithStack(errEmptyResponse)
	}

	s.logger.Debug("AI response received",
		slog.String("model", s.model),
		slog.Duration("latency", time.Since(start)),
		slog.Int("length", len(text)),
	)

	return text, nil
}

func (unconfiguredChatService) Generate(context.Context, service.ChatPrompt) (string, error) {
	return "", service.ErrChatNotConfigured
}
