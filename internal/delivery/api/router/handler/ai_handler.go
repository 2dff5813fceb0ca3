package handler

import (
	"net/http"

	"portfolio/internal/delivery/api/response"
	"portfolio/internal/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AIHandler answers visitor questions about a project.
type AIHandler struct {
	chatUC usecase.ChatUsecase
}

// NewAIHandler is the constructor for AIHandler.
func NewAIHandler(chatUC usecase.ChatUsecase) *AIHandler {
	return &AIHandler{chatUC: chatUC}
}

// ChatContext names the project the question is about.
type ChatContext struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChatRequest is the body of POST /ai/chat.
type ChatRequest struct {
	Query   string      `json:"query" validate:"max=2000"`
	Context ChatContext `json:"context"`
}

// ChatResponse carries the model answer.
type ChatResponse struct {
	Text string `json:"text"`
}

func (h *AIHandler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	text, err := h.chatUC.Ask(c.Request().Context(), &usecase.ChatInput{
		Query:              req.Query,
		ProjectTitle:       req.Context.Title,
		ProjectDescription: req.Context.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ChatResponse{Text: text})
}
