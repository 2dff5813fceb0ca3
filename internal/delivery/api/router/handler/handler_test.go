package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio/config"
	apimiddleware "portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/response"
	"portfolio/internal/delivery/api/validator"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	mockUsecase "portfolio/internal/mocks/usecase"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Env = config.EnvTest

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.DiscardHandler), cfg).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler(t *testing.T) {
	identity := entity.Identity{ID: uuid.New(), Username: "admin", Email: "a@x.com"}
	output := &usecase.AuthOutput{Identity: identity, Token: "signed-token"}

	setup := func(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: slog.New(slog.DiscardHandler)})

		e := newTestEcho()
		e.POST("/auth/register", h.Register)
		e.POST("/auth/login", h.Login)
		e.GET("/auth/me", h.Me, func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetIdentity(c, &identity)

				return next(c)
			}
		})

		return e, authUC
	}

	t.Run("register returns 201 with token", func(t *testing.T) {
		e, authUC := setup(t)
		authUC.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{Username: "admin", Email: "a@x.com", Password: "secret123"}).
			Return(output, nil).Once()

		rec := doJSON(e, http.MethodPost, "/auth/register",
			`{"username":"admin","email":"a@x.com","password":"secret123"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, identity.ID, body.ID)
		assert.Equal(t, "signed-token", body.Token)
		assert.Empty(t, body.Message)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("register rejects malformed email before the use case", func(t *testing.T) {
		e, _ := setup(t)

		rec := doJSON(e, http.MethodPost, "/auth/register",
			`{"username":"admin","email":"not-an-email","password":"secret123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "Please fill a valid email address", body.Message)
		assert.Equal(t, domainerrors.CodeValidation, body.Code)
	})

	t.Run("register surfaces duplicate user", func(t *testing.T) {
		e, authUC := setup(t)
		authUC.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)).Once()

		rec := doJSON(e, http.MethodPost, "/auth/register",
			`{"username":"admin","email":"a@x.com","password":"secret123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "User already exists", decodeError(t, rec).Message)
	})

	t.Run("login returns token and message", func(t *testing.T) {
		e, authUC := setup(t)
		authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "secret123"}).
			Return(output, nil).Once()

		rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"secret123"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var body AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Login successful", body.Message)
		assert.Equal(t, "admin", body.Username)
	})

	t.Run("login failure is 401", func(t *testing.T) {
		e, authUC := setup(t)
		authUC.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

		rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid email or password", decodeError(t, rec).Message)
	})

	t.Run("malformed body is a validation error", func(t *testing.T) {
		e, _ := setup(t)

		rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, rec).Message)
	})

	t.Run("me returns attached identity", func(t *testing.T) {
		e, _ := setup(t)

		rec := doJSON(e, http.MethodGet, "/auth/me", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body entity.Identity
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, identity, body)
	})
}

func TestProjectHandler(t *testing.T) {
	setup := func(t *testing.T) (*echo.Echo, *mockUsecase.MockProjectUsecase) {
		projectUC := mockUsecase.NewMockProjectUsecase(t)
		h := NewProjectHandler(ProjectHandlerParams{ProjectUC: projectUC, Logger: slog.New(slog.DiscardHandler)})

		e := newTestEcho()
		e.GET("/projects", h.List)
		e.GET("/projects/:slug", h.Get)
		e.GET("/projects/:slug/qr", h.QRCode)
		e.POST("/projects", h.Create)
		e.PUT("/projects/:slug", h.Update)
		e.DELETE("/projects/:slug", h.Delete)

		return e, projectUC
	}

	t.Run("create passes unknown demo type through to the use case", func(t *testing.T) {
		e, projectUC := setup(t)
		projectUC.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in *usecase.ProjectInput) bool {
				return in.InteractiveDemo != nil && in.InteractiveDemo.Type == "Hologram" &&
					*in.Slug == "iot-hub" && len(in.EngineeringDecisions) == 1
			})).
			Return(nil, domainerrors.ErrValidationFailed.WithMessage("Invalid interactive demo type 'Hologram'")).Once()

		rec := doJSON(e, http.MethodPost, "/projects", `{
			"title":"IoT Hub","slug":"iot-hub","category":"IoT",
			"shortDescription":"s","fullDescription":"f","techStack":["Go"],
			"engineeringDecisions":[{"tool":"MQTT","reason":"low bandwidth"}],
			"interactiveDemo":{"type":"Hologram"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid interactive demo type 'Hologram'", decodeError(t, rec).Message)
	})

	t.Run("create rejects decision without reason", func(t *testing.T) {
		e, _ := setup(t)

		rec := doJSON(e, http.MethodPost, "/projects", `{"engineeringDecisions":[{"tool":"MQTT"}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "reason is required", decodeError(t, rec).Message)
	})

	t.Run("update leaves absent fields nil", func(t *testing.T) {
		e, projectUC := setup(t)
		updated := &entity.Project{ID: uuid.New(), Slug: "iot-hub", Title: "Renamed"}
		projectUC.EXPECT().
			Update(mock.Anything, "iot-hub", mock.MatchedBy(func(in *usecase.ProjectInput) bool {
				return in.Title != nil && *in.Title == "Renamed" && in.Slug == nil &&
					in.TechStack == nil && in.InteractiveDemo == nil
			})).
			Return(updated, nil).Once()

		rec := doJSON(e, http.MethodPut, "/projects/iot-hub", `{"title":"Renamed"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title":"Renamed"`)
	})

	t.Run("get maps not found", func(t *testing.T) {
		e, projectUC := setup(t)
		projectUC.EXPECT().Get(mock.Anything, "missing").
			Return(nil, domainerrors.ErrNotFound.WithMessage("Project not found")).Once()

		rec := doJSON(e, http.MethodGet, "/projects/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Project not found", decodeError(t, rec).Message)
	})

	t.Run("qr code is a png", func(t *testing.T) {
		e, projectUC := setup(t)
		png := []byte{0x89, 'P', 'N', 'G'}
		projectUC.EXPECT().QRCode(mock.Anything, "iot-hub").Return(png, nil).Once()

		rec := doJSON(e, http.MethodGet, "/projects/iot-hub/qr", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("delete acknowledges", func(t *testing.T) {
		e, projectUC := setup(t)
		projectUC.EXPECT().Delete(mock.Anything, "iot-hub").Return(nil).Once()

		rec := doJSON(e, http.MethodDelete, "/projects/iot-hub", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Project removed"}`, rec.Body.String())
	})
}

func TestBlogAndSkillHandlers(t *testing.T) {
	blogUC := mockUsecase.NewMockBlogUsecase(t)
	skillUC := mockUsecase.NewMockSkillUsecase(t)
	blog := NewBlogHandler(blogUC)
	skills := NewSkillHandler(skillUC)

	e := newTestEcho()
	e.POST("/blog", blog.Create)
	e.DELETE("/blog/:slug", blog.Delete)
	e.PUT("/skills/:id", skills.Update)
	e.GET("/skills/:id", skills.Get)

	t.Run("blog create", func(t *testing.T) {
		post := &entity.BlogPost{ID: uuid.New(), Slug: "hello"}
		blogUC.EXPECT().Create(mock.Anything, &usecase.BlogPostInput{
			Title: "Hello", Slug: "hello", Category: "Go", Excerpt: "e", MarkdownContent: "# Hi",
		}).Return(post, nil).Once()

		rec := doJSON(e, http.MethodPost, "/blog",
			`{"title":"Hello","slug":"hello","category":"Go","excerpt":"e","markdownContent":"# Hi"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("blog delete", func(t *testing.T) {
		blogUC.EXPECT().Delete(mock.Anything, "hello").Return(nil).Once()

		rec := doJSON(e, http.MethodDelete, "/blog/hello", "")

		assert.JSONEq(t, `{"message":"Blog post removed"}`, rec.Body.String())
	})

	t.Run("skill update forwards raw id", func(t *testing.T) {
		category := &entity.SkillCategory{ID: uuid.New(), Category: "Languages", Skills: []string{"Go"}}
		skillUC.EXPECT().Update(mock.Anything, "abc", &usecase.SkillCategoryInput{
			Category: "Languages", Skills: []string{"Go"},
		}).Return(category, nil).Once()

		rec := doJSON(e, http.MethodPut, "/skills/abc", `{"category":"Languages","skills":["Go"]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("skill get with invalid id", func(t *testing.T) {
		skillUC.EXPECT().Get(mock.Anything, "abc").
			Return(nil, domainerrors.ErrValidationFailed.WithMessage("Invalid Skill Category ID")).Once()

		rec := doJSON(e, http.MethodGet, "/skills/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid Skill Category ID", decodeError(t, rec).Message)
	})
}

func TestContactHandler_Submit(t *testing.T) {
	contactUC := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(contactUC)

	e := newTestEcho()
	e.POST("/contact", h.Submit)

	t.Run("acknowledges", func(t *testing.T) {
		contactUC.EXPECT().Submit(mock.Anything, &usecase.ContactInput{
			Name: "Ada", Email: "ada@example.com", Message: "Hello",
		}).Return(&entity.ContactMessage{ID: uuid.New()}, nil).Once()

		rec := doJSON(e, http.MethodPost, "/contact", `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Message received successfully!"}`, rec.Body.String())
	})

	t.Run("rejects bad email", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/contact", `{"name":"Ada","email":"ada@","message":"Hello"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please fill a valid email address", decodeError(t, rec).Message)
	})
}

func TestAnalyticsHandler(t *testing.T) {
	analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)
	h := NewAnalyticsHandler(analyticsUC)

	e := newTestEcho()
	e.POST("/analytics/track", h.TrackView)
	e.GET("/analytics/details", h.Details)

	t.Run("track", func(t *testing.T) {
		analyticsUC.EXPECT().TrackView(mock.Anything, "p-1").Return(nil).Once()

		rec := doJSON(e, http.MethodPost, "/analytics/track", `{"projectId":"p-1"}`)

		assert.JSONEq(t, `{"message":"View tracked"}`, rec.Body.String())
	})

	t.Run("details", func(t *testing.T) {
		stats := []*entity.ProjectViewStat{{ProjectID: uuid.New(), Title: "A", Slug: "a", ViewCount: 3}}
		analyticsUC.EXPECT().ProjectStats(mock.Anything).Return(stats, nil).Once()

		rec := doJSON(e, http.MethodGet, "/analytics/details", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"viewCount":3`)
	})
}

func TestAIHandler_Chat(t *testing.T) {
	chatUC := mockUsecase.NewMockChatUsecase(t)
	h := NewAIHandler(chatUC)

	e := newTestEcho()
	e.POST("/ai/chat", h.Chat)

	t.Run("answers", func(t *testing.T) {
		chatUC.EXPECT().Ask(mock.Anything, &usecase.ChatInput{
			Query: "Why MQTT?", ProjectTitle: "IoT Hub", ProjectDescription: "Sensors",
		}).Return("Because it is light.", nil).Once()

		rec := doJSON(e, http.MethodPost, "/ai/chat",
			`{"query":"Why MQTT?","context":{"title":"IoT Hub","description":"Sensors"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"text":"Because it is light."}`, rec.Body.String())
	})

	t.Run("missing key is a 500 with message", func(t *testing.T) {
		chatUC.EXPECT().Ask(mock.Anything, mock.Anything).
			Return("", errors.WithStack(domainerrors.ErrAIConfiguration)).Once()

		rec := doJSON(e, http.MethodPost, "/ai/chat", `{"query":"hi"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "AI service configuration error. API key is missing.", body.Message)
		assert.Equal(t, domainerrors.CodeUpstreamService, body.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
