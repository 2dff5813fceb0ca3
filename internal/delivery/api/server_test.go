package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/config"
	apimiddleware "portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/router"
	"portfolio/internal/delivery/api/router/handler"
	"portfolio/internal/infra/auth"
	"portfolio/internal/infra/metrics"
	"portfolio/internal/infra/persistence/database"
	mockUsecase "portfolio/internal/mocks/usecase"
	"portfolio/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = config.EnvTest
	cfg.HTTP.BasePath = "/api"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Token = "test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4, TokenTTL: time.Hour}
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	return cfg
}

// newTestServer wires the real auth stack on an in-memory database. The
// content use cases are mocks that the auth scenario never reaches.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.DiscardHandler)

	db, err := database.OpenSQLite(":memory:", logger, false)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	tokens, err := auth.NewJWTService(cfg, logger)
	require.NoError(t, err)

	credentials := impl.NewCredentialStore(impl.CredentialStoreParams{
		UserRepo: database.NewUserRepository(db),
		Hasher:   auth.NewBcryptHasher(cfg),
	})
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		Credentials:  credentials,
		TokenService: tokens,
		Logger:       logger,
	})

	m, err := metrics.NewWithRegistry(prometheus.NewRegistry())
	require.NoError(t, err)

	return newEcho(cfg, logger, m, router.RouterParams{
		AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		ProjectHandler:   handler.NewProjectHandler(handler.ProjectHandlerParams{ProjectUC: mockUsecase.NewMockProjectUsecase(t), Logger: logger}),
		BlogHandler:      handler.NewBlogHandler(mockUsecase.NewMockBlogUsecase(t)),
		SkillHandler:     handler.NewSkillHandler(mockUsecase.NewMockSkillUsecase(t)),
		ContactHandler:   handler.NewContactHandler(mockUsecase.NewMockContactUsecase(t)),
		AnalyticsHandler: handler.NewAnalyticsHandler(mockUsecase.NewMockAnalyticsUsecase(t)),
		AIHandler:        handler.NewAIHandler(mockUsecase.NewMockChatUsecase(t)),
		AuthMiddleware:   apimiddleware.NewAuthMiddleware(authUC),
		Config:           cfg,
	})
}

func call(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_AuthScenario(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodPost, "/api/auth/register",
		`{"username":"admin","email":"a@x.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered handler.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	require.NotEmpty(t, registered.Token)
	assert.Equal(t, "admin", registered.Username)

	rec = call(e, http.MethodGet, "/api/auth/me", "", registered.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	var me map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "admin", me["username"])
	assert.Equal(t, "a@x.com", me["email"])
	assert.Equal(t, registered.ID.String(), me["id"])

	rec = call(e, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(e, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var failed map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failed))
	assert.Equal(t, "Invalid email or password", failed["message"])

	rec = call(e, http.MethodPost, "/api/auth/login", `{"email":"A@X.com ","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var loggedIn handler.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))
	assert.Equal(t, "Login successful", loggedIn.Message)
	assert.Equal(t, registered.ID, loggedIn.ID)
}

func TestServer_DuplicateRegistration(t *testing.T) {
	e := newTestServer(t)

	body := `{"username":"admin","email":"a@x.com","password":"secret123"}`
	require.Equal(t, http.StatusCreated, call(e, http.MethodPost, "/api/auth/register", body, "").Code)

	rec := call(e, http.MethodPost, "/api/auth/register",
		`{"username":"other","email":"A@x.com","password":"secret123"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestServer_RejectsTamperedToken(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodPost, "/api/auth/register",
		`{"username":"admin","email":"a@x.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var registered handler.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	for _, token := range []string{"garbage", registered.Token + "x"} {
		rec = call(e, http.MethodDelete, "/api/projects/demo", "", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Not authorized"`)
	}
}

func TestServer_OperationalRoutes(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(e, http.MethodGet, "/api/unknown", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(e, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_server_requests_total")
}
