package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Me(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"6f1c2c4e-7d0b-4b7e-9c55-0a3a7f3a2b11","username":"admin","email":"a@x.com"}`))
	}))
	defer srv.Close()

	identity, err := New(srv.URL+"/api/").Me(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "admin", identity.Username)
	assert.Equal(t, "6f1c2c4e-7d0b-4b7e-9c55-0a3a7f3a2b11", identity.ID.String())
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"6f1c2c4e-7d0b-4b7e-9c55-0a3a7f3a2b11","username":"admin","email":"a@x.com","token":"T","message":"Login successful"}`))
	}))
	defer srv.Close()

	result, err := New(srv.URL).Login(context.Background(), "a@x.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "T", result.Token)
	assert.Equal(t, "admin", result.Username)
}

func TestClient_ErrorClasses(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		transient bool
		unauth    bool
		message   string
	}{
		{name: "401 is unauthenticated", status: http.StatusUnauthorized, body: `{"message":"Not authorized"}`, unauth: true},
		{name: "400 is an api error", status: http.StatusBadRequest, body: `{"message":"Invalid Skill Category ID"}`, message: "Invalid Skill Category ID"},
		{name: "404 without body", status: http.StatusNotFound, message: "request failed"},
		{name: "503 is transient", status: http.StatusServiceUnavailable, body: `{"message":"down"}`, transient: true, message: "down"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).Analytics(context.Background(), "tok")

			require.Error(t, err)
			assert.Equal(t, tc.unauth, errors.Is(err, ErrUnauthenticated))
			assert.Equal(t, tc.transient, errors.Is(err, ErrTransient))
			if tc.message != "" {
				apiErr, ok := errors.AsType[*Error](err)
				require.True(t, ok)
				assert.Equal(t, tc.status, apiErr.Status)
				assert.Equal(t, tc.message, apiErr.Message)
			}
		})
	}
}

func TestClient_TimeoutIsTransient(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).Me(context.Background(), "tok")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransient))
	assert.False(t, errors.Is(err, ErrUnauthenticated))
}

func TestClient_ConnectionRefusedIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).Projects(context.Background())

	assert.True(t, errors.Is(err, ErrTransient))
}
