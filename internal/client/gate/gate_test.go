package gate

import (
	"testing"

	"portfolio/internal/client/session"

	"github.com/stretchr/testify/assert"
)

func TestGate_Decide(t *testing.T) {
	g := New("/admin/login")

	tests := []struct {
		status session.Status
		want   Decision
	}{
		{status: session.StatusLoading, want: Decision{Action: Wait}},
		{status: session.StatusAuthenticated, want: Decision{Action: Render}},
		{status: session.StatusUnauthenticated, want: Decision{Action: Redirect, Path: "/admin/login", Replace: true}},
		{status: session.Status(42), want: Decision{Action: Redirect, Path: "/admin/login", Replace: true}},
	}

	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, g.Decide(tc.status))
		})
	}
}

func TestDecide_DefaultLoginPath(t *testing.T) {
	d := Decide(session.StatusUnauthenticated)

	assert.Equal(t, session.DefaultLoginPath, d.Path)
	assert.True(t, d.Replace)
}

func TestGate_FollowsStore(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage(""), nil)
	g := New("")

	assert.Equal(t, Wait, g.Decide(store.Status()).Action)

	_ = store.Login("T")
	assert.Equal(t, Render, g.Decide(store.Status()).Action)

	_ = store.Logout()
	assert.Equal(t, Redirect, g.Decide(store.Status()).Action)
}
