// Package gate decides what an admin view shows for a session status.
package gate

import "portfolio/internal/client/session"

// Action is what the caller must do.
type Action int

const (
	// Wait shows a neutral loading state and nothing else.
	Wait Action = iota
	// Render shows the protected content.
	Render
	// Redirect navigates to Decision.Path.
	Redirect
)

func (a Action) String() string {
	switch a {
	case Wait:
		return "wait"
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision is the outcome for one status.
type Decision struct {
	Action Action
	Path   string
	// Replace means the redirect replaces the current history entry, so going
	// back does not land on the protected view again.
	Replace bool
}

// Gate maps session statuses to decisions.
type Gate struct {
	loginPath string
}

// New returns a gate that sends unauthenticated users to loginPath.
func New(loginPath string) *Gate {
	if loginPath == "" {
		loginPath = session.DefaultLoginPath
	}

	return &Gate{loginPath: loginPath}
}

// Decide is total over session.Status; unknown values are treated as unauthenticated.
func (g *Gate) Decide(status session.Status) Decision {
	switch status {
	case session.StatusLoading:
		return Decision{Action: Wait}
	case session.StatusAuthenticated:
		return Decision{Action: Render}
	default:
		return Decision{Action: Redirect, Path: g.loginPath, Replace: true}
	}
}

// Decide uses the default login path.
func Decide(status session.Status) Decision {
	return New("").Decide(status)
}
