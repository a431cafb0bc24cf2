// Package guard gates entry points on the session state. One guard type
// serves every variant; the difference between a protected area, an
// admin area, and a public-only area is just the requirement it is
// parameterized with.
package guard

import "github.com/mohammadmehrani/CAD/internal/session"

// Requirement is the capability a gated entry point demands.
type Requirement int

const (
	// SignedIn admits any authenticated session.
	SignedIn Requirement = iota
	// Admin admits only authenticated sessions with the admin role.
	Admin
	// Guest admits only unauthenticated sessions (login/register pages).
	Guest
)

// Verdict is the outcome of a guard check.
type Verdict int

const (
	// Wait means the session is still resolving; show a loading state
	// and do not navigate yet.
	Wait Verdict = iota
	// Allow means the gated content may render.
	Allow
	// Redirect means the visitor must be sent to Decision.Target.
	Redirect
)

// Decision is what a check produced.
type Decision struct {
	Verdict Verdict
	Target  string
}

// Guard derives decisions from a session store. It holds no state of its
// own.
type Guard struct {
	session *session.Store
}

// New returns a guard over the given session.
func New(s *session.Store) *Guard {
	return &Guard{session: s}
}

// Check evaluates req against the current session state.
func (g *Guard) Check(req Requirement) Decision {
	if g.session.Loading() {
		return Decision{Verdict: Wait}
	}

	authenticated := g.session.Authenticated()

	switch req {
	case Guest:
		if authenticated {
			return Decision{Verdict: Redirect, Target: session.TargetDashboard}
		}
		return Decision{Verdict: Allow}
	case Admin:
		if !authenticated {
			return Decision{Verdict: Redirect, Target: session.TargetLogin}
		}
		if !g.session.IsAdmin() {
			return Decision{Verdict: Redirect, Target: session.TargetDashboard}
		}
		return Decision{Verdict: Allow}
	default: // SignedIn
		if !authenticated {
			return Decision{Verdict: Redirect, Target: session.TargetLogin}
		}
		return Decision{Verdict: Allow}
	}
}
