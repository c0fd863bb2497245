// Package gate decides whether a navigation to a view may proceed.
//
// Every navigable view declares one RouteClass. Decide is a pure function of
// that class and the session Status; it never issues a redirect while the
// session is still loading, so no view flashes a redirect before the profile
// fetch resolves.
package gate

import "github.com/dmitrijs2005/taskease/internal/common"

// RouteClass tags a view as reachable only with or only without a session.
type RouteClass int

const (
	AuthenticatedOnly RouteClass = iota + 1
	AnonymousOnly
)

func (c RouteClass) String() string {
	switch c {
	case AuthenticatedOnly:
		return "authenticated-only"
	case AnonymousOnly:
		return "anonymous-only"
	default:
		return "unknown"
	}
}

// Status is the part of the session state the gate looks at.
type Status struct {
	Authenticated bool
	Loading       bool
}

// Outcome is the state of a single navigation attempt.
type Outcome int

const (
	Pending Outcome = iota
	Redirect
	Admit
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Redirect:
		return "redirect"
	case Admit:
		return "admit"
	default:
		return "unknown"
	}
}

// Decision is the gate's answer. Target is set only for Redirect.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Entry points used by the gate.
const (
	LoginPath          = common.LoginPath
	DefaultLandingPath = common.TasksPath
)

// Decide admits, denies with a redirect, or holds the navigation while loading.
func Decide(class RouteClass, st Status) Decision {
	if st.Loading {
		return Decision{Outcome: Pending}
	}
	switch {
	case class == AuthenticatedOnly && !st.Authenticated:
		return Decision{Outcome: Redirect, Target: LoginPath}
	case class == AnonymousOnly && st.Authenticated:
		return Decision{Outcome: Redirect, Target: DefaultLandingPath}
	default:
		return Decision{Outcome: Admit}
	}
}
