package gate

import (
	"strings"

	"github.com/dmitrijs2005/taskease/internal/common"
)

var routes = map[string]RouteClass{
	common.LandingPath:    AnonymousOnly,
	common.LoginPath:      AnonymousOnly,
	common.RegisterPath:   AnonymousOnly,
	common.DashboardPath:  AuthenticatedOnly,
	common.TasksPath:      AuthenticatedOnly,
	common.CategoriesPath: AuthenticatedOnly,
	common.ProfilePath:    AuthenticatedOnly,
}

// Normalize trims whitespace and trailing slashes and adds the leading one.
func Normalize(path string) string {
	p := strings.TrimSpace(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

// ClassOf returns the route class of path. ok is false for unknown paths,
// which render the not-found view without consulting the gate.
func ClassOf(path string) (RouteClass, bool) {
	c, ok := routes[Normalize(path)]
	return c, ok
}

// IsAuthEntry reports whether path is one of the anonymous-only entry points
// (login, register) that must never be redirected to login again.
func IsAuthEntry(path string) bool {
	p := Normalize(path)
	return p == common.LoginPath || p == common.RegisterPath
}
