package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskease/internal/client/client"
)

func (a *App) getStatus() string {
	s := a.session.Snapshot()
	status := a.router.Location()
	switch {
	case s.Loading:
		status += " loading"
	case s.Authenticated():
		status += " " + s.Profile.Name
	}
	return fmt.Sprintf("(%s)", status)
}

// Root greets the user, starts the session in the background and runs the
// REPL until the user exits. The first view is resolved through the gate, so
// a stored credential shows the loading state and then the task list.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, styles.Title.Render("Welcome to TaskEase CLI (type 'help' for commands)"))

	a.checkAPI(ctx)
	go a.session.Start(ctx)

	if err := a.reevaluate(ctx); err != nil {
		fmt.Fprintln(a.out, renderError(err))
	}

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}

// checkAPI warns once at startup when the API cannot be reached. Commands
// still run and report their own errors.
func (a *App) checkAPI(ctx context.Context) {
	err := a.api.Ping(ctx)
	if err == nil {
		return
	}
	a.log.Warn(ctx, "api ping failed", "url", a.config.APIBaseURL, "error", err)
	if errors.Is(err, client.ErrUnavailable) {
		fmt.Fprintln(a.out, styles.Warning.Render("TaskEase API at "+a.config.APIBaseURL+" is unreachable."))
	}
}
