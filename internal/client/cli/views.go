package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskease/internal/client/gate"
	"github.com/dmitrijs2005/taskease/internal/common"
)

// navigate resolves path through the gate, waiting while the session loads,
// and returns the path the router ended on.
func (a *App) navigate(ctx context.Context, path string) (string, error) {
	a.announceLoading()
	return a.router.Resolve(ctx, path, a.session.Status, a.session.WaitSettled)
}

func (a *App) announceLoading() {
	if a.session.Status().Loading {
		fmt.Fprintln(a.out, styles.Muted.Render("Loading session..."))
	}
}

// enter navigates to path and reports whether it was admitted there. When
// the gate redirected, the view it landed on is shown instead.
func (a *App) enter(ctx context.Context, path string) (bool, error) {
	landed, err := a.navigate(ctx, path)
	if err != nil {
		return false, err
	}
	if landed == gate.Normalize(path) {
		return true, nil
	}
	return false, a.show(ctx, landed)
}

// reevaluate asks the gate again about the current location, e.g. after a
// login made an anonymous-only view unreachable, and shows where it lands.
func (a *App) reevaluate(ctx context.Context) error {
	a.announceLoading()
	landed, err := a.router.ResolveCurrent(ctx, a.session.Status, a.session.WaitSettled)
	if err != nil {
		return err
	}
	return a.show(ctx, landed)
}

// Go navigates to path and shows the view it lands on.
func (a *App) Go(ctx context.Context, path string) error {
	landed, err := a.navigate(ctx, path)
	if err != nil {
		return err
	}
	return a.show(ctx, landed)
}

func (a *App) show(ctx context.Context, path string) error {
	switch path {
	case common.LandingPath:
		fmt.Fprintln(a.out, renderLanding())
	case common.LoginPath:
		fmt.Fprintln(a.out, "Type 'login' to sign in or 'register' to create an account.")
	case common.RegisterPath:
		fmt.Fprintln(a.out, "Type 'register' to create an account or 'login' if you already have one.")
	case common.DashboardPath:
		return a.showDashboard(ctx)
	case common.TasksPath:
		return a.listTasks(ctx, nil)
	case common.CategoriesPath:
		return a.listCategories(ctx)
	case common.ProfilePath:
		return a.WhoAmI(ctx)
	default:
		fmt.Fprintln(a.out, styles.Warning.Render("404: nothing at "+path+". Try 'go /tasks'."))
	}
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	return a.Go(ctx, common.DashboardPath)
}

func (a *App) showDashboard(ctx context.Context) error {
	d, err := a.dashboardService.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderDashboard(d))
	return nil
}
