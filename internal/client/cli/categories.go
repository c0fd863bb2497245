package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskease/internal/common"
)

func (a *App) Categories(ctx context.Context) error {
	return a.Go(ctx, common.CategoriesPath)
}

func (a *App) listCategories(ctx context.Context) error {
	cs, err := a.categoryService.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderCategories(cs))
	return nil
}

// Category dispatches: category add <name>, category rename <id> <name>,
// category rm <id>.
func (a *App) Category(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: category add|rename|rm", common.ErrInvalidArguments)
	}
	ok, err := a.enter(ctx, common.CategoriesPath)
	if err != nil || !ok {
		return err
	}

	switch args[0] {
	case "add":
		c, err := a.categoryService.Create(ctx, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("Category %q created (id %d).", c.Name, c.ID)))
	case "rename":
		id, err := parseID(args, 1, "category rename <id> <name>")
		if err != nil {
			return err
		}
		c, err := a.categoryService.Rename(ctx, id, strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("Category %d renamed to %q.", c.ID, c.Name)))
	case "rm":
		id, err := parseID(args, 1, "category rm <id>")
		if err != nil {
			return err
		}
		if err := a.categoryService.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("Category %d deleted.", id)))
	default:
		return fmt.Errorf("%w: unknown category command %q", common.ErrInvalidArguments, args[0])
	}
	return nil
}
