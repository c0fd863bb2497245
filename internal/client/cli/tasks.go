package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskease/internal/client/models"
	"github.com/dmitrijs2005/taskease/internal/client/services"
	"github.com/dmitrijs2005/taskease/internal/common"
)

// parseTaskQuery reads status=, sort= and order= tokens; everything else is
// the search text.
func parseTaskQuery(args []string) (models.TaskQuery, error) {
	var (
		q      models.TaskQuery
		search []string
	)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			search = append(search, arg)
			continue
		}
		switch key {
		case "status":
			st, err := models.ParseTaskStatus(value)
			if err != nil {
				return q, fmt.Errorf("%w: %v", common.ErrInvalidArguments, err)
			}
			q.Status = st
		case "sort":
			q.SortBy = value
		case "order":
			q.SortOrder = value
		default:
			search = append(search, arg)
		}
	}
	q.Search = strings.Join(search, " ")
	return q, nil
}

func parseID(args []string, i int, usage string) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("%w: usage: %s", common.ErrInvalidArguments, usage)
	}
	id, err := strconv.Atoi(args[i])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not an id; usage: %s", common.ErrInvalidArguments, args[i], usage)
	}
	return id, nil
}

// Tasks lists tasks, optionally filtered: tasks [status=Done] [sort=deadline] [order=asc] [search words].
func (a *App) Tasks(ctx context.Context, args []string) error {
	ok, err := a.enter(ctx, common.TasksPath)
	if err != nil || !ok {
		return err
	}
	return a.listTasks(ctx, args)
}

func (a *App) listTasks(ctx context.Context, args []string) error {
	q, err := parseTaskQuery(args)
	if err != nil {
		return err
	}
	tasks, err := a.taskService.List(ctx, q)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderTasks(tasks))
	return nil
}

// Task dispatches the task subcommands: add, edit <id>, status <id> <status>,
// rm <id> and show <id>.
func (a *App) Task(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: task add|edit|status|rm|show", common.ErrInvalidArguments)
	}
	ok, err := a.enter(ctx, common.TasksPath)
	if err != nil || !ok {
		return err
	}

	switch args[0] {
	case "add":
		return a.addTask(ctx)
	case "edit":
		id, err := parseID(args, 1, "task edit <id>")
		if err != nil {
			return err
		}
		return a.editTask(ctx, id)
	case "status":
		id, err := parseID(args, 1, "task status <id> <ToDo|InProgress|Done>")
		if err != nil {
			return err
		}
		if len(args) < 3 {
			return fmt.Errorf("%w: usage: task status <id> <ToDo|InProgress|Done>", common.ErrInvalidArguments)
		}
		t, err := a.taskService.SetStatus(ctx, id, args[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("Task %d is now %s.", t.ID, t.Status)))
		return nil
	case "rm":
		id, err := parseID(args, 1, "task rm <id>")
		if err != nil {
			return err
		}
		if err := a.taskService.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("Task %d deleted.", id)))
		return nil
	case "show":
		id, err := parseID(args, 1, "task show <id>")
		if err != nil {
			return err
		}
		return a.showTask(ctx, id)
	default:
		return fmt.Errorf("%w: unknown task command %q", common.ErrInvalidArguments, args[0])
	}
}

func (a *App) readTaskForm(editing bool) (services.TaskForm, error) {
	suffix := ""
	if editing {
		suffix = " (empty to keep)"
	}
	var f services.TaskForm
	var err error
	if f.Title, err = getSimpleText(a.reader, "Title"+suffix, a.out); err != nil {
		return f, err
	}
	if f.Description, err = getMultiline(a.reader, "Description"+suffix, a.out); err != nil {
		return f, err
	}
	if f.Deadline, err = getSimpleText(a.reader, "Deadline, YYYY-MM-DD"+suffix, a.out); err != nil {
		return f, err
	}
	if f.Status, err = getSimpleText(a.reader, "Status: ToDo, InProgress or Done"+suffix, a.out); err != nil {
		return f, err
	}
	if f.CategoryID, err = getSimpleText(a.reader, "Category id (empty for none)", a.out); err != nil {
		return f, err
	}
	return f, nil
}

func (a *App) addTask(ctx context.Context) error {
	f, err := a.readTaskForm(false)
	if err != nil {
		return err
	}
	t, err := a.taskService.Create(ctx, f)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("Task %d created.", t.ID)))
	return nil
}

func (a *App) editTask(ctx context.Context, id int) error {
	f, err := a.readTaskForm(true)
	if err != nil {
		return err
	}
	t, err := a.taskService.Update(ctx, id, f)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("Task %d updated.", t.ID)))
	return nil
}

func (a *App) showTask(ctx context.Context, id int) error {
	t, err := a.taskService.Get(ctx, id)
	if err != nil {
		return err
	}
	notes, err := a.noteService.List(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderTask(*t, notes))
	return nil
}

// Notes lists the notes of a task: notes <task id>.
func (a *App) Notes(ctx context.Context, args []string) error {
	taskID, err := parseID(args, 0, "notes <task id>")
	if err != nil {
		return err
	}
	ok, err := a.enter(ctx, common.TasksPath)
	if err != nil || !ok {
		return err
	}
	notes, err := a.noteService.List(ctx, taskID)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderNotes(notes))
	return nil
}

// Note dispatches: note add <task id>, note edit <note id>, note rm <note id>.
func (a *App) Note(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: note add|edit|rm <id>", common.ErrInvalidArguments)
	}
	id, err := parseID(args, 1, "note "+args[0]+" <id>")
	if err != nil {
		return err
	}
	ok, err := a.enter(ctx, common.TasksPath)
	if err != nil || !ok {
		return err
	}

	switch args[0] {
	case "add":
		content, err := getMultiline(a.reader, "Note", a.out)
		if err != nil {
			return err
		}
		n, err := a.noteService.Add(ctx, id, content)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("Note %d added.", n.ID)))
	case "edit":
		content, err := getMultiline(a.reader, "New text", a.out)
		if err != nil {
			return err
		}
		if _, err := a.noteService.Edit(ctx, id, content); err != nil {
			return err
		}
		fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("Note %d updated.", id)))
	case "rm":
		if err := a.noteService.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(a.out, styles.Success.Render(fmt.Sprintf("Note %d deleted.", id)))
	default:
		return fmt.Errorf("%w: unknown note command %q", common.ErrInvalidArguments, args[0])
	}
	return nil
}
