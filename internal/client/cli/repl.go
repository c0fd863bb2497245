package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Go(ctx context.Context, path string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Tasks(ctx context.Context, args []string) error
	Task(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	Category(ctx context.Context, args []string) error
	Notes(ctx context.Context, args []string) error
	Note(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: help, go <path>, register, login, whoami, exit"
	helpLoggedIn  = "Available commands: help, go <path>, dashboard, tasks [status=..] [sort=..] [order=..] [search], " +
		"task add|edit|status|rm|show, categories, category add|rename|rm, notes <task>, note add|edit|rm, " +
		"profile [edit], whoami, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the TaskEase CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current location and user (from statusFn). Errors
// returned by command handlers are printed to w and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	say := func(args ...any) { fmt.Fprintln(w, args...) }
	for {
		fmt.Fprintf(w, "taskease %s> \n", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				say(helpLoggedIn)
			} else {
				say(helpAnonymous)
			}

		case "go":
			if len(args) != 1 {
				say("Usage: go <path>")
				continue
			}
			err = a.Go(ctx, args[0])

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "dashboard":
			err = a.Dashboard(ctx)
		case "tasks":
			err = a.Tasks(ctx, args)
		case "task":
			err = a.Task(ctx, args)
		case "categories":
			err = a.Categories(ctx)
		case "category":
			err = a.Category(ctx, args)
		case "notes":
			err = a.Notes(ctx, args)
		case "note":
			err = a.Note(ctx, args)
		case "profile":
			err = a.Profile(ctx, args)

		case "exit", "quit":
			say("Bye!")
			return

		default:
			say("Unknown command:", cmd)
		}

		if err != nil {
			say(renderError(err))
		}
	}
}
