package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	err   error
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) isLoggedIn() bool                         { return f.loggedIn }
func (f *fakeExec) Go(_ context.Context, path string) error  { return f.record("go", path) }
func (f *fakeExec) Register(context.Context) error           { return f.record("register") }
func (f *fakeExec) WhoAmI(context.Context) error             { return f.record("whoami") }
func (f *fakeExec) Dashboard(context.Context) error          { return f.record("dashboard") }
func (f *fakeExec) Categories(context.Context) error         { return f.record("categories") }
func (f *fakeExec) Tasks(_ context.Context, a []string) error { return f.record("tasks", a...) }
func (f *fakeExec) Task(_ context.Context, a []string) error  { return f.record("task", a...) }
func (f *fakeExec) Category(_ context.Context, a []string) error {
	return f.record("category", a...)
}
func (f *fakeExec) Notes(_ context.Context, a []string) error   { return f.record("notes", a...) }
func (f *fakeExec) Note(_ context.Context, a []string) error    { return f.record("note", a...) }
func (f *fakeExec) Profile(_ context.Context, a []string) error { return f.record("profile", a...) }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func runLines(a execIface, status string, input string) []string {
	var out bytes.Buffer
	runREPL(context.Background(), a, func() string { return status }, bufio.NewScanner(strings.NewReader(input)), &out)
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestRunREPL_Dispatch(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"go /dashboard",
		"tasks status=Done milk",
		"task show 3",
		"categories",
		"category add Home",
		"notes 3",
		"note add 3",
		"profile edit",
		"whoami",
		"dashboard",
		"foobar",
		"logout",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	lines := runLines(exec, "(/)", input)

	assert.Equal(t, []string{
		"login",
		"go /dashboard",
		"tasks status=Done milk",
		"task show 3",
		"categories",
		"category add Home",
		"notes 3",
		"note add 3",
		"profile edit",
		"whoami",
		"dashboard",
		"logout",
	}, exec.calls)

	assert.Contains(t, lines, helpAnonymous)
	assert.Contains(t, lines, helpLoggedIn)
	assert.Contains(t, lines, "Unknown command: foobar")
	assert.Contains(t, lines, "Bye!")
	assert.Contains(t, lines, "taskease (/)> ")
}

func TestRunREPL_GoUsageAndEOF(t *testing.T) {
	exec := &fakeExec{}
	lines := runLines(exec, "", "go\ngo a b\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, lines, "Usage: go <path>")
}

func TestRunREPL_PrintsErrors(t *testing.T) {
	exec := &fakeExec{err: errors.New("task not found")}
	lines := runLines(exec, "", "task show 9\nquit\n")

	found := false
	for _, l := range lines {
		if strings.Contains(l, "Error: task not found") {
			found = true
		}
	}
	assert.True(t, found, "error line not printed: %v", lines)
}
