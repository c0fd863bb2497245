package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskease/internal/client/client"
	"github.com/dmitrijs2005/taskease/internal/client/config"
	"github.com/dmitrijs2005/taskease/internal/client/credstore"
	"github.com/dmitrijs2005/taskease/internal/client/models"
	"github.com/dmitrijs2005/taskease/internal/logging"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake API ----

type fakeAPI struct {
	revoked atomic.Bool
}

func (f *fakeAPI) handler() http.Handler {
	reply := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if f.revoked.Load() || r.Header.Get("Authorization") != "Bearer tok" {
				reply(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
				return
			}
			next(w, r)
		}
	}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var in models.LoginRequest
		_ = json.NewDecoder(req.Body).Decode(&in)
		if in.Password != "secret" {
			reply(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		reply(w, http.StatusOK, models.TokenResponse{AccessToken: "tok"})
	}).Methods(http.MethodPost)
	r.HandleFunc("/users/me", authed(func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, models.User{ID: 1, Name: "Ann", Email: "ann@example.com"})
	})).Methods(http.MethodGet)
	r.HandleFunc("/tasks", authed(func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, []models.Task{{
			ID: 7, Title: "Water plants", Status: models.TaskStatusToDo,
			Deadline: time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC),
			Category: &models.Category{ID: 1, Name: "Home"},
		}})
	})).Methods(http.MethodGet)
	r.HandleFunc("/categories", authed(func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, []models.Category{{ID: 1, Name: "Home"}})
	})).Methods(http.MethodGet)
	return r
}

// ---- helpers ----

func newTestApp(t *testing.T) (*App, *fakeAPI, *bytes.Buffer) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL
	cfg.CredentialBackend = config.BackendMemory

	a, err := NewApp(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a.out = out
	a.reader = bufio.NewReader(strings.NewReader(""))
	return a, api, out
}

func stubInputs(t *testing.T, texts []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	queue := append([]string(nil), texts...)
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(queue) == 0 {
			return "", io.EOF
		}
		s := queue[0]
		queue = queue[1:]
		return s, nil
	}
	getPassword = func(string, io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func login(t *testing.T, a *App) {
	t.Helper()
	stubInputs(t, []string{"ann@example.com"}, "secret")
	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())
}

// ---- tests ----

func TestApp_AnonymousTasksLandsOnLogin(t *testing.T) {
	a, _, out := newTestApp(t)
	a.session.Start(context.Background())

	require.NoError(t, a.Tasks(context.Background(), nil))
	assert.Equal(t, "/login", a.router.Location())
	assert.Contains(t, out.String(), "Type 'login' to sign in")
	assert.NotContains(t, out.String(), "Water plants")
}

func TestApp_LoginRedirectsToTasks(t *testing.T) {
	a, _, out := newTestApp(t)
	a.session.Start(context.Background())

	login(t, a)

	assert.Equal(t, "/tasks", a.router.Location())
	assert.Contains(t, out.String(), "Welcome back, Ann!")
	assert.Contains(t, out.String(), "Water plants")
	assert.Contains(t, out.String(), "[Home]")
	assert.Equal(t, "(/tasks Ann)", a.getStatus())
}

func TestApp_LoginWrongPassword(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.session.Start(context.Background())

	stubInputs(t, []string{"ann@example.com"}, "wrong")
	err := a.Login(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Equal(t, "/login", a.router.Location())
	assert.False(t, a.isLoggedIn())
}

func TestApp_LoginWhenLoggedInShowsTasks(t *testing.T) {
	a, _, out := newTestApp(t)
	a.session.Start(context.Background())
	login(t, a)
	out.Reset()

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "/tasks", a.router.Location())
	assert.Contains(t, out.String(), "Water plants")
}

func TestApp_RevokedSessionReturnsToLogin(t *testing.T) {
	a, api, out := newTestApp(t)
	a.session.Start(context.Background())
	login(t, a)
	require.NoError(t, a.Categories(context.Background()))
	out.Reset()

	api.revoked.Store(true)
	err := a.Categories(context.Background())

	require.Error(t, err)
	assert.Contains(t, renderError(err), "session has expired")
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "/login", a.router.Location())
	assert.Contains(t, out.String(), "Your session has ended")
}

func TestApp_LogoutGoesToLanding(t *testing.T) {
	a, _, out := newTestApp(t)
	a.session.Start(context.Background())
	login(t, a)
	out.Reset()

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "/", a.router.Location())
	assert.Contains(t, out.String(), "Logged out.")
	assert.NotContains(t, out.String(), "Your session has ended")
}

func TestApp_GoUnknownPath(t *testing.T) {
	a, _, out := newTestApp(t)
	a.session.Start(context.Background())

	require.NoError(t, a.Go(context.Background(), "/nowhere"))
	assert.Equal(t, "/nowhere", a.router.Location())
	assert.Contains(t, out.String(), "404")
}

func TestApp_WhoAmI(t *testing.T) {
	a, _, out := newTestApp(t)
	a.session.Start(context.Background())

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Not logged in.")

	login(t, a)
	out.Reset()
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "ann@example.com")
}

func TestParseTaskQuery(t *testing.T) {
	q, err := parseTaskQuery([]string{"status=inprogress", "buy", "sort=deadline", "order=asc", "milk"})
	require.NoError(t, err)
	assert.Equal(t, models.TaskQuery{
		Status: models.TaskStatusInProgress, Search: "buy milk",
		SortBy: models.SortByDeadline, SortOrder: models.SortOrderAsc,
	}, q)

	_, err = parseTaskQuery([]string{"status=someday"})
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID([]string{"edit", "12"}, 1, "task edit <id>")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	_, err = parseID([]string{"edit"}, 1, "task edit <id>")
	assert.Error(t, err)
	_, err = parseID([]string{"edit", "x"}, 1, "task edit <id>")
	assert.Error(t, err)
}

func TestApp_CheckAPI(t *testing.T) {
	a, _, out := newTestApp(t)
	a.checkAPI(context.Background())
	assert.Empty(t, out.String())

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	a.config.APIBaseURL = srv.URL
	a.api = client.New(srv.URL, credstore.NewMemoryStore(), nil)
	a.checkAPI(context.Background())
	assert.Contains(t, out.String(), "is unreachable")
}

func TestApp_RootWithRejectedStoredCredentialLandsOnLogin(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL
	cfg.CredentialBackend = config.BackendSQLite
	cfg.StorePath = filepath.Join(t.TempDir(), "taskease.db")

	ctx := context.Background()
	store, closeStore, err := credstore.Open(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "stale"))
	require.NoError(t, closeStore())

	a, err := NewApp(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	out := &bytes.Buffer{}
	a.out = &syncWriter{w: out}
	a.reader = bufio.NewReader(strings.NewReader("exit\n"))

	a.Run(ctx)

	assert.Equal(t, "/login", a.router.Location())
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Type 'login' to sign in")
	assert.Contains(t, out.String(), "taskease (/login)> ")
}
