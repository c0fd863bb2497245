package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/taskease/internal/client/credstore"
	"github.com/dmitrijs2005/taskease/internal/client/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNav struct {
	mu       sync.Mutex
	location string
	visits   []string
}

func (n *fakeNav) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

func (n *fakeNav) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.location = path
	n.visits = append(n.visits, path)
}

type failingStore struct{ err error }

func (s failingStore) Get(context.Context) (string, bool, error) { return "", false, s.err }
func (s failingStore) Clear(context.Context) error               { return s.err }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestServer(t *testing.T, register func(r *mux.Router)) *httptest.Server {
	t.Helper()
	r := mux.NewRouter()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestDo_AttachesBearerWhenStored(t *testing.T) {
	var gotAuth, gotReqID string
	srv := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/users/me", func(w http.ResponseWriter, req *http.Request) {
			gotAuth = req.Header.Get("Authorization")
			gotReqID = req.Header.Get("X-Request-ID")
			writeJSON(w, http.StatusOK, map[string]any{"id": 1, "name": "Ann", "email": "a@x.io"})
		}).Methods(http.MethodGet)
	})

	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "tok-1"))
	c := New(srv.URL, store, &fakeNav{location: "/tasks"})

	u, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestDo_NoHeaderWithoutCredential(t *testing.T) {
	var hadAuth bool
	srv := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
			_, hadAuth = req.Header["Authorization"]
			writeJSON(w, http.StatusOK, map[string]string{"access_token": "fresh"})
		}).Methods(http.MethodPost)
	})

	c := New(srv.URL, credstore.NewMemoryStore(), &fakeNav{location: "/login"})
	tok, err := c.Login(context.Background(), "a@x.io", "pw")
	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)
	assert.False(t, hadAuth)
}

func TestDo_StoreReadErrorIsReturned(t *testing.T) {
	srv := newTestServer(t, func(r *mux.Router) {})
	boom := errors.New("disk gone")
	c := New(srv.URL, failingStore{err: boom}, nil)

	_, err := c.GetProfile(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func unauthorizedServer(t *testing.T) *httptest.Server {
	return newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/tasks", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthorized", "statusCode": 401})
		})
	})
}

func TestUnauthorized_ClearsCredentialAndRedirects(t *testing.T) {
	srv := unauthorizedServer(t)
	ctx := context.Background()
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "expired"))
	nav := &fakeNav{location: "/tasks"}

	hookCalls := 0
	c := New(srv.URL, store, nav, WithCredentialLostHook(func(ctx context.Context) {
		hookCalls++
		_, ok, _ := store.Get(ctx)
		assert.False(t, ok, "hook must run after the credential is cleared")
	}))

	_, err := c.ListTasks(ctx, models.TaskQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	_, ok, _ := store.Get(ctx)
	assert.False(t, ok)
	assert.Equal(t, 1, hookCalls)
	assert.Equal(t, "/login", nav.Location())
}

func TestUnauthorized_NoRedirectOnAuthEntry(t *testing.T) {
	for _, loc := range []string{"/login", "/register", "/login/"} {
		t.Run(loc, func(t *testing.T) {
			srv := unauthorizedServer(t)
			ctx := context.Background()
			store := credstore.NewMemoryStore()
			require.NoError(t, store.Set(ctx, "expired"))
			nav := &fakeNav{location: loc}

			c := New(srv.URL, store, nav)
			_, err := c.ListTasks(ctx, models.TaskQuery{})
			assert.ErrorIs(t, err, ErrUnauthorized)

			_, ok, _ := store.Get(ctx)
			assert.False(t, ok)
			assert.Empty(t, nav.visits)
		})
	}
}

func TestUnauthorized_RecoveryIsIdempotent(t *testing.T) {
	srv := unauthorizedServer(t)
	ctx := context.Background()
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "expired"))
	nav := &fakeNav{location: "/dashboard"}
	c := New(srv.URL, store, nav)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.ListTasks(ctx, models.TaskQuery{})
		}()
	}
	wg.Wait()

	_, ok, _ := store.Get(ctx)
	assert.False(t, ok)
	assert.Equal(t, "/login", nav.Location())
	for _, v := range nav.visits {
		assert.Equal(t, "/login", v)
	}
}

func TestUnauthorized_RecoveryIgnoresCancelledContext(t *testing.T) {
	srv := unauthorizedServer(t)
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "expired"))

	var hookCtxErr error
	c := New(srv.URL, store, &fakeNav{location: "/tasks"}, WithCredentialLostHook(func(ctx context.Context) {
		hookCtxErr = ctx.Err()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	resp := &http.Response{
		StatusCode: http.StatusUnauthorized,
		Body:       http.NoBody,
	}
	cancel()
	_, err := c.observeResponse(ctx, resp, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NoError(t, hookCtxErr)

	_, ok, _ := store.Get(context.Background())
	assert.False(t, ok)
}

func TestNonUnauthorizedErrorsPassThrough(t *testing.T) {
	srv := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/tasks/{id}", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Task not found"})
		})
	})
	ctx := context.Background()
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "valid"))
	nav := &fakeNav{location: "/tasks"}
	c := New(srv.URL, store, nav)

	_, err := c.GetTask(ctx, 7)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Task not found", apiErr.Message)
	assert.NotErrorIs(t, err, ErrUnauthorized)

	tok, ok, _ := store.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "valid", tok)
	assert.Empty(t, nav.visits)
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ctx := context.Background()
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "valid"))
	nav := &fakeNav{location: "/tasks"}
	c := New(url, store, nav)

	_, err := c.TaskSummary(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, ok, _ := store.Get(ctx)
	assert.True(t, ok)
	assert.Empty(t, nav.visits)
}

func TestCancelledContextIsNotUnavailable(t *testing.T) {
	srv := newTestServer(t, func(r *mux.Router) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(srv.URL, credstore.NewMemoryStore(), nil)
	_, err := c.TaskSummary(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestNoContentResponse(t *testing.T) {
	srv := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/tasks/{id}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}).Methods(http.MethodDelete)
	})
	c := New(srv.URL, credstore.NewMemoryStore(), nil)
	assert.NoError(t, c.DeleteTask(context.Background(), 3))
}

func TestPing(t *testing.T) {
	srv := newTestServer(t, func(r *mux.Router) {})
	c := New(srv.URL, credstore.NewMemoryStore(), nil)
	assert.NoError(t, c.Ping(context.Background()))

	down := httptest.NewServer(http.NotFoundHandler())
	down.Close()
	c = New(down.URL, credstore.NewMemoryStore(), nil)
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}
