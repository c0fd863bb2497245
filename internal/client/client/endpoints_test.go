package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/taskease/internal/client/credstore"
	"github.com/dmitrijs2005/taskease/internal/client/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_QueryParameters(t *testing.T) {
	var got map[string]string
	srv := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/tasks", func(w http.ResponseWriter, req *http.Request) {
			got = map[string]string{}
			for k := range req.URL.Query() {
				got[k] = req.URL.Query().Get(k)
			}
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "title": "a", "status": "ToDo"}})
		}).Methods(http.MethodGet)
	})
	c := New(srv.URL, credstore.NewMemoryStore(), nil)

	tasks, err := c.ListTasks(context.Background(), models.TaskQuery{
		Status: models.TaskStatusDone, Search: "milk", SortBy: models.SortByDeadline, SortOrder: models.SortOrderAsc,
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, map[string]string{
		"includeCategory": "true",
		"status":          "Done",
		"search":          "milk",
		"sortBy":          "deadline",
		"sortOrder":       "asc",
	}, got)

	_, err = c.ListTasks(context.Background(), models.TaskQuery{})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"includeCategory": "true"}, got)
}

func TestLogin_EmptyTokenIsError(t *testing.T) {
	srv := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{})
		})
	})
	c := New(srv.URL, credstore.NewMemoryStore(), nil)
	_, err := c.Login(context.Background(), "a@x.io", "pw")
	assert.Error(t, err)
}

func TestRegister_SendsBody(t *testing.T) {
	var body models.RegisterRequest
	srv := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/auth/register", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			_ = json.NewDecoder(req.Body).Decode(&body)
			writeJSON(w, http.StatusCreated, map[string]string{"access_token": "new"})
		}).Methods(http.MethodPost)
	})
	c := New(srv.URL, credstore.NewMemoryStore(), nil)
	tok, err := c.Register(context.Background(), "Ann", "a@x.io", "secret")
	require.NoError(t, err)
	assert.Equal(t, "new", tok)
	assert.Equal(t, models.RegisterRequest{Name: "Ann", Email: "a@x.io", Password: "secret"}, body)
}

func TestUpdateProfile_OmitsNilFields(t *testing.T) {
	var raw map[string]any
	srv := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/users/me", func(w http.ResponseWriter, req *http.Request) {
			_ = json.NewDecoder(req.Body).Decode(&raw)
			writeJSON(w, http.StatusOK, map[string]any{"id": 1, "name": "Bo", "email": "a@x.io"})
		}).Methods(http.MethodPut)
	})
	c := New(srv.URL, credstore.NewMemoryStore(), nil)
	name := "Bo"
	u, err := c.UpdateProfile(context.Background(), models.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Bo", u.Name)
	assert.Equal(t, map[string]any{"name": "Bo"}, raw)
}

func TestCategoryAndNoteEndpoints(t *testing.T) {
	var calls []string
	srv := newTestServer(t, func(r *mux.Router) {
		record := func(w http.ResponseWriter, req *http.Request) {
			calls = append(calls, req.Method+" "+req.URL.Path)
			switch {
			case req.Method == http.MethodDelete:
				w.WriteHeader(http.StatusNoContent)
			case req.URL.Path == "/categories" && req.Method == http.MethodGet,
				req.URL.Path == "/tasks/4/notes" && req.Method == http.MethodGet:
				writeJSON(w, http.StatusOK, []any{})
			default:
				writeJSON(w, http.StatusOK, map[string]any{"id": 9})
			}
		}
		r.HandleFunc("/categories", record)
		r.HandleFunc("/categories/{id}", record)
		r.HandleFunc("/tasks/{id}/notes", record)
		r.HandleFunc("/notes/{id}", record)
	})
	c := New(srv.URL, credstore.NewMemoryStore(), nil)
	ctx := context.Background()

	_, err := c.ListCategories(ctx)
	require.NoError(t, err)
	cat, err := c.CreateCategory(ctx, "Home")
	require.NoError(t, err)
	assert.Equal(t, 9, cat.ID)
	_, err = c.UpdateCategory(ctx, 9, "House")
	require.NoError(t, err)
	require.NoError(t, c.DeleteCategory(ctx, 9))

	_, err = c.ListNotes(ctx, 4)
	require.NoError(t, err)
	_, err = c.CreateNote(ctx, 4, "buy milk")
	require.NoError(t, err)
	_, err = c.UpdateNote(ctx, 9, "buy oat milk")
	require.NoError(t, err)
	require.NoError(t, c.DeleteNote(ctx, 9))

	assert.Equal(t, []string{
		"GET /categories", "POST /categories", "PUT /categories/9", "DELETE /categories/9",
		"GET /tasks/4/notes", "POST /tasks/4/notes", "PUT /notes/9", "DELETE /notes/9",
	}, calls)
}
