package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/taskease/internal/client/client"
	"github.com/dmitrijs2005/taskease/internal/client/config"
	"github.com/dmitrijs2005/taskease/internal/client/credstore"
	"github.com/dmitrijs2005/taskease/internal/client/gate"
	"github.com/dmitrijs2005/taskease/internal/client/services"
	"github.com/dmitrijs2005/taskease/internal/client/session"
	"github.com/dmitrijs2005/taskease/internal/common"
	"github.com/dmitrijs2005/taskease/internal/logging"
)

// syncWriter serializes output from the REPL and from session callbacks
// running on other goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config     *config.Config
	log        logging.Logger
	session    *session.Provider
	router     *gate.Router
	api        pinger
	closeStore func() error

	authService      services.AuthService
	profileService   services.ProfileService
	taskService      services.TaskService
	categoryService  services.CategoryService
	noteService      services.NoteService
	dashboardService services.DashboardService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the application graph. Exactly one session provider is
// created here and shared by the gate, the services and the request client's
// 401 recovery.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, closeStore, err := credstore.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("credential store: %w", err)
	}

	router := gate.NewRouter()

	var provider *session.Provider
	api := client.New(c.APIBaseURL, store, router,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "client")),
		client.WithCredentialLostHook(func(ctx context.Context) {
			provider.Invalidate(ctx)
		}),
	)

	provider, err = session.NewProvider(ctx, store, api, log.With("component", "session"))
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	a := &App{
		config:     c,
		log:        log,
		session:    provider,
		router:     router,
		api:        api,
		closeStore: closeStore,

		authService:      services.NewAuthService(api, provider),
		profileService:   services.NewProfileService(api, provider),
		taskService:      services.NewTaskService(api),
		categoryService:  services.NewCategoryService(api),
		noteService:      services.NewNoteService(api),
		dashboardService: services.NewDashboardService(api),

		reader: bufio.NewReader(os.Stdin),
		out:    &syncWriter{w: os.Stdout},
	}
	a.watchNavigation(ctx)
	return a, nil
}

// watchNavigation logs route changes and tells the user when the session was
// lost and they were sent back to the login view.
func (a *App) watchNavigation(ctx context.Context) {
	a.router.OnChange(func(from, to string) {
		a.log.Debug(ctx, "navigated", "from", from, "to", to)
		if to != common.LoginPath {
			return
		}
		if class, ok := gate.ClassOf(from); ok && class == gate.AuthenticatedOnly && !a.session.Authenticated() {
			fmt.Fprintln(a.out, styles.Warning.Render("Your session has ended. Please log in again."))
		}
	})
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.closeStore(); err != nil {
			a.log.Error(ctx, "failed to close credential store", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}
