package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/taskease/internal/client/credstore"
	"github.com/dmitrijs2005/taskease/internal/client/gate"
	"github.com/dmitrijs2005/taskease/internal/client/models"
	"github.com/dmitrijs2005/taskease/internal/logging"
)

// ProfileFetcher loads the profile of the credential currently stored.
type ProfileFetcher interface {
	GetProfile(ctx context.Context) (*models.User, error)
}

// State is a point-in-time copy of the session.
type State struct {
	Credential string
	Profile    *models.User
	Loading    bool
}

// Authenticated is true only for a settled session holding both a credential
// and its profile.
func (s State) Authenticated() bool {
	return s.Credential != "" && s.Profile != nil && !s.Loading
}

type Provider struct {
	store   credstore.Store
	fetcher ProfileFetcher
	log     logging.Logger

	mu         sync.Mutex
	credential string
	profile    *models.User
	inflight   int
	startup    bool
	settled    chan struct{}
	listeners  []func(State)

	startOnce sync.Once
}

// NewProvider seeds the session from store. When a credential is found the
// session starts loading until Start has fetched its profile.
func NewProvider(ctx context.Context, store credstore.Store, fetcher ProfileFetcher, log logging.Logger) (*Provider, error) {
	if log == nil {
		log = logging.Nop()
	}
	credential, ok, err := store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed session: %w", err)
	}

	p := &Provider{
		store:   store,
		fetcher: fetcher,
		log:     log,
		settled: make(chan struct{}),
	}
	if ok {
		p.credential = credential
		p.startup = true
	} else {
		close(p.settled)
	}
	return p, nil
}

// Start runs the startup profile refresh. Only the first call does anything,
// and it makes no network call when no credential was stored.
func (p *Provider) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		p.mu.Lock()
		pending := p.startup
		p.mu.Unlock()
		if !pending {
			return
		}
		if err := p.RefreshProfile(ctx); err != nil {
			p.log.Warn(ctx, "startup profile refresh failed", "error", err)
		}
	})
}

// OnChange registers fn to be called with the new state after every change.
func (p *Provider) OnChange(fn func(State)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Login stores credential and loads its profile before returning. A failed
// profile load is not returned: the session is logged out and stays
// unauthenticated. Only a failure to persist the credential is an error.
func (p *Provider) Login(ctx context.Context, credential string) error {
	if err := p.store.Set(ctx, credential); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	p.update(func() {
		p.credential = credential
		p.profile = nil
	})

	if err := p.RefreshProfile(ctx); err != nil {
		p.log.Warn(ctx, "login profile refresh failed", "error", err)
	}
	return nil
}

// Logout forgets the credential and profile. It never calls the network and
// is idempotent. The in-memory state is cleared even if the store fails.
func (p *Provider) Logout(ctx context.Context) error {
	err := p.store.Clear(ctx)
	p.Invalidate(ctx)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// Invalidate clears the in-memory credential and profile without touching
// the store. It is the hook the request client calls once it has already
// cleared the stored credential.
func (p *Provider) Invalidate(ctx context.Context) {
	p.update(func() {
		p.credential = ""
		p.profile = nil
	})
	p.log.Debug(ctx, "session invalidated")
}

// RefreshProfile reloads the profile for the credential currently in the
// store. Any fetch failure logs the session out; the error is returned for
// the caller to report. The session is loading for the duration of the call.
func (p *Provider) RefreshProfile(ctx context.Context) error {
	p.begin()
	defer p.end()

	credential, ok, err := p.store.Get(ctx)
	if err != nil {
		p.logoutAfterFailure(ctx)
		return fmt.Errorf("read credential: %w", err)
	}
	if !ok {
		p.update(func() {
			p.credential = ""
			p.profile = nil
		})
		return nil
	}
	p.update(func() {
		if p.credential == "" {
			p.credential = credential
		}
	})

	user, err := p.fetcher.GetProfile(ctx)
	if err != nil {
		p.logoutAfterFailure(ctx)
		return fmt.Errorf("fetch profile: %w", err)
	}

	// The credential may have been cleared or replaced while the fetch was
	// in flight; the profile belongs to the one it was fetched with.
	current, ok, err := p.store.Get(ctx)
	if err != nil {
		p.logoutAfterFailure(ctx)
		return fmt.Errorf("read credential: %w", err)
	}
	switch {
	case !ok:
		p.Invalidate(ctx)
	case current != credential:
		p.log.Debug(ctx, "credential changed during profile fetch, discarding profile")
	default:
		p.update(func() {
			p.credential = credential
			p.profile = user
		})
	}
	return nil
}

func (p *Provider) logoutAfterFailure(ctx context.Context) {
	if err := p.Logout(ctx); err != nil {
		p.log.Error(ctx, "logout after failed refresh", "error", err)
	}
}

// Snapshot returns a copy of the current state.
func (p *Provider) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Provider) Authenticated() bool {
	return p.Snapshot().Authenticated()
}

// Status is the view of the session consumed by the route gate.
func (p *Provider) Status() gate.Status {
	s := p.Snapshot()
	return gate.Status{Authenticated: s.Authenticated(), Loading: s.Loading}
}

// WaitSettled blocks until no profile fetch is pending or ctx is done.
func (p *Provider) WaitSettled(ctx context.Context) error {
	p.mu.Lock()
	ch := p.settled
	p.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Provider) loadingLocked() bool {
	return p.inflight > 0 || p.startup
}

func (p *Provider) snapshotLocked() State {
	s := State{Credential: p.credential, Loading: p.loadingLocked()}
	if p.profile != nil {
		u := *p.profile
		s.Profile = &u
	}
	return s
}

func (p *Provider) begin() {
	p.update(func() {
		if !p.loadingLocked() {
			p.settled = make(chan struct{})
		}
		p.inflight++
		p.startup = false
	})
}

func (p *Provider) end() {
	p.update(func() {
		p.inflight--
		if !p.loadingLocked() {
			close(p.settled)
		}
	})
}

// update applies fn under the lock and notifies listeners outside it.
func (p *Provider) update(fn func()) {
	p.mu.Lock()
	fn()
	s := p.snapshotLocked()
	listeners := append([]func(State){}, p.listeners...)
	p.mu.Unlock()

	for _, l := range listeners {
		l(s)
	}
}
