package gate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/taskease/internal/common"
)

// Router holds the current navigable location of the process.
// It is safe for concurrent use.
type Router struct {
	mu       sync.RWMutex
	location string
	seq      uint64
	onChange func(from, to string)
}

// NewRouter starts at the landing view.
func NewRouter() *Router {
	return &Router{location: common.LandingPath}
}

// OnChange registers a callback invoked after every location change.
func (r *Router) OnChange(fn func(from, to string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

func (r *Router) Location() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.location
}

func (r *Router) current() (string, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.location, r.seq
}

// Navigate moves the location to path. It does not consult the gate; use
// Resolve for gated navigation.
func (r *Router) Navigate(path string) {
	r.move(Normalize(path), nil)
}

// move sets the location. With a non-nil seq the move only happens if no
// navigation took place since seq was read.
func (r *Router) move(path string, seq *uint64) bool {
	r.mu.Lock()
	if seq != nil && *seq != r.seq {
		r.mu.Unlock()
		return false
	}
	from := r.location
	r.location = path
	r.seq++
	fn := r.onChange
	r.mu.Unlock()

	if fn != nil && from != path {
		fn(from, path)
	}
	return true
}

// maxRedirects bounds the redirects followed by one Resolve call.
const maxRedirects = 4

var ErrRedirectLoop = errors.New("redirect loop")

// Resolve drives one navigation attempt to its terminal state. While the gate
// answers Pending it calls wait (which blocks until the session settles) and
// asks again; redirects are followed. The router ends on the admitted path,
// which is returned. Unknown paths are admitted as-is.
//
// A navigation made by someone else while Resolve runs, such as the forced
// redirect to login after a 401, wins: Resolve continues from that location
// instead of overwriting it.
func (r *Router) Resolve(ctx context.Context, path string, status func() Status, wait func(ctx context.Context) error) (string, error) {
	_, seq := r.current()
	return r.resolve(ctx, Normalize(path), seq, status, wait)
}

// ResolveCurrent is Resolve for the location the router is on.
func (r *Router) ResolveCurrent(ctx context.Context, status func() Status, wait func(ctx context.Context) error) (string, error) {
	path, seq := r.current()
	return r.resolve(ctx, path, seq, status, wait)
}

func (r *Router) resolve(ctx context.Context, path string, seq uint64, status func() Status, wait func(ctx context.Context) error) (string, error) {
	for hops := 0; hops <= maxRedirects; {
		if class, known := ClassOf(path); known {
			d := Decide(class, status())
			switch d.Outcome {
			case Pending:
				if err := wait(ctx); err != nil {
					return "", err
				}
				continue
			case Redirect:
				path = d.Target
				hops++
				continue
			}
		}

		if r.move(path, &seq) {
			return path, nil
		}
		path, seq = r.current()
		hops++
	}
	return "", fmt.Errorf("%w while resolving %s", ErrRedirectLoop, path)
}
