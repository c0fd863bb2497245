// Package session owns the process-wide authentication state of the client:
// the bearer credential, the profile fetched with it and whether that fetch
// is still in flight.
//
// One Provider is created per process and handed to every consumer. State
// changes only through Login, Logout, RefreshProfile and Invalidate. The
// credential store is the source of truth: RefreshProfile always re-reads it,
// so a credential cleared behind the provider's back (for example by the
// request client reacting to a 401) is observed by a fetch already in flight.
package session
