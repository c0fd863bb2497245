// Package cli provides the interactive TaskEase command-line client.
//
// It wires configuration, the credential store, the API client, the session
// provider and the route gate, then runs a REPL. Every command that belongs
// to a view first navigates to that view through the gate: while the session
// is loading the navigation waits, an anonymous user asking for a protected
// view lands on the login view, and a logged-in user asking for login or
// register lands on the task list.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
