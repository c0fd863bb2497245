// Package client is the Request Client of the TaskEase CLI.
//
// # Overview
//
// HTTPClient wraps every call to the TaskEase REST API with two fixed steps
// wired once at construction:
//
//  1. prepareRequest reads the credential store and, when a credential is
//     present, attaches it as "Authorization: Bearer <credential>". There is
//     no list of endpoints exempt from this; login and register simply
//     ignore the header.
//  2. observeResponse inspects every response. A 401 runs the recovery
//     sequence (clear the stored credential, notify the credential-lost
//     hook, redirect to /login unless the current location is /login or
//     /register) once for that response. Every other outcome is handed back
//     to the caller untouched, converted to a typed error when non-2xx.
//
// Navigation is injected as a Navigator, so the client never touches a
// global location and is testable without a terminal.
//
// # Error Handling
//
// Callers match sentinel errors with errors.Is: ErrUnauthorized (after the
// recovery sequence ran) and ErrUnavailable (transport failure). Any other
// non-2xx response is an *APIError carrying the server's message.
//
// No request is ever retried.
package client
