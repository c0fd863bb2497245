// Package services contains application services for the TaskEase client.
// Each service validates user input, calls the API and keeps the session
// provider in step with the result.
package services

import (
	"context"

	"github.com/dmitrijs2005/taskease/internal/client/session"
)

// Session is the part of the session provider the services drive.
type Session interface {
	Login(ctx context.Context, credential string) error
	Logout(ctx context.Context) error
	RefreshProfile(ctx context.Context) error
	Snapshot() session.State
}
