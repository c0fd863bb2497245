package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/taskease/internal/common"
)

// AuthAPI is the subset of the API client used for authentication.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) (string, error)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange email/password for a credential and start the session.
//   - Register: create an account and start the session with its credential.
//   - Logout: end the session locally. No network call is made.
//
// Login and Register return common.ErrNotAuthenticated when the API issued
// a credential but the profile could not be loaded with it.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, name, email string, password []byte) error
	Logout(ctx context.Context) error
}

type authService struct {
	api     AuthAPI
	session Session
}

func NewAuthService(api AuthAPI, s Session) AuthService {
	return &authService{api: api, session: s}
}

// minPasswordLength is the shortest password accepted on register and on
// profile updates.
const minPasswordLength = 6

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: %q is not a valid email address", common.ErrorValidation, email)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return a.startSession(ctx, token)
}

func (a *authService) Register(ctx context.Context, name, email string, password []byte) error {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", common.ErrorValidation, minPasswordLength)
	}

	token, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return a.startSession(ctx, token)
}

func (a *authService) startSession(ctx context.Context, token string) error {
	if err := a.session.Login(ctx, token); err != nil {
		return err
	}
	if !a.session.Snapshot().Authenticated() {
		return common.ErrNotAuthenticated
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
