package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskease/internal/client/models"
	"github.com/dmitrijs2005/taskease/internal/common"
)

type ProfileAPI interface {
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
}

// ProfileForm is the raw input of the profile edit form. Empty Password
// means "keep the current password".
type ProfileForm struct {
	Name            string
	Email           string
	Password        []byte
	ConfirmPassword []byte
}

type ProfileService interface {
	// Update sends only the fields that differ from the current profile and
	// refreshes the session afterwards. It returns common.ErrNothingToUpdate
	// when nothing changed.
	Update(ctx context.Context, form ProfileForm) (*models.User, error)
}

type profileService struct {
	api     ProfileAPI
	session Session
}

func NewProfileService(api ProfileAPI, s Session) ProfileService {
	return &profileService{api: api, session: s}
}

func (p *profileService) Update(ctx context.Context, form ProfileForm) (*models.User, error) {
	current := p.session.Snapshot().Profile
	if current == nil {
		return nil, common.ErrNotAuthenticated
	}

	upd, err := buildProfileUpdate(*current, form)
	if err != nil {
		return nil, err
	}

	user, err := p.api.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if err := p.session.RefreshProfile(ctx); err != nil {
		return nil, fmt.Errorf("refresh profile: %w", err)
	}
	return user, nil
}

func buildProfileUpdate(current models.User, form ProfileForm) (models.ProfileUpdate, error) {
	var upd models.ProfileUpdate

	if name := strings.TrimSpace(form.Name); name != "" && name != current.Name {
		upd.Name = &name
	}
	if email := strings.TrimSpace(form.Email); email != "" && email != current.Email {
		if err := validateEmail(email); err != nil {
			return upd, err
		}
		upd.Email = &email
	}
	if len(form.Password) > 0 {
		if string(form.Password) != string(form.ConfirmPassword) {
			return upd, fmt.Errorf("%w: passwords do not match", common.ErrorValidation)
		}
		if len(form.Password) < minPasswordLength {
			return upd, fmt.Errorf("%w: new password must be at least %d characters long", common.ErrorValidation, minPasswordLength)
		}
		pw := string(form.Password)
		upd.Password = &pw
	}

	if upd.Empty() {
		return upd, common.ErrNothingToUpdate
	}
	return upd, nil
}
