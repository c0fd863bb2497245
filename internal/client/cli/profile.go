package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskease/internal/client/services"
	"github.com/dmitrijs2005/taskease/internal/common"
)

// Profile shows the profile view; "profile edit" prompts for changes.
func (a *App) Profile(ctx context.Context, args []string) error {
	ok, err := a.enter(ctx, common.ProfilePath)
	if err != nil || !ok {
		return err
	}
	if len(args) == 0 {
		return a.WhoAmI(ctx)
	}
	if args[0] != "edit" {
		return fmt.Errorf("%w: usage: profile [edit]", common.ErrInvalidArguments)
	}

	var form services.ProfileForm
	if form.Name, err = getSimpleText(a.reader, "Name (empty to keep)", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email (empty to keep)", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword("New password (empty to keep)", a.out); err != nil {
		return err
	}
	defer common.WipeByteArray(form.Password)
	if len(form.Password) > 0 {
		if form.ConfirmPassword, err = getPassword("Confirm new password", a.out); err != nil {
			return err
		}
		defer common.WipeByteArray(form.ConfirmPassword)
	}

	if _, err := a.profileService.Update(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, styles.Success.Render("Profile updated successfully!"))
	return a.WhoAmI(ctx)
}
