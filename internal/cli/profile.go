package cli

import (
	"context"
	"fmt"

	"userauth_app/internal/feature/auth/usecase"
	"userauth_app/internal/feature/auth/validation"
)

// Profile collects a partial profile update. Empty answers keep the current
// value.
func (a *App) Profile(ctx context.Context) error {
	if !a.auth.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}

	if errs := validation.ValidateProfile(validation.ProfileInput{Name: name, Email: email}); !errs.Valid() {
		a.printFieldErrors(errs)
		return nil
	}

	var upd usecase.ProfileUpdate
	if name != "" {
		upd.Name = &name
	}
	if email != "" {
		upd.Email = &email
	}
	if upd.Name == nil && upd.Email == nil {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}

	res := a.auth.UpdateProfile(ctx, upd)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Users lists all registered users. Administrative command.
func (a *App) Users(ctx context.Context) error {
	users, err := a.auth.ListUsers(ctx)
	if err != nil {
		a.log.Error(ctx, "listing users failed", "error", err)
		fmt.Fprintln(a.out, "Could not list users. Please try again.")
		return err
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users registered")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "#%d  %s <%s>  joined %s\n", u.ID, u.Name, u.Email, u.CreatedAt.Format("2006-01-02"))
	}
	return nil
}
