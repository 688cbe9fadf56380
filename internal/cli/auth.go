package cli

import (
	"context"
	"fmt"

	"userauth_app/internal/feature/auth/validation"
)

// signupFieldOrder fixes the order in which per-field errors are printed,
// matching the form's top-to-bottom layout.
var signupFieldOrder = []string{"name", "email", "password", "confirmPassword"}

// printFieldErrors writes one line per failed field, in form order.
func (a *App) printFieldErrors(errs validation.Errors) {
	for _, field := range signupFieldOrder {
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
		}
	}
	if msg, ok := errs["_"]; ok {
		fmt.Fprintf(a.out, "  %s\n", msg)
	}
}

// Signup collects the signup form, validates it, and submits it.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	in := validation.SignupInput{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	}
	if errs := validation.ValidateSignup(in); !errs.Valid() {
		a.printFieldErrors(errs)
		return nil
	}

	// Informational only; never blocks the signup.
	fmt.Fprintf(a.out, "Password strength: %s\n", validation.ClassifyStrength(password))

	res := a.auth.Signup(ctx, name, email, password)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Login collects the login form, validates it, and submits it.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	in := validation.LoginInput{Email: email, Password: password}
	if errs := validation.ValidateLogin(in); !errs.Valid() {
		a.printFieldErrors(errs)
		return nil
	}

	res := a.auth.Login(ctx, email, password)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Logout closes the current session.
func (a *App) Logout(ctx context.Context) error {
	res := a.auth.Logout(ctx)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Whoami prints the authenticated user's profile.
func (a *App) Whoami(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "#%d  %s <%s>  joined %s\n", u.ID, u.Name, u.Email, u.CreatedAt.Format("2006-01-02"))
	return nil
}

// Password reads a candidate password and prints its strength class.
func (a *App) Password(ctx context.Context) error {
	password, err := getPassword("Password to check", a.out)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Password strength: %s\n", validation.ClassifyStrength(password))
	return nil
}
