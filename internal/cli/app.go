// Package cli implements the interactive shell that stands in for the
// application's screens: it collects form input, runs the validation rules
// before submission, invokes the auth service and prints the outcome.
package cli

import (
	"bufio"
	"context"
	"io"

	"userauth_app/internal/feature/auth/domain/entity"
	"userauth_app/internal/feature/auth/usecase"
	"userauth_app/internal/logging"
)

// AuthService defines the auth operations the shell needs.
// Following Go convention: interfaces are defined by the consumer (cli),
// not the provider (usecase).
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) usecase.Result
	Login(ctx context.Context, email, password string) usecase.Result
	Logout(ctx context.Context) usecase.Result
	UpdateProfile(ctx context.Context, upd usecase.ProfileUpdate) usecase.Result
	ListUsers(ctx context.Context) ([]*entity.User, error)
	CurrentUser() *entity.User
	IsAuthenticated() bool
}

// App wires the shell's input, output and the auth service.
type App struct {
	auth   AuthService
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp creates the shell over the given streams.
func NewApp(auth AuthService, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		auth:   auth,
		reader: bufio.NewReader(in),
		out:    out,
		log:    log,
	}
}

// Run starts the shell and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	runShell(ctx, a, a.status, a.reader, a.out)
}

// status renders the prompt segment showing who is logged in.
func (a *App) status() string {
	if u := a.auth.CurrentUser(); u != nil {
		return u.Email
	}
	return "anonymous"
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}
