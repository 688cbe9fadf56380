package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"userauth_app/internal/feature/auth/domain/entity"
	"userauth_app/internal/logging"
)

// SessionKey is the well-known session store key holding the string-encoded
// ID of the currently authenticated user.
const SessionKey = "userId"

// dummyDigest is a bcrypt hash compared against when the user does not exist,
// so login takes roughly the same time for unknown emails as for wrong passwords.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// User-facing messages. Internal error kinds are always mapped to one of these
// at the service boundary; raw store errors never reach the UI.
const (
	MsgSignupOK           = "Account created successfully!"
	MsgSignupFailed       = "Signup failed. Please try again."
	MsgEmailExists        = "Email already exists"
	MsgLoginOK            = "Login successful!"
	MsgLoginFailed        = "Login failed. Please try again."
	MsgInvalidCredentials = "Invalid email or password"
	MsgLogoutOK           = "Logged out successfully"
	MsgLogoutFailed       = "Logout failed"
	MsgNotLoggedIn        = "No user logged in"
	MsgProfileUpdated     = "Profile updated successfully"
	MsgProfileFailed      = "Failed to update profile"
)

// PasswordHasher abstracts password hashing and verification.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/hash).
type PasswordHasher interface {
	// Hash derives a storable digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify checks a plaintext password against a stored digest.
	// It returns hash.ErrMismatch (as an error satisfying errors.Is) on mismatch.
	Verify(stored, password string) error

	// NeedsRehash reports whether a stored digest uses an outdated format
	// and should be replaced after a successful verification.
	NeedsRehash(stored string) bool
}

// State describes the auth service's position in its session lifecycle.
type State int

const (
	// StateNoSession is the initial state, before restoration has run.
	StateNoSession State = iota
	// StateRestoring is active while the persisted session is being resolved.
	StateRestoring
	// StateAuthenticated means a user is logged in.
	StateAuthenticated
	// StateAnonymous means restoration finished (or logout happened) with no user.
	StateAnonymous
)

// Result is the uniform outcome shape of every public auth operation.
// Callers branch on Success, never on error types, for expected failure paths.
type Result struct {
	Success bool
	Message string
	// User is set on successful signup/login/update. It never carries a
	// password digest.
	User *entity.User
}

// AuthService orchestrates signup, login, logout and profile updates by
// composing the user repository, the session store and the password hasher.
//
// The service is process-scoped and assumes the UI's single logical thread of
// control: one operation at a time, causally sequenced. It is not safe for
// concurrent use from multiple goroutines.
type AuthService struct {
	users    UserRepository
	sessions SessionStore
	hasher   PasswordHasher
	log      logging.Logger

	state State
	user  *entity.User
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserRepository, sessions SessionStore, hasher PasswordHasher, log logging.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		log:      log,
		state:    StateNoSession,
	}
}

// State returns the current lifecycle state.
func (s *AuthService) State() State { return s.state }

// Loading reports whether session restoration is still in progress.
func (s *AuthService) Loading() bool { return s.state == StateRestoring }

// IsAuthenticated reports whether a user is currently logged in.
func (s *AuthService) IsAuthenticated() bool { return s.state == StateAuthenticated }

// CurrentUser returns a digest-free snapshot of the authenticated user,
// or nil if there is none.
func (s *AuthService) CurrentUser() *entity.User {
	if s.user == nil {
		return nil
	}
	return s.user.WithoutPassword()
}

// Restore resolves the persisted session pointer into an authenticated user.
// It runs exactly once per process lifetime, before any UI route decision.
// A stale pointer (user no longer exists) is discarded. Store failures leave
// the service anonymous and are returned so the caller can log them.
func (s *AuthService) Restore(ctx context.Context) error {
	s.state = StateRestoring

	raw, err := s.sessions.Get(ctx, SessionKey)
	if err != nil {
		s.state = StateAnonymous
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("reading session pointer: %w", err)
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		// Unparseable pointer, treat it like a stale one.
		s.state = StateAnonymous
		return s.sessions.Remove(ctx, SessionKey)
	}

	user, err := s.users.FindByID(ctx, uint(id))
	if err != nil {
		s.state = StateAnonymous
		if errors.Is(err, ErrUserNotFound) {
			return s.sessions.Remove(ctx, SessionKey)
		}
		return fmt.Errorf("restoring session for user %d: %w", id, err)
	}

	s.user = user
	s.state = StateAuthenticated
	s.log.Info(ctx, "session restored", "user_id", user.ID, "email", user.Email)
	return nil
}

// Signup registers a new user and opens a session for them.
// Input is expected to have passed the validation rules already; the service
// only enforces store-level invariants (unique email).
func (s *AuthService) Signup(ctx context.Context, name, email, password string) Result {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Error(ctx, "password hashing failed", "error", err)
		return Result{Success: false, Message: MsgSignupFailed}
	}

	user := &entity.User{Name: name, Email: email, Password: digest}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return Result{Success: false, Message: MsgEmailExists}
		}
		s.log.Error(ctx, "signup failed", "email", email, "error", err)
		return Result{Success: false, Message: MsgSignupFailed}
	}

	// Re-fetch through the ID projection so the returned snapshot reflects
	// exactly what was persisted, digest excluded.
	created, err := s.users.FindByID(ctx, user.ID)
	if err != nil {
		s.log.Error(ctx, "fetching created user failed", "user_id", user.ID, "error", err)
		return Result{Success: false, Message: MsgSignupFailed}
	}

	if err := s.persistSession(ctx, created); err != nil {
		s.log.Error(ctx, "persisting session failed", "user_id", created.ID, "error", err)
		return Result{Success: false, Message: MsgSignupFailed}
	}

	s.log.Info(ctx, "signup successful", "user_id", created.ID, "email", created.Email)
	return Result{Success: true, Message: MsgSignupOK, User: created.WithoutPassword()}
}

// Login authenticates a user by email and password.
// Unknown email and wrong password yield the identical generic message, so
// callers cannot learn which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) Result {
	user, findErr := s.users.FindByEmail(ctx, email)

	// Always run a verification so the timing does not reveal whether the
	// email exists.
	stored := dummyDigest
	if findErr == nil {
		stored = user.Password
	}
	verifyErr := s.hasher.Verify(stored, password)

	if findErr != nil {
		if !errors.Is(findErr, ErrUserNotFound) {
			s.log.Error(ctx, "login lookup failed", "email", email, "error", findErr)
			return Result{Success: false, Message: MsgLoginFailed}
		}
		return Result{Success: false, Message: MsgInvalidCredentials}
	}
	if verifyErr != nil {
		return Result{Success: false, Message: MsgInvalidCredentials}
	}

	// Transparent upgrade of legacy digests to the current format.
	if s.hasher.NeedsRehash(user.Password) {
		if digest, err := s.hasher.Hash(password); err == nil {
			if err := s.users.ReplacePasswordDigest(ctx, user.ID, digest); err != nil {
				s.log.Warn(ctx, "digest upgrade failed", "user_id", user.ID, "error", err)
			}
		}
	}

	if err := s.persistSession(ctx, user); err != nil {
		s.log.Error(ctx, "persisting session failed", "user_id", user.ID, "error", err)
		return Result{Success: false, Message: MsgLoginFailed}
	}

	s.log.Info(ctx, "login successful", "user_id", user.ID, "email", user.Email)
	return Result{Success: true, Message: MsgLoginOK, User: user.WithoutPassword()}
}

// Logout clears the persisted session and returns the service to anonymous.
// Logging out without a session is not an error.
func (s *AuthService) Logout(ctx context.Context) Result {
	if err := s.sessions.Remove(ctx, SessionKey); err != nil {
		s.log.Error(ctx, "removing session failed", "error", err)
		return Result{Success: false, Message: MsgLogoutFailed}
	}

	s.user = nil
	s.state = StateAnonymous
	s.log.Info(ctx, "logout successful")
	return Result{Success: true, Message: MsgLogoutOK}
}

// UpdateProfile applies a partial update of the authenticated user's name
// and email, then refreshes the in-memory snapshot from the store so it
// reflects exactly what was persisted.
func (s *AuthService) UpdateProfile(ctx context.Context, upd ProfileUpdate) Result {
	if s.state != StateAuthenticated || s.user == nil {
		return Result{Success: false, Message: MsgNotLoggedIn}
	}

	if err := s.users.Update(ctx, s.user.ID, upd); err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			return Result{Success: false, Message: MsgEmailExists}
		case errors.Is(err, ErrUserNotFound):
			s.log.Warn(ctx, "authenticated user vanished from store", "user_id", s.user.ID)
			return Result{Success: false, Message: MsgProfileFailed}
		default:
			s.log.Error(ctx, "profile update failed", "user_id", s.user.ID, "error", err)
			return Result{Success: false, Message: MsgProfileFailed}
		}
	}

	updated, err := s.users.FindByID(ctx, s.user.ID)
	if err != nil {
		s.log.Error(ctx, "fetching updated user failed", "user_id", s.user.ID, "error", err)
		return Result{Success: false, Message: MsgProfileFailed}
	}

	s.user = updated
	return Result{Success: true, Message: MsgProfileUpdated, User: updated.WithoutPassword()}
}

// ListUsers returns all users, digests excluded. Administrative operation.
func (s *AuthService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes a user by ID. Administrative operation. If the deleted
// user is the one currently logged in, the session is closed as well.
func (s *AuthService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	if s.user != nil && s.user.ID == id {
		if err := s.sessions.Remove(ctx, SessionKey); err != nil {
			return err
		}
		s.user = nil
		s.state = StateAnonymous
	}
	return nil
}

// persistSession stores the session pointer and flips the in-memory state.
func (s *AuthService) persistSession(ctx context.Context, user *entity.User) error {
	if err := s.sessions.Set(ctx, SessionKey, strconv.FormatUint(uint64(user.ID), 10)); err != nil {
		return err
	}
	s.user = user
	s.state = StateAuthenticated
	return nil
}
