package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/coachdesk/coachdesk/internal/client/api"
	"github.com/coachdesk/coachdesk/internal/client/auth"
	"github.com/coachdesk/coachdesk/internal/client/models"
	"github.com/coachdesk/coachdesk/internal/client/state"
	"github.com/coachdesk/coachdesk/internal/logging"
)

// sessionKey is the single persisted-storage key. Only the session slice
// survives a restart; every other store is memory-only.
const sessionKey = "session"

// sessionSlice is the persisted shape of the session.
type sessionSlice struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Session is a read snapshot of the session store.
type Session struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	Loading         bool
	Err             error
	Success         bool

	ResetLoading bool
	ResetErr     error
}

// SessionStore owns "who is logged in": token custody, the current user
// record, and role-aware profile loading. Invariant: IsAuthenticated is true
// exactly when both user and token are present.
type SessionStore struct {
	api  api.API
	repo state.Repository
	log  logging.Logger

	mu            sync.Mutex
	notify        func()
	user          *models.User
	token         string
	authenticated bool
	loading       bool
	err           error
	success       bool

	// password-reset flow has its own lifecycle, independent of login.
	reset Async
}

func NewSessionStore(a api.API, repo state.Repository, log logging.Logger) *SessionStore {
	return &SessionStore{api: a, repo: repo, log: log}
}

// Snapshot returns a copy of the current session state.
func (s *SessionStore) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Session{
		User:            s.user,
		Token:           s.token,
		IsAuthenticated: s.authenticated,
		Loading:         s.loading,
		Err:             s.err,
		Success:         s.success,
		ResetLoading:    s.reset.Loading,
		ResetErr:        s.reset.Err,
	}
}

// applyAuth recomputes the authenticated flag from user and token. Every
// write to either field must go through here to keep the invariant.
func (s *SessionStore) applyAuth() {
	s.authenticated = s.user != nil && s.token != ""
}

func (s *SessionStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

func (s *SessionStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.success = false
	s.mu.Unlock()
	s.changed()
}

func (s *SessionStore) failWith(err error) error {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
	s.changed()
	return err
}

// adopt installs an authenticated session from an auth result, pushes the
// token into the transport, and persists the slice.
func (s *SessionStore) adopt(ctx context.Context, res models.AuthResult) {
	s.mu.Lock()
	s.user = res.User
	s.token = res.Token
	s.applyAuth()
	s.loading = false
	s.success = s.authenticated
	s.mu.Unlock()

	if res.Token != "" {
		s.api.SetToken(res.Token)
	}
	s.persist(ctx)
	s.changed()
}

// Login authenticates with email and password. The backend's nested response
// shape may omit user or token; the session then stays anonymous without
// panicking, and the malformed shape is surfaced as an error.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	s.begin()

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return s.failWith(err)
	}

	if res.User == nil || res.Token == "" {
		return s.failWith(fmt.Errorf("%w: login response missing user or token", ErrMalformedResponse))
	}

	s.adopt(ctx, res)
	return nil
}

// Signup creates an account under the given role. An unrecognized role fails
// before any request is sent. Navigation after success is the caller's
// concern, keyed off Success && IsAuthenticated.
func (s *SessionStore) Signup(ctx context.Context, data models.SignupData, role models.Role) error {
	s.begin()

	ep, err := auth.EndpointsFor(role)
	if err != nil {
		return s.failWith(err)
	}

	res, err := s.api.Signup(ctx, ep.SignupPath, data)
	if err != nil {
		return s.failWith(err)
	}

	if res.User == nil || res.Token == "" {
		return s.failWith(fmt.Errorf("%w: signup response missing user or token", ErrMalformedResponse))
	}

	s.adopt(ctx, res)
	return nil
}

// LoadUser refreshes the current user record from the role-specific profile
// endpoint, discovering the role from the stored token. Any failure clears
// the token everywhere: a stale token must never survive a failed load.
func (s *SessionStore) LoadUser(ctx context.Context) error {
	s.begin()

	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		s.clear(ctx)
		return s.failWith(ErrNoToken)
	}

	role, err := auth.DecodeRole(token)
	if err != nil {
		s.clear(ctx)
		return s.failWith(err)
	}

	ep, err := auth.EndpointsFor(role)
	if err != nil {
		s.clear(ctx)
		return s.failWith(err)
	}

	user, err := s.api.Profile(ctx, ep.ProfilePath)
	if err != nil {
		s.clear(ctx)
		return s.failWith(err)
	}

	s.mu.Lock()
	s.user = user
	s.applyAuth()
	s.loading = false
	s.mu.Unlock()
	s.persist(ctx)
	s.changed()
	return nil
}

// Logout clears the session synchronously: memory, transport token, and the
// persisted slice. It needs no network round trip to succeed.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.clear(ctx)
	s.mu.Lock()
	s.loading = false
	s.err = nil
	s.success = false
	s.mu.Unlock()
	s.changed()
	return nil
}

// clear drops the session from memory, the transport, and persisted storage.
func (s *SessionStore) clear(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.applyAuth()
	s.mu.Unlock()

	s.api.ClearToken()
	if err := s.repo.Delete(ctx, sessionKey); err != nil {
		s.log.Warn(ctx, "failed to drop persisted session", "error", err)
	}
}

// RequestPasswordReset starts the two-phase reset flow.
func (s *SessionStore) RequestPasswordReset(ctx context.Context, email string) error {
	s.mu.Lock()
	s.reset.begin()
	s.mu.Unlock()
	s.changed()

	err := s.api.RequestPasswordReset(ctx, email)

	s.mu.Lock()
	if err != nil {
		s.reset.fail(err)
	} else {
		s.reset.finish()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

// ConfirmPasswordReset completes the reset flow. A missing token (usually
// sourced from a URL parameter) fails locally, distinguishable from a
// server-side rejection via errors.Is(err, ErrMissingResetToken).
func (s *SessionStore) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	s.mu.Lock()
	s.reset.begin()
	s.mu.Unlock()
	s.changed()

	if token == "" {
		s.mu.Lock()
		s.reset.fail(ErrMissingResetToken)
		s.mu.Unlock()
		s.changed()
		return ErrMissingResetToken
	}

	err := s.api.ConfirmPasswordReset(ctx, token, newPassword)

	s.mu.Lock()
	if err != nil {
		s.reset.fail(err)
	} else {
		s.reset.finish()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

// Rehydrate restores the persisted session slice at startup. An absent slice
// is a valid anonymous state, not an error. Callers must rehydrate before
// dispatching the initial LoadUser.
func (s *SessionStore) Rehydrate(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, sessionKey)
	if err != nil {
		return fmt.Errorf("rehydrate session: %w", err)
	}
	if raw == nil {
		return nil
	}

	var slice sessionSlice
	if err := json.Unmarshal(raw, &slice); err != nil {
		s.log.Warn(ctx, "persisted session is corrupt, starting anonymous", "error", err)
		return nil
	}

	s.mu.Lock()
	s.user = slice.User
	s.token = slice.Token
	s.applyAuth()
	s.mu.Unlock()

	if slice.Token != "" {
		s.api.SetToken(slice.Token)
	}
	s.changed()
	return nil
}

// persist writes the session slice to storage. A persistence failure does
// not invalidate the in-memory session; it is logged and the next mutation
// retries the write.
func (s *SessionStore) persist(ctx context.Context) {
	s.mu.Lock()
	slice := sessionSlice{User: s.user, Token: s.token}
	s.mu.Unlock()

	raw, err := json.Marshal(slice)
	if err != nil {
		s.log.Error(ctx, "failed to encode session slice", "error", err)
		return
	}
	if err := s.repo.Set(ctx, sessionKey, raw); err != nil {
		s.log.Warn(ctx, "failed to persist session slice", "error", err)
	}
}
