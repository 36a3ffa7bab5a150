package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coachdesk/coachdesk/internal/client/api"
	"github.com/coachdesk/coachdesk/internal/client/models"
)

// UserState is a read snapshot of the admin user store.
type UserState struct {
	Users  models.Page[models.User]
	Query  models.UserQuery
	List   Async
	Action Async
}

// UserStore synchronizes the admin-side user collection. Filtering, search,
// and pagination are inputs to Fetch, not stored queries; changing either
// re-issues a page-1 fetch. Mutations never patch the collection — they
// re-fetch it on success.
type UserStore struct {
	api    api.API
	deb    *debouncer
	notify func()

	// reportResync is invoked after a user is deleted from the admin view.
	// Wired by Root to the moderation store's reported-users collection,
	// since the deleted account can appear in both.
	reportResync func(ctx context.Context) error

	mu     sync.Mutex
	list   Async
	action Async
	users  models.Page[models.User]
	query  models.UserQuery
}

func NewUserStore(a api.API, searchDelay time.Duration) *UserStore {
	return &UserStore{api: a, deb: newDebouncer(searchDelay)}
}

func (s *UserStore) Snapshot() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return UserState{Users: s.users, Query: s.query, List: s.list, Action: s.action}
}

func (s *UserStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

// Fetch replaces the user collection with the server's snapshot for q.
// A failed fetch leaves the previous snapshot intact.
func (s *UserStore) Fetch(ctx context.Context, q models.UserQuery) error {
	if q.Page < 1 {
		q.Page = 1
	}

	s.mu.Lock()
	s.list.begin()
	s.query = q
	s.mu.Unlock()
	s.changed()

	page, err := s.api.ListUsers(ctx, q)

	s.mu.Lock()
	if err != nil {
		s.list.fail(err)
	} else {
		s.users = page
		s.list.finish()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

// Refetch re-issues the most recent query unchanged.
func (s *UserStore) Refetch(ctx context.Context) error {
	s.mu.Lock()
	q := s.query
	s.mu.Unlock()
	return s.Fetch(ctx, q)
}

// SetRoleFilter changes the role filter and restarts at page 1.
func (s *UserStore) SetRoleFilter(ctx context.Context, role models.Role) error {
	if role != "" && !role.Valid() {
		s.mu.Lock()
		s.list.fail(fmt.Errorf("%w: %q", ErrInvalidRole, role))
		s.mu.Unlock()
		s.changed()
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	s.mu.Lock()
	q := s.query
	s.mu.Unlock()
	q.Role = role
	q.Page = 1
	return s.Fetch(ctx, q)
}

// Search schedules a debounced page-1 fetch with the new term. A fresh
// keystroke invalidates the pending timer, bounding request rate while the
// user types.
func (s *UserStore) Search(ctx context.Context, term string) {
	s.deb.schedule(func() {
		s.mu.Lock()
		q := s.query
		s.mu.Unlock()
		q.Search = term
		q.Page = 1
		_ = s.Fetch(ctx, q)
	})
}

// Close stops any pending debounced fetch.
func (s *UserStore) Close() {
	s.deb.stop()
}

// Delete removes a user and re-synchronizes both views of them on success:
// the general collection and, through the hook wired by Root, the
// reported-users collection. On failure the pre-mutation snapshot is
// untouched and the error lands in the action field only.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	s.action.begin()
	s.mu.Unlock()
	s.changed()

	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.mu.Lock()
		s.action.fail(err)
		s.mu.Unlock()
		s.changed()
		return err
	}

	s.mu.Lock()
	s.action.finish()
	s.mu.Unlock()
	s.changed()

	if err := s.Refetch(ctx); err != nil {
		return err
	}
	if s.reportResync != nil {
		return s.reportResync(ctx)
	}
	return nil
}

// ChangeRole updates a user's role. The role is validated against the
// enumerated set before any request is sent.
func (s *UserStore) ChangeRole(ctx context.Context, id string, role models.Role) error {
	if !role.Valid() {
		err := fmt.Errorf("%w: %q", ErrInvalidRole, role)
		s.mu.Lock()
		s.action.fail(err)
		s.mu.Unlock()
		s.changed()
		return err
	}

	s.mu.Lock()
	s.action.begin()
	s.mu.Unlock()
	s.changed()

	if err := s.api.UpdateUserRole(ctx, id, role); err != nil {
		s.mu.Lock()
		s.action.fail(err)
		s.mu.Unlock()
		s.changed()
		return err
	}

	s.mu.Lock()
	s.action.finish()
	s.mu.Unlock()
	s.changed()
	return s.Refetch(ctx)
}
