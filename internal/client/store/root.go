package store

import (
	"context"
	"time"

	"github.com/coachdesk/coachdesk/internal/client/api"
	"github.com/coachdesk/coachdesk/internal/client/models"
	"github.com/coachdesk/coachdesk/internal/client/state"
	"github.com/coachdesk/coachdesk/internal/logging"
)

// Root combines every store into one addressable tree. Only the session
// slice is persisted; the rest of the tree starts empty on each run.
type Root struct {
	Session      *SessionStore
	Users        *UserStore
	Trainees     *TraineeStore
	Videos       *VideoStore
	Reviews      *ReviewStore
	Verification *VerificationStore
	Moderation   *ModerationStore

	api api.API
}

// NewRoot wires the stores to one API adapter and one state repository, and
// installs the moderation→users resync hook.
func NewRoot(a api.API, repo state.Repository, log logging.Logger, searchDelay time.Duration) *Root {
	r := &Root{
		Session:      NewSessionStore(a, repo, log),
		Users:        NewUserStore(a, searchDelay),
		Trainees:     NewTraineeStore(a),
		Videos:       NewVideoStore(a),
		Reviews:      NewReviewStore(a),
		Verification: NewVerificationStore(a),
		Moderation:   NewModerationStore(a),
		api:          a,
	}

	// Deleting a user from either admin view must refresh the other: a
	// deleted reported user may sit in the general list, and a user deleted
	// from the general list may still be in the reported-users collection.
	r.Moderation.userResync = r.Users.Refetch
	r.Users.reportResync = func(ctx context.Context) error {
		return r.Moderation.refetch(ctx, models.ReportUsers)
	}

	return r
}

// OnChange registers a callback invoked after any store transition, letting
// the view layer re-render from the tree. Stores only ever notify after
// releasing their locks.
func (r *Root) OnChange(fn func()) {
	r.Session.notify = fn
	r.Users.notify = fn
	r.Trainees.notify = fn
	r.Videos.notify = fn
	r.Reviews.notify = fn
	r.Verification.notify = fn
	r.Moderation.notify = fn
}

// Rehydrate restores the persisted session slice. It must settle before the
// initial LoadUser is dispatched; an absent slice is a valid anonymous start.
func (r *Root) Rehydrate(ctx context.Context) error {
	return r.Session.Rehydrate(ctx)
}

// Close releases the transport and any pending debounced work.
func (r *Root) Close() error {
	r.Users.Close()
	return r.api.Close()
}
