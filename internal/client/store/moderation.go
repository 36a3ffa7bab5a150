package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/coachdesk/coachdesk/internal/client/api"
	"github.com/coachdesk/coachdesk/internal/client/models"
)

// ReportsState is a read snapshot of one report kind's collection.
type ReportsState struct {
	Reports models.Page[models.ReportRecord]
	List    Async
	Action  Async
}

// reportSlot is the per-kind state. Each of the four kinds loads, errors,
// and pages independently; an error on one kind never touches another.
type reportSlot struct {
	list    Async
	action  Async
	reports models.Page[models.ReportRecord]
	page    int
}

// ModerationStore owns the four reported-entity collections and their
// dispositions. Dismiss and delete re-fetch only the actioned kind; deleting
// a reported user additionally resynchronizes the general user list through
// the hook wired by Root, since a deleted user can appear in both.
type ModerationStore struct {
	api    api.API
	notify func()

	// userResync is invoked after a reported user account is deleted.
	userResync func(ctx context.Context) error

	mu    sync.Mutex
	slots map[models.ReportKind]*reportSlot
}

func NewModerationStore(a api.API) *ModerationStore {
	slots := make(map[models.ReportKind]*reportSlot, len(models.ReportKinds))
	for _, kind := range models.ReportKinds {
		slots[kind] = &reportSlot{page: 1}
	}
	return &ModerationStore{api: a, slots: slots}
}

// Snapshot returns the state of one kind's collection.
func (s *ModerationStore) Snapshot(kind models.ReportKind) ReportsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[kind]
	if !ok {
		return ReportsState{}
	}
	return ReportsState{Reports: slot.reports, List: slot.list, Action: slot.action}
}

func (s *ModerationStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

// Fetch replaces one kind's report collection.
func (s *ModerationStore) Fetch(ctx context.Context, kind models.ReportKind, page int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidReportKind, kind)
	}
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	slot := s.slots[kind]
	slot.list.begin()
	slot.page = page
	s.mu.Unlock()
	s.changed()

	result, err := s.api.ListReports(ctx, kind, page)

	s.mu.Lock()
	if err != nil {
		slot.list.fail(err)
	} else {
		slot.reports = result
		slot.list.finish()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

func (s *ModerationStore) refetch(ctx context.Context, kind models.ReportKind) error {
	s.mu.Lock()
	page := s.slots[kind].page
	s.mu.Unlock()
	return s.Fetch(ctx, kind, page)
}

// Dismiss marks a report inactive server-side and re-fetches that kind only.
func (s *ModerationStore) Dismiss(ctx context.Context, kind models.ReportKind, reportID string) error {
	return s.action(ctx, kind, func() error {
		return s.api.DismissReport(ctx, kind, reportID)
	}, false)
}

// DeleteReported deletes the reported content or account and re-fetches that
// kind. For the users kind the general user list is resynchronized as well.
func (s *ModerationStore) DeleteReported(ctx context.Context, kind models.ReportKind, entityID string) error {
	return s.action(ctx, kind, func() error {
		return s.api.DeleteReported(ctx, kind, entityID)
	}, kind == models.ReportUsers)
}

func (s *ModerationStore) action(ctx context.Context, kind models.ReportKind, op func() error, resyncUsers bool) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidReportKind, kind)
	}

	s.mu.Lock()
	slot := s.slots[kind]
	slot.action.begin()
	s.mu.Unlock()
	s.changed()

	if err := op(); err != nil {
		s.mu.Lock()
		slot.action.fail(err)
		s.mu.Unlock()
		s.changed()
		return err
	}

	s.mu.Lock()
	slot.action.finish()
	s.mu.Unlock()
	s.changed()

	if err := s.refetch(ctx, kind); err != nil {
		return err
	}
	if resyncUsers && s.userResync != nil {
		return s.userResync(ctx)
	}
	return nil
}
