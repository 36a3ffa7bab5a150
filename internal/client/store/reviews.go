package store

import (
	"context"
	"sync"

	"github.com/coachdesk/coachdesk/internal/client/api"
	"github.com/coachdesk/coachdesk/internal/client/models"
)

// ReviewState is a read snapshot of the review store.
type ReviewState struct {
	Reviews   models.Page[models.Review]
	TrainerID string
	List      Async
	Action    Async
}

// ReviewStore synchronizes the reviews of one viewed trainer at a time.
type ReviewStore struct {
	api    api.API
	notify func()

	mu        sync.Mutex
	list      Async
	action    Async
	reviews   models.Page[models.Review]
	trainerID string
	page      int
}

func NewReviewStore(a api.API) *ReviewStore {
	return &ReviewStore{api: a, page: 1}
}

func (s *ReviewStore) Snapshot() ReviewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ReviewState{Reviews: s.reviews, TrainerID: s.trainerID, List: s.list, Action: s.action}
}

func (s *ReviewStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

// Fetch replaces the review snapshot for the given trainer. Switching
// trainers is just a fetch with a different id; the old snapshot is fully
// replaced on success.
func (s *ReviewStore) Fetch(ctx context.Context, trainerID string, page int) error {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	s.list.begin()
	s.trainerID = trainerID
	s.page = page
	s.mu.Unlock()
	s.changed()

	result, err := s.api.ListReviews(ctx, trainerID, page)

	s.mu.Lock()
	if err != nil {
		s.list.fail(err)
	} else {
		s.reviews = result
		s.list.finish()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

func (s *ReviewStore) refetch(ctx context.Context) error {
	s.mu.Lock()
	trainerID, page := s.trainerID, s.page
	s.mu.Unlock()
	return s.Fetch(ctx, trainerID, page)
}

// Submit posts a review and re-fetches the viewed trainer's page on success.
func (s *ReviewStore) Submit(ctx context.Context, review models.Review) error {
	return s.mutate(ctx, func() error { return s.api.SubmitReview(ctx, review) })
}

// Delete removes a review and re-fetches the viewed trainer's page on success.
func (s *ReviewStore) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error { return s.api.DeleteReview(ctx, id) })
}

func (s *ReviewStore) mutate(ctx context.Context, op func() error) error {
	s.mu.Lock()
	s.action.begin()
	s.mu.Unlock()
	s.changed()

	if err := op(); err != nil {
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
	return s.refetch(ctx)
}
