package store

import (
	"context"
	"io"
	"sync"

	"github.com/coachdesk/coachdesk/internal/client/api"
	"github.com/coachdesk/coachdesk/internal/client/models"
)

// TraineeState is a read snapshot of the trainer's trainee store.
type TraineeState struct {
	Trainees     models.Page[models.Trainee]
	Certificates []models.Document
	List         Async
	CertList     Async
	Action       Async
	Uploading    bool
	UploadErr    error
}

// TraineeStore synchronizes a trainer's trainee roster and certificates.
// Upload percentage is transient view state reported through the caller's
// observer; the store itself keeps only the uploading flag and error.
type TraineeStore struct {
	api    api.API
	notify func()

	mu        sync.Mutex
	list      Async
	certList  Async
	action    Async
	uploading bool
	uploadErr error
	trainees  models.Page[models.Trainee]
	certs     []models.Document
	page      int
}

func NewTraineeStore(a api.API) *TraineeStore {
	return &TraineeStore{api: a, page: 1}
}

func (s *TraineeStore) Snapshot() TraineeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TraineeState{
		Trainees:     s.trainees,
		Certificates: s.certs,
		List:         s.list,
		CertList:     s.certList,
		Action:       s.action,
		Uploading:    s.uploading,
		UploadErr:    s.uploadErr,
	}
}

func (s *TraineeStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

// Fetch replaces the trainee page snapshot.
func (s *TraineeStore) Fetch(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	s.list.begin()
	s.page = page
	s.mu.Unlock()
	s.changed()

	result, err := s.api.ListTrainees(ctx, page)

	s.mu.Lock()
	if err != nil {
		s.list.fail(err)
	} else {
		s.trainees = result
		s.list.finish()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

func (s *TraineeStore) refetch(ctx context.Context) error {
	s.mu.Lock()
	page := s.page
	s.mu.Unlock()
	return s.Fetch(ctx, page)
}

// Add invites a trainee by email and re-fetches the roster on success.
func (s *TraineeStore) Add(ctx context.Context, email string) error {
	return s.mutate(ctx, func() error { return s.api.AddTrainee(ctx, email) })
}

// Remove drops a trainee and re-fetches the roster on success.
func (s *TraineeStore) Remove(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error { return s.api.RemoveTrainee(ctx, id) })
}

func (s *TraineeStore) mutate(ctx context.Context, op func() error) error {
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

// FetchCertificates replaces the certificate list wholesale.
func (s *TraineeStore) FetchCertificates(ctx context.Context) error {
	s.mu.Lock()
	s.certList.begin()
	s.mu.Unlock()
	s.changed()

	certs, err := s.api.ListCertificates(ctx)

	s.mu.Lock()
	if err != nil {
		s.certList.fail(err)
	} else {
		s.certs = certs
		s.certList.finish()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

// UploadCertificate streams a credential file to the backend. The observer
// sees 0 at dispatch, then the transport's non-decreasing percentages; on
// failure the sequence stops short of 100. Success re-fetches the
// certificate list.
func (s *TraineeStore) UploadCertificate(ctx context.Context, name string, file io.Reader, onProgress func(int)) error {
	s.mu.Lock()
	s.uploading = true
	s.uploadErr = nil
	s.mu.Unlock()
	s.changed()

	if onProgress != nil {
		onProgress(0)
	}

	err := s.api.UploadCertificate(ctx, name, file, onProgress)

	s.mu.Lock()
	s.uploading = false
	s.uploadErr = err
	s.mu.Unlock()
	s.changed()

	if err != nil {
		return err
	}
	return s.FetchCertificates(ctx)
}
