package store

import (
	"context"
	"io"
	"sync"

	"github.com/coachdesk/coachdesk/internal/client/api"
	"github.com/coachdesk/coachdesk/internal/client/models"
)

// VideoState is a read snapshot of the video store.
type VideoState struct {
	Videos    models.Page[models.Video]
	List      Async
	Action    Async
	Uploading bool
	UploadErr error
}

// VideoStore synchronizes the caller's training-video collection.
type VideoStore struct {
	api    api.API
	notify func()

	mu        sync.Mutex
	list      Async
	action    Async
	uploading bool
	uploadErr error
	videos    models.Page[models.Video]
	page      int
}

func NewVideoStore(a api.API) *VideoStore {
	return &VideoStore{api: a, page: 1}
}

func (s *VideoStore) Snapshot() VideoState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return VideoState{
		Videos:    s.videos,
		List:      s.list,
		Action:    s.action,
		Uploading: s.uploading,
		UploadErr: s.uploadErr,
	}
}

func (s *VideoStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

// Fetch replaces the video page snapshot.
func (s *VideoStore) Fetch(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	s.list.begin()
	s.page = page
	s.mu.Unlock()
	s.changed()

	result, err := s.api.ListVideos(ctx, page)

	s.mu.Lock()
	if err != nil {
		s.list.fail(err)
	} else {
		s.videos = result
		s.list.finish()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

func (s *VideoStore) refetch(ctx context.Context) error {
	s.mu.Lock()
	page := s.page
	s.mu.Unlock()
	return s.Fetch(ctx, page)
}

// Upload streams a video to the backend and re-fetches the collection on
// success. Progress goes to the observer only; the store keeps just the
// uploading flag and error.
func (s *VideoStore) Upload(ctx context.Context, meta models.VideoMeta, name string, file io.Reader, onProgress func(int)) error {
	s.mu.Lock()
	s.uploading = true
	s.uploadErr = nil
	s.mu.Unlock()
	s.changed()

	if onProgress != nil {
		onProgress(0)
	}

	err := s.api.UploadVideo(ctx, meta, name, file, onProgress)

	s.mu.Lock()
	s.uploading = false
	s.uploadErr = err
	s.mu.Unlock()
	s.changed()

	if err != nil {
		return err
	}
	return s.refetch(ctx)
}

// Delete removes a video and re-fetches the collection on success.
func (s *VideoStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	s.action.begin()
	s.mu.Unlock()
	s.changed()

	if err := s.api.DeleteVideo(ctx, id); err != nil {
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
