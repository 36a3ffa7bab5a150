package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/coachdesk/coachdesk/internal/client/api"
	"github.com/coachdesk/coachdesk/internal/client/models"
)

// VerificationState is a read snapshot of the verification workflow store.
type VerificationState struct {
	Queue      models.Page[models.VerificationRecord]
	QueueAsync Async
	Action     Async

	Notes      []models.Note
	NotesUser  string
	NotesAsync Async
	NoteAction Async
}

// VerificationStore drives the two-stage credential review workflow. Status
// moves pending→verified or pending→rejected (reason required); both are
// terminal. The client never transitions a record locally — every successful
// status change re-fetches the queue and the server decides membership.
type VerificationStore struct {
	api    api.API
	notify func()

	mu         sync.Mutex
	queueAsync Async
	action     Async
	queue      models.Page[models.VerificationRecord]
	page       int

	notesAsync Async
	noteAction Async
	notes      []models.Note
	notesUser  string
}

func NewVerificationStore(a api.API) *VerificationStore {
	return &VerificationStore{api: a, page: 1}
}

func (s *VerificationStore) Snapshot() VerificationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return VerificationState{
		Queue:      s.queue,
		QueueAsync: s.queueAsync,
		Action:     s.action,
		Notes:      s.notes,
		NotesUser:  s.notesUser,
		NotesAsync: s.notesAsync,
		NoteAction: s.noteAction,
	}
}

func (s *VerificationStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

// FetchQueue replaces the pending-verification queue snapshot.
func (s *VerificationStore) FetchQueue(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	s.queueAsync.begin()
	s.page = page
	s.mu.Unlock()
	s.changed()

	result, err := s.api.ListVerifications(ctx, page)

	s.mu.Lock()
	if err != nil {
		s.queueAsync.fail(err)
	} else {
		s.queue = result
		s.queueAsync.finish()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

// UpdateStatus requests a status transition for one user. Non-terminal
// targets and rejections without a reason are refused client-side with zero
// network traffic and the queue untouched. On success the queue is
// unconditionally re-fetched; the transitioned record must no longer appear.
func (s *VerificationStore) UpdateStatus(ctx context.Context, userID string, status models.VerificationStatus, reason string) error {
	if !status.Terminal() {
		return s.refuse(fmt.Errorf("%w: %q", ErrInvalidTransition, status))
	}
	if status == models.VerificationRejected && strings.TrimSpace(reason) == "" {
		return s.refuse(ErrReasonRequired)
	}

	s.mu.Lock()
	s.action.begin()
	s.mu.Unlock()
	s.changed()

	if err := s.api.UpdateVerificationStatus(ctx, userID, status, reason); err != nil {
		s.mu.Lock()
		s.action.fail(err)
		s.mu.Unlock()
		s.changed()
		return err
	}

	s.mu.Lock()
	s.action.finish()
	page := s.page
	s.mu.Unlock()
	s.changed()
	return s.FetchQueue(ctx, page)
}

func (s *VerificationStore) refuse(err error) error {
	s.mu.Lock()
	s.action.fail(err)
	s.mu.Unlock()
	s.changed()
	return err
}

// FetchNotes loads the notes of one user. Notes are never cached across
// users: switching the viewed user drops the previous user's notes and any
// note errors before the fetch starts.
func (s *VerificationStore) FetchNotes(ctx context.Context, userID string) error {
	s.mu.Lock()
	if s.notesUser != userID {
		s.notes = nil
		s.noteAction = Async{}
	}
	s.notesUser = userID
	s.notesAsync.begin()
	s.mu.Unlock()
	s.changed()

	notes, err := s.api.ListNotes(ctx, userID)

	s.mu.Lock()
	if err != nil {
		s.notesAsync.fail(err)
	} else {
		s.notes = notes
		s.notesAsync.finish()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

// AddNote appends a note to a user's file and re-fetches that user's notes
// on success. Notes are append-only from the client.
func (s *VerificationStore) AddNote(ctx context.Context, userID, text string) error {
	if strings.TrimSpace(text) == "" {
		s.mu.Lock()
		s.noteAction.fail(ErrEmptyNote)
		s.mu.Unlock()
		s.changed()
		return ErrEmptyNote
	}

	s.mu.Lock()
	s.noteAction.begin()
	s.mu.Unlock()
	s.changed()

	if err := s.api.AddNote(ctx, userID, text); err != nil {
		s.mu.Lock()
		s.noteAction.fail(err)
		s.mu.Unlock()
		s.changed()
		return err
	}

	s.mu.Lock()
	s.noteAction.finish()
	s.mu.Unlock()
	s.changed()
	return s.FetchNotes(ctx, userID)
}
