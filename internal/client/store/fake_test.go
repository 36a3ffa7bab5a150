package store

import (
	"context"
	"io"
	"sync"

	"github.com/coachdesk/coachdesk/internal/client/models"
)

// fakeAPI implements api.API for store unit tests. It records per-method
// call counts and last arguments, returns canned results, and can emit a
// scripted progress sequence for uploads.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	Token string

	LoginRes models.AuthResult
	LoginErr error

	SignupRes      models.AuthResult
	SignupErr      error
	LastSignupPath string

	ProfileUser     *models.User
	ProfileErr      error
	LastProfilePath string

	ResetErr   error
	ConfirmErr error

	UsersPage     models.Page[models.User]
	UsersErr      error
	LastUserQuery models.UserQuery
	DeleteUserErr error
	RoleErr       error
	LastRole      models.Role

	TraineesPage  models.Page[models.Trainee]
	TraineesErr   error
	AddTraineeErr error
	RemoveErr     error

	Certs          []models.Document
	CertsErr       error
	UploadCertErr  error
	ProgressEvents []int

	VideosPage     models.Page[models.Video]
	VideosErr      error
	UploadVideoErr error
	DeleteVideoErr error

	ReviewsPage  models.Page[models.Review]
	ReviewsErr   error
	SubmitErr    error
	DelReviewErr error

	VerifsPage      models.Page[models.VerificationRecord]
	VerifsErr       error
	StatusErr       error
	LastStatus      models.VerificationStatus
	LastReason      string
	Notes           []models.Note
	NotesErr        error
	AddNoteErr      error
	LastNotesUser   string
	LastNoteText    string
	NotesByUser     map[string][]models.Note
	NotesErrsByUser map[string]error

	ReportPages       map[models.ReportKind]models.Page[models.ReportRecord]
	ReportErrs        map[models.ReportKind]error
	DismissErr        error
	DeleteReportedErr error
	LastReportKind    models.ReportKind
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:       map[string]int{},
		ReportPages: map[models.ReportKind]models.Page[models.ReportRecord]{},
		ReportErrs:  map[models.ReportKind]error{},
	}
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) SetToken(token string) { f.mu.Lock(); f.Token = token; f.mu.Unlock() }
func (f *fakeAPI) ClearToken()           { f.mu.Lock(); f.Token = ""; f.mu.Unlock() }

func (f *fakeAPI) currentToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Token
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	f.record("Login")
	return f.LoginRes, f.LoginErr
}

func (f *fakeAPI) Signup(ctx context.Context, path string, data models.SignupData) (models.AuthResult, error) {
	f.record("Signup")
	f.LastSignupPath = path
	return f.SignupRes, f.SignupErr
}

func (f *fakeAPI) Profile(ctx context.Context, path string) (*models.User, error) {
	f.record("Profile")
	f.LastProfilePath = path
	return f.ProfileUser, f.ProfileErr
}

func (f *fakeAPI) RequestPasswordReset(ctx context.Context, email string) error {
	f.record("RequestPasswordReset")
	return f.ResetErr
}

func (f *fakeAPI) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	f.record("ConfirmPasswordReset")
	return f.ConfirmErr
}

func (f *fakeAPI) ListUsers(ctx context.Context, q models.UserQuery) (models.Page[models.User], error) {
	f.record("ListUsers")
	f.LastUserQuery = q
	return f.UsersPage, f.UsersErr
}

func (f *fakeAPI) DeleteUser(ctx context.Context, id string) error {
	f.record("DeleteUser")
	return f.DeleteUserErr
}

func (f *fakeAPI) UpdateUserRole(ctx context.Context, id string, role models.Role) error {
	f.record("UpdateUserRole")
	f.LastRole = role
	return f.RoleErr
}

func (f *fakeAPI) ListTrainees(ctx context.Context, page int) (models.Page[models.Trainee], error) {
	f.record("ListTrainees")
	return f.TraineesPage, f.TraineesErr
}

func (f *fakeAPI) AddTrainee(ctx context.Context, email string) error {
	f.record("AddTrainee")
	return f.AddTraineeErr
}

func (f *fakeAPI) RemoveTrainee(ctx context.Context, id string) error {
	f.record("RemoveTrainee")
	return f.RemoveErr
}

func (f *fakeAPI) ListCertificates(ctx context.Context) ([]models.Document, error) {
	f.record("ListCertificates")
	return f.Certs, f.CertsErr
}

func (f *fakeAPI) UploadCertificate(ctx context.Context, name string, file io.Reader, onProgress func(int)) error {
	f.record("UploadCertificate")
	f.emitProgress(onProgress, f.UploadCertErr)
	return f.UploadCertErr
}

func (f *fakeAPI) ListVideos(ctx context.Context, page int) (models.Page[models.Video], error) {
	f.record("ListVideos")
	return f.VideosPage, f.VideosErr
}

func (f *fakeAPI) UploadVideo(ctx context.Context, meta models.VideoMeta, name string, file io.Reader, onProgress func(int)) error {
	f.record("UploadVideo")
	f.emitProgress(onProgress, f.UploadVideoErr)
	return f.UploadVideoErr
}

// emitProgress plays the scripted sequence. When the upload is going to
// fail, the final 100 is withheld, mirroring a transfer cut short.
func (f *fakeAPI) emitProgress(onProgress func(int), willFail error) {
	if onProgress == nil {
		return
	}
	for _, p := range f.ProgressEvents {
		if willFail != nil && p == 100 {
			break
		}
		onProgress(p)
	}
}

func (f *fakeAPI) DeleteVideo(ctx context.Context, id string) error {
	f.record("DeleteVideo")
	return f.DeleteVideoErr
}

func (f *fakeAPI) ListReviews(ctx context.Context, trainerID string, page int) (models.Page[models.Review], error) {
	f.record("ListReviews")
	return f.ReviewsPage, f.ReviewsErr
}

func (f *fakeAPI) SubmitReview(ctx context.Context, review models.Review) error {
	f.record("SubmitReview")
	return f.SubmitErr
}

func (f *fakeAPI) DeleteReview(ctx context.Context, id string) error {
	f.record("DeleteReview")
	return f.DelReviewErr
}

func (f *fakeAPI) ListVerifications(ctx context.Context, page int) (models.Page[models.VerificationRecord], error) {
	f.record("ListVerifications")
	return f.VerifsPage, f.VerifsErr
}

func (f *fakeAPI) UpdateVerificationStatus(ctx context.Context, userID string, status models.VerificationStatus, reason string) error {
	f.record("UpdateVerificationStatus")
	f.LastStatus = status
	f.LastReason = reason
	return f.StatusErr
}

func (f *fakeAPI) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	f.record("ListNotes")
	f.LastNotesUser = userID
	if f.NotesErrsByUser != nil {
		if err, ok := f.NotesErrsByUser[userID]; ok {
			return nil, err
		}
	}
	if f.NotesByUser != nil {
		return f.NotesByUser[userID], nil
	}
	return f.Notes, f.NotesErr
}

func (f *fakeAPI) AddNote(ctx context.Context, userID, text string) error {
	f.record("AddNote")
	f.LastNoteText = text
	return f.AddNoteErr
}

func (f *fakeAPI) ListReports(ctx context.Context, kind models.ReportKind, page int) (models.Page[models.ReportRecord], error) {
	f.record("ListReports:" + string(kind))
	f.LastReportKind = kind
	if err, ok := f.ReportErrs[kind]; ok && err != nil {
		return models.Page[models.ReportRecord]{}, err
	}
	return f.ReportPages[kind], nil
}

func (f *fakeAPI) DismissReport(ctx context.Context, kind models.ReportKind, reportID string) error {
	f.record("DismissReport")
	return f.DismissErr
}

func (f *fakeAPI) DeleteReported(ctx context.Context, kind models.ReportKind, entityID string) error {
	f.record("DeleteReported")
	return f.DeleteReportedErr
}

// fakeRepo is an in-memory state.Repository.
type fakeRepo struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: map[string][]byte{}}
}

func (r *fakeRepo) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key], nil
}

func (r *fakeRepo) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *fakeRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = map[string][]byte{}
	return nil
}
