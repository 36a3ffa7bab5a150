// Package api is the outbound HTTP adapter of the CoachDesk client. It owns
// bearer-token attachment, request/response codecs, upload progress
// reporting, and the mapping of transport failures onto shared sentinel
// errors. Stores depend on the API interface and are tested against fakes.
package api

import (
	"context"
	"io"

	"github.com/coachdesk/coachdesk/internal/client/models"
)

// API is the full backend surface the stores dispatch against.
type API interface {
	Close() error

	// Token custody. SetToken makes subsequent authenticated requests carry
	// the bearer header; ClearToken reverts to anonymous requests.
	SetToken(token string)
	ClearToken()

	// Session.
	Login(ctx context.Context, email, password string) (models.AuthResult, error)
	Signup(ctx context.Context, path string, data models.SignupData) (models.AuthResult, error)
	Profile(ctx context.Context, path string) (*models.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error

	// Admin user collection.
	ListUsers(ctx context.Context, q models.UserQuery) (models.Page[models.User], error)
	DeleteUser(ctx context.Context, id string) error
	UpdateUserRole(ctx context.Context, id string, role models.Role) error

	// Trainer's trainees and certificates.
	ListTrainees(ctx context.Context, page int) (models.Page[models.Trainee], error)
	AddTrainee(ctx context.Context, email string) error
	RemoveTrainee(ctx context.Context, id string) error
	ListCertificates(ctx context.Context) ([]models.Document, error)
	UploadCertificate(ctx context.Context, name string, file io.Reader, onProgress func(percent int)) error

	// Videos.
	ListVideos(ctx context.Context, page int) (models.Page[models.Video], error)
	UploadVideo(ctx context.Context, meta models.VideoMeta, name string, file io.Reader, onProgress func(percent int)) error
	DeleteVideo(ctx context.Context, id string) error

	// Reviews.
	ListReviews(ctx context.Context, trainerID string, page int) (models.Page[models.Review], error)
	SubmitReview(ctx context.Context, review models.Review) error
	DeleteReview(ctx context.Context, id string) error

	// Verification workflow.
	ListVerifications(ctx context.Context, page int) (models.Page[models.VerificationRecord], error)
	UpdateVerificationStatus(ctx context.Context, userID string, status models.VerificationStatus, reason string) error
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	AddNote(ctx context.Context, userID, text string) error

	// Moderation.
	ListReports(ctx context.Context, kind models.ReportKind, page int) (models.Page[models.ReportRecord], error)
	DismissReport(ctx context.Context, kind models.ReportKind, reportID string) error
	DeleteReported(ctx context.Context, kind models.ReportKind, entityID string) error
}
