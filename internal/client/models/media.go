package models

import "time"

// Video is a training video owned by a trainer or nutritionist.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	OwnerID     string    `json:"ownerId"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// VideoMeta carries the user-entered fields of a video upload.
type VideoMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Review is a trainee's rating of a trainer.
type Review struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainerId"`
	AuthorID  string    `json:"authorId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Trainee is a coached client from the trainer's point of view.
type Trainee struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
}
