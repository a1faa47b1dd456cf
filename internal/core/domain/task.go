package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the review lifecycle state of a submission.
type TaskStatus string

const (
	StatusPending  TaskStatus = "pending"
	StatusApproved TaskStatus = "approved"
	StatusRejected TaskStatus = "rejected"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrInvalidStatus = errors.New("invalid review status")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUploadFailed = errors.New("image upload failed")

// IsReviewOutcome reports whether s is a status an admin may set on review.
// Only the two terminal states qualify; "pending" is never a review target.
func (s TaskStatus) IsReviewOutcome() bool {
	return s == StatusApproved || s == StatusRejected
}

// Screenshot holds the remote location of an uploaded image together with
// the handle needed to delete it from the image host.
type Screenshot struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"public_id,omitempty" bson:"public_id,omitempty"`
}

// Task is the core aggregate: one member submission awaiting or having
// received admin review. ReviewedBy, Feedback and ReviewedAt stay unset
// while the task is pending.
type Task struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	TaskLink    string     `json:"task_link" bson:"task_link"`
	Screenshot  Screenshot `json:"screenshot" bson:"screenshot"`
	Status      TaskStatus `json:"status" bson:"status"`
	SubmittedBy string     `json:"submitted_by" bson:"submitted_by"`
	ReviewedBy  string     `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	Feedback    string     `json:"feedback,omitempty" bson:"feedback,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at" bson:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
}
