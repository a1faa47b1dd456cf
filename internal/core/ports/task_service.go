package ports

import (
	"context"
	"io"
	"time"

	"github.com/Rudraa01/it-submission/internal/core/domain"
)

// ScreenshotUpload carries an incoming screenshot file for submission.
type ScreenshotUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// SubmitTaskInput carries all data needed to create a new task submission.
type SubmitTaskInput struct {
	UserID      string
	Title       string
	Description string
	TaskLink    string
	// Screenshot is optional; nil means the submission carries no image.
	Screenshot *ScreenshotUpload
}

// TaskView is a task enriched with display names resolved from the user
// store. SubmitterEmail is populated only on admin listings.
type TaskView struct {
	ID             string
	Title          string
	Description    string
	TaskLink       string
	Screenshot     domain.Screenshot
	Status         string
	Feedback       string
	SubmittedAt    time.Time
	ReviewedAt     *time.Time
	SubmitterName  string
	SubmitterEmail string
	ReviewerName   string
}

// TaskService defines member-facing task operations.
type TaskService interface {
	Submit(ctx context.Context, input SubmitTaskInput) (*domain.Task, error)
	// Gallery returns approved tasks, newest first, with submitter names.
	Gallery(ctx context.Context) ([]TaskView, error)
	// MyTasks returns the caller's own tasks regardless of status.
	MyTasks(ctx context.Context, userID string) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (*TaskView, error)
}
