package ports

import (
	"context"

	"github.com/Rudraa01/it-submission/internal/core/domain"
)

// ReviewTaskInput carries a review decision made by an admin.
type ReviewTaskInput struct {
	TaskID   string
	AdminID  string
	Status   domain.TaskStatus
	Feedback string
}

// AdminService defines admin-only task and user management operations.
type AdminService interface {
	// ListTasks returns every task, newest first, with submitter name+email
	// and reviewer name attached.
	ListTasks(ctx context.Context) ([]TaskView, error)
	// ReviewTask applies an approve/reject decision. Re-invoking overwrites
	// the previous review fields.
	ReviewTask(ctx context.Context, input ReviewTaskInput) (*domain.Task, error)
	// DeleteTask removes the task record after a best-effort delete of its
	// remote screenshot.
	DeleteTask(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetUserVerification(ctx context.Context, id string, verified bool) (*domain.User, error)
	// DeleteUser removes the user's tasks (including their remote
	// screenshots, best-effort) and then the user record.
	DeleteUser(ctx context.Context, id string) error
}
