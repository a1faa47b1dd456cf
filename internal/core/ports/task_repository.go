package ports

import (
	"context"
	"time"

	"github.com/Rudraa01/it-submission/internal/core/domain"
)

// TaskRepository defines persistence operations for task submissions.
// All listing methods return tasks ordered newest submission first.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	ListBySubmitter(ctx context.Context, userID string) ([]domain.Task, error)
	ListAll(ctx context.Context) ([]domain.Task, error)
	// SetReview applies a review outcome in one update and returns the
	// updated task. Repeated calls overwrite the previous review fields.
	SetReview(ctx context.Context, id string, status domain.TaskStatus, feedback, reviewerID string, reviewedAt time.Time) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	// DeleteBySubmitter removes every task submitted by userID and reports
	// how many were deleted.
	DeleteBySubmitter(ctx context.Context, userID string) (int64, error)
}
