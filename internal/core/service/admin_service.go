package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Rudraa01/it-submission/internal/api/metrics"
	"github.com/Rudraa01/it-submission/internal/core/domain"
	"github.com/Rudraa01/it-submission/internal/core/ports"
)

// AdminService implements review and management operations. Role checks
// happen in the RBAC middleware; by the time a call reaches this service
// the caller is already known to be an admin.
type AdminService struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewAdminService(tasks ports.TaskRepository, users ports.UserRepository, images ports.ImageStore, logger zerolog.Logger) *AdminService {
	return &AdminService{tasks: tasks, users: users, images: images, logger: logger}
}

func (s *AdminService) ListTasks(ctx context.Context) ([]ports.TaskView, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return attachNames(ctx, s.users, tasks, true)
}

// ReviewTask applies an approve/reject decision. Re-invoking the transition
// on an already-reviewed task is allowed and overwrites feedback, reviewer
// and review timestamp, so corrections stay possible.
func (s *AdminService) ReviewTask(ctx context.Context, input ports.ReviewTaskInput) (*domain.Task, error) {
	if !input.Status.IsReviewOutcome() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, input.Status)
	}

	// Existence check first so not-found wins over any write.
	if _, err := s.tasks.FindByID(ctx, input.TaskID); err != nil {
		return nil, err
	}

	updated, err := s.tasks.SetReview(ctx, input.TaskID, input.Status, input.Feedback, input.AdminID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	metrics.TasksReviewedTotal.WithLabelValues(string(input.Status)).Inc()
	s.logger.Info().
		Str("task_id", input.TaskID).
		Str("admin_id", input.AdminID).
		Str("status", string(input.Status)).
		Msg("task reviewed")
	return updated, nil
}

// DeleteTask removes the remote screenshot (best-effort) and then the record.
func (s *AdminService) DeleteTask(ctx context.Context, id string) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.cleanupScreenshot(ctx, task)

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) SetUserVerification(ctx context.Context, id string, verified bool) (*domain.User, error) {
	user, err := s.users.SetVerification(ctx, id, verified)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Bool("verified", verified).Msg("user verification updated")
	return user, nil
}

// DeleteUser removes all of the user's tasks and then the user itself.
// Remote screenshots of the cascaded tasks are removed with the same
// best-effort policy as single-task deletion.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	tasks, err := s.tasks.ListBySubmitter(ctx, id)
	if err != nil {
		return err
	}
	for i := range tasks {
		s.cleanupScreenshot(ctx, &tasks[i])
	}

	deleted, err := s.tasks.DeleteBySubmitter(ctx, id)
	if err != nil {
		return err
	}
	metrics.CascadeDeletedTasksTotal.Add(float64(deleted))

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Int64("tasks_deleted", deleted).Msg("user deleted")
	return nil
}

// cleanupScreenshot deletes a task's remote image when one exists. Failures
// are logged and never block the record deletion.
func (s *AdminService) cleanupScreenshot(ctx context.Context, task *domain.Task) {
	if task.Screenshot.PublicID == "" {
		return
	}
	if err := s.images.Remove(ctx, task.Screenshot.PublicID); err != nil {
		s.logger.Warn().Err(err).
			Str("task_id", task.ID).
			Str("public_id", task.Screenshot.PublicID).
			Msg("failed to remove remote screenshot")
		metrics.ScreenshotUploadsTotal.WithLabelValues("remove", "error").Inc()
		return
	}
	metrics.ScreenshotUploadsTotal.WithLabelValues("remove", "ok").Inc()
}
