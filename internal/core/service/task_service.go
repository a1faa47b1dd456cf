package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Rudraa01/it-submission/internal/api/metrics"
	"github.com/Rudraa01/it-submission/internal/core/domain"
	"github.com/Rudraa01/it-submission/internal/core/ports"
)

// TaskService implements member-facing task operations.
type TaskService struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, images ports.ImageStore, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, images: images, logger: logger}
}

// Submit creates a new pending task for the caller. When a screenshot is
// supplied it is uploaded first and the insert only happens once the image
// host has acknowledged it, so a stored task always reflects the final
// upload outcome. If the insert fails after a successful upload, the
// uploaded object is removed again.
func (s *TaskService) Submit(ctx context.Context, input ports.SubmitTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		TaskLink:    input.TaskLink,
		Status:      domain.StatusPending,
		SubmittedBy: input.UserID,
		SubmittedAt: time.Now().UTC(),
	}

	withScreenshot := "no"
	if input.Screenshot != nil {
		shot, err := s.images.Upload(ctx, input.Screenshot.Reader, input.Screenshot.Size, input.Screenshot.ContentType, input.Screenshot.Filename)
		if err != nil {
			s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("screenshot upload failed")
			metrics.ScreenshotUploadsTotal.WithLabelValues("upload", "error").Inc()
			return nil, domain.ErrUploadFailed
		}
		metrics.ScreenshotUploadsTotal.WithLabelValues("upload", "ok").Inc()
		task.Screenshot = *shot
		withScreenshot = "yes"
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create task")
		if task.Screenshot.PublicID != "" {
			s.removeScreenshot(ctx, task.Screenshot.PublicID)
		}
		return nil, err
	}

	metrics.TasksSubmittedTotal.WithLabelValues(withScreenshot).Inc()
	s.logger.Info().Str("task_id", created.ID).Str("user_id", input.UserID).Msg("task submitted")
	return created, nil
}

// Gallery returns approved tasks with submitter names. Email and any other
// user fields are never exposed on the public listing.
func (s *TaskService) Gallery(ctx context.Context) ([]ports.TaskView, error) {
	tasks, err := s.tasks.ListByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	return attachNames(ctx, s.users, tasks, false)
}

func (s *TaskService) MyTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.tasks.ListBySubmitter(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*ports.TaskView, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := attachNames(ctx, s.users, []domain.Task{*task}, false)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// removeScreenshot is the compensating delete after a failed insert.
func (s *TaskService) removeScreenshot(ctx context.Context, publicID string) {
	if err := s.images.Remove(ctx, publicID); err != nil {
		s.logger.Warn().Err(err).Str("public_id", publicID).Msg("failed to remove orphaned screenshot")
		metrics.ScreenshotUploadsTotal.WithLabelValues("remove", "error").Inc()
		return
	}
	metrics.ScreenshotUploadsTotal.WithLabelValues("remove", "ok").Inc()
}
