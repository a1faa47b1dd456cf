package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Rudraa01/it-submission/internal/core/domain"
	"github.com/Rudraa01/it-submission/internal/core/ports"
)

func submitInput(userID, title, link string) ports.SubmitTaskInput {
	return ports.SubmitTaskInput{
		UserID:   userID,
		Title:    title,
		TaskLink: link,
	}
}

func withScreenshot(in ports.SubmitTaskInput, filename string) ports.SubmitTaskInput {
	in.Screenshot = &ports.ScreenshotUpload{
		Reader:      strings.NewReader("fake image bytes"),
		Size:        16,
		ContentType: "image/png",
		Filename:    filename,
	}
	return in
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestTaskService_Submit_Success(t *testing.T) {
	tasks := newStubTaskRepo()
	users := newStubUserRepo()
	images := &stubImageStore{}
	svc := NewTaskService(tasks, users, images, discardLogger)

	created, err := svc.Submit(context.Background(), submitInput("user_1", "Demo", "https://x.test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Status != domain.StatusPending {
		t.Errorf("expected status %q, got %q", domain.StatusPending, created.Status)
	}
	if created.SubmittedBy != "user_1" {
		t.Errorf("expected submitter user_1, got %q", created.SubmittedBy)
	}
	if created.SubmittedAt.IsZero() {
		t.Error("SubmittedAt must not be zero")
	}
	if created.ReviewedBy != "" || created.ReviewedAt != nil || created.Feedback != "" {
		t.Error("review fields must be unset on a new task")
	}
	if images.uploads != 0 {
		t.Errorf("no screenshot supplied, expected 0 uploads, got %d", images.uploads)
	}
}

func TestTaskService_Submit_WithScreenshot(t *testing.T) {
	tasks := newStubTaskRepo()
	images := &stubImageStore{}
	svc := NewTaskService(tasks, newStubUserRepo(), images, discardLogger)

	created, err := svc.Submit(context.Background(), withScreenshot(submitInput("user_1", "Demo", "https://x.test"), "proof.png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Screenshot.URL == "" || created.Screenshot.PublicID == "" {
		t.Errorf("expected screenshot reference, got %+v", created.Screenshot)
	}
	if images.uploads != 1 {
		t.Errorf("expected 1 upload, got %d", images.uploads)
	}
}

func TestTaskService_Submit_UploadFailure_NothingPersisted(t *testing.T) {
	tasks := newStubTaskRepo()
	images := &stubImageStore{uploadErr: errStorageDown}
	svc := NewTaskService(tasks, newStubUserRepo(), images, discardLogger)

	_, err := svc.Submit(context.Background(), withScreenshot(submitInput("user_1", "Demo", "https://x.test"), "proof.png"))
	if !errors.Is(err, domain.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if len(tasks.tasks) != 0 {
		t.Errorf("upload failure must not persist a task, found %d", len(tasks.tasks))
	}
}

func TestTaskService_Submit_InsertFailure_RemovesUploadedImage(t *testing.T) {
	tasks := newStubTaskRepo()
	tasks.createErr = errors.New("db unavailable")
	images := &stubImageStore{}
	svc := NewTaskService(tasks, newStubUserRepo(), images, discardLogger)

	_, err := svc.Submit(context.Background(), withScreenshot(submitInput("user_1", "Demo", "https://x.test"), "proof.png"))
	if err == nil {
		t.Fatal("expected error when insert fails")
	}
	if len(images.removed) != 1 || images.removed[0] != "shot_proof.png" {
		t.Errorf("expected compensating delete of uploaded image, got %v", images.removed)
	}
}

// ---------------------------------------------------------------------------
// Gallery tests
// ---------------------------------------------------------------------------

func seedTask(tasks *stubTaskRepo, userID string, status domain.TaskStatus, submittedAt time.Time) *domain.Task {
	created, _ := tasks.Create(context.Background(), &domain.Task{
		Title:       "Task by " + userID,
		TaskLink:    "https://x.test",
		Status:      status,
		SubmittedBy: userID,
		SubmittedAt: submittedAt,
	})
	return created
}

func TestTaskService_Gallery_OnlyApproved(t *testing.T) {
	tasks := newStubTaskRepo()
	users := newStubUserRepo()
	alice := users.seed("Alice", "alice@club.test", domain.RoleMember)
	now := time.Now().UTC()

	seedTask(tasks, alice.ID, domain.StatusApproved, now)
	seedTask(tasks, alice.ID, domain.StatusPending, now.Add(time.Minute))
	seedTask(tasks, alice.ID, domain.StatusRejected, now.Add(2*time.Minute))

	svc := NewTaskService(tasks, users, &stubImageStore{}, discardLogger)
	views, err := svc.Gallery(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 1 {
		t.Fatalf("expected 1 approved task in gallery, got %d", len(views))
	}
	if views[0].Status != string(domain.StatusApproved) {
		t.Errorf("gallery must only contain approved tasks, got %q", views[0].Status)
	}
}

func TestTaskService_Gallery_NewestFirst_NameOnly(t *testing.T) {
	tasks := newStubTaskRepo()
	users := newStubUserRepo()
	alice := users.seed("Alice", "alice@club.test", domain.RoleMember)
	now := time.Now().UTC()

	old := seedTask(tasks, alice.ID, domain.StatusApproved, now.Add(-time.Hour))
	recent := seedTask(tasks, alice.ID, domain.StatusApproved, now)

	svc := NewTaskService(tasks, users, &stubImageStore{}, discardLogger)
	views, _ := svc.Gallery(context.Background())

	if len(views) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(views))
	}
	if views[0].ID != recent.ID || views[1].ID != old.ID {
		t.Errorf("gallery must be newest first: got %s, %s", views[0].ID, views[1].ID)
	}
	if views[0].SubmitterName != "Alice" {
		t.Errorf("expected submitter name Alice, got %q", views[0].SubmitterName)
	}
	if views[0].SubmitterEmail != "" {
		t.Error("gallery must never expose submitter email")
	}
}

// ---------------------------------------------------------------------------
// MyTasks / GetTask tests
// ---------------------------------------------------------------------------

func TestTaskService_MyTasks_OwnOnly(t *testing.T) {
	tasks := newStubTaskRepo()
	users := newStubUserRepo()
	now := time.Now().UTC()

	seedTask(tasks, "user_1", domain.StatusPending, now)
	seedTask(tasks, "user_1", domain.StatusRejected, now.Add(time.Minute))
	seedTask(tasks, "user_2", domain.StatusApproved, now)

	svc := NewTaskService(tasks, users, &stubImageStore{}, discardLogger)
	mine, err := svc.MyTasks(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mine) != 2 {
		t.Fatalf("expected 2 own tasks regardless of status, got %d", len(mine))
	}
	for _, task := range mine {
		if task.SubmittedBy != "user_1" {
			t.Errorf("foreign task leaked into my-tasks: %+v", task)
		}
	}
}

func TestTaskService_GetTask_WithReviewerName(t *testing.T) {
	tasks := newStubTaskRepo()
	users := newStubUserRepo()
	alice := users.seed("Alice", "alice@club.test", domain.RoleMember)
	boss := users.seed("Boss", "boss@club.test", domain.RoleAdmin)

	created := seedTask(tasks, alice.ID, domain.StatusPending, time.Now().UTC())
	_, _ = tasks.SetReview(context.Background(), created.ID, domain.StatusApproved, "nice", boss.ID, time.Now().UTC())

	svc := NewTaskService(tasks, users, &stubImageStore{}, discardLogger)
	view, err := svc.GetTask(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.SubmitterName != "Alice" {
		t.Errorf("expected submitter Alice, got %q", view.SubmitterName)
	}
	if view.ReviewerName != "Boss" {
		t.Errorf("expected reviewer Boss, got %q", view.ReviewerName)
	}
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), newStubUserRepo(), &stubImageStore{}, discardLogger)

	_, err := svc.GetTask(context.Background(), "missing")
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
