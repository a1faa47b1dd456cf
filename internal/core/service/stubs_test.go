package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/Rudraa01/it-submission/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub task repository
// ---------------------------------------------------------------------------

type stubTaskRepo struct {
	tasks     map[string]*domain.Task
	nextID    int
	createErr error
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *t
	clone.ID = fmt.Sprintf("task_%d", r.nextID)
	r.tasks[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) ListByStatus(_ context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		if t.Status == status {
			out = append(out, *t)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *stubTaskRepo) ListBySubmitter(_ context.Context, userID string) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		if t.SubmittedBy == userID {
			out = append(out, *t)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *stubTaskRepo) ListAll(_ context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, *t)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *stubTaskRepo) SetReview(_ context.Context, id string, status domain.TaskStatus, feedback, reviewerID string, reviewedAt time.Time) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	t.Status = status
	t.Feedback = feedback
	t.ReviewedBy = reviewerID
	t.ReviewedAt = &reviewedAt
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) DeleteBySubmitter(_ context.Context, userID string) (int64, error) {
	var n int64
	for id, t := range r.tasks {
		if t.SubmittedBy == userID {
			delete(r.tasks, id)
			n++
		}
	}
	return n, nil
}

func sortNewestFirst(tasks []domain.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].SubmittedAt.After(tasks[j].SubmittedAt)
	})
}

// ---------------------------------------------------------------------------
// In-memory stub user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) seed(name, email, role string) *domain.User {
	r.nextID++
	u := &domain.User{
		ID:        fmt.Sprintf("user_%d", r.nextID),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	r.users[u.ID] = u
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			clone := *u
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubUserRepo) SetVerification(_ context.Context, id string, verified bool) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.IsVerified = verified
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// ---------------------------------------------------------------------------
// Stub image store and token revoker
// ---------------------------------------------------------------------------

type stubImageStore struct {
	uploads   int
	removed   []string
	uploadErr error
	removeErr error
}

func (s *stubImageStore) Upload(_ context.Context, _ io.Reader, _ int64, _ string, filename string) (*domain.Screenshot, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploads++
	return &domain.Screenshot{
		URL:      "http://media.test/itclub-tasks/" + filename,
		PublicID: "shot_" + filename,
	}, nil
}

func (s *stubImageStore) Remove(_ context.Context, publicID string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, publicID)
	return nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.revoked[jti] = ttl
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := s.revoked[jti]
	return ok, nil
}

var errStorageDown = errors.New("storage unavailable")
