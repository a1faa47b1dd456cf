package service

import (
	"context"

	"github.com/Rudraa01/it-submission/internal/core/domain"
	"github.com/Rudraa01/it-submission/internal/core/ports"
)

// attachNames resolves submitter and reviewer display names in one user
// lookup. Tasks referencing a since-deleted user keep an empty name rather
// than failing the listing.
func attachNames(ctx context.Context, userRepo ports.UserRepository, tasks []domain.Task, includeEmail bool) ([]ports.TaskView, error) {
	ids := make([]string, 0, len(tasks)*2)
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		for _, id := range []string{t.SubmittedBy, t.ReviewedBy} {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	users := map[string]*domain.User{}
	if len(ids) > 0 {
		var err error
		users, err = userRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	views := make([]ports.TaskView, 0, len(tasks))
	for _, t := range tasks {
		view := ports.TaskView{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			TaskLink:    t.TaskLink,
			Screenshot:  t.Screenshot,
			Status:      string(t.Status),
			Feedback:    t.Feedback,
			SubmittedAt: t.SubmittedAt,
			ReviewedAt:  t.ReviewedAt,
		}
		if u, ok := users[t.SubmittedBy]; ok {
			view.SubmitterName = u.Name
			if includeEmail {
				view.SubmitterEmail = u.Email
			}
		}
		if u, ok := users[t.ReviewedBy]; ok {
			view.ReviewerName = u.Name
		}
		views = append(views, view)
	}
	return views, nil
}
