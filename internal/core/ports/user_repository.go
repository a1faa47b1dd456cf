package ports

import (
	"context"

	"github.com/Rudraa01/it-submission/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs resolves a set of user ids in one query. Unknown ids are
	// simply absent from the result map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	// List returns every user, newest first.
	List(ctx context.Context) ([]domain.User, error)
	SetVerification(ctx context.Context, id string, verified bool) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
