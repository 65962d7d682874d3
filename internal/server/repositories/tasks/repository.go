package tasks

import (
	"context"

	"github.com/mariusdev/taskapi/internal/server/models"
)

// Repository is the storage contract for tasks. Select consumes a Predicate
// built by BuildPredicate; result order follows creation time.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	Select(ctx context.Context, p Predicate) ([]*models.Task, error)
}
