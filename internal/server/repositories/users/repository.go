package users

import (
	"context"

	"github.com/mariusdev/taskapi/internal/server/models"
)

// Repository is the principal-lookup contract required by the auth service.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// FindByUsernameOrEmail accepts either identifier in the same field.
	FindByUsernameOrEmail(ctx context.Context, term string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
