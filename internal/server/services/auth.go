// Package services contains the orchestration layer: registration and login
// on top of the user repository, and task CRUD on top of the task repository
// with ownership checks.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mariusdev/taskapi/internal/common"
	"github.com/mariusdev/taskapi/internal/dbx"
	"github.com/mariusdev/taskapi/internal/server/auth"
	"github.com/mariusdev/taskapi/internal/server/config"
	"github.com/mariusdev/taskapi/internal/server/models"
	"github.com/mariusdev/taskapi/internal/server/repositories/repomanager"
)

// AuthResult is what a successful register or login hands back: a bearer
// token plus the account it identifies.
type AuthResult struct {
	Token string
	User  *models.User
}

// AuthService implements the register and login flows.
type AuthService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	bcryptCost    int
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		bcryptCost:    cfg.BcryptCost,
	}
}

// Register creates an account and immediately authenticates it with the same
// secret, so a fresh registration walks away with a usable token. Username
// and email uniqueness are probed independently, username first; either
// conflict fails with common.ErrorDuplicateIdentity. The probes and the
// insert run in one transaction so a concurrent registration cannot slip
// between them.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		taken, err := repo.ExistsByUsername(ctx, username)
		if err != nil {
			return common.ErrorInternal
		}
		if taken {
			return fmt.Errorf("%w: username", common.ErrorDuplicateIdentity)
		}

		taken, err = repo.ExistsByEmail(ctx, email)
		if err != nil {
			return common.ErrorInternal
		}
		if taken {
			return fmt.Errorf("%w: email", common.ErrorDuplicateIdentity)
		}

		hash, err := auth.HashPassword(password, s.bcryptCost)
		if err != nil {
			return common.ErrorInternal
		}

		user := &models.User{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
		}

		if _, err := repo.Create(ctx, user); err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Register implies login.
	return s.Login(ctx, username, password)
}

// Login verifies credentials and issues a token. Unknown identity and wrong
// password both surface as common.ErrorInvalidCredentials so the response
// never reveals which half failed.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (*AuthResult, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, User: user}, nil
}
