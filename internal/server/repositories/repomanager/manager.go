// Package repomanager wires concrete repository implementations to a
// database handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mariusdev/taskapi/internal/dbx"
	"github.com/mariusdev/taskapi/internal/server/repositories/tasks"
	"github.com/mariusdev/taskapi/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DBTX, so the same
// constructor works with a plain connection or inside a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
