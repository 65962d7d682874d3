package tasks

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mariusdev/taskapi/internal/common"
	"github.com/mariusdev/taskapi/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var taskColumns = []string{
	"id", "user_id", "title", "description", "status", "priority",
	"due_date", "category", "created_at", "updated_at",
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+tasks\s*\(id,\s*user_id,\s*title,\s*description,\s*status,\s*priority,\s*due_date,\s*category\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7,\s*\$8\)\s*RETURNING\s+created_at,\s*updated_at\s*$`

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now)
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "u1", "Ship release", "", models.StatusTodo, models.PriorityMedium, nil, nil).
		WillReturnRows(rows)

	task := &models.Task{
		UserID:   "u1",
		Title:    "Ship release",
		Status:   models.StatusTodo,
		Priority: models.PriorityMedium,
	}
	got, err := repo.Create(context.Background(), task)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id, got empty")
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", got)
	}
}

func TestGetByID_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(taskColumns).
		AddRow("t1", "u1", "Ship release", "cut the tag", "TODO", "MEDIUM", due, "work", time.Now(), time.Now())
	mock.ExpectQuery(`(?s)SELECT .* FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("t1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.UserID != "u1" || got.Status != models.StatusTodo || got.Priority != models.PriorityMedium {
		t.Fatalf("unexpected task: %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("unexpected due date: %v", got.DueDate)
	}
	if got.Category == nil || *got.Category != "work" {
		t.Fatalf("unexpected category: %v", got.Category)
	}
}

func TestGetByID_NullOptionalColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(taskColumns).
		AddRow("t1", "u1", "Ship release", "", "TODO", "MEDIUM", nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(`(?s)SELECT .* FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("t1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.DueDate != nil || got.Category != nil {
		t.Fatalf("expected nil optional fields, got %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .* FROM\s+tasks`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_RefreshesUpdatedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+tasks\s+SET\s+title\s*=\s*\$2,.*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$1\s+RETURNING\s+updated_at\s*$`

	updated := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	mock.ExpectQuery(q).
		WithArgs("t1", "New title", "desc", models.StatusDone, models.PriorityHigh, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))

	task := &models.Task{
		ID:          "t1",
		Title:       "New title",
		Description: "desc",
		Status:      models.StatusDone,
		Priority:    models.PriorityHigh,
	}
	got, err := repo.Update(context.Background(), task)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !got.UpdatedAt.Equal(updated) {
		t.Fatalf("unexpected updated_at: %v", got.UpdatedAt)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "t1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+tasks`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestSelect_AppliesPredicateAndOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	status := models.StatusTodo
	p := BuildPredicate(Criteria{Status: &status}, "u1")

	rows := sqlmock.NewRows(taskColumns).
		AddRow("t1", "u1", "a", "", "TODO", "LOW", nil, nil, time.Now(), time.Now()).
		AddRow("t2", "u1", "b", "", "TODO", "HIGH", nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(`(?s)SELECT .* FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+status\s*=\s*\$2\s+ORDER\s+BY\s+created_at`).
		WithArgs("u1", status).
		WillReturnRows(rows)

	got, err := repo.Select(context.Background(), p)
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t1" || got[1].ID != "t2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestSelect_EmptyResultIsNotAnError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .* FROM\s+tasks`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(taskColumns))

	got, err := repo.Select(context.Background(), BuildPredicate(Criteria{}, "u1"))
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
