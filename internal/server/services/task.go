package services

import (
	"context"
	"time"

	"github.com/mariusdev/taskapi/internal/common"
	"github.com/mariusdev/taskapi/internal/server/authz"
	"github.com/mariusdev/taskapi/internal/server/models"
	"github.com/mariusdev/taskapi/internal/server/repositories/tasks"
	"github.com/mariusdev/taskapi/internal/server/repositories/users"
)

// CreateTaskParams carries the attributes of a new task. Status and Priority
// are optional; when nil the task defaults to TODO / MEDIUM.
type CreateTaskParams struct {
	Title       string
	Description string
	Status      *models.Status
	Priority    *models.Priority
	DueDate     *time.Time
	Category    *string
}

// UpdateTaskParams is a partial update: every field is optional, and only
// the fields that are present overwrite the stored task. A nil field leaves
// the stored value untouched.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *models.Status
	Priority    *models.Priority
	DueDate     *time.Time
	Category    *string
}

// TaskService implements per-user task CRUD and listing. Every per-task
// operation resolves the current user, loads the task, and runs the
// ownership check before touching storage again.
type TaskService struct {
	users users.Repository
	tasks tasks.Repository
}

func NewTaskService(userRepo users.Repository, taskRepo tasks.Repository) *TaskService {
	return &TaskService{users: userRepo, tasks: taskRepo}
}

// currentUser resolves the authenticated username (recovered from a
// validated token by the transport layer) into a user record.
func (s *TaskService) currentUser(ctx context.Context, username string) (*models.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *TaskService) Create(ctx context.Context, username string, p CreateTaskParams) (*models.Task, error) {
	user, err := s.currentUser(ctx, username)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      user.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      models.StatusTodo,
		Priority:    models.PriorityMedium,
		DueDate:     p.DueDate,
		Category:    p.Category,
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}

	return s.tasks.Create(ctx, task)
}

// List returns the user's tasks narrowed by criteria. The criteria resolve
// to exactly one of three modes (search, structured filter, everything);
// an empty result is a valid empty success.
func (s *TaskService) List(ctx context.Context, username string, criteria tasks.Criteria) ([]*models.Task, error) {
	user, err := s.currentUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return s.tasks.Select(ctx, tasks.BuildPredicate(criteria, user.ID))
}

func (s *TaskService) Get(ctx context.Context, username, id string) (*models.Task, error) {
	user, err := s.currentUser(ctx, username)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if authz.Authorize(task, user.ID, authz.ActionRead) != authz.Allowed {
		return nil, common.ErrorForbidden
	}

	return task, nil
}

func (s *TaskService) Update(ctx context.Context, username, id string, p UpdateTaskParams) (*models.Task, error) {
	user, err := s.currentUser(ctx, username)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if authz.Authorize(task, user.ID, authz.ActionUpdate) != authz.Allowed {
		return nil, common.ErrorForbidden
	}

	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.DueDate != nil {
		task.DueDate = p.DueDate
	}
	if p.Category != nil {
		task.Category = p.Category
	}

	return s.tasks.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, username, id string) error {
	user, err := s.currentUser(ctx, username)
	if err != nil {
		return err
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if authz.Authorize(task, user.ID, authz.ActionDelete) != authz.Allowed {
		return common.ErrorForbidden
	}

	return s.tasks.Delete(ctx, task.ID)
}
