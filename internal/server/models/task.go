package models

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a task. The set is closed: values outside
// it are rejected at the boundary, never coerced.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// ParseStatus converts a label into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Priority is the urgency of a task, also a closed set.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParsePriority converts a label into a Priority, rejecting unknown values.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Task is the owned domain entity. UserID is set at creation and never
// reassigned. DueDate and Category are optional.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	Category    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
