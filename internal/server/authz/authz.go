// Package authz decides per-task access. Authorization is single-tier
// ownership: the requester must be the task's owner, for every action alike.
// The existence check is deliberately not part of this package — callers
// resolve "does the task exist" first, so NotFound and Forbidden stay
// distinct outward signals.
package authz

import "github.com/mariusdev/taskapi/internal/server/models"

// Action names the operation being attempted. All actions share the same
// ownership rule; the type exists so call sites read unambiguously and so
// future tiers have a seam.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Denied Decision = iota
	Allowed
)

// Authorize is a pure function: no state, no storage round-trip. It compares
// the task's owner against the requesting user.
func Authorize(task *models.Task, userID string, _ Action) Decision {
	if task.UserID == userID {
		return Allowed
	}
	return Denied
}
