package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/mariusdev/taskapi/internal/server/models"
)

// Criteria carries the optional query attributes of a task listing. A nil
// field imposes no constraint, which is distinct from an explicit empty
// value. Search, when non-empty, switches the whole query into search mode.
type Criteria struct {
	Status   *models.Status
	Priority *models.Priority
	Category *string
	DueDate  *time.Time
	Search   string
}

// Mode is the query mode a Criteria resolves to. The precedence is three-way
// and exclusive: a non-empty search term wins over structured filters, any
// structured filter wins over the unfiltered listing.
type Mode int

const (
	ModeAll Mode = iota
	ModeFiltered
	ModeSearch
)

// Mode resolves the query mode once; predicate construction branches on the
// result instead of re-checking individual fields.
func (c Criteria) Mode() Mode {
	if c.Search != "" {
		return ModeSearch
	}
	if c.Status != nil || c.Priority != nil || c.Category != nil || c.DueDate != nil {
		return ModeFiltered
	}
	return ModeAll
}

// Predicate is a composed WHERE clause with positional arguments, always
// scoped to a single owner. It is consumed by Repository.Select.
type Predicate struct {
	Where string
	Args  []any
}

// BuildPredicate compiles criteria into a single conjunctive predicate for
// the given owner. An empty criteria set degrades to the owner scope alone.
func BuildPredicate(c Criteria, userID string) Predicate {
	switch c.Mode() {
	case ModeSearch:
		return searchPredicate(c.Search, userID)
	case ModeFiltered:
		return filterPredicate(c, userID)
	default:
		return Predicate{Where: "user_id = $1", Args: []any{userID}}
	}
}

func filterPredicate(c Criteria, userID string) Predicate {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	appendCond := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if c.Status != nil {
		appendCond("status", *c.Status)
	}
	if c.Priority != nil {
		appendCond("priority", *c.Priority)
	}
	if c.Category != nil {
		appendCond("category", *c.Category)
	}
	if c.DueDate != nil {
		appendCond("due_date", *c.DueDate)
	}

	return Predicate{Where: strings.Join(conds, " AND "), Args: args}
}

func searchPredicate(term, userID string) Predicate {
	return Predicate{
		Where: "user_id = $1 AND (title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')",
		Args:  []any{userID, term},
	}
}
