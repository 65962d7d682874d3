package httpapi

import (
	"fmt"
	"time"

	"github.com/mariusdev/taskapi/internal/server/models"
	"github.com/mariusdev/taskapi/internal/server/services"
)

// dateLayout is the wire format for due dates (date only, no time part).
const dateLayout = "2006-01-02"

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type authResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toAuthResponse(r *services.AuthResult) authResponse {
	return authResponse{
		Token:    r.Token,
		UserID:   r.User.ID,
		Username: r.User.Username,
		Email:    r.User.Email,
	}
}

// taskRequest is the write shape for both create and update. Every field is
// a pointer so an absent field stays distinguishable from an explicit value;
// on update, absent fields leave the stored task untouched.
type taskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Category    *string `json:"category"`
}

// updateParams converts the request into service params, validating the
// closed enum labels and the due date format.
func (req taskRequest) updateParams() (services.UpdateTaskParams, error) {
	p := services.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}

	if req.Status != nil {
		status, err := models.ParseStatus(*req.Status)
		if err != nil {
			return p, err
		}
		p.Status = &status
	}

	if req.Priority != nil {
		priority, err := models.ParsePriority(*req.Priority)
		if err != nil {
			return p, err
		}
		p.Priority = &priority
	}

	if req.DueDate != nil {
		due, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			return p, fmt.Errorf("invalid due date %q", *req.DueDate)
		}
		p.DueDate = &due
	}

	return p, nil
}

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     *string   `json:"dueDate"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      string    `json:"userId"`
}

func toTaskResponse(t *models.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		UserID:      t.UserID,
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(dateLayout)
		resp.DueDate = &due
	}
	return resp
}

func toTaskResponses(ts []*models.Task) []taskResponse {
	out := make([]taskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTaskResponse(t))
	}
	return out
}

type errorResponse struct {
	Error string `json:"error"`
}
