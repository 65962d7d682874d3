package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mariusdev/taskapi/internal/common"
	"github.com/mariusdev/taskapi/internal/server/models"
	"github.com/mariusdev/taskapi/internal/server/repositories/tasks"
	"github.com/mariusdev/taskapi/internal/server/services"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// respondError maps the service error taxonomy onto stable HTTP statuses.
// 404 vs 403 deliberately stay distinct for authenticated non-owners.
func (s *HTTPServer) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorDuplicateIdentity):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "token expired")
	case errors.Is(err, common.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.logger.Info(r.Context(), "Registration request", "username", req.Username)

	result, err := s.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", req.Username)
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.auth.Login(r.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

func (s *HTTPServer) handleCreateTask(w http.ResponseWriter, r *http.Request) {

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == nil || *req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	p, err := req.updateParams()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.tasks.Create(r.Context(), usernameFromContext(r.Context()), services.CreateTaskParams{
		Title:       *req.Title,
		Description: valueOrEmpty(req.Description),
		Status:      p.Status,
		Priority:    p.Priority,
		DueDate:     p.DueDate,
		Category:    p.Category,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(created))
}

func (s *HTTPServer) handleListTasks(w http.ResponseWriter, r *http.Request) {

	criteria, err := criteriaFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.tasks.List(r.Context(), usernameFromContext(r.Context()), criteria)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponses(result))
}

func (s *HTTPServer) handleGetTask(w http.ResponseWriter, r *http.Request) {

	task, err := s.tasks.Get(r.Context(), usernameFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (s *HTTPServer) handleUpdateTask(w http.ResponseWriter, r *http.Request) {

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := req.updateParams()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.tasks.Update(r.Context(), usernameFromContext(r.Context()), r.PathValue("id"), p)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(updated))
}

func (s *HTTPServer) handleDeleteTask(w http.ResponseWriter, r *http.Request) {

	if err := s.tasks.Delete(r.Context(), usernameFromContext(r.Context()), r.PathValue("id")); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// criteriaFromQuery maps listing query parameters into filter criteria.
// Absent parameters impose no constraint; a present-but-empty category is an
// explicit "category equals empty" constraint.
func criteriaFromQuery(r *http.Request) (tasks.Criteria, error) {
	q := r.URL.Query()
	var c tasks.Criteria

	if v := q.Get("status"); v != "" {
		status, err := models.ParseStatus(v)
		if err != nil {
			return c, err
		}
		c.Status = &status
	}

	if v := q.Get("priority"); v != "" {
		priority, err := models.ParsePriority(v)
		if err != nil {
			return c, err
		}
		c.Priority = &priority
	}

	if q.Has("category") {
		category := q.Get("category")
		c.Category = &category
	}

	if v := q.Get("dueDate"); v != "" {
		due, err := time.Parse(dateLayout, v)
		if err != nil {
			return c, errors.New("invalid due date")
		}
		c.DueDate = &due
	}

	c.Search = q.Get("search")

	return c, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
