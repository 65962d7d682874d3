// Package httpapi is the HTTP transport adapter: routing, JSON shaping, and
// bearer-token extraction. All domain decisions live in the services it
// delegates to.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mariusdev/taskapi/internal/logging"
	"github.com/mariusdev/taskapi/internal/server/services"
)

type HTTPServer struct {
	address   string
	auth      *services.AuthService
	tasks     *services.TaskService
	logger    logging.Logger
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, as *services.AuthService, ts *services.TaskService, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		auth:      as,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Routes builds the request multiplexer. Task routes sit behind the
// bearer-token middleware; auth routes do not.
func (s *HTTPServer) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.Handle("POST /api/tasks", s.requireAuth(s.handleCreateTask))
	mux.Handle("GET /api/tasks", s.requireAuth(s.handleListTasks))
	mux.Handle("GET /api/tasks/{id}", s.requireAuth(s.handleGetTask))
	mux.Handle("PUT /api/tasks/{id}", s.requireAuth(s.handleUpdateTask))
	mux.Handle("DELETE /api/tasks/{id}", s.requireAuth(s.handleDeleteTask))

	return mux
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
