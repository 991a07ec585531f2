// Package rest exposes the public signup and login endpoints over JSON HTTP.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/queueflex/auth-service/internal/logging"
	"github.com/queueflex/auth-service/internal/server/auth"
	"github.com/queueflex/auth-service/internal/server/users"
)

// userService is the slice of users.Service the REST transport needs.
type userService interface {
	Signup(ctx context.Context, name, email, plaintext string, isAdmin bool) (*users.User, error)
	Login(ctx context.Context, email, plaintext string) (string, *users.User, error)
	VerifyToken(token string) auth.Verification
}

type RESTServer struct {
	address    string
	users      userService
	logger     logging.Logger
	corsOrigin string
}

func NewRESTServer(a string, l logging.Logger, us userService, corsOrigin string) (*RESTServer, error) {
	return &RESTServer{
		address:    a,
		logger:     l.With("module", "rest_server"),
		users:      us,
		corsOrigin: corsOrigin,
	}, nil
}

func (s *RESTServer) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.corsOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(s.requestLogger)

	r.Get("/health", s.Health)
	r.Post("/signup", s.Signup)
	r.Post("/login", s.Login)

	return r
}

func (s *RESTServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping REST server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting REST server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
