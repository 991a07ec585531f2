package db

import (
	"context"
	"database/sql"

	"github.com/queueflex/auth-service/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
}
