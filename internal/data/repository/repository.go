package repository

import (
	"errors"

	"pricing-cms/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by mutations that matched no row
var ErrNotFound = errors.New("not found")

type Repository struct {
	Submission SubmissionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Submission: NewSubmissionRepository(db, log),
	}
}
