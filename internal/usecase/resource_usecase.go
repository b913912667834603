// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"natours/internal/domain/query"

	"github.com/google/uuid"
)

// WriteOp names the write that triggered an after-write step.
type WriteOp string

const (
	OpCreated WriteOp = "created"
	OpUpdated WriteOp = "updated"
	OpDeleted WriteOp = "deleted"
)

// AfterWriteFunc runs once a document was written. For deletes doc is the removed document.
// prev holds the stored state an update started from and is nil for creates and deletes.
type AfterWriteFunc[T any] func(ctx context.Context, op WriteOp, prev, doc *T) error

// ResourceUsecase is the CRUD surface the generic handlers drive.
// A missing document is reported as a 404 NotFound error carrying the id.
type ResourceUsecase[T any] interface {
	Create(ctx context.Context, doc *T) error
	Get(ctx context.Context, id uuid.UUID, populate ...string) (*T, error)
	List(ctx context.Context, spec *query.Spec) ([]*T, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(doc *T) error) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
