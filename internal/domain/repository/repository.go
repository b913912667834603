// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"natours/internal/domain/query"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no visible document matches a lookup.
var ErrNotFound = errors.New("document not found")

// CRUDRepository is the capability every resource store offers to the generic handlers.
type CRUDRepository[T any] interface {
	// Create persists doc and fills its generated fields.
	Create(ctx context.Context, doc *T) error

	// FindByID loads one document. populate names relations to load alongside it.
	FindByID(ctx context.Context, id uuid.UUID, populate ...string) (*T, error)

	// Find lists documents matching spec.
	Find(ctx context.Context, spec *query.Spec) ([]*T, error)

	// UpdateByID loads the document, applies mutate and writes it back.
	// It returns the document as stored after the update.
	UpdateByID(ctx context.Context, id uuid.UUID, mutate func(doc *T) error) (*T, error)

	// DeleteByID removes the document and returns what was removed.
	DeleteByID(ctx context.Context, id uuid.UUID) (*T, error)
}
