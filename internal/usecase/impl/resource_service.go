// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/google/uuid"
)

// resourceService implements usecase.ResourceUsecase over any CRUD repository.
type resourceService[T any] struct {
	repo repository.CRUDRepository[T]
	hook usecase.AfterWriteFunc[T]
}

var _ usecase.ResourceUsecase[struct{}] = (*resourceService[struct{}])(nil)

func newResourceService[T any](repo repository.CRUDRepository[T], afterWrite usecase.AfterWriteFunc[T]) *resourceService[T] {
	return &resourceService[T]{repo: repo, hook: afterWrite}
}

// NewResourceService serves plain CRUD without after-write steps.
func NewResourceService[T any](repo repository.CRUDRepository[T]) usecase.ResourceUsecase[T] {
	return newResourceService(repo, nil)
}

func (srv *resourceService[T]) Create(ctx context.Context, doc *T) error {
	if err := srv.repo.Create(ctx, doc); err != nil {
		return err
	}

	return srv.written(ctx, usecase.OpCreated, nil, doc)
}

func (srv *resourceService[T]) Get(ctx context.Context, id uuid.UUID, populate ...string) (*T, error) {
	doc, err := srv.repo.FindByID(ctx, id, populate...)
	if err != nil {
		return nil, notFound(err, id)
	}

	return doc, nil
}

func (srv *resourceService[T]) List(ctx context.Context, spec *query.Spec) ([]*T, error) {
	return srv.repo.Find(ctx, spec)
}

func (srv *resourceService[T]) Update(ctx context.Context, id uuid.UUID, mutate func(doc *T) error) (*T, error) {
	var prev *T
	doc, err := srv.repo.UpdateByID(ctx, id, func(doc *T) error {
		snapshot := *doc
		prev = &snapshot

		return mutate(doc)
	})
	if err != nil {
		return nil, notFound(err, id)
	}
	if err := srv.written(ctx, usecase.OpUpdated, prev, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (srv *resourceService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := srv.repo.DeleteByID(ctx, id)
	if err != nil {
		return notFound(err, id)
	}

	return srv.written(ctx, usecase.OpDeleted, nil, doc)
}

func (srv *resourceService[T]) written(ctx context.Context, op usecase.WriteOp, prev, doc *T) error {
	if srv.hook == nil {
		return nil
	}
	if err := srv.hook(ctx, op, prev, doc); err != nil {
		return errors.Wrapf(err, "after %s step failed", op)
	}

	return nil
}

// notFound reports a missing document by the id it was looked up with.
func notFound(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.NewNotFoundError(id.String())
	}

	return err
}
