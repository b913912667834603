package impl

import (
	"context"
	"net/http"
	"testing"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/errors"
	mockRepo "natours/internal/mocks/repository"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedWrite struct {
	op   usecase.WriteOp
	prev *entity.Tour
	doc  *entity.Tour
}

func newRecordingResource(t *testing.T, hookErr error) (*resourceService[entity.Tour], *mockRepo.MockTourRepository, *[]recordedWrite) {
	repo := mockRepo.NewMockTourRepository(t)
	writes := &[]recordedWrite{}
	srv := newResourceService[entity.Tour](repo, func(_ context.Context, op usecase.WriteOp, prev, doc *entity.Tour) error {
		*writes = append(*writes, recordedWrite{op: op, prev: prev, doc: doc})

		return hookErr
	})

	return srv, repo, writes
}

func assertNotFound(t *testing.T, err error, id uuid.UUID) {
	t.Helper()

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "No document found with id "+id.String(), appErr.Message())
}

func TestResourceService_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("passes populate directives", func(t *testing.T) {
		srv, repo, _ := newRecordingResource(t, nil)
		tour := &entity.Tour{ID: id}
		repo.EXPECT().FindByID(ctx, id, repository.PopulateGuides, repository.PopulateReviews).Return(tour, nil)

		got, err := srv.Get(ctx, id, repository.PopulateGuides, repository.PopulateReviews)

		require.NoError(t, err)
		assert.Same(t, tour, got)
	})

	t.Run("missing document", func(t *testing.T) {
		srv, repo, _ := newRecordingResource(t, nil)
		repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotFound)

		_, err := srv.Get(ctx, id)

		assertNotFound(t, err, id)
	})
}

func TestResourceService_List(t *testing.T) {
	srv, repo, writes := newRecordingResource(t, nil)
	spec := &query.Spec{Page: query.Page{Page: 1, Limit: 5}}
	tours := []*entity.Tour{{ID: uuid.New()}, {ID: uuid.New()}}
	repo.EXPECT().Find(mock.Anything, spec).Return(tours, nil)

	got, err := srv.List(context.Background(), spec)

	require.NoError(t, err)
	assert.Equal(t, tours, got)
	assert.Empty(t, *writes)
}

func TestResourceService_WritesRunHook(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	tour := &entity.Tour{ID: id, Name: "The Forest Hiker"}

	srv, repo, writes := newRecordingResource(t, nil)
	repo.EXPECT().Create(ctx, tour).Return(nil)
	repo.EXPECT().UpdateByID(ctx, id, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, mutate func(*entity.Tour) error) (*entity.Tour, error) {
			stored := *tour
			if err := mutate(&stored); err != nil {
				return nil, err
			}

			return &stored, nil
		})
	repo.EXPECT().DeleteByID(ctx, id).Return(tour, nil)

	require.NoError(t, srv.Create(ctx, tour))
	updated, err := srv.Update(ctx, id, func(doc *entity.Tour) error {
		doc.Name = "The Sea Explorer"

		return nil
	})
	require.NoError(t, err)
	require.NoError(t, srv.Delete(ctx, id))

	require.Len(t, *writes, 3)
	assert.Equal(t, usecase.OpCreated, (*writes)[0].op)
	assert.Nil(t, (*writes)[0].prev)
	assert.Equal(t, usecase.OpUpdated, (*writes)[1].op)
	require.NotNil(t, (*writes)[1].prev)
	assert.Equal(t, "The Forest Hiker", (*writes)[1].prev.Name)
	assert.Equal(t, "The Sea Explorer", updated.Name)
	assert.Equal(t, usecase.OpDeleted, (*writes)[2].op)
	assert.Nil(t, (*writes)[2].prev)
	assert.Same(t, tour, (*writes)[2].doc)
}

func TestResourceService_MissingTargets(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	srv, repo, writes := newRecordingResource(t, nil)
	repo.EXPECT().UpdateByID(ctx, id, mock.Anything).Return(nil, repository.ErrNotFound)
	repo.EXPECT().DeleteByID(ctx, id).Return(nil, repository.ErrNotFound)

	_, err := srv.Update(ctx, id, func(*entity.Tour) error { return nil })
	assertNotFound(t, err, id)

	err = srv.Delete(ctx, id)
	assertNotFound(t, err, id)

	assert.Empty(t, *writes)
}

func TestResourceService_HookFailure(t *testing.T) {
	ctx := context.Background()
	hookErr := errors.New("ratings unavailable")
	tour := &entity.Tour{ID: uuid.New()}

	srv, repo, _ := newRecordingResource(t, hookErr)
	repo.EXPECT().Create(ctx, tour).Return(nil)

	err := srv.Create(ctx, tour)

	require.Error(t, err)
	assert.ErrorIs(t, err, hookErr)
	assert.Contains(t, err.Error(), "after created step failed")
}

func TestResourceService_StoreErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	dupErr := domainerrors.NewDuplicateError("The Forest Hiker")

	srv := NewResourceService[entity.Tour](mockTourRepoReturningCreateErr(t, dupErr))

	err := srv.Create(ctx, &entity.Tour{})

	assert.ErrorIs(t, err, dupErr)
}

func mockTourRepoReturningCreateErr(t *testing.T, err error) *mockRepo.MockTourRepository {
	repo := mockRepo.NewMockTourRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(err)

	return repo
}
