package postgres

import (
	"context"
	"net/http"
	"testing"
	"time"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{
	"id", "name", "email", "photo", "role", "password_hash", "password_changed_at",
	"password_reset_token", "password_reset_expires", "active", "created_at", "version",
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "id" = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(uuid.New().String(), "Ann", "ann@example.com", entity.DefaultPhoto, "user", "hash", nil, nil, nil, true, now, 0))

	user := &entity.User{Name: "Ann", Email: "  ANN@example.com ", PasswordHash: "hash"}
	user.SetDefaults()

	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.True(t, user.Active)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).WillReturnError(&pgconn.PgError{
		Code:   pgerrcode.UniqueViolation,
		Detail: "Key (email)=(ann@example.com) already exists.",
	})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &entity.User{Name: "Ann", Email: "ann@example.com"})

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Duplicate field value: ann@example.com. Please use another value!", appErr.Message())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_SkipsInactive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."active" = \$1 AND "id" = \$2`).
		WithArgs(true, id, 1).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByID(context.Background(), id)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_LowerCases(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."active" = \$1 AND "email" = \$2`).
		WithArgs(true, "leo@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "Leo", "leo@example.com", "leo.jpg", "guide", "hash", nil, nil, nil, true, time.Now(), 3))

	user, err := repo.FindByEmail(context.Background(), "Leo@Example.com")

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, entity.RoleGuide, user.Role)
	assert.Equal(t, 3, user.Version)
}

func TestUserRepository_FindByResetToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`"password_reset_token" = \$2 AND "password_reset_expires" > \$3`).
		WithArgs(true, "digest", now, 1).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindByResetToken(context.Background(), "digest", now)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_BumpsVersion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

	user := &entity.User{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", Version: 4}
	err := repo.Update(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, 5, user.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserMappers_RoundTrip(t *testing.T) {
	expires := time.Now().Add(10 * time.Minute)
	user := &entity.User{
		ID:                   uuid.New(),
		Name:                 "Ann",
		Role:                 entity.RoleAdmin,
		PasswordResetToken:   "digest",
		PasswordResetExpires: &expires,
		Active:               true,
	}

	got := toUserDomain(fromUserDomain(user))

	assert.Equal(t, user, got)
	assert.Nil(t, fromUserDomain(&entity.User{}).PasswordResetToken)
}
