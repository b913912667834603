// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"natours/internal/domain/entity"
	"natours/internal/domain/repository"
	"natours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var userFields = fieldMap{
	"id":                {name: "id", filterable: true},
	"name":              {name: "name", filterable: true},
	"email":             {name: "email", filterable: true},
	"photo":             {name: "photo", filterable: true},
	"role":              {name: "role", filterable: true},
	"passwordChangedAt": {name: "password_changed_at"},
	"createdAt":         {name: "created_at", filterable: true},
	"__v":               {name: "version"},
}

// activeUsers hides deactivated accounts from every default lookup.
func activeUsers(db *gorm.DB) *gorm.DB {
	return db.Where(`"users"."active" = ?`, true)
}

var userResource = &resource[entity.User, model.UserModel]{
	name:       "user",
	fields:     userFields,
	visible:    activeUsers,
	toDomain:   toUserDomain,
	fromDomain: fromUserDomain,
	idOf:       func(m *model.UserModel) uuid.UUID { return m.ID },
	setID:      func(m *model.UserModel, id uuid.UUID) { m.ID = id },
	version:    func(m *model.UserModel) *int { return &m.Version },
	beforeSave: func(u *entity.User) {
		u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	},
}

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	*crudRepository[entity.User, model.UserModel]
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		crudRepository: newCRUDRepository(db, userResource),
	}
}

// FindByEmail retrieves a single active user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM := new(model.UserModel)
	err := activeUsers(repo.db.WithContext(ctx)).
		Where(`"email" = ?`, strings.ToLower(strings.TrimSpace(email))).
		First(userM).Error
	if err != nil {
		return nil, translateError(err, "find user by email")
	}

	return toUserDomain(userM), nil
}

// FindByResetToken retrieves the active user holding an unexpired reset token.
func (repo *userRepository) FindByResetToken(ctx context.Context, hashedToken string, now time.Time) (*entity.User, error) {
	userM := new(model.UserModel)
	err := activeUsers(repo.db.WithContext(ctx)).
		Where(`"password_reset_token" = ? AND "password_reset_expires" > ?`, hashedToken, now).
		First(userM).Error
	if err != nil {
		return nil, translateError(err, "find user by reset token")
	}

	return toUserDomain(userM), nil
}

// Update writes every mutable column, including credentials and the active flag.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userResource.beforeSave(user)
	userM := fromUserDomain(user)
	userM.Version = user.Version + 1

	if err := repo.db.WithContext(ctx).Omit("CreatedAt", clause.Associations).Save(userM).Error; err != nil {
		return translateError(err, "update user")
	}
	user.Version = userM.Version

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		Photo:                data.Photo,
		Role:                 entity.Role(data.Role),
		PasswordHash:         data.PasswordHash,
		PasswordChangedAt:    data.PasswordChangedAt,
		PasswordResetExpires: data.PasswordResetExpires,
		Active:               data.Active,
		CreatedAt:            data.CreatedAt,
		Version:              data.Version,
	}
	if data.PasswordResetToken != nil {
		user.PasswordResetToken = *data.PasswordResetToken
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		Photo:                data.Photo,
		Role:                 data.Role.String(),
		PasswordHash:         data.PasswordHash,
		PasswordChangedAt:    data.PasswordChangedAt,
		PasswordResetExpires: data.PasswordResetExpires,
		Active:               data.Active,
		CreatedAt:            data.CreatedAt,
		Version:              data.Version,
	}
	if data.PasswordResetToken != "" {
		token := data.PasswordResetToken
		userM.PasswordResetToken = &token
	}

	return userM
}
