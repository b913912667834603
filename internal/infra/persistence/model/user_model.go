package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name                 string     `gorm:"type:varchar(100);not null"`
	Email                string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Photo                string     `gorm:"type:varchar(255);not null"`
	Role                 string     `gorm:"type:varchar(20);not null;index"`
	PasswordHash         string     `gorm:"type:varchar(255);not null"`
	PasswordChangedAt    *time.Time
	PasswordResetToken   *string    `gorm:"type:char(64);index"`
	PasswordResetExpires *time.Time
	Active               bool       `gorm:"not null;index"`
	CreatedAt            time.Time
	Version              int        `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
