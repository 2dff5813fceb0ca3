// Package model holds the GORM persistence models. Domain entities never carry gorm tags;
// repositories map between the two.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email is stored lower-cased so the
// unique index gives case-insensitive uniqueness.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
