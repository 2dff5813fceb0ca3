package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessageModel mirrors the 'contact_messages' table.
type ContactMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:varchar(1000);not null"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
