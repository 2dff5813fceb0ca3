package model

import (
	"time"

	"github.com/google/uuid"
)

// SkillCategoryModel mirrors the 'skill_categories' table.
type SkillCategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category  string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Skills    []string  `gorm:"type:text;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SkillCategoryModel) TableName() string {
	return "skill_categories"
}
