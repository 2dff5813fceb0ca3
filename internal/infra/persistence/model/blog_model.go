package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogPostModel mirrors the 'blog_posts' table.
type BlogPostModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Slug            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category        string    `gorm:"type:varchar(100);not null"`
	Excerpt         string    `gorm:"type:varchar(200);not null"`
	MarkdownContent string    `gorm:"type:text;not null"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogPostModel) TableName() string {
	return "blog_posts"
}
