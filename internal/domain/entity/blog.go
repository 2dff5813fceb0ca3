package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxExcerptLength caps the teaser shown on the blog index.
const MaxExcerptLength = 200

// BlogPost is a markdown article addressed publicly by its slug.
type BlogPost struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Category        string    `json:"category"`
	Excerpt         string    `json:"excerpt"`
	MarkdownContent string    `json:"markdownContent"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
