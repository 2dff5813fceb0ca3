package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxContactMessageLength caps the body of a contact form submission.
const MaxContactMessageLength = 1000

// ContactMessage is a visitor submission from the public contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
