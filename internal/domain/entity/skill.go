package entity

import (
	"time"

	"github.com/google/uuid"
)

// SkillCategory groups skills under a unique heading, e.g. "Languages".
type SkillCategory struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
