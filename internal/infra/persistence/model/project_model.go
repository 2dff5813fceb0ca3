package model

import (
	"time"

	"github.com/google/uuid"
)

// EngineeringDecisionModel is stored inside the projects row as JSON.
type EngineeringDecisionModel struct {
	Tool   string `json:"tool"`
	Reason string `json:"reason"`
}

// ProjectModel mirrors the 'projects' table. The interactive demo is flattened
// into demo_* columns.
type ProjectModel struct {
	ID                   uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Title                string                     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Slug                 string                     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category             string                     `gorm:"type:varchar(100);not null"`
	ShortDescription     string                     `gorm:"type:varchar(250);not null"`
	FullDescription      string                     `gorm:"type:text;not null"`
	RepoURL              string                     `gorm:"type:varchar(512)"`
	LiveURL              string                     `gorm:"type:varchar(512)"`
	ImageURL             string                     `gorm:"type:varchar(512)"`
	TechStack            []string                   `gorm:"type:text;serializer:json"`
	EngineeringDecisions []EngineeringDecisionModel `gorm:"type:text;serializer:json"`
	IsFeatured           bool                       `gorm:"not null;default:false"`
	DemoType             string                     `gorm:"type:varchar(32);not null;default:'None'"`
	DemoDataEndpoint     string                     `gorm:"type:varchar(512)"`
	DemoGithubLink       string                     `gorm:"type:varchar(512)"`
	CreatedAt            time.Time                  `gorm:"index"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// ProjectViewModel mirrors the 'project_views' table, one row per view.
type ProjectViewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectViewModel) TableName() string {
	return "project_views"
}
