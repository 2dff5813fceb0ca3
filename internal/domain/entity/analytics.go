package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectView is one recorded visit to a project page.
type ProjectView struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	CreatedAt time.Time
}

// ProjectViewStat is a project joined with its view total.
type ProjectViewStat struct {
	ProjectID uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Category  string    `json:"category"`
	ViewCount int64     `json:"viewCount"`
}

// DashboardSummary is the admin overview of site content and traffic.
type DashboardSummary struct {
	TotalViews   int64     `json:"totalViews"`
	ProjectCount int64     `json:"projectCount"`
	BlogCount    int64     `json:"blogCount"`
	LastLogin    time.Time `json:"lastLogin"`
}
