package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultProjectImageURL is used when a project is saved without an image.
	DefaultProjectImageURL = "https://placehold.co/800x600/1f2937/a7f3d0?text=Project+Placeholder"

	// MaxShortDescriptionLength caps the card summary of a project.
	MaxShortDescriptionLength = 250
)

// DemoType enumerates the interactive widgets a project page may embed.
type DemoType string

const (
	DemoTypeNone         DemoType = "None"
	DemoTypeIoTDashboard DemoType = "IoT_Dashboard"
	DemoTypeMLGame       DemoType = "ML_Game"
	DemoTypeAIChatBot    DemoType = "AIChatBot"
)

// DemoTypes lists every supported variant in display order.
func DemoTypes() []DemoType {
	return []DemoType{DemoTypeNone, DemoTypeIoTDashboard, DemoTypeMLGame, DemoTypeAIChatBot}
}

// ParseDemoType maps a wire value onto a DemoType. An empty value means None.
func ParseDemoType(s string) (DemoType, error) {
	if s == "" {
		return DemoTypeNone, nil
	}

	for _, t := range DemoTypes() {
		if string(t) == s {
			return t, nil
		}
	}

	return "", fmt.Errorf("unsupported interactive demo type %q", s)
}

// IsValid reports whether d is one of the known variants.
func (d DemoType) IsValid() bool {
	_, err := ParseDemoType(string(d))

	return err == nil && d != ""
}

// UnmarshalJSON rejects unknown variants at decode time.
func (d *DemoType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("interactive demo type must be a string: %w", err)
	}

	parsed, err := ParseDemoType(raw)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// InteractiveDemo describes the optional widget shown on a project page.
type InteractiveDemo struct {
	Type         DemoType `json:"type"`
	DataEndpoint string   `json:"dataEndpoint,omitempty"`
	GithubLink   string   `json:"githubLink,omitempty"`
}

// EngineeringDecision records a tool choice and the reason behind it.
type EngineeringDecision struct {
	Tool   string `json:"tool"`
	Reason string `json:"reason"`
}

// Project is a portfolio entry addressed publicly by its slug.
type Project struct {
	ID                   uuid.UUID             `json:"id"`
	Title                string                `json:"title"`
	Slug                 string                `json:"slug"`
	Category             string                `json:"category"`
	ShortDescription     string                `json:"shortDescription"`
	FullDescription      string                `json:"fullDescription"`
	RepoURL              string                `json:"repoUrl,omitempty"`
	LiveURL              string                `json:"liveUrl,omitempty"`
	ImageURL             string                `json:"imageUrl"`
	TechStack            []string              `json:"techStack"`
	EngineeringDecisions []EngineeringDecision `json:"engineeringDecisions"`
	IsFeatured           bool                  `json:"isFeatured"`
	InteractiveDemo      InteractiveDemo       `json:"interactiveDemo"`
	CreatedAt            time.Time             `json:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt"`
}

// ApplyDefaults fills optional fields with their stored defaults.
func (p *Project) ApplyDefaults() {
	p.Slug = NormalizeSlug(p.Slug)
	p.Title = strings.TrimSpace(p.Title)
	if p.ImageURL == "" {
		p.ImageURL = DefaultProjectImageURL
	}
	if p.InteractiveDemo.Type == "" {
		p.InteractiveDemo.Type = DemoTypeNone
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.EngineeringDecisions == nil {
		p.EngineeringDecisions = []EngineeringDecision{}
	}
}

// NormalizeSlug returns the stored form of a slug.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
