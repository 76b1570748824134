package model

import "time"

// Artifact is an artifact record. SiteID references a Site by id but is not
// validated against existing sites; dangling references are tolerated.
// Archaeologist is the discoverer's display name, not an account reference.
type Artifact struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Archaeologist string     `json:"archaeologist"`
	Location      string     `json:"location"`
	SiteID        string     `json:"siteId"`
	Description   string     `json:"description"`
	PhotoURL      string     `json:"photoUrl"`
	CreatedBy     string     `json:"createdBy"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// ArtifactParams carries the user-supplied artifact fields for create and
// update. Description and PhotoURL are optional; on update, empty fields keep
// the existing value.
type ArtifactParams struct {
	Name          string `json:"name"`
	Archaeologist string `json:"archaeologist"`
	Location      string `json:"location"`
	SiteID        string `json:"siteId"`
	Description   string `json:"description"`
	PhotoURL      string `json:"photoUrl"`
}
