package model

import "time"

// Site is an archaeological site record. Location is an opaque string (GPS
// pair or address) and is never validated.
type Site struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Highlight   string     `json:"highlight"`
	State       string     `json:"state"`
	City        string     `json:"city"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// SiteParams carries the user-supplied site fields for create and update.
// On update, empty fields keep the existing value.
type SiteParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Highlight   string `json:"highlight"`
	State       string `json:"state"`
	City        string `json:"city"`
}

// Site search field selectors.
const (
	SiteSearchByName  = "name"
	SiteSearchByState = "state"
	SiteSearchByCity  = "city"
)
