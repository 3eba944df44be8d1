package domain

import "time"

// Field bounds shared by the API validation and the web UI so both sides
// reject the same inputs.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
	LocationMaxLen    = 200
	SearchMaxLen      = 100
)

// Listing is one directory entry. Ambulances and doctors share this exact
// shape; they only differ by which collection holds them.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewListing carries the client-supplied fields of a create request. The
// store assigns ID and timestamps.
type NewListing struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Image       string `json:"image,omitempty"`
}

// ListingPatch is a partial update. A nil field means "leave untouched" so
// the store can merge without clobbering values the client never sent.
type ListingPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// Apply merges the set fields of the patch into l and returns whether
// anything changed. ID and CreatedAt are never touched here.
func (p ListingPatch) Apply(l *Listing) bool {
	changed := false

	if p.Title != nil {
		l.Title = *p.Title
		changed = true
	}
	if p.Description != nil {
		l.Description = *p.Description
		changed = true
	}
	if p.Location != nil {
		l.Location = *p.Location
		changed = true
	}
	if p.Image != nil {
		l.Image = *p.Image
		changed = true
	}

	return changed
}
