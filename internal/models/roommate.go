package models

// Roommate represents a member of the household.
type Roommate struct {
	// ID is the unique identifier for the roommate (UUID format).
	ID string

	// Name is the display name. Duplicate names are allowed.
	Name string

	// IsActive is false once the roommate has been removed.
	IsActive bool

	// CreatedAt is the Unix timestamp when the roommate was added.
	CreatedAt int64
}

// Assignee is a roommate as seen from one bill's assignment list.
type Assignee struct {
	RoommateID   string
	RoommateName string

	// AssignedAt is the Unix timestamp when the link was created.
	AssignedAt int64
}

// RoommateTotal is one roommate's obligation across all active bills.
type RoommateTotal struct {
	RoommateID string
	Name       string
	Total      float64
}
