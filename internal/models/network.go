package models

import "time"

// SavedContactRecord is a network row joined with its profile
type SavedContactRecord struct {
	Profile ProfileRecord
	SavedAt time.Time
}

// SavedContact is a decoded profile plus the time it was saved
type SavedContact struct {
	Profile
	SavedAt time.Time `json:"saved_at"`
}
