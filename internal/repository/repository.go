package repository

import (
	"context"
	"errors"
	"time"

	"mingle-backend/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// ProfileRepository persists profile rows. List columns are stored as given.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, rec models.ProfileRecord) error
	GetProfile(ctx context.Context, id string) (models.ProfileRecord, error)
	ListProfiles(ctx context.Context) ([]models.ProfileRecord, error)
	// UpdateProfile overwrites every mutable column; id and created_at are kept.
	UpdateProfile(ctx context.Context, rec models.ProfileRecord) error
	ProfileExists(ctx context.Context, id string) (bool, error)
}

// NetworkRepository persists saved contacts.
type NetworkRepository interface {
	// ListNetwork returns the owner's saved profiles, most recently saved first.
	ListNetwork(ctx context.Context, ownerUserID string) ([]models.SavedContactRecord, error)
	// SaveContact inserts the pair if absent. An existing pair is left untouched.
	SaveContact(ctx context.Context, ownerUserID, profileID string, savedAt time.Time) error
	// RemoveContact deletes the pair if present.
	RemoveContact(ctx context.Context, ownerUserID, profileID string) error
}

type Repository interface {
	ProfileRepository
	NetworkRepository
	Ping(ctx context.Context) error
	Close() error
}
