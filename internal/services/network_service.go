package services

import (
	"context"
	"time"

	"mingle-backend/internal/apperr"
	"mingle-backend/internal/models"
	"mingle-backend/internal/repository"
)

// NetworkService manages the contacts an owner has saved.
type NetworkService struct {
	profiles repository.ProfileRepository
	network  repository.NetworkRepository
	now      func() time.Time
}

func NewNetworkService(profiles repository.ProfileRepository, network repository.NetworkRepository) *NetworkService {
	return &NetworkService{profiles: profiles, network: network, now: time.Now}
}

func (s *NetworkService) List(ctx context.Context, ownerUserID string) ([]models.SavedContact, error) {
	if ownerUserID == "" {
		return nil, apperr.Validation("userId query param required")
	}
	recs, err := s.network.ListNetwork(ctx, ownerUserID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	out := make([]models.SavedContact, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.SavedContact{Profile: rec.Profile.Decode(), SavedAt: rec.SavedAt})
	}
	return out, nil
}

// Save records profileID in the owner's network. Saving an existing pair succeeds
// without changing it.
func (s *NetworkService) Save(ctx context.Context, ownerUserID, profileID string) error {
	if ownerUserID == "" || profileID == "" {
		return apperr.Validation("userId and profileId are required")
	}
	ok, err := s.profiles.ProfileExists(ctx, profileID)
	if err != nil {
		return apperr.Storage(err)
	}
	if !ok {
		return apperr.NotFound("Profile not found")
	}
	if err := s.network.SaveContact(ctx, ownerUserID, profileID, s.now().UTC()); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// Remove deletes the pair if present and succeeds either way.
func (s *NetworkService) Remove(ctx context.Context, ownerUserID, profileID string) error {
	if ownerUserID == "" {
		return apperr.Validation("userId query param required")
	}
	if err := s.network.RemoveContact(ctx, ownerUserID, profileID); err != nil {
		return apperr.Storage(err)
	}
	return nil
}
