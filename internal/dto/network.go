package dto

import "mingle-backend/internal/models"

// Body of POST /api/network
type NetworkSaveRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ProfileID string `json:"profileId" validate:"required"`
}

// Item of GET /api/network
type SavedContactResponse struct {
	ProfileResponse
	SavedAt string `json:"saved_at"` // RFC3339
}

// Response of POST and DELETE /api/network
type NetworkStatusResponse struct {
	Status string `json:"status"` // "saved" | "removed"
}

func NewSavedContactListResponse(cs []models.SavedContact) []SavedContactResponse {
	out := make([]SavedContactResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, SavedContactResponse{
			ProfileResponse: NewProfileResponse(c.Profile),
			SavedAt:         formatTimestamp(c.SavedAt),
		})
	}
	return out
}
