package dto

import (
	"time"

	"mingle-backend/internal/models"
)

// Body of POST /api/profiles and PUT /api/profiles/{id}
type ProfileRequest struct {
	ID          string   `json:"id,omitempty"` // optional on create, ignored on update
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Bio         string   `json:"bio"`
	Skills      []string `json:"skills"`
	LookingFor  []string `json:"looking_for"`
	CanHelpWith []string `json:"can_help_with"`
	Domains     []string `json:"domains"`
	LinkedInURL *string  `json:"linkedin_url"` // "" => NULL
}

func (r ProfileRequest) ToInput() models.ProfileInput {
	return models.ProfileInput{
		ID:          r.ID,
		Name:        r.Name,
		Role:        r.Role,
		Company:     r.Company,
		Bio:         r.Bio,
		Skills:      r.Skills,
		LookingFor:  r.LookingFor,
		CanHelpWith: r.CanHelpWith,
		Domains:     r.Domains,
		LinkedInURL: r.LinkedInURL,
	}
}

// ProfileResponse is a profile with list fields decoded
type ProfileResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Bio         string   `json:"bio"`
	Skills      []string `json:"skills"`
	LookingFor  []string `json:"looking_for"`
	CanHelpWith []string `json:"can_help_with"`
	Domains     []string `json:"domains"`
	LinkedInURL *string  `json:"linkedin_url"`
	CreatedAt   string   `json:"created_at"` // RFC3339
}

func NewProfileResponse(p models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		Name:        p.Name,
		Role:        p.Role,
		Company:     p.Company,
		Bio:         p.Bio,
		Skills:      p.Skills,
		LookingFor:  p.LookingFor,
		CanHelpWith: p.CanHelpWith,
		Domains:     p.Domains,
		LinkedInURL: p.LinkedInURL,
		CreatedAt:   formatTimestamp(p.CreatedAt),
	}
}

func NewProfileListResponse(ps []models.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProfileResponse(p))
	}
	return out
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
