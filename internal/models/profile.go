package models

import (
	"time"
)

// Profile is a networking card with list fields decoded
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Bio         string    `json:"bio"`
	Skills      []string  `json:"skills"`
	LookingFor  []string  `json:"looking_for"`
	CanHelpWith []string  `json:"can_help_with"`
	Domains     []string  `json:"domains"`
	LinkedInURL *string   `json:"linkedin_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileRecord is the persisted shape of public.profiles; list columns hold
// their encoded form.
type ProfileRecord struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Role        string    `db:"role"`
	Company     string    `db:"company"`
	Bio         string    `db:"bio"`
	Skills      string    `db:"skills"`
	LookingFor  string    `db:"looking_for"`
	CanHelpWith string    `db:"can_help_with"`
	Domains     string    `db:"domains"`
	LinkedInURL *string   `db:"linkedin_url"`
	CreatedAt   time.Time `db:"created_at"`
}

// ProfileInput carries the mutable attributes of a profile
type ProfileInput struct {
	ID          string
	Name        string
	Role        string
	Company     string
	Bio         string
	Skills      []string
	LookingFor  []string
	CanHelpWith []string
	Domains     []string
	LinkedInURL *string
}

// ToRecord encodes the list fields for storage.
func (in ProfileInput) ToRecord(id string, createdAt time.Time) ProfileRecord {
	return ProfileRecord{
		ID:          id,
		Name:        in.Name,
		Role:        in.Role,
		Company:     in.Company,
		Bio:         in.Bio,
		Skills:      EncodeList(in.Skills),
		LookingFor:  EncodeList(in.LookingFor),
		CanHelpWith: EncodeList(in.CanHelpWith),
		Domains:     EncodeList(in.Domains),
		LinkedInURL: in.LinkedInURL,
		CreatedAt:   createdAt,
	}
}

// Decode turns a stored row into a Profile. Malformed list columns become empty lists.
func (r ProfileRecord) Decode() Profile {
	return Profile{
		ID:          r.ID,
		Name:        r.Name,
		Role:        r.Role,
		Company:     r.Company,
		Bio:         r.Bio,
		Skills:      DecodeList(r.Skills),
		LookingFor:  DecodeList(r.LookingFor),
		CanHelpWith: DecodeList(r.CanHelpWith),
		Domains:     DecodeList(r.Domains),
		LinkedInURL: r.LinkedInURL,
		CreatedAt:   r.CreatedAt,
	}
}
