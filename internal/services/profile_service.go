package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"mingle-backend/internal/apperr"
	"mingle-backend/internal/models"
	"mingle-backend/internal/repository"
)

// ProfileService implements profile CRUD on top of the profile store.
type ProfileService struct {
	repo   repository.ProfileRepository
	strict bool
	newID  func() string
	now    func() time.Time
}

type ProfileOption func(*ProfileService)

// WithStrictValidation rejects profiles missing name, role, company or bio.
func WithStrictValidation(strict bool) ProfileOption {
	return func(s *ProfileService) { s.strict = strict }
}

func WithIDGenerator(fn func() string) ProfileOption {
	return func(s *ProfileService) { s.newID = fn }
}

func WithClock(fn func() time.Time) ProfileOption {
	return func(s *ProfileService) { s.now = fn }
}

func NewProfileService(repo repository.ProfileRepository, opts ...ProfileOption) *ProfileService {
	s := &ProfileService{
		repo:  repo,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ProfileService) Create(ctx context.Context, in models.ProfileInput) (*models.Profile, error) {
	in = normalize(in)
	if err := s.validate(in); err != nil {
		return nil, err
	}

	id := in.ID
	if id == "" {
		id = s.newID()
	}
	rec := in.ToRecord(id, s.now().UTC())
	if err := s.repo.CreateProfile(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("Profile id already exists")
		}
		return nil, apperr.Storage(err)
	}

	p := rec.Decode()
	return &p, nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (*models.Profile, error) {
	rec, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Profile not found")
		}
		return nil, apperr.Storage(err)
	}
	p := rec.Decode()
	return &p, nil
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	recs, err := s.repo.ListProfiles(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	out := make([]models.Profile, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Decode())
	}
	return out, nil
}

// Update overwrites every mutable attribute and returns the stored profile.
func (s *ProfileService) Update(ctx context.Context, id string, in models.ProfileInput) (*models.Profile, error) {
	in = normalize(in)
	if err := s.validate(in); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProfile(ctx, in.ToRecord(id, time.Time{})); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Profile not found")
		}
		return nil, apperr.Storage(err)
	}
	return s.Get(ctx, id)
}

func (s *ProfileService) validate(in models.ProfileInput) error {
	if !s.strict {
		return nil
	}
	var missing []string
	for _, f := range []struct{ name, val string }{
		{"name", in.Name}, {"role", in.Role}, {"company", in.Company}, {"bio", in.Bio},
	} {
		if strings.TrimSpace(f.val) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperr.Validation(strings.Join(missing, ", ") + " required")
	}
	return nil
}

func normalize(in models.ProfileInput) models.ProfileInput {
	in.ID = strings.TrimSpace(in.ID)
	if in.LinkedInURL != nil && strings.TrimSpace(*in.LinkedInURL) == "" {
		in.LinkedInURL = nil
	}
	return in
}
