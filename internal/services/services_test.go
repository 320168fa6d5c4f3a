package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingle-backend/internal/apperr"
	"mingle-backend/internal/models"
	"mingle-backend/internal/repository"
)

func newRepo(t *testing.T) *repository.SQLiteRepository {
	t.Helper()
	repo, err := repository.NewSQLite(context.Background(), filepath.Join(t.TempDir(), "mingle.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func ada() models.ProfileInput {
	return models.ProfileInput{Name: "Ada", Role: "Engineer", Company: "Acme", Bio: "Builder", Skills: []string{"Rust"}}
}

func TestProfileCreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newRepo(t), WithIDGenerator(func() string { return "id1" }))

	created, err := svc.Create(ctx, ada())
	require.NoError(t, err)
	assert.Equal(t, "id1", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, "id1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rust"}, got.Skills)
	assert.Equal(t, []string{}, got.Domains)
}

func TestProfileCreateKeepsCallerID(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newRepo(t))

	in := ada()
	in.ID = "chosen"
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "chosen", created.ID)

	_, err = svc.Create(ctx, in)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestProfileCreatePermissiveByDefault(t *testing.T) {
	svc := NewProfileService(newRepo(t))

	created, err := svc.Create(context.Background(), models.ProfileInput{Name: "Only a name"})
	require.NoError(t, err)
	assert.Equal(t, "", created.Bio)
}

func TestProfileCreateStrictRequiresScalars(t *testing.T) {
	svc := NewProfileService(newRepo(t), WithStrictValidation(true))

	_, err := svc.Create(context.Background(), models.ProfileInput{Name: "Ada", Company: " "})
	require.Error(t, err)
	ae := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Equal(t, "role, company, bio required", ae.Message)
}

func TestProfileGetMissing(t *testing.T) {
	svc := NewProfileService(newRepo(t))
	_, err := svc.Get(context.Background(), "nope")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestProfileUpdate(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := NewProfileService(newRepo(t), WithClock(func() time.Time { return created }))

	p, err := svc.Create(ctx, ada())
	require.NoError(t, err)

	blank := ""
	upd := models.ProfileInput{Name: "Ada L", Role: "Countess", Company: "Analytical", Bio: "Notes", Domains: []string{"AI/ML"}, LinkedInURL: &blank}
	got, err := svc.Update(ctx, p.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "Ada L", got.Name)
	assert.Equal(t, []string{}, got.Skills)
	assert.Equal(t, []string{"AI/ML"}, got.Domains)
	assert.Nil(t, got.LinkedInURL)
	assert.Equal(t, created, got.CreatedAt)

	_, err = svc.Update(ctx, "missing", upd)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestProfileList(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newRepo(t))

	empty, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = svc.Create(ctx, ada())
	require.NoError(t, err)
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestNetworkSaveTwiceYieldsOneEntry(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	profiles := NewProfileService(repo, WithIDGenerator(func() string { return "id1" }))
	network := NewNetworkService(repo, repo)

	_, err := profiles.Create(ctx, ada())
	require.NoError(t, err)

	require.NoError(t, network.Save(ctx, "u1", "id1"))
	require.NoError(t, network.Save(ctx, "u1", "id1"))

	got, err := network.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "id1", got[0].ID)
	assert.Equal(t, []string{"Rust"}, got[0].Skills)
	assert.False(t, got[0].SavedAt.IsZero())
}

func TestNetworkSaveUnknownProfile(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	network := NewNetworkService(repo, repo)

	err := network.Save(ctx, "u1", "ghost")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	got, err := network.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNetworkValidation(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	network := NewNetworkService(repo, repo)

	_, err := network.List(ctx, "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.True(t, apperr.IsKind(network.Save(ctx, "", "id1"), apperr.KindValidation))
	assert.True(t, apperr.IsKind(network.Save(ctx, "u1", ""), apperr.KindValidation))
	assert.True(t, apperr.IsKind(network.Remove(ctx, "", "id1"), apperr.KindValidation))
}

func TestNetworkRemoveMissingSucceeds(t *testing.T) {
	repo := newRepo(t)
	network := NewNetworkService(repo, repo)
	assert.NoError(t, network.Remove(context.Background(), "u1", "never-saved"))
}

type failingRepo struct {
	repository.ProfileRepository
	repository.NetworkRepository
}

func (failingRepo) ProfileExists(context.Context, string) (bool, error) {
	return false, errors.New("database is locked")
}

func TestNetworkSaveStorageFailure(t *testing.T) {
	network := NewNetworkService(failingRepo{}, failingRepo{})
	err := network.Save(context.Background(), "u1", "id1")
	assert.True(t, apperr.IsKind(err, apperr.KindStorage))
}
