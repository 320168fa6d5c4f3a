package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingle-backend/internal/models"
)

func newRecord(name string, skills ...string) models.ProfileRecord {
	return models.ProfileInput{
		Name:    name,
		Role:    "Engineer",
		Company: "Acme",
		Bio:     "Builder",
		Skills:  skills,
	}.ToRecord(uuid.NewString(), time.Now().UTC().Truncate(time.Microsecond))
}

// runRepositoryContract exercises behavior both drivers must share.
func runRepositoryContract(t *testing.T, repo Repository) {
	ctx := context.Background()

	t.Run("profile round trip", func(t *testing.T) {
		rec := newRecord("Ada", "Rust", "Go")
		require.NoError(t, repo.CreateProfile(ctx, rec))

		got, err := repo.GetProfile(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, `["Rust","Go"]`, got.Skills)
		assert.True(t, rec.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", rec.CreatedAt, got.CreatedAt)
		assert.Equal(t, []string{"Rust", "Go"}, got.Decode().Skills)
	})

	t.Run("duplicate id", func(t *testing.T) {
		rec := newRecord("Dup")
		require.NoError(t, repo.CreateProfile(ctx, rec))
		assert.ErrorIs(t, repo.CreateProfile(ctx, rec), ErrDuplicate)
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := repo.GetProfile(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrNotFound)

		ok, err := repo.ProfileExists(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("update overwrites and keeps created_at", func(t *testing.T) {
		rec := newRecord("Grace", "COBOL")
		require.NoError(t, repo.CreateProfile(ctx, rec))

		upd := models.ProfileInput{Name: "Grace H", Role: "Admiral", Company: "Navy", Bio: "Compilers"}.
			ToRecord(rec.ID, time.Time{})
		require.NoError(t, repo.UpdateProfile(ctx, upd))

		got, err := repo.GetProfile(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, "Grace H", got.Name)
		assert.Equal(t, "[]", got.Skills)
		assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))

		upd.ID = "does-not-exist"
		assert.ErrorIs(t, repo.UpdateProfile(ctx, upd), ErrNotFound)
	})

	t.Run("list contains created profiles", func(t *testing.T) {
		rec := newRecord("Listed")
		require.NoError(t, repo.CreateProfile(ctx, rec))

		all, err := repo.ListProfiles(ctx)
		require.NoError(t, err)
		ids := make([]string, 0, len(all))
		for _, p := range all {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, rec.ID)
	})

	t.Run("save is idempotent and ordered newest first", func(t *testing.T) {
		owner := "owner-" + uuid.NewString()
		first, second := newRecord("First"), newRecord("Second")
		require.NoError(t, repo.CreateProfile(ctx, first))
		require.NoError(t, repo.CreateProfile(ctx, second))

		t0 := time.Now().UTC()
		require.NoError(t, repo.SaveContact(ctx, owner, first.ID, t0))
		require.NoError(t, repo.SaveContact(ctx, owner, first.ID, t0.Add(time.Minute)))
		require.NoError(t, repo.SaveContact(ctx, owner, second.ID, t0.Add(time.Second)))

		got, err := repo.ListNetwork(ctx, owner)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, second.ID, got[0].Profile.ID)
		assert.Equal(t, first.ID, got[1].Profile.ID)
		// the second save of first is ignored, so its timestamp is unchanged
		assert.WithinDuration(t, t0, got[1].SavedAt, time.Millisecond)

		others, err := repo.ListNetwork(ctx, "someone-else")
		require.NoError(t, err)
		assert.Empty(t, others)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		owner := "owner-" + uuid.NewString()
		rec := newRecord("Removable")
		require.NoError(t, repo.CreateProfile(ctx, rec))
		require.NoError(t, repo.SaveContact(ctx, owner, rec.ID, time.Now()))

		require.NoError(t, repo.RemoveContact(ctx, owner, rec.ID))
		require.NoError(t, repo.RemoveContact(ctx, owner, rec.ID))
		require.NoError(t, repo.RemoveContact(ctx, owner, "never-saved"))

		got, err := repo.ListNetwork(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}
