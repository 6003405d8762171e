package integration

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ypd-labs/cvp-lite-backend/internal/users/domain"
	"github.com/ypd-labs/cvp-lite-backend/internal/users/repository"
	"github.com/ypd-labs/cvp-lite-backend/internal/users/service"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	// Test connection
	ctx := context.Background()
	err = client.Ping(ctx).Err()
	require.NoError(t, err)

	return client, mr
}

func TestRedisStore_UpsertAndGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := repository.NewRedisStore(client)
	ctx := context.Background()

	t.Run("stores and retrieves a profile", func(t *testing.T) {
		p := &domain.Profile{
			StudentID:          "asha-verma-10-20250821071500",
			Name:               "Asha Verma",
			Grade:              "10",
			SchoolName:         "Springfield High",
			Email:              "asha@example.com",
			HobbiesAndPassions: []string{"robotics"},
		}
		require.NoError(t, store.Upsert(ctx, p))
		assert.False(t, p.CreatedAt.IsZero())
		assert.False(t, p.UpdatedAt.IsZero())

		got, err := store.Get(ctx, p.StudentID)
		require.NoError(t, err)
		assert.Equal(t, "Asha Verma", got.Name)
		assert.Equal(t, []string{"robotics"}, got.HobbiesAndPassions)
	})

	t.Run("preserves created_at across updates", func(t *testing.T) {
		p := &domain.Profile{StudentID: "s1", Name: "First"}
		require.NoError(t, store.Upsert(ctx, p))
		created := p.CreatedAt

		update := &domain.Profile{StudentID: "s1", Name: "Second"}
		require.NoError(t, store.Upsert(ctx, update))
		assert.Equal(t, created, update.CreatedAt)

		got, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "Second", got.Name)
	})

	t.Run("rejects empty student_id", func(t *testing.T) {
		err := store.Upsert(ctx, &domain.Profile{})
		assert.ErrorIs(t, err, domain.ErrStudentIDRequired)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}

func TestRedisStore_List(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := repository.NewRedisStore(client)
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		profiles, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})

	t.Run("lists profiles in stable order", func(t *testing.T) {
		for _, id := range []string{"b", "a", "c"} {
			require.NoError(t, store.Upsert(ctx, &domain.Profile{StudentID: id}))
		}

		profiles, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 3)
		assert.Equal(t, "a", profiles[0].StudentID)
		assert.Equal(t, "b", profiles[1].StudentID)
		assert.Equal(t, "c", profiles[2].StudentID)
	})

	t.Run("skips expired values left in the index", func(t *testing.T) {
		require.NoError(t, store.Upsert(ctx, &domain.Profile{StudentID: "ephemeral"}))
		mr.Del("cvp:user:ephemeral")

		profiles, err := store.List(ctx)
		require.NoError(t, err)
		for _, p := range profiles {
			assert.NotEqual(t, "ephemeral", p.StudentID)
		}
	})
}

func TestRedisStore_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := repository.NewRedisStore(client)
	ctx := context.Background()

	t.Run("deletes a stored profile", func(t *testing.T) {
		require.NoError(t, store.Upsert(ctx, &domain.Profile{StudentID: "gone"}))
		require.NoError(t, store.Delete(ctx, "gone"))

		_, err := store.Get(ctx, "gone")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		err := store.Delete(ctx, "never-there")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}

func TestProfileService_OnRedis(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	svc := service.NewProfileService(repository.NewRedisStore(client))
	ctx := context.Background()

	t.Run("setup composes student id and persists profile", func(t *testing.T) {
		profile, message, err := svc.Setup(ctx, &domain.SetupRequest{
			FirstName:  "Asha",
			LastName:   "Verma",
			Grade:      "10",
			SchoolName: "Springfield High",
			Email:      "asha@example.com",
		})
		require.NoError(t, err)
		assert.Contains(t, profile.StudentID, "asha-verma-10-")
		assert.Contains(t, message, "Your YPD ID: "+profile.StudentID)

		got, err := svc.Get(ctx, profile.StudentID)
		require.NoError(t, err)
		assert.Equal(t, "Asha Verma", got.Name)
	})

	t.Run("setup without names fails", func(t *testing.T) {
		_, _, err := svc.Setup(ctx, &domain.SetupRequest{Grade: "10"})
		assert.ErrorIs(t, err, domain.ErrNameRequired)
	})

	t.Run("delete removes the profile", func(t *testing.T) {
		profile, _, err := svc.Setup(ctx, &domain.SetupRequest{
			FirstName:  "Ravi",
			LastName:   "Nair",
			Grade:      "11",
			SchoolName: "City School",
			Email:      "ravi@example.com",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, profile.StudentID))
		_, err = svc.Get(ctx, profile.StudentID)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}
