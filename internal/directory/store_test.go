package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-pawar-99/CampusHire/internal/kvstore"
	"github.com/vijay-pawar-99/CampusHire/internal/models"
	"github.com/vijay-pawar-99/CampusHire/internal/shared"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	return New(kvstore.NewMemoryStore())
}

func TestUsers_EmptyStoreYieldsEmptyCollection(t *testing.T) {
	s := setupStore(t)

	users, err := s.Users(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestInsertUser_PreservesInsertionOrder(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		u := models.NewJobSeeker(id, id+"@x.com", "User "+id, time.Now())
		require.NoError(t, s.InsertUser(ctx, u))
	}

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "a", users[0].ID)
	assert.Equal(t, "b", users[1].ID)
	assert.Equal(t, "c", users[2].ID)
}

func TestUserByID_AbsentIsNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.UserByID(context.Background(), "ghost")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUpdateUser_MergesAndWritesBack(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u := models.NewJobSeeker("u1", "dev@x.com", "Dev", time.Now())
	require.NoError(t, s.InsertUser(ctx, u))

	updated, err := s.UpdateUser(ctx, "u1", func(u *models.User) {
		u.Name = "Renamed"
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	got, err := s.UserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestUpdateUser_AbsentIDLeavesCollectionUntouched(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u := models.NewJobSeeker("u1", "dev@x.com", "Dev", time.Now())
	require.NoError(t, s.InsertUser(ctx, u))

	_, err := s.UpdateUser(ctx, "ghost", func(u *models.User) {
		u.Name = "nope"
	})
	require.ErrorIs(t, err, shared.ErrNotFound)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Dev", users[0].Name)
}

func TestJobs_InsertAndGetByID(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	job := models.Job{ID: "j1", Title: "Backend Intern", Status: models.JobStatusActive}
	require.NoError(t, s.InsertJob(ctx, job))

	got, err := s.JobByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, "Backend Intern", got.Title)
}

func TestApplications_DanglingJobReferenceIsTolerated(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	// Application referencing a job that was never inserted.
	app := models.Application{ID: "a1", JobID: "missing-job", ApplicantID: "u1", Status: models.StatusPending}
	require.NoError(t, s.InsertApplication(ctx, app))

	apps, err := s.Applications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	_, err = s.JobByID(ctx, apps[0].JobID)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGetAll_MalformedCollectionIsHardFailure(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), KeyJobs, []byte(`{broken`)))
	s := New(kv)

	_, err := s.Jobs(context.Background())
	require.ErrorIs(t, err, shared.ErrMalformedStore)
}

func TestMutation_RewritesWholeCollection(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s := New(kv)
	ctx := context.Background()

	require.NoError(t, s.InsertJob(ctx, models.Job{ID: "1", Title: "One"}))
	require.NoError(t, s.InsertJob(ctx, models.Job{ID: "2", Title: "Two"}))

	// A stale writer replacing the key loses the other writer's record
	// entirely; the store does not detect this.
	require.NoError(t, kv.Set(ctx, KeyJobs, []byte(`[{"id":"3","title":"Three"}]`)))

	jobs, err := s.Jobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "3", jobs[0].ID)
}
