package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-pawar-99/CampusHire/internal/codec"
	"github.com/vijay-pawar-99/CampusHire/internal/directory"
	"github.com/vijay-pawar-99/CampusHire/internal/kvstore"
	"github.com/vijay-pawar-99/CampusHire/internal/logging"
	"github.com/vijay-pawar-99/CampusHire/internal/models"
	"github.com/vijay-pawar-99/CampusHire/internal/shared"
)

func testLogger() logging.Logger {
	return logging.NewDefault(io.Discard, slog.LevelError)
}

func setup(t *testing.T) (*Manager, *directory.Store, kvstore.Store) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	dir := directory.New(kv)
	m, err := NewManager(context.Background(), dir, testLogger())
	require.NoError(t, err)
	return m, dir, kv
}

func strPtr(s string) *string { return &s }

func testTimeNow() time.Time {
	return time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
}

func TestRegister_JobSeeker_AppendsUserAndEstablishesSession(t *testing.T) {
	m, dir, _ := setup(t)
	ctx := context.Background()

	user, err := m.Register(ctx, RegisterData{
		Email:    "dev@x.com",
		Password: "whatever",
		Name:     "Dev",
		Role:     models.RoleJobSeeker,
	})
	require.NoError(t, err)
	require.NotNil(t, user.JobSeeker)
	assert.Nil(t, user.Employer)

	users, err := dir.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "dev@x.com", users[0].Email)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegister_Employer_ProfileHoldsCompanyNameOnly(t *testing.T) {
	m, _, _ := setup(t)

	user, err := m.Register(context.Background(), RegisterData{
		Email:       "a@x.com",
		Name:        "A",
		Role:        models.RoleEmployer,
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	current, ok := m.Current()
	require.True(t, ok)
	require.NotNil(t, current.Employer)
	assert.Equal(t, "Acme", current.Employer.CompanyName)
	assert.Empty(t, current.Employer.CompanySize)
	assert.Empty(t, current.Employer.Industry)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegister_DuplicateEmail_FailsAndCollectionUnchanged(t *testing.T) {
	m, dir, _ := setup(t)
	ctx := context.Background()

	_, err := m.Register(ctx, RegisterData{Email: "dup@x.com", Name: "One", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	_, err = m.Register(ctx, RegisterData{Email: "dup@x.com", Name: "Two", Role: models.RoleEmployer})
	require.ErrorIs(t, err, shared.ErrEmailTaken)

	users, err := dir.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "One", users[0].Name)
}

func TestRegister_EmailMatchIsCaseSensitive(t *testing.T) {
	m, dir, _ := setup(t)
	ctx := context.Background()

	_, err := m.Register(ctx, RegisterData{Email: "Dev@x.com", Name: "One", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	// No normalization: a differently-cased email is a different account.
	_, err = m.Register(ctx, RegisterData{Email: "dev@x.com", Name: "Two", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	users, err := dir.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestRegister_UnknownRole_Fails(t *testing.T) {
	m, _, _ := setup(t)
	_, err := m.Register(context.Background(), RegisterData{Email: "x@x.com", Name: "X", Role: "admin"})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestLogin_PresentEmail_SucceedsRegardlessOfPassword(t *testing.T) {
	m, _, _ := setup(t)
	ctx := context.Background()

	registered, err := m.Register(ctx, RegisterData{Email: "dev@x.com", Password: "original", Name: "Dev", Role: models.RoleJobSeeker})
	require.NoError(t, err)
	require.NoError(t, m.Logout(ctx))

	user, err := m.Login(ctx, "dev@x.com", "completely-different")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, ok := m.Current()
	assert.True(t, ok)
}

func TestLogin_AbsentEmail_Fails(t *testing.T) {
	m, _, _ := setup(t)

	_, err := m.Login(context.Background(), "ghost@x.com", "pw")
	require.ErrorIs(t, err, shared.ErrUnknownEmail)

	_, ok := m.Current()
	assert.False(t, ok)
}

func TestLogout_ClearsSessionOnly(t *testing.T) {
	m, dir, kv := setup(t)
	ctx := context.Background()

	_, err := m.Register(ctx, RegisterData{Email: "dev@x.com", Name: "Dev", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx))

	_, ok := m.Current()
	assert.False(t, ok)

	data, err := kv.Get(ctx, KeySession)
	require.NoError(t, err)
	assert.Nil(t, data)

	users, err := dir.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateProfile_NoSession_Fails(t *testing.T) {
	m, _, _ := setup(t)

	_, err := m.UpdateProfile(context.Background(), models.ProfilePatch{Bio: strPtr("hi")})
	require.ErrorIs(t, err, shared.ErrNoSession)
}

func TestUpdateProfile_MergesAndRefreshesSessionMirror(t *testing.T) {
	m, dir, kv := setup(t)
	ctx := context.Background()

	_, err := m.Register(ctx, RegisterData{Email: "dev@x.com", Name: "Dev", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	skills := []string{"Go"}
	updated, err := m.UpdateProfile(ctx, models.ProfilePatch{
		Skills: &skills,
		Bio:    strPtr("hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, updated.JobSeeker.Skills)

	stored, err := dir.UserByID(ctx, updated.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", stored.JobSeeker.Bio)

	data, err := kv.Get(ctx, KeySession)
	require.NoError(t, err)
	mirror, err := codec.DecodeOne[models.User](data)
	require.NoError(t, err)
	assert.Equal(t, "hello", mirror.JobSeeker.Bio)
}

func TestUpdateProfile_WrongVariantField_Rejected(t *testing.T) {
	m, dir, _ := setup(t)
	ctx := context.Background()

	u, err := m.Register(ctx, RegisterData{Email: "dev@x.com", Name: "Dev", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	_, err = m.UpdateProfile(ctx, models.ProfilePatch{CompanyName: strPtr("Acme")})
	require.ErrorIs(t, err, shared.ErrProfileFieldMismatch)

	stored, err := dir.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Employer)
}

func TestUpdateProfile_DesynchronizedUsersCollection_Fails(t *testing.T) {
	m, _, kv := setup(t)
	ctx := context.Background()

	_, err := m.Register(ctx, RegisterData{Email: "dev@x.com", Name: "Dev", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	// Another writer wipes the Users collection; the session pointer survives.
	require.NoError(t, kv.Set(ctx, directory.KeyUsers, []byte(`[]`)))

	_, err = m.UpdateProfile(ctx, models.ProfilePatch{Bio: strPtr("hi")})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestNewManager_RestoresPersistedSessionWithoutValidation(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	dir := directory.New(kv)
	ctx := context.Background()

	// Session points at a user absent from the Users collection; restore
	// adopts it anyway.
	ghost := models.NewJobSeeker("ghost", "ghost@x.com", "Ghost", testTimeNow())
	data, err := codec.EncodeOne(ghost)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, KeySession, data))

	m, err := NewManager(ctx, dir, testLogger())
	require.NoError(t, err)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "ghost", current.ID)
}

func TestNewManager_MalformedSession_FailsConstruction(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	dir := directory.New(kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeySession, []byte(`{broken`)))

	_, err := NewManager(ctx, dir, testLogger())
	require.ErrorIs(t, err, shared.ErrMalformedStore)
}
