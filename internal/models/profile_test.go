package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-pawar-99/CampusHire/internal/shared"
)

func strPtr(s string) *string { return &s }

func TestApplyPatch_JobSeekerMerge(t *testing.T) {
	u := NewJobSeeker("1", "dev@x.com", "Dev", time.Now())
	u.JobSeeker.Education = "B.Tech"

	skills := []string{"Go", "SQL"}
	err := u.ApplyPatch(ProfilePatch{
		Skills:     &skills,
		Experience: strPtr("1-3 years"),
	})
	require.NoError(t, err)

	// Set fields merged, unset fields untouched.
	assert.Equal(t, []string{"Go", "SQL"}, u.JobSeeker.Skills)
	assert.Equal(t, "1-3 years", u.JobSeeker.Experience)
	assert.Equal(t, "B.Tech", u.JobSeeker.Education)
}

func TestApplyPatch_EmployerMerge(t *testing.T) {
	u := NewEmployer("2", "hr@acme.io", "HR", "Acme", time.Now())

	err := u.ApplyPatch(ProfilePatch{
		CompanySize: strPtr("11-50"),
		Industry:    strPtr("Software"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", u.Employer.CompanyName)
	assert.Equal(t, "11-50", u.Employer.CompanySize)
	assert.Equal(t, "Software", u.Employer.Industry)
}

func TestApplyPatch_RejectsWrongVariantFields(t *testing.T) {
	tests := []struct {
		name  string
		user  User
		patch ProfilePatch
	}{
		{
			name:  "employer field on jobseeker",
			user:  NewJobSeeker("1", "dev@x.com", "Dev", time.Now()),
			patch: ProfilePatch{CompanyName: strPtr("Acme")},
		},
		{
			name:  "jobseeker field on employer",
			user:  NewEmployer("2", "hr@acme.io", "HR", "Acme", time.Now()),
			patch: ProfilePatch{Bio: strPtr("hello")},
		},
		{
			name: "mixed patch rejected as a whole",
			user: NewJobSeeker("3", "d2@x.com", "Dev2", time.Now()),
			patch: ProfilePatch{
				Experience:  strPtr("0-1 years"),
				CompanySize: strPtr("1-10"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.user
			err := tt.user.ApplyPatch(tt.patch)
			require.ErrorIs(t, err, shared.ErrProfileFieldMismatch)
			assert.Equal(t, before, tt.user, "rejected patch must leave the user unchanged")
		})
	}
}

func TestApplyPatch_UnknownRole(t *testing.T) {
	u := User{ID: "9", Role: Role("admin")}
	err := u.ApplyPatch(ProfilePatch{Bio: strPtr("x")})
	require.ErrorIs(t, err, shared.ErrProfileFieldMismatch)
}

func TestNewEmployer_ProfileShape(t *testing.T) {
	u := NewEmployer("1", "a@x.com", "A", "Acme", time.Now())
	require.NotNil(t, u.Employer)
	require.Nil(t, u.JobSeeker)
	assert.Equal(t, "Acme", u.Employer.CompanyName)
	assert.Empty(t, u.Employer.CompanySize)
	assert.Empty(t, u.Employer.Industry)
}

func TestNewJobSeeker_ProfileShape(t *testing.T) {
	u := NewJobSeeker("1", "b@x.com", "B", time.Now())
	require.NotNil(t, u.JobSeeker)
	require.Nil(t, u.Employer)
	assert.Empty(t, u.JobSeeker.Skills)
	assert.Empty(t, u.JobSeeker.Experience)
	assert.Empty(t, u.JobSeeker.Education)
}
