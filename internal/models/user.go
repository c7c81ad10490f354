// Package models defines the CampusHire record types persisted in the local
// key-value store: users with role-specific profiles, job postings, and
// applications.
package models

import "time"

// Role selects which profile variant a User carries.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

// JobSeekerProfile is the profile variant for RoleJobSeeker.
type JobSeekerProfile struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	ResumeURL  string   `json:"resumeUrl,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location,omitempty"`
	Bio        string   `json:"bio,omitempty"`
}

// EmployerProfile is the profile variant for RoleEmployer.
type EmployerProfile struct {
	CompanyName string `json:"companyName"`
	CompanySize string `json:"companySize"`
	Industry    string `json:"industry"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// User is an identity record. The profile is a tagged union keyed by Role:
// exactly one of JobSeeker/Employer is non-nil, and it must match Role.
// Email uniqueness is enforced at registration time by exact, case-sensitive
// string comparison; no normalization is applied.
type User struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Role      Role              `json:"role"`
	JobSeeker *JobSeekerProfile `json:"jobSeekerProfile,omitempty"`
	Employer  *EmployerProfile  `json:"employerProfile,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Clone returns a deep copy of u. The profile pointers and the skills slice
// are copied so mutating the clone never touches the original.
func (u User) Clone() User {
	c := u
	if u.JobSeeker != nil {
		p := *u.JobSeeker
		p.Skills = append([]string(nil), u.JobSeeker.Skills...)
		c.JobSeeker = &p
	}
	if u.Employer != nil {
		p := *u.Employer
		c.Employer = &p
	}
	return c
}

// NewJobSeeker constructs a User with an empty job-seeker profile.
func NewJobSeeker(id, email, name string, createdAt time.Time) User {
	return User{
		ID:        id,
		Email:     email,
		Name:      name,
		Role:      RoleJobSeeker,
		JobSeeker: &JobSeekerProfile{Skills: []string{}},
		CreatedAt: createdAt,
	}
}

// NewEmployer constructs a User with an employer profile holding only the
// company name; size and industry start empty.
func NewEmployer(id, email, name, companyName string, createdAt time.Time) User {
	return User{
		ID:        id,
		Email:     email,
		Name:      name,
		Role:      RoleEmployer,
		Employer:  &EmployerProfile{CompanyName: companyName},
		CreatedAt: createdAt,
	}
}
