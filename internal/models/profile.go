package models

import "github.com/vijay-pawar-99/CampusHire/internal/shared"

// ProfilePatch is a partial profile update. Set (non-nil) fields are merged
// shallowly over the user's current profile. A patch that sets a field from
// the other role's variant is rejected with shared.ErrProfileFieldMismatch
// instead of being silently accepted.
type ProfilePatch struct {
	// Job-seeker fields.
	Skills     *[]string
	Experience *string
	Education  *string
	ResumeURL  *string
	Phone      *string
	Location   *string
	Bio        *string

	// Employer fields.
	CompanyName *string
	CompanySize *string
	Industry    *string
	Website     *string
	Description *string
	Logo        *string
}

func (p ProfilePatch) touchesJobSeeker() bool {
	return p.Skills != nil || p.Experience != nil || p.Education != nil ||
		p.ResumeURL != nil || p.Phone != nil || p.Location != nil || p.Bio != nil
}

func (p ProfilePatch) touchesEmployer() bool {
	return p.CompanyName != nil || p.CompanySize != nil || p.Industry != nil ||
		p.Website != nil || p.Description != nil || p.Logo != nil
}

// ApplyPatch merges p into u's active profile variant. The user's role decides
// which fields are legal; any field from the other variant fails the whole
// patch and leaves u unchanged.
func (u *User) ApplyPatch(p ProfilePatch) error {
	switch u.Role {
	case RoleJobSeeker:
		if p.touchesEmployer() {
			return shared.ErrProfileFieldMismatch
		}
		if u.JobSeeker == nil {
			u.JobSeeker = &JobSeekerProfile{Skills: []string{}}
		}
		prof := u.JobSeeker
		if p.Skills != nil {
			prof.Skills = *p.Skills
		}
		if p.Experience != nil {
			prof.Experience = *p.Experience
		}
		if p.Education != nil {
			prof.Education = *p.Education
		}
		if p.ResumeURL != nil {
			prof.ResumeURL = *p.ResumeURL
		}
		if p.Phone != nil {
			prof.Phone = *p.Phone
		}
		if p.Location != nil {
			prof.Location = *p.Location
		}
		if p.Bio != nil {
			prof.Bio = *p.Bio
		}
		return nil

	case RoleEmployer:
		if p.touchesJobSeeker() {
			return shared.ErrProfileFieldMismatch
		}
		if u.Employer == nil {
			u.Employer = &EmployerProfile{}
		}
		prof := u.Employer
		if p.CompanyName != nil {
			prof.CompanyName = *p.CompanyName
		}
		if p.CompanySize != nil {
			prof.CompanySize = *p.CompanySize
		}
		if p.Industry != nil {
			prof.Industry = *p.Industry
		}
		if p.Website != nil {
			prof.Website = *p.Website
		}
		if p.Description != nil {
			prof.Description = *p.Description
		}
		if p.Logo != nil {
			prof.Logo = *p.Logo
		}
		return nil

	default:
		return shared.ErrProfileFieldMismatch
	}
}
