package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vijay-pawar-99/CampusHire/internal/models"
	"github.com/vijay-pawar-99/CampusHire/internal/shared"
)

// Profile shows the current user's profile and optionally updates it.
// Prompted fields follow the active variant; an empty answer leaves the
// field untouched.
func (a *App) Profile(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		fmt.Fprintln(a.out, "Log in first.")
		return shared.ErrNoSession
	}

	a.printProfile(user)

	answer, err := GetSimpleText(a.reader, "Edit profile? (y/N)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		return nil
	}

	var patch models.ProfilePatch
	if user.Role == models.RoleEmployer {
		patch, err = a.promptEmployerPatch()
	} else {
		patch, err = a.promptJobSeekerPatch()
	}
	if err != nil {
		return err
	}

	updated, err := a.session.UpdateProfile(ctx, patch)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			fmt.Fprintln(a.out, "Your account no longer exists in this store.")
		} else {
			fmt.Fprintf(a.out, "Update failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	a.printProfile(updated)
	return nil
}

func (a *App) printProfile(u models.User) {
	fmt.Fprintf(a.out, "%s <%s> — %s\n", u.Name, u.Email, u.Role)
	switch {
	case u.JobSeeker != nil:
		p := u.JobSeeker
		fmt.Fprintf(a.out, "  Skills: %s\n", strings.Join(p.Skills, ", "))
		fmt.Fprintf(a.out, "  Experience: %s\n  Education: %s\n", p.Experience, p.Education)
		if p.Location != "" {
			fmt.Fprintf(a.out, "  Location: %s\n", p.Location)
		}
		if p.ResumeURL != "" {
			fmt.Fprintf(a.out, "  Resume: %s\n", p.ResumeURL)
		}
	case u.Employer != nil:
		p := u.Employer
		fmt.Fprintf(a.out, "  Company: %s (%s, %s)\n", p.CompanyName, p.CompanySize, p.Industry)
		if p.Website != "" {
			fmt.Fprintf(a.out, "  Website: %s\n", p.Website)
		}
	}
}

func (a *App) promptJobSeekerPatch() (models.ProfilePatch, error) {
	var patch models.ProfilePatch

	skills, err := GetCommaList(a.reader, "Skills (empty to keep)", a.out)
	if err != nil {
		return patch, err
	}
	if len(skills) > 0 {
		patch.Skills = &skills
	}

	fields := []struct {
		prompt string
		dst    **string
	}{
		{"Experience (empty to keep)", &patch.Experience},
		{"Education (empty to keep)", &patch.Education},
		{"Resume link (empty to keep)", &patch.ResumeURL},
		{"Phone (empty to keep)", &patch.Phone},
		{"Location (empty to keep)", &patch.Location},
		{"Bio (empty to keep)", &patch.Bio},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return patch, err
		}
		if v != "" {
			val := v
			*f.dst = &val
		}
	}
	return patch, nil
}

func (a *App) promptEmployerPatch() (models.ProfilePatch, error) {
	var patch models.ProfilePatch

	fields := []struct {
		prompt string
		dst    **string
	}{
		{"Company name (empty to keep)", &patch.CompanyName},
		{"Company size (empty to keep)", &patch.CompanySize},
		{"Industry (empty to keep)", &patch.Industry},
		{"Website (empty to keep)", &patch.Website},
		{"Description (empty to keep)", &patch.Description},
		{"Logo link (empty to keep)", &patch.Logo},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return patch, err
		}
		if v != "" {
			val := v
			*f.dst = &val
		}
	}
	return patch, nil
}
