// Package filter narrows a job collection by a set of simultaneous
// predicates. Filter is a pure function: no ranking, no scoring, and the
// relative order of the input is preserved.
package filter

import (
	"strings"

	"github.com/vijay-pawar-99/CampusHire/internal/models"
)

// Selector label sets offered by the UI. Experience matching is exact string
// equality against free-text job data, so a job whose experience field does
// not exactly equal one of these labels never matches that predicate.
var (
	JobTypes = []models.JobType{
		models.JobTypeFullTime,
		models.JobTypePartTime,
		models.JobTypeInternship,
		models.JobTypeContract,
	}

	ExperienceLevels = []string{"0-1 years", "1-3 years", "3-5 years", "5+ years"}
)

// Predicates is the set of constraints ANDed together by Filter. A zero-value
// field imposes no constraint.
type Predicates struct {
	// Search matches case-insensitively as a substring of the job title,
	// company or description (any of the three).
	Search string

	// Location matches case-insensitively as a substring of the job location.
	Location string

	// Type matches the job type exactly.
	Type models.JobType

	// Experience matches the job's free-text experience field exactly.
	Experience string

	// Skills matches when any of these, for any of the job's skills, is a
	// case-insensitive substring of that skill.
	Skills []string
}

// Filter returns the subsequence of jobs satisfying every active predicate.
// With no active predicates the input is returned unchanged apart from being
// copied.
func Filter(jobs []models.Job, p Predicates) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if matches(job, p) {
			out = append(out, job)
		}
	}
	return out
}

func matches(job models.Job, p Predicates) bool {
	if p.Search != "" {
		term := strings.ToLower(p.Search)
		if !strings.Contains(strings.ToLower(job.Title), term) &&
			!strings.Contains(strings.ToLower(job.Company), term) &&
			!strings.Contains(strings.ToLower(job.Description), term) {
			return false
		}
	}

	if p.Location != "" {
		if !strings.Contains(strings.ToLower(job.Location), strings.ToLower(p.Location)) {
			return false
		}
	}

	if p.Type != "" && job.Type != p.Type {
		return false
	}

	if p.Experience != "" && job.Experience != p.Experience {
		return false
	}

	if len(p.Skills) > 0 && !matchesAnySkill(job.Skills, p.Skills) {
		return false
	}

	return true
}

func matchesAnySkill(jobSkills, wanted []string) bool {
	for _, w := range wanted {
		lw := strings.ToLower(w)
		for _, s := range jobSkills {
			if strings.Contains(strings.ToLower(s), lw) {
				return true
			}
		}
	}
	return false
}
