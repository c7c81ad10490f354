package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/vijay-pawar-99/CampusHire/internal/filter"
	"github.com/vijay-pawar-99/CampusHire/internal/models"
	"github.com/vijay-pawar-99/CampusHire/internal/workflow"
)

// Jobs prompts for an optional predicate set and lists the matching jobs.
// Empty answers leave the corresponding predicate inactive.
func (a *App) Jobs(ctx context.Context) error {
	jobs, err := a.dir.Jobs(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load jobs: %v\n", err)
		return err
	}

	search, err := GetSimpleText(a.reader, "Search text (optional)", a.out)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, "Location (optional)", a.out)
	if err != nil {
		return err
	}
	jobType, err := GetSimpleText(a.reader, fmt.Sprintf("Type (optional: %s)", joinTypes(filter.JobTypes)), a.out)
	if err != nil {
		return err
	}
	experience, err := GetSimpleText(a.reader, fmt.Sprintf("Experience (optional: %s)", strings.Join(filter.ExperienceLevels, ", ")), a.out)
	if err != nil {
		return err
	}
	skills, err := GetCommaList(a.reader, "Skills (optional)", a.out)
	if err != nil {
		return err
	}

	matched := filter.Filter(jobs, filter.Predicates{
		Search:     search,
		Location:   location,
		Type:       models.JobType(jobType),
		Experience: experience,
		Skills:     skills,
	})

	if len(matched) == 0 {
		fmt.Fprintln(a.out, "No jobs found. Try adjusting your search criteria.")
		return nil
	}

	fmt.Fprintf(a.out, "%d job(s) found:\n", len(matched))
	for _, job := range matched {
		fmt.Fprintf(a.out, "  [%s] %s — %s, %s (%s, %s)\n",
			job.ID, job.Title, job.Company, job.Location, job.Type, job.Experience)
	}
	return nil
}

// Show prints the full details of one job.
func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Job id", a.out)
	if err != nil {
		return err
	}

	job, err := a.dir.JobByID(ctx, id)
	if err != nil {
		if workflow.IsNotFound(err) {
			fmt.Fprintln(a.out, "The job you're looking for doesn't exist or has been removed.")
			return nil
		}
		fmt.Fprintf(a.out, "Could not load job: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "%s\n%s — %s\n", job.Title, job.Company, job.Location)
	fmt.Fprintf(a.out, "Type: %s | Experience: %s", job.Type, job.Experience)
	if job.Salary != "" {
		fmt.Fprintf(a.out, " | Salary: %s", job.Salary)
	}
	fmt.Fprintln(a.out)
	if job.Deadline != "" {
		fmt.Fprintf(a.out, "Apply by: %s\n", job.Deadline)
	}
	fmt.Fprintf(a.out, "\n%s\n", job.Description)
	if len(job.Requirements) > 0 {
		fmt.Fprintln(a.out, "\nRequirements:")
		for _, r := range job.Requirements {
			fmt.Fprintf(a.out, "  - %s\n", r)
		}
	}
	if len(job.Skills) > 0 {
		fmt.Fprintf(a.out, "\nSkills: %s\n", strings.Join(job.Skills, ", "))
	}
	return nil
}

func joinTypes(types []models.JobType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
