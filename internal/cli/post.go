package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/vijay-pawar-99/CampusHire/internal/models"
	"github.com/vijay-pawar-99/CampusHire/internal/shared"
	"github.com/vijay-pawar-99/CampusHire/internal/workflow"
)

// Post walks an employer through creating a job posting.
func (a *App) Post(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		fmt.Fprintln(a.out, "Log in first.")
		return shared.ErrNoSession
	}

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	company, err := GetSimpleText(a.reader, "Company", a.out)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, "Location", a.out)
	if err != nil {
		return err
	}
	jobType, err := GetSimpleText(a.reader, "Type (full-time/part-time/internship/contract)", a.out)
	if err != nil {
		return err
	}
	experience, err := GetSimpleText(a.reader, "Experience level", a.out)
	if err != nil {
		return err
	}
	salary, err := GetSimpleText(a.reader, "Salary (optional)", a.out)
	if err != nil {
		return err
	}
	deadline, err := GetSimpleText(a.reader, "Deadline YYYY-MM-DD (optional)", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	requirements, err := GetCommaList(a.reader, "Requirements", a.out)
	if err != nil {
		return err
	}
	skills, err := GetCommaList(a.reader, "Skills", a.out)
	if err != nil {
		return err
	}

	job, err := a.flow.PostJob(ctx, workflow.JobDraft{
		Title:        title,
		Company:      company,
		Location:     location,
		Type:         models.JobType(jobType),
		Experience:   experience,
		Salary:       salary,
		Description:  description,
		Requirements: requirements,
		Skills:       skills,
		Deadline:     deadline,
	}, user)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotEmployer):
			fmt.Fprintln(a.out, "Only employers can post jobs.")
		case errors.Is(err, shared.ErrValidation):
			fmt.Fprintln(a.out, "Title, company, location, description and experience are required.")
		default:
			fmt.Fprintf(a.out, "Posting failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Posted job %s: %s\n", job.ID, job.Title)
	return nil
}
