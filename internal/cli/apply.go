package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/vijay-pawar-99/CampusHire/internal/shared"
	"github.com/vijay-pawar-99/CampusHire/internal/workflow"
)

// Apply submits an application to a job. The duplicate check runs here,
// before the workflow call, matching the check-then-act flow of the board.
func (a *App) Apply(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		fmt.Fprintln(a.out, "Log in first.")
		return shared.ErrNoSession
	}

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

	applied, err := a.flow.HasApplied(ctx, job.ID, user.ID)
	if err != nil {
		fmt.Fprintf(a.out, "Could not check your applications: %v\n", err)
		return err
	}
	if applied {
		fmt.Fprintln(a.out, "You have already applied to this job.")
		return shared.ErrAlreadyApplied
	}

	resumeURL, err := GetSimpleText(a.reader, "Resume link (optional)", a.out)
	if err != nil {
		return err
	}
	coverLetter, err := GetMultiline(a.reader, "Cover letter (optional)", a.out)
	if err != nil {
		return err
	}

	app, err := a.flow.Apply(ctx, job, user, workflow.ApplyInput{
		ResumeURL:   resumeURL,
		CoverLetter: coverLetter,
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotJobSeeker) {
			fmt.Fprintln(a.out, "Only job seekers can apply to jobs.")
		} else {
			fmt.Fprintf(a.out, "Failed to apply: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Applied to %s at %s (application %s).\n", app.JobTitle, app.Company, app.ID)
	return nil
}
