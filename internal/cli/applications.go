package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/vijay-pawar-99/CampusHire/internal/models"
	"github.com/vijay-pawar-99/CampusHire/internal/shared"
	"github.com/vijay-pawar-99/CampusHire/internal/workflow"
)

// Applications shows the dashboard view for the current user: their own
// applications for a job seeker, applications to their postings for an
// employer.
func (a *App) Applications(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		fmt.Fprintln(a.out, "Log in first.")
		return shared.ErrNoSession
	}

	var (
		apps []models.Application
		err  error
	)
	if user.Role == models.RoleEmployer {
		apps, err = a.flow.ApplicationsForEmployer(ctx, user.ID)
	} else {
		apps, err = a.flow.ApplicationsByApplicant(ctx, user.ID)
	}
	if err != nil {
		fmt.Fprintf(a.out, "Could not load applications: %v\n", err)
		return err
	}

	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications yet.")
		return nil
	}

	for _, app := range apps {
		fmt.Fprintf(a.out, "  [%s] %s at %s — %s (%s, applied %s)\n",
			app.ID, app.JobTitle, app.Company, app.Status,
			app.ApplicantName, app.AppliedAt.Format("2006-01-02"))
	}

	counts := workflow.StatusCounts(apps)
	fmt.Fprintf(a.out, "Totals: %d pending, %d shortlisted, %d rejected, %d hired\n",
		counts[models.StatusPending], counts[models.StatusShortlisted],
		counts[models.StatusRejected], counts[models.StatusHired])
	return nil
}

// SetStatus lets an employer move an application to a new status.
func (a *App) SetStatus(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		fmt.Fprintln(a.out, "Log in first.")
		return shared.ErrNoSession
	}
	if user.Role != models.RoleEmployer {
		fmt.Fprintln(a.out, "Only employers can change application statuses.")
		return shared.ErrNotEmployer
	}

	id, err := GetSimpleText(a.reader, "Application id", a.out)
	if err != nil {
		return err
	}
	statusStr, err := GetSimpleText(a.reader, "New status (pending/shortlisted/rejected/hired)", a.out)
	if err != nil {
		return err
	}

	app, err := a.flow.SetStatus(ctx, id, models.ApplicationStatus(statusStr))
	if err != nil {
		switch {
		case workflow.IsNotFound(err):
			fmt.Fprintln(a.out, "No application with that id.")
		case errors.Is(err, shared.ErrInvalidTransition):
			fmt.Fprintln(a.out, "Unknown status.")
		default:
			fmt.Fprintf(a.out, "Could not update status: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Application %s is now %s.\n", app.ID, app.Status)
	return nil
}
