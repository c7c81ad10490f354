// Package workflow implements the application lifecycle: applying to jobs,
// posting jobs, and employer-driven status changes.
package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vijay-pawar-99/CampusHire/internal/directory"
	"github.com/vijay-pawar-99/CampusHire/internal/logging"
	"github.com/vijay-pawar-99/CampusHire/internal/models"
	"github.com/vijay-pawar-99/CampusHire/internal/shared"
)

// Transitions is the allowed-transition table for application statuses.
// The intended flow is pending → {shortlisted, rejected} → hired, but the
// mechanism is deliberately permissive: any known status may move to any
// other known status. Keeping the table explicit makes that a tested
// contract instead of implicit "anything goes".
var Transitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.StatusPending:     {models.StatusPending, models.StatusShortlisted, models.StatusRejected, models.StatusHired},
	models.StatusShortlisted: {models.StatusPending, models.StatusShortlisted, models.StatusRejected, models.StatusHired},
	models.StatusRejected:    {models.StatusPending, models.StatusShortlisted, models.StatusRejected, models.StatusHired},
	models.StatusHired:       {models.StatusPending, models.StatusShortlisted, models.StatusRejected, models.StatusHired},
}

// CanTransition reports whether the table permits from → to.
func CanTransition(from, to models.ApplicationStatus) bool {
	for _, s := range Transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Service implements applying, posting, status changes and the dashboard
// queries over the directory store.
type Service struct {
	dir   *directory.Store
	log   logging.Logger
	newID shared.IDGenerator
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator overrides the id policy for new records. The default is
// shared.TimestampID.
func WithIDGenerator(gen shared.IDGenerator) Option {
	return func(s *Service) { s.newID = gen }
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(dir *directory.Store, log logging.Logger, opts ...Option) *Service {
	s := &Service{
		dir:   dir,
		log:   log,
		newID: shared.TimestampID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ApplyInput carries the optional attachments a job seeker submits along
// with an application.
type ApplyInput struct {
	ResumeURL   string
	CoverLetter string
}

// Apply creates a pending application for (job, applicant), snapshotting the
// job title/company and applicant name/email at creation time. Only the
// applicant's role is checked here; duplicate prevention is the caller's
// responsibility via HasApplied before invoking (a check-then-act race under
// concurrent writers is an accepted limitation of the storage discipline).
func (s *Service) Apply(ctx context.Context, job models.Job, applicant models.User, in ApplyInput) (models.Application, error) {
	if applicant.Role != models.RoleJobSeeker {
		return models.Application{}, shared.ErrNotJobSeeker
	}

	now := s.now().UTC()
	app := models.Application{
		ID:             s.newID(),
		JobID:          job.ID,
		JobTitle:       job.Title,
		Company:        job.Company,
		ApplicantID:    applicant.ID,
		ApplicantName:  applicant.Name,
		ApplicantEmail: applicant.Email,
		ResumeURL:      in.ResumeURL,
		CoverLetter:    in.CoverLetter,
		Status:         models.StatusPending,
		AppliedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.dir.InsertApplication(ctx, app); err != nil {
		return models.Application{}, err
	}

	s.log.Info(ctx, "applied", "application", app.ID, "job", job.ID, "applicant", applicant.ID)
	return app, nil
}

// HasApplied reports whether an application already exists for the
// (jobID, applicantID) pair.
func (s *Service) HasApplied(ctx context.Context, jobID, applicantID string) (bool, error) {
	apps, err := s.dir.Applications(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

// SetStatus moves the application to newStatus and bumps UpdatedAt. Unknown
// target statuses fail with shared.ErrInvalidTransition; an absent id fails
// with shared.ErrNotFound and leaves the collection untouched.
func (s *Service) SetStatus(ctx context.Context, applicationID string, newStatus models.ApplicationStatus) (models.Application, error) {
	if !newStatus.Valid() {
		return models.Application{}, shared.ErrInvalidTransition
	}

	current, err := s.dir.ApplicationByID(ctx, applicationID)
	if err != nil {
		return models.Application{}, err
	}
	if !CanTransition(current.Status, newStatus) {
		return models.Application{}, shared.ErrInvalidTransition
	}

	updated, err := s.dir.UpdateApplication(ctx, applicationID, func(a *models.Application) {
		a.Status = newStatus
		a.UpdatedAt = s.now().UTC()
	})
	if err != nil {
		return models.Application{}, err
	}

	s.log.Info(ctx, "status changed", "application", applicationID, "status", newStatus)
	return updated, nil
}

// JobDraft is the employer-supplied input to PostJob.
type JobDraft struct {
	Title        string
	Company      string
	Location     string
	Type         models.JobType
	Experience   string
	Salary       string
	Description  string
	Requirements []string
	Skills       []string
	Deadline     string
}

// PostJob creates an active job owned by poster. Mirrors the posting form's
// validation: title, company, location, description and experience are
// required (after trimming).
func (s *Service) PostJob(ctx context.Context, draft JobDraft, poster models.User) (models.Job, error) {
	if poster.Role != models.RoleEmployer {
		return models.Job{}, shared.ErrNotEmployer
	}

	title := strings.TrimSpace(draft.Title)
	company := strings.TrimSpace(draft.Company)
	location := strings.TrimSpace(draft.Location)
	description := strings.TrimSpace(draft.Description)
	experience := strings.TrimSpace(draft.Experience)
	if title == "" || company == "" || location == "" || description == "" || experience == "" {
		return models.Job{}, shared.ErrValidation
	}

	job := models.Job{
		ID:           s.newID(),
		Title:        title,
		Company:      company,
		Location:     location,
		Type:         draft.Type,
		Experience:   experience,
		Salary:       strings.TrimSpace(draft.Salary),
		Description:  description,
		Requirements: draft.Requirements,
		Skills:       draft.Skills,
		PostedBy:     poster.ID,
		PostedAt:     s.now().UTC().Format("2006-01-02"),
		Deadline:     strings.TrimSpace(draft.Deadline),
		Status:       models.JobStatusActive,
	}

	if err := s.dir.InsertJob(ctx, job); err != nil {
		return models.Job{}, err
	}

	s.log.Info(ctx, "job posted", "job", job.ID, "title", job.Title, "by", poster.ID)
	return job, nil
}

// ApplicationsByApplicant returns the applicant's applications in insertion
// order (the job-seeker dashboard view).
func (s *Service) ApplicationsByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	apps, err := s.dir.Applications(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Application, 0, len(apps))
	for _, a := range apps {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ApplicationsForEmployer returns applications to any job posted by the
// employer (the employer dashboard view). Applications whose job no longer
// resolves are skipped, not fatal.
func (s *Service) ApplicationsForEmployer(ctx context.Context, employerID string) ([]models.Application, error) {
	jobs, err := s.dir.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	mine := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		if j.PostedBy == employerID {
			mine[j.ID] = true
		}
	}

	apps, err := s.dir.Applications(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Application, 0, len(apps))
	for _, a := range apps {
		if mine[a.JobID] {
			out = append(out, a)
		}
	}
	return out, nil
}

// StatusCounts tallies applications by status for dashboard counters.
func StatusCounts(apps []models.Application) map[models.ApplicationStatus]int {
	counts := make(map[models.ApplicationStatus]int)
	for _, a := range apps {
		counts[a.Status]++
	}
	return counts
}

// IsNotFound reports whether err is the absent-record sentinel, letting
// hosts branch without importing shared.
func IsNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
