package models

import "time"

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusHired       ApplicationStatus = "hired"
)

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Application records a job seeker applying to a job. JobTitle, Company,
// ApplicantName and ApplicantEmail are snapshots captured at apply time and
// are never re-synced if the source records change later. At most one
// application may exist per (JobID, ApplicantID) pair; the referenced job or
// user may no longer exist, and readers must tolerate that.
type Application struct {
	ID             string            `json:"id"`
	JobID          string            `json:"jobId"`
	JobTitle       string            `json:"jobTitle"`
	Company        string            `json:"company"`
	ApplicantID    string            `json:"applicantId"`
	ApplicantName  string            `json:"applicantName"`
	ApplicantEmail string            `json:"applicantEmail"`
	ResumeURL      string            `json:"resumeUrl,omitempty"`
	CoverLetter    string            `json:"coverLetter,omitempty"`
	Status         ApplicationStatus `json:"status"`
	AppliedAt      time.Time         `json:"appliedAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
