package models

// JobType is the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
	JobTypeContract   JobType = "contract"
)

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// Job is a posting owned by the employer in PostedBy. Experience is free
// text, not an enum; the experience filter matches it by exact string
// equality against a fixed label set, so mismatched data simply never
// matches. Jobs are immutable once created. PostedAt and Deadline are
// opaque date strings (YYYY-MM-DD).
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         JobType   `json:"type"`
	Experience   string    `json:"experience"`
	Salary       string    `json:"salary,omitempty"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Skills       []string  `json:"skills"`
	PostedBy     string    `json:"postedBy"`
	PostedAt     string    `json:"postedAt"`
	Deadline     string    `json:"deadline,omitempty"`
	Status       JobStatus `json:"status"`
}
