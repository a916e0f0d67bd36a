package entities

import "time"

// JobStatus represents the lifecycle of a job estimate.
type JobStatus string

const (
	JobStatusDraft    JobStatus = "draft"
	JobStatusPending  JobStatus = "pending"
	JobStatusApproved JobStatus = "approved"
	JobStatusOther    JobStatus = "other"
)

// Job is a job estimate header owning an ordered collection of signs.
//
// Storage model (DynamoDB):
//   - PK: id
//
// SourceRequestID is the back-reference to the EstimateRequest the job was
// converted from; empty for jobs created directly by an estimator.
type Job struct {
	ID                  string    `json:"id"`
	JobNumber           string    `json:"job_number"`
	JobName             string    `json:"job_name"`
	JobAddress          string    `json:"job_address"`
	ContactName         string    `json:"contact_name"`
	ContactEmail        string    `json:"contact_email"`
	ContactPhone        string    `json:"contact_phone"`
	EstimateCompletedBy string    `json:"estimate_completed_by"`
	ProjectManager      string    `json:"project_manager"`
	EstimateDate        string    `json:"estimate_date"`
	Status              JobStatus `json:"status"`
	SourceRequestID     string    `json:"source_request_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
