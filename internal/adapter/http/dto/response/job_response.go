package response

import (
	"time"

	"signestimate/internal/domain/entities"
)

type JobResponse struct {
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
	Status              string    `json:"status"`
	SourceRequestID     string    `json:"source_request_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                  j.ID,
		JobNumber:           j.JobNumber,
		JobName:             j.JobName,
		JobAddress:          j.JobAddress,
		ContactName:         j.ContactName,
		ContactEmail:        j.ContactEmail,
		ContactPhone:        j.ContactPhone,
		EstimateCompletedBy: j.EstimateCompletedBy,
		ProjectManager:      j.ProjectManager,
		EstimateDate:        j.EstimateDate,
		Status:              string(j.Status),
		SourceRequestID:     j.SourceRequestID,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
