package request

import "signestimate/internal/domain/entities"

// JobRequest is the payload for creating or updating a job estimate header.
type JobRequest struct {
	JobNumber           string `json:"job_number" binding:"required"`
	JobName             string `json:"job_name" binding:"required"`
	JobAddress          string `json:"job_address"`
	ContactName         string `json:"contact_name"`
	ContactEmail        string `json:"contact_email"`
	ContactPhone        string `json:"contact_phone"`
	EstimateCompletedBy string `json:"estimate_completed_by"`
	ProjectManager      string `json:"project_manager"`
	EstimateDate        string `json:"estimate_date"`
	Status              string `json:"status"`
}

func (r JobRequest) ToJob() entities.Job {
	return entities.Job{
		JobNumber:           r.JobNumber,
		JobName:             r.JobName,
		JobAddress:          r.JobAddress,
		ContactName:         r.ContactName,
		ContactEmail:        r.ContactEmail,
		ContactPhone:        r.ContactPhone,
		EstimateCompletedBy: r.EstimateCompletedBy,
		ProjectManager:      r.ProjectManager,
		EstimateDate:        r.EstimateDate,
		Status:              entities.JobStatus(r.Status),
	}
}
