package response

import (
	"time"

	"signestimate/internal/domain/entities"
	"signestimate/internal/infrastructure/netsuite"
)

// EstimateRequestResponse is a locally stored estimate request.
type EstimateRequestResponse struct {
	NetSuiteID            string     `json:"netsuite_id"`
	NetSuiteJobID         string     `json:"netsuite_job_id"`
	JobName               string     `json:"job_name"`
	AssignedToID          string     `json:"assigned_to_id"`
	AssignedToName        string     `json:"assigned_to_name"`
	RequestedByID         string     `json:"requested_by_id"`
	RequestedByName       string     `json:"requested_by_name"`
	BidDueDate            string     `json:"bid_due_date"`
	Priority              string     `json:"priority"`
	Status                string     `json:"status"`
	EstimateDueDate       string     `json:"estimate_due_date"`
	EstimateCompletedDate string     `json:"estimate_completed_date,omitempty"`
	DateSubmitted         string     `json:"date_submitted"`
	EstimatorNote         string     `json:"estimator_note"`
	Converted             bool       `json:"converted"`
	ConvertedJobID        string     `json:"converted_job_id,omitempty"`
	ConvertedAt           *time.Time `json:"converted_at,omitempty"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func FromEstimateRequest(r entities.EstimateRequest) EstimateRequestResponse {
	return EstimateRequestResponse{
		NetSuiteID:            r.NetSuiteID,
		NetSuiteJobID:         r.NetSuiteJobID,
		JobName:               r.JobName,
		AssignedToID:          r.AssignedToID,
		AssignedToName:        r.AssignedToName,
		RequestedByID:         r.RequestedByID,
		RequestedByName:       r.RequestedByName,
		BidDueDate:            r.BidDueDate,
		Priority:              string(r.Priority),
		Status:                string(r.Status),
		EstimateDueDate:       r.EstimateDueDate,
		EstimateCompletedDate: r.EstimateCompletedDate,
		DateSubmitted:         r.DateSubmitted,
		EstimatorNote:         r.EstimatorNote,
		Converted:             r.Converted(),
		ConvertedJobID:        r.ConvertedJobID,
		ConvertedAt:           r.ConvertedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func FromEstimateRequests(reqs []entities.EstimateRequest) []EstimateRequestResponse {
	out := make([]EstimateRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, FromEstimateRequest(r))
	}
	return out
}

// NetSuiteBatchResponse mirrors the upstream SuiteQL batch shape, plus a flag
// telling the client whether it is looking at live or mock data.
type NetSuiteBatchResponse struct {
	Items      []netsuite.Record `json:"items"`
	TotalCount int               `json:"totalCount"`
	HasMore    bool              `json:"hasMore"`
	MockData   bool              `json:"mockData,omitempty"`
}

func FromNetSuiteBatch(b netsuite.Batch, mock bool) NetSuiteBatchResponse {
	return NetSuiteBatchResponse{
		Items:      b.Items,
		TotalCount: b.TotalCount,
		HasMore:    b.HasMore,
		MockData:   mock,
	}
}

// SyncResponse reports a completed sync run.
type SyncResponse struct {
	Success     bool `json:"success"`
	SyncedCount int  `json:"synced_count"`
}

// ConvertResponse reports the outcome of a conversion.
type ConvertResponse struct {
	Success        bool         `json:"success"`
	JobEstimateID  string       `json:"jobEstimateId"`
	AlreadyExisted bool         `json:"alreadyExisted,omitempty"`
	Message        string       `json:"message,omitempty"`
	Job            *JobResponse `json:"job,omitempty"`
}
