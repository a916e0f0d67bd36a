package entities

import "time"

// Priority mirrors the NetSuite priority custom list (custrecord17).
type Priority string

const (
	PriorityHigh    Priority = "High"
	PriorityMedium  Priority = "Medium"
	PriorityLow     Priority = "Low"
	PriorityUnknown Priority = "Unknown"
)

// PriorityFromCode resolves the NetSuite priority list id to a display name.
func PriorityFromCode(code string) Priority {
	switch code {
	case "1":
		return PriorityHigh
	case "2":
		return PriorityMedium
	case "3":
		return PriorityLow
	default:
		return PriorityUnknown
	}
}

// RequestStatus mirrors the NetSuite estimate request status list (custrecord18).
type RequestStatus string

const (
	RequestStatusPendingReview RequestStatus = "Pending Review"
	RequestStatusInProgress    RequestStatus = "In Progress"
	RequestStatusOnHold        RequestStatus = "On Hold"
	RequestStatusCompleted     RequestStatus = "Completed"
	RequestStatusUnknown       RequestStatus = "Unknown"
)

// RequestStatusFromCode resolves the NetSuite status list id to a display name.
func RequestStatusFromCode(code string) RequestStatus {
	switch code {
	case "1":
		return RequestStatusPendingReview
	case "2":
		return RequestStatusInProgress
	case "3":
		return RequestStatusOnHold
	case "4":
		return RequestStatusCompleted
	default:
		return RequestStatusUnknown
	}
}

// EstimateRequest is a synced NetSuite estimate request (CUSTOMRECORD417).
//
// Storage model (DynamoDB):
//   - PK: netsuite_id
//
// Lifecycle:
//   - Rows are created/refreshed exclusively by the sync engine, keyed by
//     NetSuiteID so a record is never duplicated.
//   - ConvertedJobID/ConvertedAt are set exactly once by the conversion
//     workflow and are never written by sync.
//
// Date fields keep NetSuite's plain yyyy-mm-dd strings; an empty
// EstimateCompletedDate means the request is still in the pending pool.
type EstimateRequest struct {
	NetSuiteID            string        `json:"netsuite_id"`
	NetSuiteJobID         string        `json:"netsuite_job_id"`
	JobName               string        `json:"job_name"`
	AssignedToID          string        `json:"assigned_to_id"`
	AssignedToName        string        `json:"assigned_to_name"`
	RequestedByID         string        `json:"requested_by_id"`
	RequestedByName       string        `json:"requested_by_name"`
	BidDueDate            string        `json:"bid_due_date"`
	Priority              Priority      `json:"priority"`
	Status                RequestStatus `json:"status"`
	EstimateDueDate       string        `json:"estimate_due_date"`
	EstimateCompletedDate string        `json:"estimate_completed_date,omitempty"`
	DateSubmitted         string        `json:"date_submitted"`
	EstimatorNote         string        `json:"estimator_note"`
	ConvertedJobID        string        `json:"converted_job_id,omitempty"`
	ConvertedAt           *time.Time    `json:"converted_at,omitempty"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

// Converted reports whether a job estimate was already created from this request.
func (r EstimateRequest) Converted() bool {
	return r.ConvertedJobID != ""
}
