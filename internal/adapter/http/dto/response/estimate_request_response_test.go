package response

import (
	"testing"
	"time"

	"signestimate/internal/domain/entities"
)

func TestFromEstimateRequest(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := entities.EstimateRequest{
		NetSuiteID:     "1001",
		NetSuiteJobID:  "5001",
		JobName:        "Office Tower Signage",
		Priority:       entities.PriorityHigh,
		Status:         entities.RequestStatusInProgress,
		ConvertedJobID: "job-1",
		ConvertedAt:    &at,
	}

	out := FromEstimateRequest(r)
	if out.NetSuiteID != "1001" || out.Priority != "High" || out.Status != "In Progress" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if !out.Converted || out.ConvertedJobID != "job-1" {
		t.Fatalf("expected converted flags, got %+v", out)
	}

	fresh := FromEstimateRequest(entities.EstimateRequest{NetSuiteID: "1002"})
	if fresh.Converted || fresh.ConvertedAt != nil {
		t.Fatalf("expected unconverted row, got %+v", fresh)
	}
}
