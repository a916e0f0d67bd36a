package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"signestimate/internal/domain/entities"
	"signestimate/internal/infrastructure/netsuite"
	mock_interfaces "signestimate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func netsuiteAck(id string) netsuite.ConversionResult {
	return netsuite.ConversionResult{Success: true, JobEstimateID: id}
}

func TestConversionUseCase_ConvertRequestToJob(t *testing.T) {
	t.Run("invalid request id", func(t *testing.T) {
		uc := NewConversionUseCase(nil, nil, nil)
		_, err := uc.ConvertRequestToJob(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("request not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		uc := NewConversionUseCase(requests, nil, nil)

		requests.EXPECT().GetByID(gomock.Any(), "9999").Return(entities.EstimateRequest{}, nil)

		_, err := uc.ConvertRequestToJob(context.Background(), "9999")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("already converted returns the existing job id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		uc := NewConversionUseCase(requests, nil, nil)

		at := time.Now()
		requests.EXPECT().GetByID(gomock.Any(), "1001").Return(entities.EstimateRequest{
			NetSuiteID:     "1001",
			ConvertedJobID: "job-already",
			ConvertedAt:    &at,
		}, nil)

		out, err := uc.ConvertRequestToJob(context.Background(), "1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.AlreadyConverted || out.JobID != "job-already" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("convert success creates job and marks the request once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockINetSuiteGateway(ctrl)
		uc := NewConversionUseCase(requests, jobs, gateway)

		requests.EXPECT().GetByID(gomock.Any(), "1001").Return(entities.EstimateRequest{
			NetSuiteID:      "1001",
			NetSuiteJobID:   "5001",
			JobName:         "Office Tower Signage",
			AssignedToName:  "Sarah Johnson",
			RequestedByName: "Mike Chen",
		}, nil)
		jobs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" {
					t.Fatalf("expected generated job id")
				}
				if j.JobNumber != "EST-5001" {
					t.Fatalf("expected job number EST-5001, got %q", j.JobNumber)
				}
				if j.JobName != "Office Tower Signage" || j.SourceRequestID != "1001" {
					t.Fatalf("unexpected job fields: %+v", j)
				}
				if j.ContactName != "Mike Chen" || j.ProjectManager != "Sarah Johnson" {
					t.Fatalf("unexpected people mapping: %+v", j)
				}
				if j.Status != entities.JobStatusDraft {
					t.Fatalf("expected draft status, got %q", j.Status)
				}
				return j, nil
			},
		)
		requests.EXPECT().MarkConverted(gomock.Any(), "1001", gomock.Any(), gomock.Any()).Return(true, nil)

		out, err := uc.ConvertRequestToJob(context.Background(), " 1001 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AlreadyConverted {
			t.Fatalf("expected fresh conversion, got %+v", out)
		}
		if out.JobID == "" || out.Job.JobNumber != "EST-5001" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("mark failure deletes the created job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewConversionUseCase(requests, jobs, nil)

		requests.EXPECT().GetByID(gomock.Any(), "1001").Return(entities.EstimateRequest{
			NetSuiteID:    "1001",
			NetSuiteJobID: "5001",
			JobName:       "Office Tower Signage",
		}, nil)

		var createdID string
		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				createdID = j.ID
				return j, nil
			},
		)
		requests.EXPECT().MarkConverted(gomock.Any(), "1001", gomock.Any(), gomock.Any()).Return(false, errors.New("db"))
		jobs.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				if id != createdID {
					t.Fatalf("compensation deleted wrong job: %q vs %q", id, createdID)
				}
				return nil
			},
		)

		_, err := uc.ConvertRequestToJob(context.Background(), "1001")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("lost race deletes the job and reports the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewConversionUseCase(requests, jobs, nil)

		requests.EXPECT().GetByID(gomock.Any(), "1001").Return(entities.EstimateRequest{
			NetSuiteID:    "1001",
			NetSuiteJobID: "5001",
			JobName:       "Office Tower Signage",
		}, nil)
		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)
		requests.EXPECT().MarkConverted(gomock.Any(), "1001", gomock.Any(), gomock.Any()).Return(false, nil)
		jobs.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		requests.EXPECT().GetByID(gomock.Any(), "1001").Return(entities.EstimateRequest{
			NetSuiteID:     "1001",
			ConvertedJobID: "job-winner",
		}, nil)

		out, err := uc.ConvertRequestToJob(context.Background(), "1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.AlreadyConverted || out.JobID != "job-winner" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("request without job reference falls back to gateway ack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockINetSuiteGateway(ctrl)
		uc := NewConversionUseCase(requests, jobs, gateway)

		requests.EXPECT().GetByID(gomock.Any(), "1005").Return(entities.EstimateRequest{
			NetSuiteID: "1005",
		}, nil)
		gateway.EXPECT().ConvertToJobEstimate(gomock.Any(), "1005").Return(netsuiteAck("JOB-42"), nil)
		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.JobNumber != "JOB-42" {
					t.Fatalf("expected gateway ack job number, got %q", j.JobNumber)
				}
				if j.JobName != "Estimate Request Job" {
					t.Fatalf("expected fallback job name, got %q", j.JobName)
				}
				return j, nil
			},
		)
		requests.EXPECT().MarkConverted(gomock.Any(), "1005", gomock.Any(), gomock.Any()).Return(true, nil)

		if _, err := uc.ConvertRequestToJob(context.Background(), "1005"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
