package usecase

import (
	"context"
	"errors"
	"testing"

	"signestimate/internal/domain/entities"
	"signestimate/internal/infrastructure/netsuite"
	mock_interfaces "signestimate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateRequestUseCase_SyncFromNetSuite(t *testing.T) {
	t.Run("upstream failure refuses to sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockINetSuiteGateway(ctrl)
		repo := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		uc := NewEstimateRequestUseCase(gateway, repo)

		gateway.EXPECT().FetchPendingEstimateRequests(gomock.Any()).Return(netsuite.Batch{}, errors.New("timeout"))

		_, err := uc.SyncFromNetSuite(context.Background())
		if !errors.Is(err, ErrSyncUpstream) {
			t.Fatalf("expected ErrSyncUpstream, got %v", err)
		}
	})

	t.Run("empty batch refuses to sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockINetSuiteGateway(ctrl)
		repo := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		uc := NewEstimateRequestUseCase(gateway, repo)

		gateway.EXPECT().FetchPendingEstimateRequests(gomock.Any()).Return(netsuite.Batch{}, nil)

		_, err := uc.SyncFromNetSuite(context.Background())
		if !errors.Is(err, ErrSyncEmptyBatch) {
			t.Fatalf("expected ErrSyncEmptyBatch, got %v", err)
		}
	})

	t.Run("upsert error is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockINetSuiteGateway(ctrl)
		repo := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		uc := NewEstimateRequestUseCase(gateway, repo)

		gateway.EXPECT().FetchPendingEstimateRequests(gomock.Any()).Return(netsuite.Batch{
			Items: []netsuite.Record{{ID: "1001"}},
		}, nil)
		repo.EXPECT().UpsertBatch(gomock.Any(), gomock.Any()).Return(0, errors.New("db"))

		_, err := uc.SyncFromNetSuite(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("sync success maps records and counts rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockINetSuiteGateway(ctrl)
		repo := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		uc := NewEstimateRequestUseCase(gateway, repo)

		gateway.EXPECT().FetchPendingEstimateRequests(gomock.Any()).Return(netsuite.Batch{
			Items: []netsuite.Record{
				{
					ID:              "1001",
					JobID:           "5001",
					JobName:         "Office Tower Signage",
					PriorityID:      "1",
					StatusID:        "2",
					AssignedToName:  "Sarah Johnson",
					RequestedByName: "Mike Chen",
					BidDueDate:      "2024-02-15",
				},
				{ID: "1002", PriorityID: "9", StatusID: ""},
			},
			TotalCount: 2,
		}, nil)
		repo.EXPECT().UpsertBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reqs []entities.EstimateRequest) (int, error) {
				if len(reqs) != 2 {
					t.Fatalf("expected 2 mapped requests, got %d", len(reqs))
				}
				first := reqs[0]
				if first.NetSuiteID != "1001" || first.NetSuiteJobID != "5001" {
					t.Fatalf("unexpected identity mapping: %+v", first)
				}
				if first.Priority != entities.PriorityHigh || first.Status != entities.RequestStatusInProgress {
					t.Fatalf("unexpected code mapping: %+v", first)
				}
				if first.ConvertedJobID != "" || first.ConvertedAt != nil {
					t.Fatalf("sync must not touch conversion columns: %+v", first)
				}
				if reqs[1].Priority != entities.PriorityUnknown || reqs[1].Status != entities.RequestStatusUnknown {
					t.Fatalf("unexpected unknown-code mapping: %+v", reqs[1])
				}
				return len(reqs), nil
			},
		)

		res, err := uc.SyncFromNetSuite(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SyncedCount != 2 {
			t.Fatalf("expected synced_count 2, got %d", res.SyncedCount)
		}
	})

	t.Run("second sync of the same batch is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockINetSuiteGateway(ctrl)
		repo := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
		uc := NewEstimateRequestUseCase(gateway, repo)

		batch := netsuite.Batch{Items: []netsuite.Record{{ID: "1001"}, {ID: "1002"}, {ID: "1003"}}}
		gateway.EXPECT().FetchPendingEstimateRequests(gomock.Any()).Return(batch, nil).Times(2)
		repo.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(3)).Return(3, nil).Times(2)

		for i := 0; i < 2; i++ {
			res, err := uc.SyncFromNetSuite(context.Background())
			if err != nil {
				t.Fatalf("unexpected error on run %d: %v", i, err)
			}
			if res.SyncedCount != 3 {
				t.Fatalf("expected synced_count 3 on run %d, got %d", i, res.SyncedCount)
			}
		}
	})
}

func TestEstimateRequestUseCase_ListLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockINetSuiteGateway(ctrl)
	repo := mock_interfaces.NewMockIEstimateRequestRepository(ctrl)
	uc := NewEstimateRequestUseCase(gateway, repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.EstimateRequest{
		{NetSuiteID: "1001", ConvertedJobID: "job-1"},
		{NetSuiteID: "1002"},
	}, nil)

	out, err := uc.ListLocal(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected converted and unconverted rows alike, got %d", len(out))
	}
}

func TestEstimateRequestUseCase_FetchPendingFromNetSuite(t *testing.T) {
	t.Run("propagates upstream error for the boundary to handle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockINetSuiteGateway(ctrl)
		uc := NewEstimateRequestUseCase(gateway, nil)

		wantErr := &netsuite.UpstreamError{Status: 500, Body: "boom"}
		gateway.EXPECT().FetchPendingEstimateRequests(gomock.Any()).Return(netsuite.Batch{}, wantErr)

		_, err := uc.FetchPendingFromNetSuite(context.Background())
		var upErr *netsuite.UpstreamError
		if !errors.As(err, &upErr) || upErr.Status != 500 {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})
}
