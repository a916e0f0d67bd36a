package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"signestimate/internal/domain/entities"
	"signestimate/internal/infrastructure/netsuite"
	"signestimate/internal/usecase/interfaces"
)

var (
	ErrSyncUpstream   = errors.New("netsuite sync failed")
	ErrSyncEmptyBatch = errors.New("netsuite sync returned no records")
)

// SyncResult reports how many rows a sync run touched.
type SyncResult struct {
	SyncedCount int `json:"synced_count"`
}

// IEstimateRequestUseCase exposes the estimate request operations:
//   - SyncFromNetSuite: the explicit sync action; fails hard on any upstream
//     problem or an empty batch and never falls back to mock data.
//   - FetchPendingFromNetSuite: the read/display path; propagates errors so
//     the HTTP boundary can degrade to mock data.
//   - ListLocal: all synced rows from storage, regardless of completion
//     state (only the upstream query filters on estimate_completed).
type IEstimateRequestUseCase interface {
	SyncFromNetSuite(ctx context.Context) (SyncResult, error)
	FetchPendingFromNetSuite(ctx context.Context) (netsuite.Batch, error)
	ListLocal(ctx context.Context) ([]entities.EstimateRequest, error)
}

type EstimateRequestUseCase struct {
	gateway interfaces.INetSuiteGateway
	repo    interfaces.IEstimateRequestRepository
}

var _ IEstimateRequestUseCase = (*EstimateRequestUseCase)(nil)

func NewEstimateRequestUseCase(gateway interfaces.INetSuiteGateway, repo interfaces.IEstimateRequestRepository) *EstimateRequestUseCase {
	return &EstimateRequestUseCase{gateway: gateway, repo: repo}
}

func (u *EstimateRequestUseCase) SyncFromNetSuite(ctx context.Context) (SyncResult, error) {
	log.Printf("[sync][usecase] sync start")

	batch, err := u.gateway.FetchPendingEstimateRequests(ctx)
	if err != nil {
		log.Printf("[sync][usecase] upstream fetch failed err=%v", err)
		return SyncResult{}, fmt.Errorf("%w: %v", ErrSyncUpstream, err)
	}
	if len(batch.Items) == 0 {
		log.Printf("[sync][usecase] upstream returned no records, refusing to sync")
		return SyncResult{}, ErrSyncEmptyBatch
	}

	mapped := make([]entities.EstimateRequest, 0, len(batch.Items))
	for _, rec := range batch.Items {
		mapped = append(mapped, mapRecord(rec))
	}

	count, err := u.repo.UpsertBatch(ctx, mapped)
	if err != nil {
		log.Printf("[sync][usecase] upsert failed err=%v", err)
		return SyncResult{}, err
	}

	log.Printf("[sync][usecase] sync success synced_count=%d", count)
	return SyncResult{SyncedCount: count}, nil
}

func (u *EstimateRequestUseCase) FetchPendingFromNetSuite(ctx context.Context) (netsuite.Batch, error) {
	return u.gateway.FetchPendingEstimateRequests(ctx)
}

func (u *EstimateRequestUseCase) ListLocal(ctx context.Context) ([]entities.EstimateRequest, error) {
	return u.repo.List(ctx)
}

// mapRecord converts a raw upstream row into the local schema. The upsert
// repository owns updated_at; conversion columns are never populated here.
func mapRecord(rec netsuite.Record) entities.EstimateRequest {
	return entities.EstimateRequest{
		NetSuiteID:            rec.ID,
		NetSuiteJobID:         rec.JobID,
		JobName:               rec.JobName,
		AssignedToID:          rec.AssignedToID,
		AssignedToName:        rec.AssignedToName,
		RequestedByID:         rec.RequestedByID,
		RequestedByName:       rec.RequestedByName,
		BidDueDate:            rec.BidDueDate,
		Priority:              entities.PriorityFromCode(rec.PriorityID),
		Status:                entities.RequestStatusFromCode(rec.StatusID),
		EstimateDueDate:       rec.EstimateDueDate,
		EstimateCompletedDate: rec.EstimateCompleted,
		DateSubmitted:         rec.DateSubmitted,
		EstimatorNote:         rec.EstimatorNote,
	}
}
