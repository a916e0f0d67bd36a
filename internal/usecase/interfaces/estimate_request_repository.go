package interfaces

import (
	"context"
	"time"

	"signestimate/internal/domain/entities"
)

// IEstimateRequestRepository abstracts DynamoDB persistence for synced
// NetSuite estimate requests.
//
// UpsertBatch is keyed by netsuite_id: insert when absent, overwrite all
// non-identity fields when present. It must never write the conversion
// columns — those belong to MarkConverted alone.
//
// MarkConverted performs a guarded write: it only succeeds when
// converted_job_id is still unset, returning false (no error) when another
// caller won the race.
type IEstimateRequestRepository interface {
	UpsertBatch(ctx context.Context, requests []entities.EstimateRequest) (int, error)
	List(ctx context.Context) ([]entities.EstimateRequest, error)
	GetByID(ctx context.Context, netsuiteID string) (entities.EstimateRequest, error)
	MarkConverted(ctx context.Context, netsuiteID, jobID string, at time.Time) (bool, error)
}
