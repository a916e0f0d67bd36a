package interfaces

import (
	"context"

	"signestimate/internal/infrastructure/netsuite"
)

// INetSuiteGateway abstracts the SuiteQL integration. The concrete client
// serves deterministic mock data when unconfigured; errors are propagated so
// each caller applies its own fallback policy (read paths may degrade, the
// sync action must not).
type INetSuiteGateway interface {
	FetchPendingEstimateRequests(ctx context.Context) (netsuite.Batch, error)
	ConvertToJobEstimate(ctx context.Context, requestID string) (netsuite.ConversionResult, error)
	Configured() bool
	MockMode() bool
}
