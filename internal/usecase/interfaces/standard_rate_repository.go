package interfaces

import (
	"context"

	"signestimate/internal/domain/entities"
)

// IStandardRateRepository reads the department/task standard-rate reference
// table. Read-only from this service's perspective.
type IStandardRateRepository interface {
	List(ctx context.Context) ([]entities.StandardRate, error)
}
