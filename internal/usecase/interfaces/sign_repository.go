package interfaces

import (
	"context"

	"signestimate/internal/domain/entities"
)

// ISignRepository abstracts DynamoDB persistence for Sign.
type ISignRepository interface {
	Create(ctx context.Context, s entities.Sign) (entities.Sign, error)
	GetByID(ctx context.Context, id string) (entities.Sign, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Sign, error)
	Delete(ctx context.Context, id string) error
	DeleteByJobID(ctx context.Context, jobID string) error
}
