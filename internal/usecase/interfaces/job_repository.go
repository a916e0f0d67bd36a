package interfaces

import (
	"context"

	"signestimate/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	Delete(ctx context.Context, id string) error
}
