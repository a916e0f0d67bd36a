package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"signestimate/internal/domain/entities"
	"signestimate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrInvalidJobID    = errors.New("invalid job id")
	ErrInvalidJobInput = errors.New("invalid job input")
)

// IJobUseCase exposes job estimate CRUD.
type IJobUseCase interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	Delete(ctx context.Context, id string) error
}

type JobUseCase struct {
	repo  interfaces.IJobRepository
	signs interfaces.ISignRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, signs interfaces.ISignRepository) *JobUseCase {
	return &JobUseCase{repo: repo, signs: signs}
}

func (u *JobUseCase) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.JobNumber = strings.TrimSpace(j.JobNumber)
	j.JobName = strings.TrimSpace(j.JobName)
	if j.JobNumber == "" || j.JobName == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	now := time.Now().UTC()
	j.ID = uuid.NewString()
	if j.Status == "" {
		j.Status = entities.JobStatusDraft
	}
	if j.EstimateDate == "" {
		j.EstimateDate = now.Format("2006-01-02")
	}
	j.CreatedAt = now
	j.UpdatedAt = now

	return u.repo.Create(ctx, j)
}

// List returns all job estimates, newest first.
func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.ID = strings.TrimSpace(j.ID)
	if j.ID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if strings.TrimSpace(j.JobNumber) == "" || strings.TrimSpace(j.JobName) == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	j.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

// Delete removes a job and cascades to its signs.
func (u *JobUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJobID
	}

	if err := u.signs.DeleteByJobID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
