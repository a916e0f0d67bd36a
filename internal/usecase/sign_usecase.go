package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"signestimate/internal/domain/costing"
	"signestimate/internal/domain/entities"
	"signestimate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSignNotFound     = errors.New("sign not found")
	ErrInvalidSignID    = errors.New("invalid sign id")
	ErrInvalidSignInput = errors.New("invalid sign input")
)

// ISignUseCase exposes sign estimate operations. Create accepts the full
// editable cost sheet and persists only its non-zero lines; totals are
// always computed over whatever lines the caller supplies.
type ISignUseCase interface {
	Create(ctx context.Context, jobID string, sheet entities.Sign) (entities.Sign, costing.SignTotals, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.Sign, error)
	GetByID(ctx context.Context, id string) (entities.Sign, costing.SignTotals, error)
	Delete(ctx context.Context, id string) error
}

type SignUseCase struct {
	repo interfaces.ISignRepository
	jobs interfaces.IJobRepository
}

var _ ISignUseCase = (*SignUseCase)(nil)

func NewSignUseCase(repo interfaces.ISignRepository, jobs interfaces.IJobRepository) *SignUseCase {
	return &SignUseCase{repo: repo, jobs: jobs}
}

func (u *SignUseCase) Create(ctx context.Context, jobID string, sheet entities.Sign) (entities.Sign, costing.SignTotals, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Sign{}, costing.SignTotals{}, ErrInvalidJobID
	}
	if sheet.Quantity < 0 {
		return entities.Sign{}, costing.SignTotals{}, ErrInvalidSignInput
	}
	if sheet.Quantity == 0 {
		sheet.Quantity = 1
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Sign{}, costing.SignTotals{}, err
	}
	if job.ID == "" {
		return entities.Sign{}, costing.SignTotals{}, ErrJobNotFound
	}

	// Totals cover the whole in-memory sheet, zero lines included.
	totals := costing.ComputeSignTotals(sheet)

	sign := sheet
	sign.ID = uuid.NewString()
	sign.JobID = jobID
	sign.CreatedAt = time.Now().UTC()
	sign.ArtDepartment = persistableDepartmentLines(sheet.ArtDepartment)
	sign.FabricationDepartment = persistableDepartmentLines(sheet.FabricationDepartment)
	sign.InstallationDepartment = persistableDepartmentLines(sheet.InstallationDepartment)
	sign.Subcontractors = persistableSubcontractorLines(sheet.Subcontractors)
	sign.Materials = persistableMaterialLines(sheet.Materials)
	sign.CratingFees = persistableCratingLines(sheet.CratingFees)

	if sign.SignNumber == 0 {
		existing, err := u.repo.ListByJobID(ctx, jobID)
		if err != nil {
			return entities.Sign{}, costing.SignTotals{}, err
		}
		sign.SignNumber = nextSignNumber(existing)
	}

	created, err := u.repo.Create(ctx, sign)
	if err != nil {
		return entities.Sign{}, costing.SignTotals{}, err
	}
	return created, totals, nil
}

func (u *SignUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.Sign, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}

	signs, err := u.repo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	sort.Slice(signs, func(i, j int) bool { return signs[i].SignNumber < signs[j].SignNumber })
	return signs, nil
}

func (u *SignUseCase) GetByID(ctx context.Context, id string) (entities.Sign, costing.SignTotals, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sign{}, costing.SignTotals{}, ErrInvalidSignID
	}

	sign, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Sign{}, costing.SignTotals{}, err
	}
	if sign.ID == "" {
		return entities.Sign{}, costing.SignTotals{}, ErrSignNotFound
	}
	return sign, costing.ComputeSignTotals(sign), nil
}

func (u *SignUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSignID
	}
	return u.repo.Delete(ctx, id)
}

// Zero/blank lines are display scaffolding, not data; only rows an estimator
// actually filled in are written as child rows.

func persistableDepartmentLines(lines []entities.DepartmentLine) []entities.DepartmentLine {
	out := make([]entities.DepartmentLine, 0, len(lines))
	for _, l := range lines {
		if l.Hours > 0 {
			out = append(out, l)
		}
	}
	return out
}

func persistableSubcontractorLines(lines []entities.SubcontractorLine) []entities.SubcontractorLine {
	out := make([]entities.SubcontractorLine, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l.Description) != "" && l.Cost > 0 {
			out = append(out, l)
		}
	}
	return out
}

func persistableMaterialLines(lines []entities.MaterialLine) []entities.MaterialLine {
	out := make([]entities.MaterialLine, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l.Name) != "" && l.UnitCost > 0 {
			if l.Quantity == 0 {
				l.Quantity = 1
			}
			out = append(out, l)
		}
	}
	return out
}

func persistableCratingLines(lines []entities.CratingLine) []entities.CratingLine {
	out := make([]entities.CratingLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity > 0 && l.UnitCost > 0 {
			out = append(out, l)
		}
	}
	return out
}

func nextSignNumber(existing []entities.Sign) int {
	max := 0
	for _, s := range existing {
		if s.SignNumber > max {
			max = s.SignNumber
		}
	}
	return max + 1
}
