package usecase

import (
	"context"
	"sort"

	"signestimate/internal/domain/entities"
	"signestimate/internal/usecase/interfaces"
)

// IStandardRateUseCase reads the standard-rate reference table.
type IStandardRateUseCase interface {
	List(ctx context.Context) ([]entities.StandardRate, error)
	RatesByDepartment(ctx context.Context) (map[string]map[string]float64, error)
}

type StandardRateUseCase struct {
	repo interfaces.IStandardRateRepository
}

var _ IStandardRateUseCase = (*StandardRateUseCase)(nil)

func NewStandardRateUseCase(repo interfaces.IStandardRateRepository) *StandardRateUseCase {
	return &StandardRateUseCase{repo: repo}
}

func (u *StandardRateUseCase) List(ctx context.Context) ([]entities.StandardRate, error) {
	rates, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].Department != rates[j].Department {
			return rates[i].Department < rates[j].Department
		}
		return rates[i].TaskName < rates[j].TaskName
	})
	return rates, nil
}

// RatesByDepartment reshapes the flat table into department -> task -> rate,
// the shape the sign entry form consumes.
func (u *StandardRateUseCase) RatesByDepartment(ctx context.Context) (map[string]map[string]float64, error) {
	rates, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]map[string]float64)
	for _, r := range rates {
		dept := grouped[r.Department]
		if dept == nil {
			dept = make(map[string]float64)
			grouped[r.Department] = dept
		}
		dept[r.TaskName] = r.StandardRate
	}
	return grouped, nil
}
