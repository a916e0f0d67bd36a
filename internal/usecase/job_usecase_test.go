package usecase

import (
	"context"
	"errors"
	"testing"

	"signestimate/internal/domain/entities"
	mock_interfaces "signestimate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobUseCase_Create(t *testing.T) {
	t.Run("missing job number or name", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Job{JobNumber: "  ", JobName: "x"})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
		_, err = uc.Create(context.Background(), entities.Job{JobNumber: "J-1", JobName: ""})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("create success applies defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" {
					t.Fatalf("expected generated id")
				}
				if j.Status != entities.JobStatusDraft {
					t.Fatalf("expected draft status, got %q", j.Status)
				}
				if j.EstimateDate == "" || j.CreatedAt.IsZero() || j.UpdatedAt.IsZero() {
					t.Fatalf("expected dated job, got %+v", j)
				}
				return j, nil
			},
		)

		out, err := uc.Create(context.Background(), entities.Job{JobNumber: " J-100 ", JobName: " Lobby Sign "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.JobNumber != "J-100" || out.JobName != "Lobby Sign" {
			t.Fatalf("expected trimmed fields, got %+v", out)
		}
	})
}

func TestJobUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Job{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_Update(t *testing.T) {
	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Job{}, nil)

		_, err := uc.Update(context.Background(), entities.Job{ID: "missing", JobNumber: "J-1", JobName: "x"})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("update refreshes updated_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.UpdatedAt.IsZero() {
					t.Fatalf("expected refreshed updated_at")
				}
				return j, nil
			},
		)

		if _, err := uc.Update(context.Background(), entities.Job{ID: "job-1", JobNumber: "J-1", JobName: "x"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_Delete(t *testing.T) {
	t.Run("cascades to signs first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		signs := mock_interfaces.NewMockISignRepository(ctrl)
		uc := NewJobUseCase(repo, signs)

		gomock.InOrder(
			signs.EXPECT().DeleteByJobID(gomock.Any(), "job-1").Return(nil),
			repo.EXPECT().Delete(gomock.Any(), "job-1").Return(nil),
		)

		if err := uc.Delete(context.Background(), "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sign cascade failure aborts the job delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		signs := mock_interfaces.NewMockISignRepository(ctrl)
		uc := NewJobUseCase(repo, signs)

		signs.EXPECT().DeleteByJobID(gomock.Any(), "job-1").Return(errors.New("db"))

		if err := uc.Delete(context.Background(), "job-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
