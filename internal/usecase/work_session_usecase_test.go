package usecase

import (
	"context"
	"errors"
	"testing"

	"hours_tracker/internal/domain/entities"
	mock_interfaces "hours_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkSessionUseCase_LogSession(t *testing.T) {
	t.Run("invalid work kind", func(t *testing.T) {
		uc := NewWorkSessionUseCase(nil)
		_, err := uc.LogSession(context.Background(), entities.WorkSession{WorkKind: "gig", Earnings: 10})
		if !errors.Is(err, ErrInvalidWorkKind) {
			t.Fatalf("expected ErrInvalidWorkKind, got %v", err)
		}
	})

	t.Run("negative duration", func(t *testing.T) {
		uc := NewWorkSessionUseCase(nil)
		_, err := uc.LogSession(context.Background(), entities.WorkSession{WorkKind: entities.WorkKindProject, DurationHours: -1})
		if !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("expected ErrInvalidDuration, got %v", err)
		}
	})

	t.Run("zero duration task work is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkSessionRepository(ctrl)
		uc := NewWorkSessionUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkSession{})).DoAndReturn(
			func(_ context.Context, s entities.WorkSession) (entities.WorkSession, error) {
				if s.ID == "" || s.CreatedAt.IsZero() {
					t.Fatalf("expected assigned id and timestamp: %+v", s)
				}
				return s, nil
			},
		)

		got, err := uc.LogSession(context.Background(), entities.WorkSession{
			WorkKind: entities.WorkKindTask,
			Date:     " 2025-03-12 ",
			Earnings: 25,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Date != "2025-03-12" {
			t.Fatalf("expected trimmed date, got %q", got.Date)
		}
	})

	t.Run("non-positive earnings are not rejected at creation", func(t *testing.T) {
		// The pipeline calculator filters them; the form is allowed to log a
		// correction entry with zero earnings.
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkSessionRepository(ctrl)
		uc := NewWorkSessionUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.WorkSession) (entities.WorkSession, error) { return s, nil },
		)

		if _, err := uc.LogSession(context.Background(), entities.WorkSession{WorkKind: entities.WorkKindProject}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkSessionUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewWorkSessionUseCase(nil)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkSessionRepository(ctrl)
		uc := NewWorkSessionUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.WorkSession{}, nil)

		if _, err := uc.GetByID(context.Background(), "s-1"); !errors.Is(err, ErrWorkSessionNotFound) {
			t.Fatalf("expected ErrWorkSessionNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkSessionRepository(ctrl)
		uc := NewWorkSessionUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.WorkSession{ID: "s-1"}, nil)

		got, err := uc.GetByID(context.Background(), " s-1 ")
		if err != nil || got.ID != "s-1" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}

func TestWorkSessionUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewWorkSessionUseCase(nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkSessionRepository(ctrl)
		uc := NewWorkSessionUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)

		if err := uc.Delete(context.Background(), "s-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
