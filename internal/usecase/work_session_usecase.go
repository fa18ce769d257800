package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"hours_tracker/internal/domain/entities"
	"hours_tracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWorkSessionNotFound = errors.New("work session not found")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrInvalidWorkKind     = errors.New("invalid work kind")
	ErrInvalidDuration     = errors.New("invalid duration")
)

// IWorkSessionUseCase exposes work-session recording for the tracker form.

type IWorkSessionUseCase interface {
	LogSession(ctx context.Context, s entities.WorkSession) (entities.WorkSession, error)
	GetByID(ctx context.Context, id string) (entities.WorkSession, error)
	List(ctx context.Context) ([]entities.WorkSession, error)
	Delete(ctx context.Context, id string) error
}

type WorkSessionUseCase struct {
	repo interfaces.IWorkSessionRepository
}

var _ IWorkSessionUseCase = (*WorkSessionUseCase)(nil)

func NewWorkSessionUseCase(repo interfaces.IWorkSessionRepository) *WorkSessionUseCase {
	return &WorkSessionUseCase{repo: repo}
}

// LogSession records a new work interval.
//
// Non-positive earnings are accepted here and filtered by the pipeline
// calculator instead; duration and work kind are validated because a bad
// value means the form itself is broken. Flat-fee task work legitimately
// carries zero duration.
func (u *WorkSessionUseCase) LogSession(ctx context.Context, s entities.WorkSession) (entities.WorkSession, error) {
	if s.WorkKind != entities.WorkKindProject && s.WorkKind != entities.WorkKindTask {
		return entities.WorkSession{}, ErrInvalidWorkKind
	}
	if s.DurationHours < 0 {
		return entities.WorkSession{}, ErrInvalidDuration
	}

	s.ID = uuid.NewString()
	s.Date = strings.TrimSpace(s.Date)
	s.CreatedAt = time.Now().UTC()
	if s.SubmittedAt != nil {
		at := s.SubmittedAt.UTC()
		s.SubmittedAt = &at
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[session][usecase] create failed id=%s err=%v", s.ID, err)
		return entities.WorkSession{}, err
	}
	log.Printf("[session][usecase] logged id=%s kind=%s hours=%.2f earnings=%.2f", created.ID, created.WorkKind, created.DurationHours, created.Earnings)
	return created, nil
}

func (u *WorkSessionUseCase) GetByID(ctx context.Context, id string) (entities.WorkSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkSession{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkSession{}, err
	}
	if s.ID == "" {
		return entities.WorkSession{}, ErrWorkSessionNotFound
	}
	return s, nil
}

func (u *WorkSessionUseCase) List(ctx context.Context) ([]entities.WorkSession, error) {
	return u.repo.List(ctx)
}

func (u *WorkSessionUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}
	return u.repo.Delete(ctx, id)
}
