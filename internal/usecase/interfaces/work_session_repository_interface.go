package interfaces

import (
	"context"

	"hours_tracker/internal/domain/entities"
)

// IWorkSessionRepository abstracts DynamoDB persistence for WorkSession.

type IWorkSessionRepository interface {
	Create(ctx context.Context, s entities.WorkSession) (entities.WorkSession, error)
	GetByID(ctx context.Context, id string) (entities.WorkSession, error)
	List(ctx context.Context) ([]entities.WorkSession, error)
	Delete(ctx context.Context, id string) error
}
