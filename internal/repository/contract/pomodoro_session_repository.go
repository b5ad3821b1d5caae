package contract

import (
	"context"

	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/repository/specification"
)

type PomodoroSessionRepository interface {
	Create(ctx context.Context, session *entity.PomodoroSession) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PomodoroSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
