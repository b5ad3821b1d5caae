package contract

import (
	"context"

	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/repository/specification"
)

type UserProgressRepository interface {
	Create(ctx context.Context, progress *entity.UserProgress) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProgress, error)
}
