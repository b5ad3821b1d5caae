package contract

import (
	"context"

	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/repository/specification"
)

type EnergyLogRepository interface {
	Create(ctx context.Context, log *entity.EnergyLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EnergyLog, error)
}
