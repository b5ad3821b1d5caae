package implementation

import (
	"context"

	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/mapper"
	"neurolearn-be/internal/model"
	"neurolearn-be/internal/repository/contract"
	"neurolearn-be/internal/repository/specification"

	"gorm.io/gorm"
)

type EnergyLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EnergyLogMapper
}

func NewEnergyLogRepository(db *gorm.DB) contract.EnergyLogRepository {
	return &EnergyLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewEnergyLogMapper(),
	}
}

func (r *EnergyLogRepositoryImpl) Create(ctx context.Context, log *entity.EnergyLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *EnergyLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EnergyLog, error) {
	var models []*model.EnergyLog
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
