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

type UserProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserProgressMapper
}

func NewUserProgressRepository(db *gorm.DB) contract.UserProgressRepository {
	return &UserProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserProgressMapper(),
	}
}

func (r *UserProgressRepositoryImpl) Create(ctx context.Context, progress *entity.UserProgress) error {
	m := r.mapper.ToModel(progress)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*progress = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserProgressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProgress, error) {
	var models []*model.UserProgress
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
