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

type PomodoroSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PomodoroSessionMapper
}

func NewPomodoroSessionRepository(db *gorm.DB) contract.PomodoroSessionRepository {
	return &PomodoroSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewPomodoroSessionMapper(),
	}
}

func (r *PomodoroSessionRepositoryImpl) Create(ctx context.Context, session *entity.PomodoroSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *PomodoroSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PomodoroSession, error) {
	var models []*model.PomodoroSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PomodoroSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.PomodoroSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
