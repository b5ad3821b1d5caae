package mapper

import (
	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/model"
)

type UserProgressMapper struct{}

func NewUserProgressMapper() *UserProgressMapper {
	return &UserProgressMapper{}
}

func (m *UserProgressMapper) ToEntity(p *model.UserProgress) *entity.UserProgress {
	if p == nil {
		return nil
	}
	return &entity.UserProgress{
		Id:         p.Id,
		UserId:     p.UserId,
		ContentId:  p.ContentId,
		FormatUsed: p.FormatUsed,
		TimeSpent:  p.TimeSpent,
		Completed:  p.Completed,
		CreatedAt:  p.CreatedAt,
	}
}

func (m *UserProgressMapper) ToModel(p *entity.UserProgress) *model.UserProgress {
	if p == nil {
		return nil
	}
	return &model.UserProgress{
		Id:         p.Id,
		UserId:     p.UserId,
		ContentId:  p.ContentId,
		FormatUsed: p.FormatUsed,
		TimeSpent:  p.TimeSpent,
		Completed:  p.Completed,
		CreatedAt:  p.CreatedAt,
	}
}

func (m *UserProgressMapper) ToEntities(rows []*model.UserProgress) []*entity.UserProgress {
	entities := make([]*entity.UserProgress, len(rows))
	for i, r := range rows {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
