package mapper

import (
	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/model"
)

type EnergyLogMapper struct{}

func NewEnergyLogMapper() *EnergyLogMapper {
	return &EnergyLogMapper{}
}

func (m *EnergyLogMapper) ToEntity(e *model.EnergyLog) *entity.EnergyLog {
	if e == nil {
		return nil
	}
	return &entity.EnergyLog{
		Id:          e.Id,
		UserId:      e.UserId,
		EnergyLevel: e.EnergyLevel,
		Feeling:     e.Feeling,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *EnergyLogMapper) ToModel(e *entity.EnergyLog) *model.EnergyLog {
	if e == nil {
		return nil
	}
	return &model.EnergyLog{
		Id:          e.Id,
		UserId:      e.UserId,
		EnergyLevel: e.EnergyLevel,
		Feeling:     e.Feeling,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *EnergyLogMapper) ToEntities(logs []*model.EnergyLog) []*entity.EnergyLog {
	entities := make([]*entity.EnergyLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
