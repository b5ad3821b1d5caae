package mapper

import (
	"encoding/json"
	"time"

	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/model"

	"gorm.io/datatypes"
)

type TaskMapper struct{}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

func (m *TaskMapper) ToEntity(t *model.Task) *entity.Task {
	if t == nil {
		return nil
	}

	steps := []string{}
	if len(t.Steps) > 0 {
		// malformed legacy rows degrade to no steps
		_ = json.Unmarshal(t.Steps, &steps)
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.Task{
		Id:        t.Id,
		UserId:    t.UserId,
		Title:     t.Title,
		Steps:     steps,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *TaskMapper) ToModel(t *entity.Task) *model.Task {
	if t == nil {
		return nil
	}

	steps := t.Steps
	if steps == nil {
		steps = []string{}
	}
	raw, _ := json.Marshal(steps)

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Task{
		Id:        t.Id,
		UserId:    t.UserId,
		Title:     t.Title,
		Steps:     datatypes.JSON(raw),
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *TaskMapper) ToEntities(tasks []*model.Task) []*entity.Task {
	entities := make([]*entity.Task, len(tasks))
	for i, t := range tasks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
