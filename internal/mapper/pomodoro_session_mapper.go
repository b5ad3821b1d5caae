package mapper

import (
	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/model"
)

type PomodoroSessionMapper struct{}

func NewPomodoroSessionMapper() *PomodoroSessionMapper {
	return &PomodoroSessionMapper{}
}

func (m *PomodoroSessionMapper) ToEntity(s *model.PomodoroSession) *entity.PomodoroSession {
	if s == nil {
		return nil
	}
	return &entity.PomodoroSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Duration:  s.Duration,
		Mode:      s.Mode,
		Completed: s.Completed,
		CreatedAt: s.CreatedAt,
	}
}

func (m *PomodoroSessionMapper) ToModel(s *entity.PomodoroSession) *model.PomodoroSession {
	if s == nil {
		return nil
	}
	return &model.PomodoroSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Duration:  s.Duration,
		Mode:      s.Mode,
		Completed: s.Completed,
		CreatedAt: s.CreatedAt,
	}
}

func (m *PomodoroSessionMapper) ToEntities(sessions []*model.PomodoroSession) []*entity.PomodoroSession {
	entities := make([]*entity.PomodoroSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
