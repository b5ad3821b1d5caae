package service

import (
	"context"
	"strings"
	"time"

	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/repository/specification"
	"neurolearn-be/internal/repository/unitofwork"
	"neurolearn-be/pkg/executive"

	"github.com/google/uuid"
)

type ITaskService interface {
	Create(ctx context.Context, userId string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	List(ctx context.Context, userId string) ([]*dto.TaskResponse, error)
	Toggle(ctx context.Context, userId string, id uuid.UUID) (*dto.TaskResponse, error)
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory) ITaskService {
	return &taskService{uowFactory: uowFactory}
}

func (s *taskService) Create(ctx context.Context, userId string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	task := entity.Task{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		Steps:     executive.BuildMicroSteps(title),
		Status:    string(executive.TaskNotStarted),
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TaskRepository().Create(ctx, &task); err != nil {
		return nil, classifyPersistenceError("create task", err)
	}
	return toTaskResponse(&task), nil
}

func (s *taskService) List(ctx context.Context, userId string) ([]*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tasks, err := uow.TaskRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, classifyPersistenceError("list tasks", err)
	}

	result := make([]*dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, toTaskResponse(task))
	}
	return result, nil
}

func (s *taskService) Toggle(ctx context.Context, userId string, id uuid.UUID) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, classifyPersistenceError("toggle task", err)
	}
	defer uow.Rollback()

	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, classifyPersistenceError("toggle task", err)
	}
	if task == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	task.Status = string(executive.NextStatus(executive.TaskStatus(task.Status)))
	task.UpdatedAt = &now

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, classifyPersistenceError("toggle task", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, classifyPersistenceError("toggle task", err)
	}
	return toTaskResponse(task), nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:        t.Id,
		Title:     t.Title,
		Steps:     t.Steps,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
