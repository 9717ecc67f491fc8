package services

import (
	"context"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/storage"
	"moto-backoffice/internal/transport/dto"
)

type todoService struct {
	repo storage.TodoRepository
}

// NewTodoService creates a new instance of TodoService.
func NewTodoService(repo storage.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) GetAll(ctx context.Context) ([]models.TodoEntry, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing todo entries")
	}
	return entries, nil
}

func (s *todoService) GetByID(ctx context.Context, id int64) (*models.TodoEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching todo entry")
	}
	return entry, nil
}

func (s *todoService) Create(ctx context.Context, req *dto.CreateTodoRequest) (*models.TodoEntry, error) {
	status := models.TodoStatus(req.Status)
	if req.Status == "" {
		status = models.TodoStatusTodo
	}
	entry := &models.TodoEntry{
		What: req.What, Status: status,
		CustomerID: req.CustomerID, BikeID: req.BikeID,
	}
	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, mapRepoError(err, "creating todo entry")
	}
	return created, nil
}

func (s *todoService) Update(ctx context.Context, req *dto.UpdateTodoRequest) (*models.TodoEntry, error) {
	entry := &models.TodoEntry{
		ID: req.ID, What: req.What, Status: models.TodoStatus(req.Status),
		CustomerID: req.CustomerID, BikeID: req.BikeID,
	}
	updated, err := s.repo.Update(ctx, entry)
	if err != nil {
		return nil, mapRepoError(err, "updating todo entry")
	}
	return updated, nil
}

func (s *todoService) Delete(ctx context.Context, id int64) error {
	return mapRepoError(s.repo.Delete(ctx, id), "deleting todo entry")
}
