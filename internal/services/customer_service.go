package services

import (
	"context"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/storage"
	"moto-backoffice/internal/transport/dto"
)

type customerService struct {
	repo storage.CustomerRepository
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(repo storage.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing customers")
	}
	return customers, nil
}

func (s *customerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching customer")
	}
	return customer, nil
}

func (s *customerService) Search(ctx context.Context, term string) ([]models.Customer, error) {
	if term == "" {
		return s.GetAll(ctx)
	}
	customers, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, mapRepoError(err, "searching customers")
	}
	return customers, nil
}

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		Name: req.Name, Street: req.Street, Zip: req.Zip, City: req.City,
		Country: req.Country, Phone: req.Phone, Email: req.Email,
	}
	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, mapRepoError(err, "creating customer")
	}
	return created, nil
}

func (s *customerService) Update(ctx context.Context, req *dto.UpdateCustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		ID: req.ID, Name: req.Name, Street: req.Street, Zip: req.Zip,
		City: req.City, Country: req.Country, Phone: req.Phone, Email: req.Email,
	}
	updated, err := s.repo.Update(ctx, customer)
	if err != nil {
		return nil, mapRepoError(err, "updating customer")
	}
	return updated, nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	return mapRepoError(s.repo.Delete(ctx, id), "deleting customer")
}
