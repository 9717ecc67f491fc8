package services

import (
	"context"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/storage"
	"moto-backoffice/internal/transport/dto"
)

type bikeService struct {
	repo storage.BikeRepository
}

// NewBikeService creates a new instance of BikeService.
func NewBikeService(repo storage.BikeRepository) BikeService {
	return &bikeService{repo: repo}
}

func (s *bikeService) GetAll(ctx context.Context) ([]models.Bike, error) {
	bikes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing bikes")
	}
	return bikes, nil
}

func (s *bikeService) GetByID(ctx context.Context, id int64) (*models.Bike, error) {
	bike, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching bike")
	}
	return bike, nil
}

func (s *bikeService) GetByCustomer(ctx context.Context, customerID int64) ([]models.Bike, error) {
	bikes, err := s.repo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, mapRepoError(err, "listing bikes by customer")
	}
	return bikes, nil
}

func (s *bikeService) Search(ctx context.Context, term string) ([]models.Bike, error) {
	if term == "" {
		return s.GetAll(ctx)
	}
	bikes, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, mapRepoError(err, "searching bikes")
	}
	return bikes, nil
}

func (s *bikeService) Create(ctx context.Context, req *dto.CreateBikeRequest) (*models.Bike, error) {
	bike := &models.Bike{
		CustomerID: req.CustomerID, LicensePlate: req.LicensePlate, VIN: req.VIN,
		Make: req.Make, Model: req.Model, ModelYear: req.ModelYear,
	}
	created, err := s.repo.Create(ctx, bike)
	if err != nil {
		return nil, mapRepoError(err, "creating bike")
	}
	return created, nil
}

func (s *bikeService) Update(ctx context.Context, req *dto.UpdateBikeRequest) (*models.Bike, error) {
	bike := &models.Bike{
		ID: req.ID, CustomerID: req.CustomerID, LicensePlate: req.LicensePlate,
		VIN: req.VIN, Make: req.Make, Model: req.Model, ModelYear: req.ModelYear,
	}
	updated, err := s.repo.Update(ctx, bike)
	if err != nil {
		return nil, mapRepoError(err, "updating bike")
	}
	return updated, nil
}

func (s *bikeService) Delete(ctx context.Context, id int64) error {
	return mapRepoError(s.repo.Delete(ctx, id), "deleting bike")
}
