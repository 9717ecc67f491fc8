package services

import (
	"context"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/pricing"
	"moto-backoffice/internal/storage"
	"moto-backoffice/internal/transport/dto"
)

type partService struct {
	repo storage.PartRepository
}

// NewPartService creates a new instance of PartService.
func NewPartService(repo storage.PartRepository) PartService {
	return &partService{repo: repo}
}

func (s *partService) GetAll(ctx context.Context) ([]models.Part, error) {
	parts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing parts")
	}
	return parts, nil
}

func (s *partService) GetByID(ctx context.Context, id int64) (*models.Part, error) {
	part, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching part")
	}
	return part, nil
}

func (s *partService) GetByBarcode(ctx context.Context, barcode string) (*models.Part, error) {
	part, err := s.repo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, mapRepoError(err, "fetching part by barcode")
	}
	return part, nil
}

func (s *partService) Create(ctx context.Context, req *dto.CreatePartRequest) (*models.Part, error) {
	part := &models.Part{
		ItemNumber: req.ItemNumber, Description: req.Description,
		InStock: req.InStock, PriceIn: req.PriceIn, PriceOut: req.PriceOut,
		VAT: req.VAT, Barcode: req.Barcode,
	}
	if part.VAT == 0 {
		part.VAT = pricing.DefaultVATPercent
	}
	created, err := s.repo.Create(ctx, part)
	if err != nil {
		return nil, mapRepoError(err, "creating part")
	}
	return created, nil
}

func (s *partService) Update(ctx context.Context, req *dto.UpdatePartRequest) (*models.Part, error) {
	part := &models.Part{
		ID: req.ID, ItemNumber: req.ItemNumber, Description: req.Description,
		InStock: req.InStock, PriceIn: req.PriceIn, PriceOut: req.PriceOut,
		VAT: req.VAT, Barcode: req.Barcode,
	}
	updated, err := s.repo.Update(ctx, part)
	if err != nil {
		return nil, mapRepoError(err, "updating part")
	}
	return updated, nil
}

func (s *partService) AdjustStock(ctx context.Context, req *dto.AdjustStockRequest) (*models.Part, error) {
	part, err := s.repo.AdjustStock(ctx, req.ID, req.Delta)
	if err != nil {
		return nil, mapRepoError(err, "adjusting stock")
	}
	return part, nil
}

func (s *partService) Delete(ctx context.Context, id int64) error {
	return mapRepoError(s.repo.Delete(ctx, id), "deleting part")
}
