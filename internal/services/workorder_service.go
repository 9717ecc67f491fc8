package services

import (
	"context"
	"errors"
	"fmt"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/pricing"
	"moto-backoffice/internal/storage"
	"moto-backoffice/internal/transport/dto"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type workOrderService struct {
	orders    storage.WorkOrderRepository
	customers storage.CustomerRepository
	bikes     storage.BikeRepository
}

// NewWorkOrderService creates a new instance of WorkOrderService.
func NewWorkOrderService(orders storage.WorkOrderRepository, customers storage.CustomerRepository, bikes storage.BikeRepository) WorkOrderService {
	return &workOrderService{orders: orders, customers: customers, bikes: bikes}
}

func (s *workOrderService) GetAll(ctx context.Context) ([]models.WorkOrder, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing work orders")
	}
	return orders, nil
}

// GetByID loads the header and rehydrates every line from its stored shape,
// so the returned order always carries fully derived amounts.
func (s *workOrderService) GetByID(ctx context.Context, id int64) (*models.WorkOrder, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching work order")
	}
	stored, err := s.orders.GetLines(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching work order lines")
	}
	order.Items = make([]models.WorkOrderLine, 0, len(stored))
	for _, l := range stored {
		line := pricing.NormalizeStoredLine(l)
		line.ID = l.ID
		order.Items = append(order.Items, line)
	}
	recalced := pricing.RecalculateOrderTotals(*order)
	return &recalced, nil
}

// Save validates the order, recomputes every derived amount from the line
// anchors, and persists header plus full replacement line set atomically.
func (s *workOrderService) Save(ctx context.Context, req *dto.SaveWorkOrderRequest) (*models.WorkOrder, error) {
	status := models.WorkOrderStatus(req.Status)
	if req.Status == "" {
		status = models.WorkOrderStatusOpen
	}
	if !status.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"status": "unknown status"}}
	}

	order := models.WorkOrder{
		ID:         req.ID,
		Status:     status,
		CustomerID: req.CustomerID,
		BikeID:     req.BikeID,
		Notes:      req.Notes,
		Odometer:   req.Odometer,
		Items:      make([]models.WorkOrderLine, 0, len(req.Items)),
	}
	for _, in := range req.Items {
		line := models.WorkOrderLine{
			Description:     in.Description,
			Quantity:        in.Quantity,
			PriceExVAT:      in.PriceExVAT,
			VATPercent:      pricing.DefaultVATPercent,
			DiscountPercent: in.DiscountPercent,
		}
		if in.VATPercent != nil {
			// Explicit 0 is a VAT-exempt line, not an omitted value.
			line.VATPercent = *in.VATPercent
		}
		if line.Quantity == 0 {
			line.Quantity = 1
		}
		order.Items = append(order.Items, pricing.RecalculateLine(line, pricing.FieldPriceExVAT))
	}

	if fieldErrs := pricing.ValidateOrder(order); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}
	if err := s.checkReferences(ctx, req.CustomerID, req.BikeID); err != nil {
		return nil, err
	}
	order = pricing.RecalculateOrderTotals(order)

	stored := make([]models.StoredWorkOrderLine, 0, len(order.Items))
	for _, l := range order.Items {
		stored = append(stored, pricing.ToStoredLine(l, order.ID))
	}

	saved, err := s.orders.SaveWithLines(ctx, &order, stored)
	if err != nil {
		log.Error().Err(err).Int64("id", order.ID).Msg("failed to save work order")
		return nil, mapRepoError(err, "saving work order")
	}
	saved.Items = order.Items
	return saved, nil
}

// checkReferences verifies that a referenced customer or bike exists. Both
// stay optional; only non-nil ids are checked.
func (s *workOrderService) checkReferences(ctx context.Context, customerID, bikeID *int64) error {
	if customerID != nil {
		if _, err := s.customers.GetByID(ctx, *customerID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return &ValidationError{Fields: map[string]string{"customer_id": "unknown customer"}}
			}
			return mapRepoError(err, "checking work order customer")
		}
	}
	if bikeID != nil {
		if _, err := s.bikes.GetByID(ctx, *bikeID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return &ValidationError{Fields: map[string]string{"bike_id": "unknown bike"}}
			}
			return mapRepoError(err, "checking work order bike")
		}
	}
	return nil
}

// RecalculateLine recomputes one line after a single field edit, mirroring
// what the edit form shows before anything is saved.
func (s *workOrderService) RecalculateLine(_ context.Context, req *dto.RecalculateLineRequest) (models.WorkOrderLine, error) {
	return pricing.RecalculateLine(req.Line, req.Edited), nil
}

func (s *workOrderService) SetStatus(ctx context.Context, req *dto.UpdateWorkOrderStatusRequest) error {
	status := models.WorkOrderStatus(req.Status)
	if !status.Valid() {
		return &ValidationError{Fields: map[string]string{"status": "unknown status"}}
	}
	if err := s.orders.SetStatus(ctx, req.ID, status); err != nil {
		return mapRepoError(err, "updating work order status")
	}
	return nil
}

// Delete is a soft delete: the order is marked deleted but keeps its header
// and lines. Listings still include it; the category filter can select or
// skip it by status.
func (s *workOrderService) Delete(ctx context.Context, id int64) error {
	if err := s.orders.SetStatus(ctx, id, models.WorkOrderStatusDeleted); err != nil {
		return mapRepoError(err, "deleting work order")
	}
	return nil
}

// PrintView renders the invoice-style view of an order with all amounts
// formatted as fixed two-decimal strings.
func (s *workOrderService) PrintView(ctx context.Context, id int64) (*dto.WorkOrderPrintView, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &dto.WorkOrderPrintView{
		OrderID:     order.ID,
		Date:        order.CreatedAt.Format("02.01.2006"),
		Status:      string(order.Status),
		Notes:       order.Notes,
		Odometer:    order.Odometer,
		Lines:       make([]dto.PrintLine, 0, len(order.Items)),
		TotalExVAT:  fixed2(order.TotalExVAT),
		TotalVAT:    fixed2(order.TotalVAT),
		TotalIncVAT: fixed2(order.TotalIncVAT),
	}

	if order.Customer != nil {
		view.Customer = &dto.PrintParty{
			Name: order.Customer.Name, Street: order.Customer.Street,
			Zip: order.Customer.Zip, City: order.Customer.City,
			Country: order.Customer.Country, Phone: order.Customer.Phone,
			Email: order.Customer.Email,
		}
	}
	if order.Bike != nil {
		view.Bike = &dto.PrintBike{
			LicensePlate: order.Bike.LicensePlate, VIN: order.Bike.VIN,
			Make: order.Bike.Make, Model: order.Bike.Model, ModelYear: order.Bike.ModelYear,
		}
	}

	for _, l := range order.Items {
		line := dto.PrintLine{
			Description:     l.Description,
			Quantity:        decimal.NewFromFloat(l.Quantity).String(),
			PriceExVAT:      fixed2(l.PriceExVAT),
			VATPercent:      fmt.Sprintf("%g%%", l.VATPercent),
			LineTotalIncVAT: fixed2(l.LineTotalIncVAT),
		}
		if l.DiscountPercent != 0 {
			line.DiscountPercent = fmt.Sprintf("%g%%", l.DiscountPercent)
		}
		view.Lines = append(view.Lines, line)
	}
	return view, nil
}

func fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
