package services_test

import (
	"context"
	"testing"
	"time"

	mock_storage "moto-backoffice/internal/mocks"
	"moto-backoffice/internal/models"
	"moto-backoffice/internal/pricing"
	"moto-backoffice/internal/services"
	"moto-backoffice/internal/storage"
	"moto-backoffice/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWorkOrderServiceTest(t *testing.T) (context.Context, services.WorkOrderService, *mock_storage.MockWorkOrderRepository, *mock_storage.MockCustomerRepository, *mock_storage.MockBikeRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockOrderRepo := mock_storage.NewMockWorkOrderRepository(ctrl)
	mockCustomerRepo := mock_storage.NewMockCustomerRepository(ctrl)
	mockBikeRepo := mock_storage.NewMockBikeRepository(ctrl)
	orderService := services.NewWorkOrderService(mockOrderRepo, mockCustomerRepo, mockBikeRepo)
	ctx := context.Background()
	return ctx, orderService, mockOrderRepo, mockCustomerRepo, mockBikeRepo, ctrl
}

func ptrInt64(v int64) *int64       { return &v }
func ptrFloat64(v float64) *float64 { return &v }

func TestWorkOrderService_Save(t *testing.T) {
	tests := []struct {
		name            string
		req             *dto.SaveWorkOrderRequest
		customerRepoErr error
		bikeRepoErr     error
		repoErr         error
		expectSave      bool
		expectedErr     error
		assertOrder     func(*testing.T, *models.WorkOrder, []models.StoredWorkOrderLine)
	}{
		{
			name: "Success_DefaultsAndTotals",
			req: &dto.SaveWorkOrderRequest{
				CustomerID: ptrInt64(3),
				Notes:      "winter service",
				Odometer:   48210,
				Items: []dto.WorkOrderLineInput{
					{Description: "Oil change", PriceExVAT: 495},
					{Description: "Chain kit", Quantity: 2, PriceExVAT: 1200, VATPercent: ptrFloat64(25), DiscountPercent: 10},
				},
			},
			expectSave: true,
			assertOrder: func(t *testing.T, saved *models.WorkOrder, stored []models.StoredWorkOrderLine) {
				assert.Equal(t, models.WorkOrderStatusOpen, saved.Status)
				require.Len(t, saved.Items, 2)

				// Omitted quantity and VAT percent fall back to 1 and 25.
				first := saved.Items[0]
				assert.Equal(t, float64(1), first.Quantity)
				assert.Equal(t, float64(25), first.VATPercent)
				assert.Equal(t, 618.75, first.PriceIncVAT)
				assert.Equal(t, 495.0, first.LineTotalExVAT)
				assert.Equal(t, 618.75, first.LineTotalIncVAT)

				// Discount applies to the unrounded base totals.
				second := saved.Items[1]
				assert.Equal(t, 1500.0, second.PriceIncVAT)
				assert.Equal(t, 2160.0, second.LineTotalExVAT)
				assert.Equal(t, 2700.0, second.LineTotalIncVAT)
				assert.Equal(t, 540.0, second.VATAmount)
				assert.Equal(t, 240.0, second.DiscountAmount)

				assert.Equal(t, 2655.0, saved.TotalExVAT)
				assert.Equal(t, 3318.75, saved.TotalIncVAT)
				assert.Equal(t, 663.75, saved.TotalVAT)

				require.Len(t, stored, 2)
				assert.Equal(t, 1.25, stored[0].VATRate)
				assert.Equal(t, 618.75, stored[0].LineTotalIncVAT)
				assert.Equal(t, 1.25, stored[1].VATRate)
				assert.Equal(t, 10.0, stored[1].DiscountPercent)
			},
		},
		{
			name: "Success_ZeroVATLineStaysExempt",
			req: &dto.SaveWorkOrderRequest{
				Items: []dto.WorkOrderLineInput{
					{Description: "Registration fee", PriceExVAT: 100, VATPercent: ptrFloat64(0)},
				},
			},
			expectSave: true,
			assertOrder: func(t *testing.T, saved *models.WorkOrder, stored []models.StoredWorkOrderLine) {
				require.Len(t, saved.Items, 1)
				line := saved.Items[0]
				assert.Equal(t, float64(0), line.VATPercent)
				assert.Equal(t, 100.0, line.PriceIncVAT)
				assert.Equal(t, 100.0, line.LineTotalIncVAT)
				assert.Equal(t, 0.0, line.VATAmount)

				require.Len(t, stored, 1)
				assert.Equal(t, 1.0, stored[0].VATRate)
				assert.Equal(t, 0.0, saved.TotalVAT)
				assert.Equal(t, 100.0, saved.TotalIncVAT)
			},
		},
		{
			name:        "Failure_NoItems",
			req:         &dto.SaveWorkOrderRequest{},
			expectedErr: services.ErrValidation,
		},
		{
			name: "Failure_BlankDescription",
			req: &dto.SaveWorkOrderRequest{
				Items: []dto.WorkOrderLineInput{{Description: "   ", PriceExVAT: 100}},
			},
			expectedErr: services.ErrValidation,
		},
		{
			name: "Failure_UnknownStatus",
			req: &dto.SaveWorkOrderRequest{
				Status: "archived",
				Items:  []dto.WorkOrderLineInput{{Description: "Oil change", PriceExVAT: 495}},
			},
			expectedErr: services.ErrValidation,
		},
		{
			name: "Failure_UnknownCustomer",
			req: &dto.SaveWorkOrderRequest{
				CustomerID: ptrInt64(404),
				Items:      []dto.WorkOrderLineInput{{Description: "Oil change", PriceExVAT: 495}},
			},
			customerRepoErr: storage.ErrNotFound,
			expectedErr:     services.ErrValidation,
		},
		{
			name: "Failure_UnknownBike",
			req: &dto.SaveWorkOrderRequest{
				BikeID: ptrInt64(404),
				Items:  []dto.WorkOrderLineInput{{Description: "Oil change", PriceExVAT: 495}},
			},
			bikeRepoErr: storage.ErrNotFound,
			expectedErr: services.ErrValidation,
		},
		{
			name: "Failure_RepoConflict",
			req: &dto.SaveWorkOrderRequest{
				CustomerID: ptrInt64(99),
				Items:      []dto.WorkOrderLineInput{{Description: "Oil change", PriceExVAT: 495}},
			},
			repoErr:     storage.ErrConflict,
			expectSave:  true,
			expectedErr: services.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, orderService, mockOrderRepo, mockCustomerRepo, mockBikeRepo, ctrl := setupWorkOrderServiceTest(t)
			defer ctrl.Finish()

			if tt.req.CustomerID != nil {
				mockCustomerRepo.EXPECT().
					GetByID(gomock.Any(), *tt.req.CustomerID).
					DoAndReturn(func(_ context.Context, id int64) (*models.Customer, error) {
						if tt.customerRepoErr != nil {
							return nil, tt.customerRepoErr
						}
						return &models.Customer{ID: id, Name: "Kari Nordmann"}, nil
					})
			}
			if tt.req.BikeID != nil {
				mockBikeRepo.EXPECT().
					GetByID(gomock.Any(), *tt.req.BikeID).
					DoAndReturn(func(_ context.Context, id int64) (*models.Bike, error) {
						if tt.bikeRepoErr != nil {
							return nil, tt.bikeRepoErr
						}
						return &models.Bike{ID: id}, nil
					})
			}

			var capturedStored []models.StoredWorkOrderLine
			if tt.expectSave {
				mockOrderRepo.EXPECT().
					SaveWithLines(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *models.WorkOrder, stored []models.StoredWorkOrderLine) (*models.WorkOrder, error) {
						if tt.repoErr != nil {
							return nil, tt.repoErr
						}
						capturedStored = stored
						saved := *order
						saved.ID = 7
						saved.CreatedAt = time.Now()
						saved.Items = nil
						return &saved, nil
					})
			}

			saved, err := orderService.Save(ctx, tt.req)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, saved)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.Equal(t, int64(7), saved.ID)
			tt.assertOrder(t, saved, capturedStored)
		})
	}
}

func TestWorkOrderService_GetByID(t *testing.T) {
	type mockGetByID struct {
		res *models.WorkOrder
		err error
	}
	type mockGetLines struct {
		res []models.StoredWorkOrderLine
		err error
	}

	tests := []struct {
		name         string
		id           int64
		mockGetByID  mockGetByID
		mockGetLines *mockGetLines
		expectedErr  error
		assertOrder  func(*testing.T, *models.WorkOrder)
	}{
		{
			name: "Success_RehydratesLines",
			id:   42,
			mockGetByID: mockGetByID{
				res: &models.WorkOrder{ID: 42, Status: models.WorkOrderStatusOpen, CreatedAt: time.Now()},
			},
			mockGetLines: &mockGetLines{
				res: []models.StoredWorkOrderLine{
					{ID: 1, WorkOrderID: 42, Description: "Brake pads", Quantity: 2, PriceExVAT: 350, VATRate: 1.25},
					// Legacy row without quantity or VAT rate.
					{ID: 2, WorkOrderID: 42, Description: "Labor", PriceExVAT: 900},
				},
			},
			assertOrder: func(t *testing.T, order *models.WorkOrder) {
				require.Len(t, order.Items, 2)

				first := order.Items[0]
				assert.Equal(t, int64(1), first.ID)
				assert.Equal(t, float64(25), first.VATPercent)
				assert.Equal(t, 437.5, first.PriceIncVAT)
				assert.Equal(t, 700.0, first.LineTotalExVAT)
				assert.Equal(t, 875.0, first.LineTotalIncVAT)

				second := order.Items[1]
				assert.Equal(t, float64(1), second.Quantity)
				assert.Equal(t, float64(pricing.DefaultVATPercent), second.VATPercent)
				assert.Equal(t, 1125.0, second.LineTotalIncVAT)

				assert.Equal(t, 1600.0, order.TotalExVAT)
				assert.Equal(t, 2000.0, order.TotalIncVAT)
				assert.Equal(t, 400.0, order.TotalVAT)
			},
		},
		{
			name: "Success_ZeroVATRateStaysExempt",
			id:   43,
			mockGetByID: mockGetByID{
				res: &models.WorkOrder{ID: 43, Status: models.WorkOrderStatusOpen, CreatedAt: time.Now()},
			},
			mockGetLines: &mockGetLines{
				res: []models.StoredWorkOrderLine{
					{ID: 1, WorkOrderID: 43, Description: "Registration fee", Quantity: 1, PriceExVAT: 100, VATRate: 1.0},
				},
			},
			assertOrder: func(t *testing.T, order *models.WorkOrder) {
				require.Len(t, order.Items, 1)
				assert.Equal(t, float64(0), order.Items[0].VATPercent)
				assert.Equal(t, 100.0, order.Items[0].PriceIncVAT)
				assert.Equal(t, 0.0, order.TotalVAT)
			},
		},
		{
			name:        "Failure_NotFound",
			id:          999,
			mockGetByID: mockGetByID{err: storage.ErrNotFound},
			expectedErr: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, orderService, mockOrderRepo, _, _, ctrl := setupWorkOrderServiceTest(t)
			defer ctrl.Finish()

			mockOrderRepo.EXPECT().GetByID(gomock.Any(), tt.id).Return(tt.mockGetByID.res, tt.mockGetByID.err)
			if tt.mockGetLines != nil {
				mockOrderRepo.EXPECT().GetLines(gomock.Any(), tt.id).Return(tt.mockGetLines.res, tt.mockGetLines.err)
			}

			order, err := orderService.GetByID(ctx, tt.id)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, order)
			tt.assertOrder(t, order)
		})
	}
}

func TestWorkOrderService_RecalculateLine(t *testing.T) {
	ctx, orderService, _, _, _, ctrl := setupWorkOrderServiceTest(t)
	defer ctrl.Finish()

	line, err := orderService.RecalculateLine(ctx, &dto.RecalculateLineRequest{
		Line: models.WorkOrderLine{
			Description: "Tire",
			Quantity:    1,
			PriceIncVAT: 1000,
			VATPercent:  25,
		},
		Edited: pricing.FieldPriceIncVAT,
	})

	require.NoError(t, err)
	assert.Equal(t, 800.0, line.PriceExVAT)
	assert.Equal(t, 1000.0, line.LineTotalIncVAT)
	assert.Equal(t, 200.0, line.VATAmount)
}

func TestWorkOrderService_SetStatus(t *testing.T) {
	tests := []struct {
		name        string
		req         *dto.UpdateWorkOrderStatusRequest
		expectRepo  bool
		repoErr     error
		expectedErr error
	}{
		{
			name:       "Success",
			req:        &dto.UpdateWorkOrderStatusRequest{ID: 5, Status: "paid"},
			expectRepo: true,
		},
		{
			name:        "Failure_UnknownStatus",
			req:         &dto.UpdateWorkOrderStatusRequest{ID: 5, Status: "done"},
			expectedErr: services.ErrValidation,
		},
		{
			name:        "Failure_NotFound",
			req:         &dto.UpdateWorkOrderStatusRequest{ID: 404, Status: "finished"},
			expectRepo:  true,
			repoErr:     storage.ErrNotFound,
			expectedErr: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, orderService, mockOrderRepo, _, _, ctrl := setupWorkOrderServiceTest(t)
			defer ctrl.Finish()

			if tt.expectRepo {
				mockOrderRepo.EXPECT().
					SetStatus(gomock.Any(), tt.req.ID, models.WorkOrderStatus(tt.req.Status)).
					Return(tt.repoErr)
			}

			err := orderService.SetStatus(ctx, tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWorkOrderService_Delete(t *testing.T) {
	ctx, orderService, mockOrderRepo, _, _, ctrl := setupWorkOrderServiceTest(t)
	defer ctrl.Finish()

	mockOrderRepo.EXPECT().
		SetStatus(gomock.Any(), int64(12), models.WorkOrderStatusDeleted).
		Return(nil)

	err := orderService.Delete(ctx, 12)
	assert.NoError(t, err)
}

func TestWorkOrderService_PrintView(t *testing.T) {
	ctx, orderService, mockOrderRepo, _, _, ctrl := setupWorkOrderServiceTest(t)
	defer ctrl.Finish()

	created := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	customerID := int64(3)
	mockOrderRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&models.WorkOrder{
		ID:         42,
		CreatedAt:  created,
		Status:     models.WorkOrderStatusFinished,
		CustomerID: &customerID,
		Customer:   &models.Customer{ID: 3, Name: "Kari Nordmann", City: "Bergen"},
		Bike:       &models.Bike{LicensePlate: "AB12345", Make: "Honda", Model: "CB500F"},
	}, nil)
	mockOrderRepo.EXPECT().GetLines(gomock.Any(), int64(42)).Return([]models.StoredWorkOrderLine{
		{ID: 1, WorkOrderID: 42, Description: "Valve check", Quantity: 1, PriceExVAT: 1500, VATRate: 1.25},
		{ID: 2, WorkOrderID: 42, Description: "Spark plugs", Quantity: 4, PriceExVAT: 89.5, VATRate: 1.25, DiscountPercent: 10},
	}, nil)

	view, err := orderService.PrintView(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), view.OrderID)
	assert.Equal(t, "14.03.2026", view.Date)
	assert.Equal(t, "finished", view.Status)
	require.NotNil(t, view.Customer)
	assert.Equal(t, "Kari Nordmann", view.Customer.Name)
	require.NotNil(t, view.Bike)
	assert.Equal(t, "AB12345", view.Bike.LicensePlate)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, "1500.00", view.Lines[0].PriceExVAT)
	assert.Equal(t, "25%", view.Lines[0].VATPercent)
	assert.Empty(t, view.Lines[0].DiscountPercent)
	assert.Equal(t, "4", view.Lines[1].Quantity)
	assert.Equal(t, "10%", view.Lines[1].DiscountPercent)
	assert.Equal(t, "402.77", view.Lines[1].LineTotalIncVAT)

	assert.Equal(t, "1822.20", view.TotalExVAT)
	assert.Equal(t, "455.57", view.TotalVAT)
	assert.Equal(t, "2277.77", view.TotalIncVAT)
}
