package usecase

import (
	"context"
	"fmt"

	"padel-booking/internal/data/entity"
	"padel-booking/internal/data/repository"
	"padel-booking/internal/dto/request"
	"padel-booking/internal/dto/response"
	"padel-booking/pkg/metrics"
	"padel-booking/pkg/utils"

	"go.uber.org/zap"
)

type SaleService interface {
	RecordSales(ctx context.Context, req *request.CreateSalesRequest) ([]response.SaleResponse, error)
	GetSalesReport(ctx context.Context, req *request.DateRangeRequest) ([]response.SaleResponse, error)
}

type saleService struct {
	repo repository.SaleRepository
	log  *zap.Logger
}

func NewSaleService(repo repository.SaleRepository, log *zap.Logger) SaleService {
	return &saleService{
		repo: repo,
		log:  log.With(zap.String("service", "sale")),
	}
}

// validateDateRange checks both bounds and their order.
func validateDateRange(req *request.DateRangeRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.StartDate > req.EndDate {
		return fmt.Errorf("invalid date range: startDate %s is after endDate %s", req.StartDate, req.EndDate)
	}
	return nil
}

// RecordSales stores point-of-sale lines in order. A zero total_amount is
// filled in as quantity × price_per_item.
func (s *saleService) RecordSales(ctx context.Context, req *request.CreateSalesRequest) ([]response.SaleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record sales validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := utils.NowMillis()
	sales := make([]*entity.Sale, len(req.Items))
	for i, item := range req.Items {
		total := item.TotalAmount
		if total == 0 {
			total = float64(item.Quantity) * item.PricePerItem
		}

		sales[i] = &entity.Sale{
			ID:              utils.GenerateSaleID(),
			ItemID:          item.ItemID,
			ItemName:        item.ItemName,
			ItemType:        entity.ItemType(item.ItemType),
			Quantity:        item.Quantity,
			PricePerItem:    item.PricePerItem,
			TotalAmount:     total,
			CustomerName:    item.CustomerName,
			CustomerContact: item.CustomerContact,
			BookingID:       item.BookingID,
			SaleDate:        item.SaleDate,
			CreatedAt:       now,
		}
	}

	recorded, err := s.repo.CreateBatch(ctx, sales)
	for _, sale := range sales[:recorded] {
		metrics.RecordSaleRecorded(string(sale.ItemType))
	}
	if err != nil {
		return nil, fmt.Errorf("record sales, %d of %d stored: %w", recorded, len(sales), err)
	}

	s.log.Info("Sales recorded", zap.Int("count", recorded))

	return response.SalesToResponse(sales), nil
}

func (s *saleService) GetSalesReport(ctx context.Context, req *request.DateRangeRequest) ([]response.SaleResponse, error) {
	if err := validateDateRange(req); err != nil {
		return nil, err
	}

	sales, err := s.repo.FindByDateRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("get sales report: %w", err)
	}
	return response.SalesToResponse(sales), nil
}
