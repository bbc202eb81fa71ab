package usecase

import (
	"context"
	"fmt"
	"time"

	"padel-booking/internal/data/repository"
	"padel-booking/internal/dto/request"
	"padel-booking/internal/dto/response"
	"padel-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportService interface {
	Revenue(ctx context.Context, req *request.DateRangeRequest) (*response.RevenueReportResponse, error)
	DayEnd(ctx context.Context, date string) (*response.DayEndResponse, error)
	MonthToDate(ctx context.Context) (*response.RevenueReportResponse, error)
	FutureBookings(ctx context.Context) ([]response.BookingResponse, error)
}

type reportService struct {
	repo *repository.Repository
	loc  *time.Location
	now  func() time.Time
	log  *zap.Logger
}

// NewReportService resolves "today" through now in loc.
func NewReportService(repo *repository.Repository, loc *time.Location, now func() time.Time, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		loc:  loc,
		now:  now,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) today() string {
	return utils.Today(s.now(), s.loc)
}

func (s *reportService) Revenue(ctx context.Context, req *request.DateRangeRequest) (*response.RevenueReportResponse, error) {
	if err := validateDateRange(req); err != nil {
		s.log.Warn("Revenue report rejected", zap.Error(err))
		return nil, err
	}

	summary, err := s.summarize(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	resp := summaryToResponse(summary)
	return &resp, nil
}

// DayEnd reports one date, today when date is empty, with the raw rows behind the sums.
func (s *reportService) DayEnd(ctx context.Context, date string) (*response.DayEndResponse, error) {
	if date == "" {
		date = s.today()
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("get day-end bookings: %w", err)
	}
	sales, err := s.repo.Sale.FindByDateRange(ctx, date, date)
	if err != nil {
		return nil, fmt.Errorf("get day-end sales: %w", err)
	}

	return &response.DayEndResponse{
		Date:     date,
		Summary:  summaryToResponse(Aggregate(bookings, sales, date, date)),
		Bookings: response.BookingsToResponse(bookings),
		Sales:    response.SalesToResponse(sales),
	}, nil
}

func (s *reportService) MonthToDate(ctx context.Context) (*response.RevenueReportResponse, error) {
	now := s.now()
	summary, err := s.summarize(ctx, utils.FirstOfMonth(now, s.loc), utils.Today(now, s.loc))
	if err != nil {
		return nil, err
	}

	resp := summaryToResponse(summary)
	return &resp, nil
}

func (s *reportService) FutureBookings(ctx context.Context) ([]response.BookingResponse, error) {
	today := s.today()

	bookings, err := s.repo.Booking.FindAfterDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("get future bookings: %w", err)
	}

	return response.BookingsToResponse(FutureBookings(bookings, today)), nil
}

func (s *reportService) summarize(ctx context.Context, startDate, endDate string) (RevenueSummary, error) {
	bookings, err := s.repo.Booking.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		return RevenueSummary{}, fmt.Errorf("get report bookings: %w", err)
	}
	sales, err := s.repo.Sale.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		return RevenueSummary{}, fmt.Errorf("get report sales: %w", err)
	}

	summary := Aggregate(bookings, sales, startDate, endDate)
	s.log.Debug("Revenue summarized",
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
		zap.Float64("grand_total", summary.GrandTotal),
	)
	return summary, nil
}

func summaryToResponse(summary RevenueSummary) response.RevenueReportResponse {
	daily := make([]response.DailyRevenueResponse, 0, len(summary.Daily))
	for _, d := range summary.Daily {
		daily = append(daily, response.DailyRevenueResponse{
			Date:  d.Date,
			Court: d.Court,
			Sales: d.Sales,
			Total: d.Total,
		})
	}

	return response.RevenueReportResponse{
		StartDate:        summary.StartDate,
		EndDate:          summary.EndDate,
		CourtRevenue:     summary.CourtRevenue,
		IndoorRevenue:    summary.IndoorRevenue,
		OutdoorRevenue:   summary.OutdoorRevenue,
		EquipmentRevenue: summary.EquipmentRevenue,
		PackageRevenue:   summary.PackageRevenue,
		GrandTotal:       summary.GrandTotal,
		BookingCount:     summary.BookingCount,
		SaleCount:        summary.SaleCount,
		Daily:            daily,
	}
}
