package usecase

import (
	"fmt"
	"time"

	"padel-booking/internal/data/repository"
	"padel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Court     CourtService
	Booking   BookingService
	Equipment EquipmentService
	Package   PackageService
	Sale      SaleService
	Report    ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) (*Service, error) {
	window, err := NewWindow(config.Booking.OpenTime, config.Booking.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("slot window: %w", err)
	}

	return &Service{
		Court:     NewCourtService(repo, window, log),
		Booking:   NewBookingService(repo, config.Booking, log),
		Equipment: NewEquipmentService(repo.Equipment, log),
		Package:   NewPackageService(repo.Package, log),
		Sale:      NewSaleService(repo.Sale, log),
		Report:    NewReportService(repo, config.App.Location(), time.Now, log),
	}, nil
}
