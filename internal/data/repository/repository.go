package repository

import (
	"padel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Court     CourtRepository
	Booking   BookingRepository
	Equipment EquipmentRepository
	Package   PackageRepository
	Sale      SaleRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Court:     NewCourtRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		Equipment: NewEquipmentRepository(db, log),
		Package:   NewPackageRepository(db, log),
		Sale:      NewSaleRepository(db, log),
	}
}
