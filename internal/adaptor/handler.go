package adaptor

import (
	"net/http"
	"strings"

	"padel-booking/internal/usecase"
	"padel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Court     *CourtHandler
	Booking   *BookingHandler
	Equipment *EquipmentHandler
	Package   *PackageHandler
	Sale      *SaleHandler
	Report    *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Court:     NewCourtHandler(service.Court, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Equipment: NewEquipmentHandler(service.Equipment, log),
		Package:   NewPackageHandler(service.Package, log),
		Sale:      NewSaleHandler(service.Sale, log),
		Report:    NewReportHandler(service.Report, log),
	}
}

// handleServiceError maps a service error onto a status code by its message.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already booked"):
		log.Warn(operation+" failed - slot already booked",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "cannot"):
		log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, errMsg)
	}
}
