package adaptor

import (
	"net/http"

	"padel-booking/internal/usecase"
	"padel-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// Revenue handles GET /api/reports/revenue?startDate=&endDate=
func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	req, ok := dateRangeFromQuery(w, r)
	if !ok {
		return
	}

	report, err := h.service.Revenue(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "revenue report")
		return
	}

	utils.ResponseData(w, report)
}

// DayEnd handles GET /api/reports/day-end?date=
func (h *ReportHandler) DayEnd(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.DayEnd(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		handleServiceError(h.log, w, err, "day-end report")
		return
	}

	utils.ResponseData(w, report)
}

// MonthToDate handles GET /api/reports/month-to-date
func (h *ReportHandler) MonthToDate(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.MonthToDate(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "month-to-date report")
		return
	}

	utils.ResponseData(w, report)
}

// FutureBookings handles GET /api/reports/future-bookings
func (h *ReportHandler) FutureBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.FutureBookings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "future bookings report")
		return
	}

	utils.ResponseData(w, bookings)
}
