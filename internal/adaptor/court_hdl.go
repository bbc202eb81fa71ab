package adaptor

import (
	"net/http"

	"padel-booking/internal/dto/request"
	"padel-booking/internal/usecase"
	"padel-booking/pkg/utils"

	"go.uber.org/zap"
)

type CourtHandler struct {
	service usecase.CourtService
	log     *zap.Logger
}

func NewCourtHandler(service usecase.CourtService, log *zap.Logger) *CourtHandler {
	return &CourtHandler{
		service: service,
		log:     log.With(zap.String("handler", "court")),
	}
}

// GetCourts handles GET /tables/courts
func (h *CourtHandler) GetCourts(w http.ResponseWriter, r *http.Request) {
	courts, err := h.service.GetActiveCourts(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get courts")
		return
	}

	utils.ResponseData(w, courts)
}

// GetSlots handles GET /api/slots?date=YYYY-MM-DD&court_type=Indoor
func (h *CourtHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.SlotQueryRequest{
		Date:      query.Get("date"),
		CourtType: query.Get("court_type"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	slots, err := h.service.GetSlots(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "get slots")
		return
	}

	utils.ResponseData(w, slots)
}
