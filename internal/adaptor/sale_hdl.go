package adaptor

import (
	"encoding/json"
	"net/http"

	"padel-booking/internal/dto/request"
	"padel-booking/internal/usecase"
	"padel-booking/pkg/utils"

	"go.uber.org/zap"
)

type SaleHandler struct {
	service usecase.SaleService
	log     *zap.Logger
}

func NewSaleHandler(service usecase.SaleService, log *zap.Logger) *SaleHandler {
	return &SaleHandler{
		service: service,
		log:     log.With(zap.String("handler", "sale")),
	}
}

// RecordSales handles POST /api/sales; the body is an array of sale lines
func (h *SaleHandler) RecordSales(w http.ResponseWriter, r *http.Request) {
	var items []request.SaleItemRequest
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		utils.ResponseBadRequest(w, "Invalid JSON", nil)
		return
	}

	req := request.CreateSalesRequest{Items: items}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sales, err := h.service.RecordSales(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "record sales")
		return
	}

	utils.ResponseCreated(w, sales)
}

// GetSalesReport handles GET /api/sales-report?startDate=&endDate=
func (h *SaleHandler) GetSalesReport(w http.ResponseWriter, r *http.Request) {
	req, ok := dateRangeFromQuery(w, r)
	if !ok {
		return
	}

	sales, err := h.service.GetSalesReport(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get sales report")
		return
	}

	utils.ResponseData(w, sales)
}

// dateRangeFromQuery reads startDate/endDate and writes a 400 when they fail validation.
func dateRangeFromQuery(w http.ResponseWriter, r *http.Request) (*request.DateRangeRequest, bool) {
	query := r.URL.Query()
	req := &request.DateRangeRequest{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}
	return req, true
}
