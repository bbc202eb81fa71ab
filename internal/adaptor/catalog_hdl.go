package adaptor

import (
	"encoding/json"
	"net/http"

	"padel-booking/internal/dto/request"
	"padel-booking/internal/usecase"
	"padel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ==================== EQUIPMENT ====================

type EquipmentHandler struct {
	service usecase.EquipmentService
	log     *zap.Logger
}

func NewEquipmentHandler(service usecase.EquipmentService, log *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "equipment")),
	}
}

// ListEquipment handles GET /api/equipment
func (h *EquipmentHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListEquipment(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list equipment")
		return
	}

	utils.ResponseData(w, items)
}

// CreateEquipment handles POST /api/equipment
func (h *EquipmentHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req request.EquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid JSON", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	equipment, err := h.service.CreateEquipment(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create equipment")
		return
	}

	utils.ResponseCreated(w, equipment)
}

// UpdateEquipment handles PUT /api/equipment/{id}
func (h *EquipmentHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.EquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid JSON", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	changes, err := h.service.UpdateEquipment(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update equipment")
		return
	}

	utils.ResponseChanges(w, changes)
}

// DeleteEquipment handles DELETE /api/equipment/{id}
func (h *EquipmentHandler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	changes, err := h.service.DeleteEquipment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "delete equipment")
		return
	}

	utils.ResponseChanges(w, changes)
}

// ==================== PACKAGES ====================

type PackageHandler struct {
	service usecase.PackageService
	log     *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		log:     log.With(zap.String("handler", "package")),
	}
}

// ListPackages handles GET /api/packages
func (h *PackageHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListPackages(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list packages")
		return
	}

	utils.ResponseData(w, packages)
}

// CreatePackage handles POST /api/packages
func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid JSON", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create package")
		return
	}

	utils.ResponseCreated(w, pkg)
}

// UpdatePackage handles PUT /api/packages/{id}
func (h *PackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid JSON", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	changes, err := h.service.UpdatePackage(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update package")
		return
	}

	utils.ResponseChanges(w, changes)
}

// DeletePackage handles DELETE /api/packages/{id}
func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	changes, err := h.service.DeletePackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "delete package")
		return
	}

	utils.ResponseChanges(w, changes)
}
