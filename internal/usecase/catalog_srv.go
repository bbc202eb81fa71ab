package usecase

import (
	"context"
	"fmt"

	"padel-booking/internal/data/entity"
	"padel-booking/internal/data/repository"
	"padel-booking/internal/dto/request"
	"padel-booking/internal/dto/response"
	"padel-booking/pkg/utils"

	"go.uber.org/zap"
)

// ==================== EQUIPMENT ====================

type EquipmentService interface {
	ListEquipment(ctx context.Context) ([]response.EquipmentResponse, error)
	CreateEquipment(ctx context.Context, req *request.EquipmentRequest) (*response.EquipmentResponse, error)
	UpdateEquipment(ctx context.Context, id string, req *request.EquipmentRequest) (int64, error)
	DeleteEquipment(ctx context.Context, id string) (int64, error)
}

type equipmentService struct {
	repo repository.EquipmentRepository
	log  *zap.Logger
}

func NewEquipmentService(repo repository.EquipmentRepository, log *zap.Logger) EquipmentService {
	return &equipmentService{
		repo: repo,
		log:  log.With(zap.String("service", "equipment")),
	}
}

func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]response.EquipmentResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	result := make([]response.EquipmentResponse, 0, len(items))
	for _, e := range items {
		result = append(result, response.EquipmentToResponse(e))
	}
	return result, nil
}

func (s *equipmentService) CreateEquipment(ctx context.Context, req *request.EquipmentRequest) (*response.EquipmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create equipment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := utils.NowMillis()
	equipment := &entity.Equipment{
		ID:            utils.GenerateID(utils.PrefixEquipment),
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		IsActive:      activeOrDefault(req.IsActive),
		Timestamps:    entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.repo.Create(ctx, equipment); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	s.log.Info("Equipment created",
		zap.String("equipment_id", equipment.ID),
		zap.String("name", equipment.Name),
	)

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

// UpdateEquipment replaces every mutable field; zero changes means unknown id.
func (s *equipmentService) UpdateEquipment(ctx context.Context, id string, req *request.EquipmentRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update equipment validation failed", zap.Any("errors", errs))
		return 0, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	equipment := &entity.Equipment{
		ID:            id,
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		IsActive:      activeOrDefault(req.IsActive),
		Timestamps:    entity.Timestamps{UpdatedAt: utils.NowMillis()},
	}

	changes, err := s.repo.Update(ctx, equipment)
	if err != nil {
		return 0, fmt.Errorf("update equipment: %w", err)
	}
	return changes, nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id string) (int64, error) {
	changes, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete equipment: %w", err)
	}
	return changes, nil
}

// ==================== PACKAGES ====================

type PackageService interface {
	ListPackages(ctx context.Context) ([]response.PackageResponse, error)
	CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error)
	UpdatePackage(ctx context.Context, id string, req *request.PackageRequest) (int64, error)
	DeletePackage(ctx context.Context, id string) (int64, error)
}

type packageService struct {
	repo repository.PackageRepository
	log  *zap.Logger
}

func NewPackageService(repo repository.PackageRepository, log *zap.Logger) PackageService {
	return &packageService{
		repo: repo,
		log:  log.With(zap.String("service", "package")),
	}
}

func (s *packageService) ListPackages(ctx context.Context) ([]response.PackageResponse, error) {
	packages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	result := make([]response.PackageResponse, 0, len(packages))
	for _, p := range packages {
		result = append(result, response.PackageToResponse(p))
	}
	return result, nil
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := utils.NowMillis()
	pkg := &entity.Package{
		ID:                utils.GenerateID(utils.PrefixPackage),
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		DurationMinutes:   req.Duration,
		IncludesEquipment: req.IncludesEquipment,
		IncludesCoaching:  req.IncludesCoaching,
		IsActive:          activeOrDefault(req.IsActive),
		Timestamps:        entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.log.Info("Package created",
		zap.String("package_id", pkg.ID),
		zap.String("name", pkg.Name),
	)

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) UpdatePackage(ctx context.Context, id string, req *request.PackageRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update package validation failed", zap.Any("errors", errs))
		return 0, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	pkg := &entity.Package{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		DurationMinutes:   req.Duration,
		IncludesEquipment: req.IncludesEquipment,
		IncludesCoaching:  req.IncludesCoaching,
		IsActive:          activeOrDefault(req.IsActive),
		Timestamps:        entity.Timestamps{UpdatedAt: utils.NowMillis()},
	}

	changes, err := s.repo.Update(ctx, pkg)
	if err != nil {
		return 0, fmt.Errorf("update package: %w", err)
	}
	return changes, nil
}

func (s *packageService) DeletePackage(ctx context.Context, id string) (int64, error) {
	changes, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete package: %w", err)
	}
	return changes, nil
}
