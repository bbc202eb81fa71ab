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

type CourtService interface {
	GetActiveCourts(ctx context.Context) ([]response.CourtResponse, error)
	GetSlots(ctx context.Context, req *request.SlotQueryRequest) ([]response.CourtSlotsResponse, error)
}

type courtService struct {
	repo   *repository.Repository
	window Window
	log    *zap.Logger
}

func NewCourtService(repo *repository.Repository, window Window, log *zap.Logger) CourtService {
	return &courtService{
		repo:   repo,
		window: window,
		log:    log.With(zap.String("service", "court")),
	}
}

func (s *courtService) GetActiveCourts(ctx context.Context) ([]response.CourtResponse, error) {
	courts, err := s.repo.Court.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active courts: %w", err)
	}

	result := make([]response.CourtResponse, 0, len(courts))
	for _, court := range courts {
		result = append(result, response.CourtToResponse(court))
	}
	return result, nil
}

// GetSlots builds the slot grid of every active court for one date, optionally
// narrowed to a court type.
func (s *courtService) GetSlots(ctx context.Context, req *request.SlotQueryRequest) ([]response.CourtSlotsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Slot query validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	courts, err := s.repo.Court.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get courts for slots: %w", err)
	}

	bookings, err := s.repo.Booking.FindByDate(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("get bookings for %s: %w", req.Date, err)
	}

	result := make([]response.CourtSlotsResponse, 0, len(courts))
	for _, court := range courts {
		if req.CourtType != "" && court.CourtType != entity.CourtType(req.CourtType) {
			continue
		}

		slots := GenerateSlots(court, req.Date, s.window, bookings)
		grid := response.CourtSlotsResponse{
			Court: response.CourtToResponse(court),
			Date:  req.Date,
			Slots: make([]response.SlotResponse, 0, len(slots)),
		}
		for _, slot := range slots {
			grid.Slots = append(grid.Slots, response.SlotResponse{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				IsBooked:  slot.IsBooked,
			})
		}
		result = append(result, grid)
	}

	return result, nil
}
