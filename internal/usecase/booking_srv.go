package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"padel-booking/internal/data/entity"
	"padel-booking/internal/data/repository"
	"padel-booking/internal/dto/request"
	"padel-booking/internal/dto/response"
	"padel-booking/pkg/metrics"
	"padel-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Confirm flow, priced from the court row and the catalog
	ConfirmBooking(ctx context.Context, req *request.ConfirmBookingRequest) (*response.ConfirmBookingResponse, error)

	// Raw table access
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	PatchBooking(ctx context.Context, id string, fields map[string]any) (int64, error)
}

type bookingService struct {
	repo              *repository.Repository
	enforceUniqueSlot bool
	log               *zap.Logger
}

func NewBookingService(repo *repository.Repository, config utils.BookingConfig, log *zap.Logger) BookingService {
	return &bookingService{
		repo:              repo,
		enforceUniqueSlot: config.EnforceUniqueSlot,
		log:               log.With(zap.String("service", "booking")),
	}
}

// cartLine is a cart item resolved against the catalog.
type cartLine struct {
	itemType entity.ItemType
	itemID   string
	name     string
	price    float64
}

// ResolveDuration returns the booked length in minutes. Indoor courts are
// always one 90 minute slot; Outdoor courts take one of OutdoorDurations and
// default to 60.
func ResolveDuration(courtType entity.CourtType, requested int) (int, error) {
	if courtType == entity.CourtTypeIndoor {
		if requested != 0 && requested != IndoorSlotMinutes {
			return 0, fmt.Errorf("invalid duration %d for Indoor court, must be %d", requested, IndoorSlotMinutes)
		}
		return IndoorSlotMinutes, nil
	}

	if requested == 0 {
		return OutdoorSlotMinutes, nil
	}
	if !slices.Contains(OutdoorDurations, requested) {
		return 0, fmt.Errorf("invalid duration %d for Outdoor court, must be one of %v", requested, OutdoorDurations)
	}
	return requested, nil
}

// CourtPrice bills the hourly rate pro rata over the booked minutes.
func CourtPrice(hourlyRate float64, durationMinutes int) float64 {
	return hourlyRate * float64(durationMinutes) / 60
}

func (s *bookingService) ConfirmBooking(ctx context.Context, req *request.ConfirmBookingRequest) (*response.ConfirmBookingResponse, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerContact = strings.TrimSpace(req.CustomerContact)

	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Confirm booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	courtType := entity.CourtType(req.CourtType)

	duration, err := ResolveDuration(courtType, req.Duration)
	if err != nil {
		return nil, err
	}

	endTime, err := utils.AddMinutes(req.StartTime, duration)
	if err != nil {
		return nil, err
	}

	// Court must exist and be bookable
	court, err := s.repo.Court.FindByTypeAndNumber(ctx, courtType, req.CourtNumber)
	if err != nil {
		return nil, fmt.Errorf("get court: %w", err)
	}
	if court == nil || !court.IsActive {
		return nil, fmt.Errorf("court %s %d not found", req.CourtType, req.CourtNumber)
	}

	lines, err := s.resolveCart(ctx, req.Cart)
	if err != nil {
		return nil, err
	}

	if s.enforceUniqueSlot {
		existing, err := s.repo.Booking.FindActiveBySlot(ctx, courtType, req.CourtNumber, req.Date, req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("check slot availability: %w", err)
		}
		if existing != nil {
			s.log.Warn("Slot already taken",
				zap.String("existing_booking_id", existing.ID),
				zap.String("court_type", req.CourtType),
				zap.Int("court_number", req.CourtNumber),
				zap.String("date", req.Date),
				zap.String("start_time", req.StartTime),
			)
			return nil, fmt.Errorf("%w: %s court %d on %s at %s",
				repository.ErrSlotTaken, req.CourtType, req.CourtNumber, req.Date, req.StartTime)
		}
	}

	// Calculate total price
	courtAmount := CourtPrice(court.HourlyRate, duration)
	var cartAmount float64
	for _, line := range lines {
		cartAmount += line.price
	}

	now := utils.NowMillis()
	booking := &entity.Booking{
		ID:              utils.GenerateBookingID(),
		CourtType:       courtType,
		CourtNumber:     req.CourtNumber,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         endTime,
		DurationMinutes: duration,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		Status:          entity.BookingStatusBooked,
		AmountPaid:      courtAmount + cartAmount,
		Timestamps:      entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	metrics.RecordBookingCreated(string(booking.CourtType))

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID),
		zap.String("court_type", string(booking.CourtType)),
		zap.Int("court_number", booking.CourtNumber),
		zap.String("date", booking.Date),
		zap.String("start_time", booking.StartTime),
		zap.Int("duration", duration),
		zap.Float64("amount_paid", booking.AmountPaid),
		zap.Int("cart_items", len(lines)),
	)

	result := &response.ConfirmBookingResponse{
		Booking:     response.BookingToResponse(booking),
		CourtAmount: courtAmount,
		CartAmount:  cartAmount,
		Items:       []response.SaleResponse{},
	}

	if len(lines) == 0 {
		return result, nil
	}

	// Sales ride along without a transaction; the booking stays even if they fail
	sales := make([]*entity.Sale, len(lines))
	for i, line := range lines {
		sales[i] = &entity.Sale{
			ID:              utils.GenerateSaleID(),
			ItemID:          line.itemID,
			ItemName:        line.name,
			ItemType:        line.itemType,
			Quantity:        1,
			PricePerItem:    line.price,
			TotalAmount:     line.price,
			CustomerName:    &booking.CustomerName,
			CustomerContact: &booking.CustomerContact,
			BookingID:       &booking.ID,
			SaleDate:        booking.Date,
			CreatedAt:       now,
		}
	}

	recorded, err := s.repo.Sale.CreateBatch(ctx, sales)
	for _, sale := range sales[:recorded] {
		metrics.RecordSaleRecorded(string(sale.ItemType))
	}
	result.Items = response.SalesToResponse(sales[:recorded])
	result.SalesRecorded = recorded

	if err != nil {
		metrics.RecordSaleWriteFailure(len(sales) - recorded)
		s.log.Warn("Booking stored but cart sales failed",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
			zap.Int("recorded", recorded),
			zap.Int("expected", len(sales)),
		)
		result.SalesError = err.Error()
	}

	return result, nil
}

// resolveCart looks every cart item up in the catalog. The catalog's current
// name and price are billed; unknown or inactive items reject the booking.
func (s *bookingService) resolveCart(ctx context.Context, items []request.CartItemRequest) ([]cartLine, error) {
	lines := make([]cartLine, 0, len(items))

	for _, item := range items {
		switch entity.ItemType(item.ItemType) {
		case entity.ItemTypeEquipment:
			equipment, err := s.repo.Equipment.FindByID(ctx, item.ItemID)
			if err != nil {
				return nil, fmt.Errorf("get cart equipment: %w", err)
			}
			if equipment == nil || !equipment.IsActive {
				return nil, fmt.Errorf("invalid cart item: equipment %s is unavailable", item.ItemID)
			}
			lines = append(lines, cartLine{
				itemType: entity.ItemTypeEquipment,
				itemID:   equipment.ID,
				name:     equipment.Name,
				price:    equipment.Price,
			})

		case entity.ItemTypePackage:
			pkg, err := s.repo.Package.FindByID(ctx, item.ItemID)
			if err != nil {
				return nil, fmt.Errorf("get cart package: %w", err)
			}
			if pkg == nil || !pkg.IsActive {
				return nil, fmt.Errorf("invalid cart item: package %s is unavailable", item.ItemID)
			}
			lines = append(lines, cartLine{
				itemType: entity.ItemTypePackage,
				itemID:   pkg.ID,
				name:     pkg.Name,
				price:    pkg.Price,
			})

		default:
			return nil, fmt.Errorf("invalid cart item type %q", item.ItemType)
		}
	}

	return lines, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}

// CreateBooking stores a caller-supplied booking record as is, filling in the
// id, status and timestamps when they are missing.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerContact = strings.TrimSpace(req.CustomerContact)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if _, err := utils.TimeToMinutes(req.StartTime); err != nil {
		return nil, err
	}
	if _, err := utils.TimeToMinutes(req.EndTime); err != nil {
		return nil, err
	}

	now := utils.NowMillis()
	booking := &entity.Booking{
		ID:              req.ID,
		CourtType:       entity.CourtType(req.CourtType),
		CourtNumber:     req.CourtNumber,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.Duration,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		Status:          entity.BookingStatus(req.Status),
		AmountPaid:      req.AmountPaid,
		Timestamps:      entity.Timestamps{CreatedAt: req.CreatedAt, UpdatedAt: req.UpdatedAt},
	}
	if booking.ID == "" {
		booking.ID = utils.GenerateBookingID()
	}
	if booking.Status == "" {
		booking.Status = entity.BookingStatusBooked
	}
	if booking.CreatedAt == 0 {
		booking.CreatedAt = now
	}
	if booking.UpdatedAt == 0 {
		booking.UpdatedAt = now
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	metrics.RecordBookingCreated(string(booking.CourtType))

	s.log.Info("Booking record created",
		zap.String("booking_id", booking.ID),
		zap.String("date", booking.Date),
		zap.String("start_time", booking.StartTime),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// PatchBooking applies a partial update. id and created_at are immutable and
// updated_at is always set to now. A status change must be a legal
// transition. An unknown id yields zero changes, not an error.
func (s *bookingService) PatchBooking(ctx context.Context, id string, fields map[string]any) (int64, error) {
	if id == "" {
		return 0, fmt.Errorf("invalid booking ID: empty")
	}

	columns := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		switch key {
		case "id", "created_at":
			return 0, fmt.Errorf("cannot update field %s", key)
		case "updated_at":
			continue
		}
		if !repository.PatchableColumns[key] {
			return 0, fmt.Errorf("invalid patch field %s", key)
		}

		v, err := patchValue(key, value)
		if err != nil {
			return 0, err
		}
		columns[key] = v
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("invalid patch: no updatable fields")
	}

	current, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get booking for patch: %w", err)
	}
	if current == nil {
		s.log.Info("Patch matched no booking", zap.String("booking_id", id))
		return 0, nil
	}

	if status, ok := columns["status"]; ok {
		next := entity.BookingStatus(status.(string))
		if !current.Status.CanTransitionTo(next) {
			return 0, fmt.Errorf("cannot change booking status from %s to %s", current.Status, next)
		}
	}

	columns["updated_at"] = utils.NowMillis()

	changes, err := s.repo.Booking.Patch(ctx, id, columns)
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return 0, err
		}
		return 0, fmt.Errorf("patch booking: %w", err)
	}

	s.log.Info("Booking patched",
		zap.String("booking_id", id),
		zap.Int64("changes", changes),
		zap.Any("fields", fields),
	)

	return changes, nil
}

// patchValue checks one decoded JSON value and converts it to the column's Go type.
func patchValue(column string, value any) (any, error) {
	switch column {
	case "court_type":
		v, ok := value.(string)
		if !ok || !entity.CourtType(v).Valid() {
			return nil, fmt.Errorf("invalid value for %s: must be Indoor or Outdoor", column)
		}
		return v, nil

	case "status":
		v, ok := value.(string)
		if !ok || !entity.BookingStatus(v).Valid() {
			return nil, fmt.Errorf("invalid value for %s: must be Booked, Completed or Cancelled", column)
		}
		return v, nil

	case "court_number", "duration":
		n, ok := value.(float64)
		if !ok || n < 1 || n != math.Trunc(n) {
			return nil, fmt.Errorf("invalid value for %s: must be a positive whole number", column)
		}
		return int(n), nil

	case "amount_paid":
		n, ok := value.(float64)
		if !ok || n < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be a non-negative number", column)
		}
		return n, nil

	case "date":
		v, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("invalid value for %s: must be a string", column)
		}
		return utils.ParseDate(v)

	case "start_time", "end_time":
		v, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("invalid value for %s: must be a string", column)
		}
		if _, err := utils.TimeToMinutes(v); err != nil {
			return nil, err
		}
		return v, nil

	case "customer_name", "customer_contact":
		v, ok := value.(string)
		if !ok || strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("invalid value for %s: must not be empty", column)
		}
		return strings.TrimSpace(v), nil
	}

	return nil, fmt.Errorf("invalid patch field %s", column)
}
