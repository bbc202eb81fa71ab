// Package repotest provides an in-memory Repository for service and handler tests.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"padel-booking/internal/data/entity"
	"padel-booking/internal/data/repository"
)

// Store keeps every table in memory. Its exported fields may be edited
// directly by tests between calls.
type Store struct {
	mu sync.Mutex

	Courts    []*entity.Court
	Bookings  []*entity.Booking
	Equipment []*entity.Equipment
	Packages  []*entity.Package
	Sales     []*entity.Sale

	// UniqueSlots mimics the partial unique index over active bookings.
	UniqueSlots bool

	// SaleErr fails every sale insert once SaleFailAfter inserts have succeeded.
	SaleErr       error
	SaleFailAfter int

	// Err, when set, is returned by every read.
	Err error
}

func New() *Store {
	return &Store{}
}

// Repository exposes s through the repository interfaces.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Court:     &courtRepo{s},
		Booking:   &bookingRepo{s},
		Equipment: &equipmentRepo{s},
		Package:   &packageRepo{s},
		Sale:      &saleRepo{s},
	}
}

// SeedCourts adds four Indoor courts at 10000 and four Outdoor courts at 7000.
func (s *Store) SeedCourts() *Store {
	for i := 1; i <= 4; i++ {
		s.Courts = append(s.Courts, &entity.Court{
			ID: fmt.Sprintf("%d", i), CourtType: entity.CourtTypeIndoor, CourtNumber: i,
			HourlyRate: 10000, SlotDuration: 90, IsActive: true,
		})
	}
	for i := 1; i <= 4; i++ {
		s.Courts = append(s.Courts, &entity.Court{
			ID: fmt.Sprintf("%d", i+4), CourtType: entity.CourtTypeOutdoor, CourtNumber: i,
			HourlyRate: 7000, SlotDuration: 60, IsActive: true,
		})
	}
	return s
}

// SeedCatalog adds two equipment items and one package.
func (s *Store) SeedCatalog() *Store {
	s.Equipment = append(s.Equipment,
		&entity.Equipment{ID: "eq1", Name: "Padel Ball (3 pack)", Category: "Balls", Price: 1500, StockQuantity: 50, IsActive: true},
		&entity.Equipment{ID: "eq2", Name: "Padel Racket - Beginner", Category: "Rackets", Price: 8000, StockQuantity: 20, IsActive: true},
	)
	duration := 120
	s.Packages = append(s.Packages,
		&entity.Package{ID: "pkg1", Name: "Birthday Package", Price: 25000, DurationMinutes: &duration, IncludesEquipment: true, IsActive: true},
	)
	return s
}

// ==================== COURTS ====================

type courtRepo struct{ s *Store }

func (r *courtRepo) FindAllActive(ctx context.Context) ([]*entity.Court, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	courts := make([]*entity.Court, 0)
	for _, c := range r.s.Courts {
		if c.IsActive {
			cp := *c
			courts = append(courts, &cp)
		}
	}
	sort.SliceStable(courts, func(i, j int) bool {
		if courts[i].CourtType != courts[j].CourtType {
			return courts[i].CourtType < courts[j].CourtType
		}
		return courts[i].CourtNumber < courts[j].CourtNumber
	})
	return courts, nil
}

func (r *courtRepo) FindByTypeAndNumber(ctx context.Context, courtType entity.CourtType, courtNumber int) (*entity.Court, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	for _, c := range r.s.Courts {
		if c.CourtType == courtType && c.CourtNumber == courtNumber {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// ==================== BOOKINGS ====================

type bookingRepo struct{ s *Store }

func (r *bookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// primary key
	for _, b := range r.s.Bookings {
		if b.ID == booking.ID {
			return fmt.Errorf("create booking %s: duplicate key value violates unique constraint \"bookings_pkey\"", booking.ID)
		}
	}

	if r.s.UniqueSlots && booking.Status != entity.BookingStatusCancelled {
		for _, b := range r.s.Bookings {
			if b.Status != entity.BookingStatusCancelled &&
				b.SameCourtDay(booking.CourtType, booking.CourtNumber, booking.Date) &&
				b.StartTime == booking.StartTime {
				return fmt.Errorf("create booking %s: %w", booking.ID, repository.ErrSlotTaken)
			}
		}
	}

	cp := *booking
	r.s.Bookings = append(r.s.Bookings, &cp)
	return nil
}

func (r *bookingRepo) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	for _, b := range r.s.Bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *bookingRepo) filter(keep func(*entity.Booking) bool, less func(a, b *entity.Booking) bool) ([]*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	bookings := make([]*entity.Booking, 0)
	for _, b := range r.s.Bookings {
		if keep(b) {
			cp := *b
			bookings = append(bookings, &cp)
		}
	}
	sort.SliceStable(bookings, func(i, j int) bool { return less(bookings[i], bookings[j]) })
	return bookings, nil
}

func ascending(a, b *entity.Booking) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.StartTime < b.StartTime
}

func (r *bookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return r.filter(
		func(*entity.Booking) bool { return true },
		func(a, b *entity.Booking) bool { return ascending(b, a) },
	)
}

func (r *bookingRepo) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.Date == date }, ascending)
}

func (r *bookingRepo) FindActiveBySlot(ctx context.Context, courtType entity.CourtType, courtNumber int, date, startTime string) (*entity.Booking, error) {
	bookings, err := r.filter(func(b *entity.Booking) bool {
		return b.Status != entity.BookingStatusCancelled &&
			b.SameCourtDay(courtType, courtNumber, date) &&
			b.StartTime == startTime
	}, ascending)
	if err != nil || len(bookings) == 0 {
		return nil, err
	}
	return bookings[0], nil
}

func (r *bookingRepo) FindByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool {
		return b.Date >= startDate && b.Date <= endDate
	}, ascending)
}

func (r *bookingRepo) FindAfterDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.Date > date }, ascending)
}

func (r *bookingRepo) Patch(ctx context.Context, id string, fields map[string]any) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for column := range fields {
		if !repository.PatchableColumns[column] {
			return 0, fmt.Errorf("invalid patch for booking %s: unknown field %s", id, column)
		}
	}

	for _, b := range r.s.Bookings {
		if b.ID != id {
			continue
		}
		for column, value := range fields {
			switch column {
			case "court_type":
				b.CourtType = entity.CourtType(value.(string))
			case "court_number":
				b.CourtNumber = value.(int)
			case "date":
				b.Date = value.(string)
			case "start_time":
				b.StartTime = value.(string)
			case "end_time":
				b.EndTime = value.(string)
			case "duration":
				b.DurationMinutes = value.(int)
			case "customer_name":
				b.CustomerName = value.(string)
			case "customer_contact":
				b.CustomerContact = value.(string)
			case "status":
				b.Status = entity.BookingStatus(value.(string))
			case "amount_paid":
				b.AmountPaid = value.(float64)
			case "updated_at":
				b.UpdatedAt = value.(int64)
			}
		}
		return 1, nil
	}
	return 0, nil
}

// ==================== CATALOG ====================

type equipmentRepo struct{ s *Store }

func (r *equipmentRepo) Create(ctx context.Context, equipment *entity.Equipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *equipment
	r.s.Equipment = append(r.s.Equipment, &cp)
	return nil
}

func (r *equipmentRepo) FindAll(ctx context.Context) ([]*entity.Equipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	items := make([]*entity.Equipment, 0, len(r.s.Equipment))
	for _, e := range r.s.Equipment {
		cp := *e
		items = append(items, &cp)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *equipmentRepo) FindByID(ctx context.Context, id string) (*entity.Equipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	for _, e := range r.s.Equipment {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *equipmentRepo) Update(ctx context.Context, equipment *entity.Equipment) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, e := range r.s.Equipment {
		if e.ID == equipment.ID {
			cp := *equipment
			cp.CreatedAt = e.CreatedAt
			r.s.Equipment[i] = &cp
			return 1, nil
		}
	}
	return 0, nil
}

func (r *equipmentRepo) Delete(ctx context.Context, id string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, e := range r.s.Equipment {
		if e.ID == id {
			r.s.Equipment = append(r.s.Equipment[:i], r.s.Equipment[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type packageRepo struct{ s *Store }

func (r *packageRepo) Create(ctx context.Context, pkg *entity.Package) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *pkg
	r.s.Packages = append(r.s.Packages, &cp)
	return nil
}

func (r *packageRepo) FindAll(ctx context.Context) ([]*entity.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	packages := make([]*entity.Package, 0, len(r.s.Packages))
	for _, p := range r.s.Packages {
		cp := *p
		packages = append(packages, &cp)
	}
	sort.SliceStable(packages, func(i, j int) bool { return packages[i].Name < packages[j].Name })
	return packages, nil
}

func (r *packageRepo) FindByID(ctx context.Context, id string) (*entity.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	for _, p := range r.s.Packages {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *packageRepo) Update(ctx context.Context, pkg *entity.Package) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, p := range r.s.Packages {
		if p.ID == pkg.ID {
			cp := *pkg
			cp.CreatedAt = p.CreatedAt
			r.s.Packages[i] = &cp
			return 1, nil
		}
	}
	return 0, nil
}

func (r *packageRepo) Delete(ctx context.Context, id string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, p := range r.s.Packages {
		if p.ID == id {
			r.s.Packages = append(r.s.Packages[:i], r.s.Packages[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// ==================== SALES ====================

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.insertLocked(sale)
}

func (r *saleRepo) insertLocked(sale *entity.Sale) error {
	if r.s.SaleErr != nil && len(r.s.Sales) >= r.s.SaleFailAfter {
		return r.s.SaleErr
	}
	cp := *sale
	r.s.Sales = append(r.s.Sales, &cp)
	return nil
}

func (r *saleRepo) CreateBatch(ctx context.Context, sales []*entity.Sale) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, sale := range sales {
		if err := r.insertLocked(sale); err != nil {
			return i, err
		}
	}
	return len(sales), nil
}

func (r *saleRepo) FindByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	sales := make([]*entity.Sale, 0)
	for _, sale := range r.s.Sales {
		if sale.SaleDate >= startDate && sale.SaleDate <= endDate {
			cp := *sale
			sales = append(sales, &cp)
		}
	}
	sort.SliceStable(sales, func(i, j int) bool { return sales[i].SaleDate < sales[j].SaleDate })
	return sales, nil
}
