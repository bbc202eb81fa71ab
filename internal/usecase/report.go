package usecase

import (
	"sort"

	"padel-booking/internal/data/entity"
)

type DailyRevenue struct {
	Date  string
	Court float64
	Sales float64
	Total float64
}

// RevenueSummary holds the sums for an inclusive date range.
// CourtRevenue == IndoorRevenue + OutdoorRevenue and
// GrandTotal == CourtRevenue + EquipmentRevenue + PackageRevenue.
type RevenueSummary struct {
	StartDate        string
	EndDate          string
	CourtRevenue     float64
	IndoorRevenue    float64
	OutdoorRevenue   float64
	EquipmentRevenue float64
	PackageRevenue   float64
	GrandTotal       float64
	BookingCount     int
	SaleCount        int
	Daily            []DailyRevenue
}

func inRange(date, startDate, endDate string) bool {
	return date >= startDate && date <= endDate
}

// Aggregate sums bookings and sales dated within [startDate, endDate]. Dates
// are YYYY-MM-DD so string comparison orders them. Cancelled bookings are
// left out of every sum and count.
func Aggregate(bookings []*entity.Booking, sales []*entity.Sale, startDate, endDate string) RevenueSummary {
	summary := RevenueSummary{StartDate: startDate, EndDate: endDate}
	daily := make(map[string]*DailyRevenue)

	day := func(date string) *DailyRevenue {
		d, ok := daily[date]
		if !ok {
			d = &DailyRevenue{Date: date}
			daily[date] = d
		}
		return d
	}

	for _, b := range bookings {
		if b.Status == entity.BookingStatusCancelled || !inRange(b.Date, startDate, endDate) {
			continue
		}
		summary.BookingCount++
		summary.CourtRevenue += b.AmountPaid
		if b.CourtType == entity.CourtTypeIndoor {
			summary.IndoorRevenue += b.AmountPaid
		}
		day(b.Date).Court += b.AmountPaid
	}

	for _, s := range sales {
		if !inRange(s.SaleDate, startDate, endDate) {
			continue
		}
		summary.SaleCount++
		switch s.ItemType {
		case entity.ItemTypeEquipment:
			summary.EquipmentRevenue += s.TotalAmount
		case entity.ItemTypePackage:
			summary.PackageRevenue += s.TotalAmount
		}
		day(s.SaleDate).Sales += s.TotalAmount
	}

	summary.OutdoorRevenue = summary.CourtRevenue - summary.IndoorRevenue
	summary.GrandTotal = summary.CourtRevenue + summary.EquipmentRevenue + summary.PackageRevenue

	summary.Daily = make([]DailyRevenue, 0, len(daily))
	for _, d := range daily {
		d.Total = d.Court + d.Sales
		summary.Daily = append(summary.Daily, *d)
	}
	sort.Slice(summary.Daily, func(i, j int) bool {
		return summary.Daily[i].Date < summary.Daily[j].Date
	})

	return summary
}

// FutureBookings returns non-Cancelled bookings dated after today, earliest first.
func FutureBookings(bookings []*entity.Booking, today string) []*entity.Booking {
	upcoming := make([]*entity.Booking, 0)
	for _, b := range bookings {
		if b.Date > today && b.Status != entity.BookingStatusCancelled {
			upcoming = append(upcoming, b)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].StartTime < upcoming[j].StartTime
	})

	return upcoming
}
