package wire

import (
	"padel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSale(r chi.Router, saleHandler *adaptor.SaleHandler) {
	// POST /api/sales - Array of point-of-sale lines
	r.Post("/api/sales", saleHandler.RecordSales)

	// GET /api/sales-report - Raw sales rows in an inclusive date range
	r.Get("/api/sales-report", saleHandler.GetSalesReport)
}

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler) {
	r.Route("/api/reports", func(r chi.Router) {
		r.Get("/revenue", reportHandler.Revenue)
		r.Get("/day-end", reportHandler.DayEnd)
		r.Get("/month-to-date", reportHandler.MonthToDate)
		r.Get("/future-bookings", reportHandler.FutureBookings)
	})
}
