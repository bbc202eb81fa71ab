package response

type DailyRevenueResponse struct {
	Date  string  `json:"date"`
	Court float64 `json:"court"`
	Sales float64 `json:"sales"`
	Total float64 `json:"total"`
}

type RevenueReportResponse struct {
	StartDate        string                 `json:"start_date"`
	EndDate          string                 `json:"end_date"`
	CourtRevenue     float64                `json:"court_revenue"`
	IndoorRevenue    float64                `json:"indoor_revenue"`
	OutdoorRevenue   float64                `json:"outdoor_revenue"`
	EquipmentRevenue float64                `json:"equipment_revenue"`
	PackageRevenue   float64                `json:"package_revenue"`
	GrandTotal       float64                `json:"grand_total"`
	BookingCount     int                    `json:"booking_count"`
	SaleCount        int                    `json:"sale_count"`
	Daily            []DailyRevenueResponse `json:"daily"`
}

// DayEndResponse is the closing report for a single date with its raw rows.
type DayEndResponse struct {
	Date     string                `json:"date"`
	Summary  RevenueReportResponse `json:"summary"`
	Bookings []BookingResponse     `json:"bookings"`
	Sales    []SaleResponse        `json:"sales"`
}
