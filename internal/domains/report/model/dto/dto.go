package dto

import (
	"hoteladmin/internal/domains/report/model"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/timezone"
)

const MonthKeyFormat = "2006-01"

type MonthlyValue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// MonthlySeries is ordered oldest month first and has one entry per month of
// its window.
type MonthlySeries []MonthlyValue

func (s MonthlySeries) ToMap() map[string]float64 {
	res := make(map[string]float64, len(s))
	for _, v := range s {
		res[v.Month] = v.Value
	}

	return res
}

type DashboardResponse struct {
	TotalBookingsCost   float64 `json:"total_bookings_cost"`
	TotalReservations   int     `json:"total_reservations"`
	TotalRevenue        float64 `json:"total_revenue"`
	ActiveCustomerCount int     `json:"active_customer_count"`
}

func (r *DashboardResponse) FromModel(model model.Totals) {
	r.TotalBookingsCost = model.TotalBookingsCost
	r.TotalReservations = model.TotalReservations
	r.TotalRevenue = model.TotalRevenue
	r.ActiveCustomerCount = model.ActiveCustomerCount
}

type NewCustomerResponse struct {
	CustomerID string `json:"customer_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	SignupDate string `json:"signup_date"`
}

func FromNewCustomers(models []model.NewCustomer) []NewCustomerResponse {
	res := make([]NewCustomerResponse, len(models))
	for i, mod := range models {
		res[i] = NewCustomerResponse{
			CustomerID: mod.CustomerID,
			FullName:   mod.FullName,
			Email:      mod.Email,
			Phone:      mod.Phone,
			SignupDate: timezone.Format(mod.CreatedAt, constant.DayFormat),
		}
	}

	return res
}

// SummaryResponse gathers every report over one window, as exported.
type SummaryResponse struct {
	Months         int                   `json:"months"`
	GeneratedAt    string                `json:"generated_at"`
	Dashboard      DashboardResponse     `json:"dashboard"`
	CustomerGrowth MonthlySeries         `json:"customer_growth"`
	TotalCustomers MonthlySeries         `json:"total_customers"`
	Revenue        MonthlySeries         `json:"revenue"`
	Bookings       MonthlySeries         `json:"bookings"`
	Occupancy      MonthlySeries         `json:"occupancy"`
	NewCustomers   []NewCustomerResponse `json:"new_customers"`
}
