package model

import "time"

const EntityName = "report"

// Totals holds the dashboard scalars. Sums are zero on an empty store.
type Totals struct {
	TotalBookingsCost   float64 `db:"total_bookings_cost"`
	TotalReservations   int     `db:"total_reservations"`
	TotalRevenue        float64 `db:"total_revenue"`
	ActiveCustomerCount int     `db:"active_customer_count"`
}

// DatedValue is one row of a time-bucketed series before bucketing.
type DatedValue struct {
	Date  time.Time `db:"date"`
	Value float64   `db:"value"`
}

type DailyOccupancy struct {
	Date          time.Time `db:"occupancy_date"`
	OccupiedRooms int       `db:"occupied_rooms"`
	TotalRooms    int       `db:"total_rooms"`
}

type NewCustomer struct {
	CustomerID string    `db:"customer_id"`
	FullName   string    `db:"full_name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	CreatedAt  time.Time `db:"created_at"`
}
